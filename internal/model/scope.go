package model

// Scope carries the authenticated owner identity through a request. The core
// trusts this identity and performs no authorization beyond scoping reads to
// the owner id.
type Scope struct {
	UserID string
	Email  string
}

// Environment identifies the deployment environment.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)
