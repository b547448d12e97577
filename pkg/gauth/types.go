package gauth

import "errors"

// UserInfo is the identity the provider vouches for.
type UserInfo struct {
	UserID string
	Email  string
}

var (
	// ErrInvalidToken indicates the access token was rejected or expired.
	ErrInvalidToken = errors.New("invalid or expired access token")

	// ErrProviderUnavailable indicates the identity provider could not be
	// reached.
	ErrProviderUnavailable = errors.New("identity provider unavailable")
)
