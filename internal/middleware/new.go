package middleware

import (
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/time/rate"

	"github.com/suncom1029-bot/ai-todo-manager/config"
	"github.com/suncom1029-bot/ai-todo-manager/internal/model"
	"github.com/suncom1029-bot/ai-todo-manager/pkg/gauth"
	"github.com/suncom1029-bot/ai-todo-manager/pkg/log"
)

// Middleware bundles the cross-cutting request guards: authentication,
// per-owner rate limiting, and request correlation.
type Middleware struct {
	l        log.Logger
	verifier gauth.Verifier
	config   *config.Config

	// sessions caches verified tokens so not every request pays a
	// round-trip to the identity provider.
	sessions *lru.Cache[string, model.Scope]

	// limiters holds one token bucket per owner.
	limiters *lru.Cache[string, *rate.Limiter]
}

// New creates the middleware bundle.
func New(l log.Logger, verifier gauth.Verifier, cfg *config.Config) (*Middleware, error) {
	sessions, err := lru.New[string, model.Scope](cfg.Auth.SessionCacheSize)
	if err != nil {
		return nil, err
	}
	limiters, err := lru.New[string, *rate.Limiter](cfg.RateLimit.CacheSize)
	if err != nil {
		return nil, err
	}
	return &Middleware{
		l:        l,
		verifier: verifier,
		config:   cfg,
		sessions: sessions,
		limiters: limiters,
	}, nil
}
