package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/suncom1029-bot/ai-todo-manager/internal/model"
	"github.com/suncom1029-bot/ai-todo-manager/pkg/response"
)

// scopeKey is the gin context key the auth middleware stores the caller's
// scope under.
const scopeKey = "auth_scope"

// Auth verifies the Bearer token and attaches the caller's scope to the
// request. Verified tokens are cached, so the identity provider is only
// consulted on cache misses.
func (m *Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		if sc, ok := m.sessions.Get(token); ok {
			c.Set(scopeKey, sc)
			c.Next()
			return
		}

		ctx := c.Request.Context()
		if m.config.Auth.VerifyTimeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, m.config.Auth.VerifyTimeout)
			defer cancel()
		}

		info, err := m.verifier.Verify(ctx, token)
		if err != nil {
			m.l.Warnf(c.Request.Context(), "auth: token rejected: %v", err)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		sc := model.Scope{UserID: info.UserID, Email: info.Email}
		m.sessions.Add(token, sc)
		c.Set(scopeKey, sc)
		c.Next()
	}
}

// ScopeFromContext returns the scope the auth middleware attached.
func ScopeFromContext(c *gin.Context) (model.Scope, bool) {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}, false
	}
	sc, ok := v.(model.Scope)
	return sc, ok
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, prefix))
}
