package middleware

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/suncom1029-bot/ai-todo-manager/pkg/response"
)

// RateLimit enforces a per-owner token bucket. It must run after Auth, since
// the bucket is keyed by the caller's user id.
func (m *Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		sc, ok := ScopeFromContext(c)
		if !ok {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		limiter, ok := m.limiters.Get(sc.UserID)
		if !ok {
			limiter = rate.NewLimiter(rate.Limit(float64(m.config.RateLimit.PerMinute)/60), m.config.RateLimit.Burst)
			m.limiters.Add(sc.UserID, limiter)
		}

		if !limiter.Allow() {
			m.l.Warnf(c.Request.Context(), "rate limit: user=%s throttled", sc.UserID)
			response.TooManyRequests(c)
			c.Abort()
			return
		}

		c.Next()
	}
}
