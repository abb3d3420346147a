package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"library-assistant/internal/model"
	"library-assistant/pkg/response"
)

// scopeKey is the gin context key carrying the verified identity.
const scopeKey = "scope"

// Auth verifies the Bearer token and stores the decoded identity in
// the request context. Requests without a valid token never reach the
// handler.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			m.l.Warnf(ctx, "middleware.Auth: missing bearer token")
			response.Unauthorized(c)
			c.Abort()
			return
		}

		payload, err := m.jwtManager.Verify(token)
		if err != nil {
			m.l.Warnf(ctx, "middleware.Auth: %v", err)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(scopeKey, model.Scope{
			Cardnumber: payload.Cardnumber,
			Username:   payload.Username,
		})
		c.Next()
	}
}

// ScopeFromContext returns the identity stored by Auth.
func ScopeFromContext(c *gin.Context) (model.Scope, bool) {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}, false
	}
	sc, ok := v.(model.Scope)
	return sc, ok
}
