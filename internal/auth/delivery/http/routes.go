package http

import (
	"github.com/gin-gonic/gin"

	"library-assistant/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. Login
// is unauthenticated but rate limited.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("/login", mw.RateLimit(), h.Login)
}
