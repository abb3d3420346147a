package http

import (
	"github.com/gin-gonic/gin"

	"library-assistant/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// All chat routes require a verified identity.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("/query", mw.Auth(), mw.RateLimit(), h.Query)

	sessions := rg.Group("/sessions")
	{
		sessions.GET("", mw.Auth(), h.ListSessions)
		sessions.DELETE("/:id", mw.Auth(), h.DeleteSession)
		sessions.PUT("/:id/name", mw.Auth(), h.RenameSession)
		sessions.PUT("/:id/messages/:index", mw.Auth(), h.EditMessage)
	}
}
