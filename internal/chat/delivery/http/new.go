package http

import (
	"github.com/gin-gonic/gin"

	"library-assistant/internal/chat"
	"library-assistant/pkg/log"
)

// Handler is the public interface for the chat HTTP delivery layer.
type Handler interface {
	Query(c *gin.Context)
	ListSessions(c *gin.Context)
	DeleteSession(c *gin.Context)
	RenameSession(c *gin.Context)
	EditMessage(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc chat.UseCase
}

var _ Handler = (*handler)(nil)

// New creates a new HTTP handler for the chat domain.
func New(l log.Logger, uc chat.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
