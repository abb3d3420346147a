package http

import (
	"errors"

	"library-assistant/internal/chat"
	"library-assistant/pkg/response"
)

// mapError translates domain errors into HTTP errors. Anything not in
// the taxonomy is an internal error, never leaked verbatim.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, chat.ErrEmptyQuery):
		return response.NewHTTPError(400, "query is required")
	case errors.Is(err, chat.ErrInvalidISBN):
		return response.NewHTTPError(400, "the provided ISBN is not valid")
	case errors.Is(err, chat.ErrSessionNotFound):
		return response.NewHTTPError(404, "chat session not found")
	case errors.Is(err, chat.ErrTurnIndexOutOfRange):
		return response.NewHTTPError(400, "message index out of range")
	case errors.Is(err, chat.ErrUpstreamUnavailable):
		return response.NewHTTPError(503, "a backing service is unavailable, please try again soon")
	default:
		return response.NewHTTPError(500, "internal server error")
	}
}
