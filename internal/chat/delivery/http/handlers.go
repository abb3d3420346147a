package http

import (
	"github.com/gin-gonic/gin"

	"library-assistant/internal/middleware"
	"library-assistant/pkg/response"
)

// Query godoc
// @Summary     Ask the library assistant
// @Description Classifies the message, runs the matching handler and returns the answer with the conversation window.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       X-Session-Id header string   false "Conversation id; omitted starts a new session"
// @Param       body         body   queryReq true  "User message"
// @Success     200 {object} queryResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     503 {object} response.Resp "Upstream Unavailable"
// @Router      /api/v1/chat/query [POST]
func (h *handler) Query(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processQueryReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Query(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Query: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newQueryResp(output))
}

// ListSessions godoc
// @Summary     List chat sessions
// @Description Returns the caller's retained sessions, newest first, without message bodies.
// @Tags        Chat
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} listSessionsResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     503 {object} response.Resp "Upstream Unavailable"
// @Router      /api/v1/chat/sessions [GET]
func (h *handler) ListSessions(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	output, err := h.uc.ListSessions(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListSessions: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListSessionsResp(output))
}

// DeleteSession godoc
// @Summary     Delete a chat session
// @Description Removes the session from working memory and the retention store. Deleting an absent session succeeds.
// @Tags        Chat
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Session id"
// @Success     200 {object} response.Resp "OK"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     503 {object} response.Resp "Upstream Unavailable"
// @Router      /api/v1/chat/sessions/{id} [DELETE]
func (h *handler) DeleteSession(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	id := c.Param("id")
	if id == "" {
		response.Error(c, response.NewHTTPError(400, "session id is required"))
		return
	}

	if err := h.uc.DeleteSession(ctx, sc, id); err != nil {
		h.l.Errorf(ctx, "uc.DeleteSession: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// RenameSession godoc
// @Summary     Rename a chat session
// @Description Sets the display name of a retained session.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id   path string           true "Session id"
// @Param       body body renameSessionReq true "New name"
// @Success     200 {object} response.Resp "OK"
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/chat/sessions/{id}/name [PUT]
func (h *handler) RenameSession(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processRenameSessionReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.RenameSession(ctx, sc, req.toInput()); err != nil {
		h.l.Errorf(ctx, "uc.RenameSession: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// EditMessage godoc
// @Summary     Edit a past message
// @Description Replaces the text of one retained message and discards every message after it.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id    path string         true "Session id"
// @Param       index path int            true "Zero-based message index"
// @Param       body  body editMessageReq true "New text"
// @Success     200 {object} editMessageResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/chat/sessions/{id}/messages/{index} [PUT]
func (h *handler) EditMessage(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processEditMessageReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.EditMessage(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.EditMessage: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newEditMessageResp(output))
}
