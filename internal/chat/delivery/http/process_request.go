package http

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"library-assistant/pkg/response"
)

// sessionIDHeader carries the client's conversation id. Requests
// without it start a fresh session.
const sessionIDHeader = "X-Session-Id"

// processQueryReq binds the query body and resolves the session id
// from the header, minting a new one when absent.
func (h *handler) processQueryReq(c *gin.Context) (queryReq, error) {
	var req queryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, response.NewHTTPError(400, "query is required")
	}

	req.SessionID = c.GetHeader(sessionIDHeader)
	if req.SessionID == "" {
		req.SessionID = uuid.NewString()
	}
	return req, nil
}

// processRenameSessionReq binds the rename body and URI param.
func (h *handler) processRenameSessionReq(c *gin.Context) (renameSessionReq, error) {
	var req renameSessionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, response.NewHTTPError(400, "new_name is required")
	}
	req.SessionID = c.Param("id")
	if req.SessionID == "" {
		return req, response.NewHTTPError(400, "session id is required")
	}
	return req, nil
}

// processEditMessageReq binds the edit body and URI params.
func (h *handler) processEditMessageReq(c *gin.Context) (editMessageReq, error) {
	var req editMessageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, response.NewHTTPError(400, "new_text is required")
	}

	req.SessionID = c.Param("id")
	if req.SessionID == "" {
		return req, response.NewHTTPError(400, "session id is required")
	}

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return req, response.NewHTTPError(400, "message index must be an integer")
	}
	req.Index = index
	return req, nil
}
