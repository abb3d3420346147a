package http

import (
	"time"

	"library-assistant/internal/chat"
	"library-assistant/internal/model"
)

// --- Request DTOs ---

type queryReq struct {
	SessionID string `json:"-"` // populated from the X-Session-Id header
	Query     string `json:"query" binding:"required"`
}

func (r queryReq) toInput() chat.QueryInput {
	return chat.QueryInput{
		SessionID: r.SessionID,
		Query:     r.Query,
	}
}

// ---

type renameSessionReq struct {
	SessionID string `json:"-"` // populated from URI param
	NewName   string `json:"new_name" binding:"required,min=1,max=255"`
}

func (r renameSessionReq) toInput() chat.RenameSessionInput {
	return chat.RenameSessionInput{
		SessionID: r.SessionID,
		NewName:   r.NewName,
	}
}

// ---

type editMessageReq struct {
	SessionID string `json:"-"` // populated from URI params
	Index     int    `json:"-"`
	NewText   string `json:"new_text" binding:"required"`
}

func (r editMessageReq) toInput() chat.EditMessageInput {
	return chat.EditMessageInput{
		SessionID: r.SessionID,
		Index:     r.Index,
		NewText:   r.NewText,
	}
}

// --- Response DTOs ---

type turnResp struct {
	Role      string    `json:"role"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

func newTurnResp(t model.Turn) turnResp {
	return turnResp{
		Role:      string(t.Role),
		Text:      t.Text,
		Timestamp: t.Timestamp,
	}
}

func newTurnListResp(turns []model.Turn) []turnResp {
	out := make([]turnResp, len(turns))
	for i, t := range turns {
		out[i] = newTurnResp(t)
	}
	return out
}

type queryResp struct {
	SessionID string     `json:"session_id"`
	Intent    string     `json:"intent"`
	Answer    string     `json:"answer"`
	History   []turnResp `json:"history"`

	// At most three follow-up prompts, flattened for the widget.
	Suggestion1 string `json:"suggestion1,omitempty"`
	Suggestion2 string `json:"suggestion2,omitempty"`
	Suggestion3 string `json:"suggestion3,omitempty"`
}

func (h *handler) newQueryResp(out chat.QueryOutput) queryResp {
	resp := queryResp{
		SessionID: out.SessionID,
		Intent:    string(out.Intent),
		Answer:    out.Answer,
		History:   newTurnListResp(out.History),
	}
	slots := []*string{&resp.Suggestion1, &resp.Suggestion2, &resp.Suggestion3}
	for i, s := range out.Suggestions {
		if i >= len(slots) {
			break
		}
		*slots[i] = s
	}
	return resp
}

type sessionResp struct {
	SessionID   string    `json:"session_id"`
	Name        string    `json:"name,omitempty"`
	LastUpdated time.Time `json:"last_updated"`
}

type listSessionsResp struct {
	Sessions []sessionResp `json:"sessions"`
}

func (h *handler) newListSessionsResp(out chat.ListSessionsOutput) listSessionsResp {
	sessions := make([]sessionResp, len(out.Sessions))
	for i, s := range out.Sessions {
		sessions[i] = sessionResp{
			SessionID:   s.SessionID,
			Name:        s.Name,
			LastUpdated: s.LastUpdated,
		}
	}
	return listSessionsResp{Sessions: sessions}
}

type editMessageResp struct {
	Messages []turnResp `json:"messages"`
}

func (h *handler) newEditMessageResp(out chat.EditMessageOutput) editMessageResp {
	return editMessageResp{Messages: newTurnListResp(out.Turns)}
}
