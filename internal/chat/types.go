package chat

import (
	"library-assistant/internal/model"
	"library-assistant/internal/router"
)

// --- UseCase Inputs ---

type QueryInput struct {
	SessionID string
	Query     string
}

type RenameSessionInput struct {
	SessionID string
	NewName   string
}

type EditMessageInput struct {
	SessionID string
	Index     int
	NewText   string
}

// --- UseCase Outputs ---

type QueryOutput struct {
	SessionID   string
	Intent      router.Intent
	Answer      string
	Suggestions []string
	History     []model.Turn
}

type ListSessionsOutput struct {
	Sessions []model.SessionInfo
}

type EditMessageOutput struct {
	Turns []model.Turn
}
