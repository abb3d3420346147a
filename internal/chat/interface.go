package chat

import (
	"context"

	"library-assistant/internal/model"
)

// UseCase is the chat domain's behavioral contract.
type UseCase interface {
	// Query runs the full pipeline: compose history, classify,
	// dispatch, record the turn pair.
	Query(ctx context.Context, sc model.Scope, input QueryInput) (QueryOutput, error)

	// ListSessions returns the retained sessions without message
	// bodies, newest first.
	ListSessions(ctx context.Context, sc model.Scope) (ListSessionsOutput, error)

	// DeleteSession removes a session from both the in-memory window
	// and the retention store. Absent sessions are a no-op.
	DeleteSession(ctx context.Context, sc model.Scope, sessionID string) error

	// RenameSession renames a retained session, keeping its turns.
	RenameSession(ctx context.Context, sc model.Scope, input RenameSessionInput) error

	// EditMessage replaces the text of one retained turn and discards
	// every turn after it.
	EditMessage(ctx context.Context, sc model.Scope, input EditMessageInput) (EditMessageOutput, error)
}
