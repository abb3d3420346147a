package repository

import (
	"context"
	"errors"

	"library-assistant/internal/model"
)

// ErrStoreUnavailable signals the durable store could not be reached.
// Read paths treat it as "no retained history" and continue degraded.
var ErrStoreUnavailable = errors.New("retention store unavailable")

// ErrSessionNotFound signals a rename/edit against a missing record.
var ErrSessionNotFound = errors.New("retention session not found")

// ErrTurnIndexOutOfRange signals an edit pointing past the retained
// history.
var ErrTurnIndexOutOfRange = errors.New("turn index out of range")

// RetentionLimit caps the number of turns kept per retained session.
// The cap is enforced by the store itself on every append, never by a
// read-modify-write in the caller.
const RetentionLimit = 15

// RetentionRepository is the policy layer over the durable store.
type RetentionRepository interface {
	// LoadTurns returns the retained turns for one session, oldest
	// first, at most RetentionLimit of them. A missing record is an
	// empty slice, not an error.
	LoadTurns(ctx context.Context, cardnumber, sessionID string) ([]model.Turn, error)

	// AppendTurns appends turns atomically, evicting the oldest past
	// RetentionLimit.
	AppendTurns(ctx context.Context, cardnumber, sessionID string, turns []model.Turn) error

	// RenameSession sets the display name of a session.
	RenameSession(ctx context.Context, cardnumber, sessionID, newName string) error

	// DeleteSession removes the record. Absent records are a no-op.
	DeleteSession(ctx context.Context, cardnumber, sessionID string) error

	// UpdateTurn replaces the text of the turn at index and discards
	// all turns strictly after it.
	UpdateTurn(ctx context.Context, cardnumber, sessionID string, index int, newText string) ([]model.Turn, error)

	// ListSessions returns the session index for a user, newest
	// first, without message bodies.
	ListSessions(ctx context.Context, cardnumber string) ([]model.SessionInfo, error)
}
