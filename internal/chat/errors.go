package chat

import "errors"

var (
	// ErrEmptyQuery rejects blank messages before any work happens.
	ErrEmptyQuery = errors.New("query is required")

	// ErrInvalidISBN is a validation failure raised before any
	// catalog call is made.
	ErrInvalidISBN = errors.New("invalid ISBN or ISSN")

	// ErrUpstreamUnavailable covers collaborator timeouts and
	// failures surfaced to the caller. Raw collaborator errors never
	// leave the use case.
	ErrUpstreamUnavailable = errors.New("upstream service unavailable")

	// ErrSessionNotFound is returned by rename/edit on a missing
	// record. Reads treat absence as empty; deletes as a no-op.
	ErrSessionNotFound = errors.New("session not found")

	// ErrTurnIndexOutOfRange rejects edits pointing past the end of
	// the retained history.
	ErrTurnIndexOutOfRange = errors.New("turn index out of range")
)
