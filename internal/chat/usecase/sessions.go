package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"library-assistant/internal/chat"
	"library-assistant/internal/chat/repository"
	"library-assistant/internal/model"
)

// ListSessions returns the retained session index, newest first. Two
// calls without intervening writes return identical results.
func (uc *implUseCase) ListSessions(ctx context.Context, sc model.Scope) (chat.ListSessionsOutput, error) {
	loadCtx, cancel := context.WithTimeout(ctx, retentionTimeout)
	defer cancel()

	sessions, err := uc.retention.ListSessions(loadCtx, sc.Cardnumber)
	if err != nil {
		return chat.ListSessionsOutput{}, mapRepositoryError(err)
	}
	return chat.ListSessionsOutput{Sessions: sessions}, nil
}

// DeleteSession removes the conversation from both stores. The
// in-memory entry goes first so a racing request cannot resurrect the
// window from stale memory after the durable record is gone.
func (uc *implUseCase) DeleteSession(ctx context.Context, sc model.Scope, sessionID string) error {
	uc.sessions.Delete(sessionID)

	delCtx, cancel := context.WithTimeout(ctx, retentionTimeout)
	defer cancel()

	if err := uc.retention.DeleteSession(delCtx, sc.Cardnumber, sessionID); err != nil {
		return mapRepositoryError(err)
	}
	return nil
}

func (uc *implUseCase) RenameSession(ctx context.Context, sc model.Scope, input chat.RenameSessionInput) error {
	name := strings.TrimSpace(input.NewName)
	if name == "" {
		return fmt.Errorf("new name is required")
	}

	renameCtx, cancel := context.WithTimeout(ctx, retentionTimeout)
	defer cancel()

	if err := uc.retention.RenameSession(renameCtx, sc.Cardnumber, input.SessionID, name); err != nil {
		return mapRepositoryError(err)
	}
	return nil
}

// EditMessage rewrites one retained turn and discards everything
// after it. The in-memory window is dropped rather than patched: its
// indexes need not line up with the retained ones, so the next request
// rebuilds working memory from the now-truncated retention record.
func (uc *implUseCase) EditMessage(ctx context.Context, sc model.Scope, input chat.EditMessageInput) (chat.EditMessageOutput, error) {
	text := strings.TrimSpace(input.NewText)
	if text == "" {
		return chat.EditMessageOutput{}, fmt.Errorf("new text is required")
	}

	editCtx, cancel := context.WithTimeout(ctx, retentionTimeout)
	defer cancel()

	turns, err := uc.retention.UpdateTurn(editCtx, sc.Cardnumber, input.SessionID, input.Index, text)
	if err != nil {
		return chat.EditMessageOutput{}, mapRepositoryError(err)
	}

	uc.sessions.Delete(input.SessionID)

	return chat.EditMessageOutput{Turns: turns}, nil
}

// mapRepositoryError translates repository sentinels into domain
// errors so no store-specific error escapes the use case.
func mapRepositoryError(err error) error {
	switch {
	case errors.Is(err, repository.ErrSessionNotFound):
		return chat.ErrSessionNotFound
	case errors.Is(err, repository.ErrTurnIndexOutOfRange):
		return chat.ErrTurnIndexOutOfRange
	case errors.Is(err, repository.ErrStoreUnavailable):
		return fmt.Errorf("%w: retention store", chat.ErrUpstreamUnavailable)
	default:
		return err
	}
}
