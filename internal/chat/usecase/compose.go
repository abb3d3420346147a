package usecase

import (
	"context"

	"library-assistant/internal/model"
	"library-assistant/internal/session"
)

// composeHistory builds the context window handed to classification
// and generation. The in-memory session is the primary source; only
// when it is empty (fresh process) is the tail of the retained history
// used to rebuild working memory. The result never exceeds the session
// cap, no matter how much retained history exists. A failing retention
// store degrades to an empty window, it never fails the request.
func (uc *implUseCase) composeHistory(ctx context.Context, cardnumber, sessionID string) []model.Turn {
	turns := uc.sessions.Get(sessionID)
	if len(turns) > 0 {
		return turns
	}

	loadCtx, cancel := context.WithTimeout(ctx, retentionTimeout)
	defer cancel()

	retained, err := uc.retention.LoadTurns(loadCtx, cardnumber, sessionID)
	if err != nil {
		uc.l.Warnf(ctx, "%s: retention unavailable, continuing without history: %v", LogPrefixCompose, err)
		return nil
	}

	return tailTurns(retained, session.MaxHistoryLength)
}
