package usecase

import (
	"context"
	"strings"
	"time"

	"library-assistant/internal/chat"
	"library-assistant/internal/model"
	"library-assistant/internal/router"
)

// Query runs one request through the pipeline:
//
//	Received -> Classified -> Dispatched -> Responded
//
// The transitions are strictly linear, and the terminal state carries
// exactly one outcome: an answer payload or a typed error. The
// (user, assistant) turn pair is recorded only after a successful
// dispatch; a failed handler leaves both stores untouched.
func (uc *implUseCase) Query(ctx context.Context, sc model.Scope, input chat.QueryInput) (chat.QueryOutput, error) {
	query := strings.TrimSpace(input.Query)
	if query == "" {
		return chat.QueryOutput{}, chat.ErrEmptyQuery
	}

	uc.l.Infof(ctx, "%s: user=%s session=%s", LogPrefixQuery, sc.Cardnumber, input.SessionID)

	// Received: build the context window.
	history := uc.composeHistory(ctx, sc.Cardnumber, input.SessionID)

	// Classified: the router fails closed, so this always yields a
	// label from the enumerated set.
	classifyCtx, cancel := context.WithTimeout(ctx, llmTimeout)
	intent := uc.intents.Classify(classifyCtx, query, historyLines(tailTurns(history, historyWindow))).Intent
	cancel()

	// Dispatched: table lookup, with the fallback entry guarding
	// against labels that slip past the router.
	handler, ok := uc.dispatch[intent]
	if !ok {
		uc.l.Warnf(ctx, "%s: no handler for intent %q, using fallback", LogPrefixQuery, intent)
		intent = router.IntentGeneralChat
		handler = uc.dispatch[intent]
	}

	result, err := handler(ctx, handlerRequest{
		Scope:     sc,
		SessionID: input.SessionID,
		Query:     query,
		History:   history,
	})
	if err != nil {
		return chat.QueryOutput{}, err
	}

	// Responded: record the turn pair, session first, then retention.
	now := time.Now().UTC()
	userTurn := model.Turn{Role: model.RoleUser, Text: query, Timestamp: now}
	assistantTurn := model.Turn{Role: model.RoleAssistant, Text: result.Answer, Timestamp: now}

	uc.sessions.Append(input.SessionID, userTurn, assistantTurn)

	appendCtx, cancel := context.WithTimeout(ctx, retentionTimeout)
	defer cancel()
	if err := uc.retention.AppendTurns(appendCtx, sc.Cardnumber, input.SessionID, []model.Turn{userTurn, assistantTurn}); err != nil {
		// Degraded, not fatal: the answer still reaches the user.
		uc.l.Warnf(ctx, "%s: retention append failed for %s/%s: %v", LogPrefixQuery, sc.Cardnumber, input.SessionID, err)
	}

	return chat.QueryOutput{
		SessionID:   input.SessionID,
		Intent:      intent,
		Answer:      result.Answer,
		Suggestions: result.Suggestions,
		History:     uc.sessions.Get(input.SessionID),
	}, nil
}
