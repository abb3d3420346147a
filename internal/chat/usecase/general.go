package usecase

import (
	"context"
	"fmt"
)

// handleGeneralChat is the last-resort path: it is guaranteed to
// produce a response, degrading to a canned line when the LLM is down.
func (uc *implUseCase) handleGeneralChat(ctx context.Context, req handlerRequest) (handlerResult, error) {
	prompt := fmt.Sprintf(promptGeneralChat,
		historyText(tailTurns(req.History, historyWindow)), req.Query)

	return handlerResult{
		Answer:      uc.generateText(ctx, LogPrefixGeneral, prompt, msgLLMUnavailable),
		Suggestions: defaultReminders,
	}, nil
}
