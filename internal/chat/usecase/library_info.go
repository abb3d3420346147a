package usecase

import (
	"context"
	"fmt"
	"strings"

	"library-assistant/pkg/qdrant"
)

// handleLibraryInfo answers policy and location questions from the
// similarity index over the library's web content. Empty retrieval is
// a fallback prompt without reference material, never a failure.
func (uc *implUseCase) handleLibraryInfo(ctx context.Context, req handlerRequest) (handlerResult, error) {
	simplified := simplifyQuery(req.Query)
	if simplified == "" {
		simplified = req.Query
	}

	vecCtx, cancel := context.WithTimeout(ctx, vectorTimeout)
	defer cancel()

	var snippets []string
	vector, err := uc.embedQuery(vecCtx, LogPrefixInfo, simplified)
	if err == nil {
		resp, searchErr := uc.vectors.SearchPoints(vecCtx, uc.webCollection, qdrant.SearchRequest{
			Vector:      vector,
			Limit:       libraryInfoTopK,
			WithPayload: true,
		})
		if searchErr != nil {
			uc.l.Errorf(ctx, "%s: similarity search failed: %v", LogPrefixInfo, searchErr)
		} else {
			for _, point := range resp.Result {
				if text := payloadString(point.Payload, "text"); text != "" {
					snippets = append(snippets, text)
				}
			}
		}
	}

	reference := "None available."
	if len(snippets) > 0 {
		reference = strings.Join(snippets, "\n---\n")
	}

	prompt := fmt.Sprintf(promptLibraryInfo,
		historyText(tailTurns(req.History, historyWindow)), reference, req.Query)

	return handlerResult{
		Answer:      uc.generateText(ctx, LogPrefixInfo, prompt, msgLLMUnavailable),
		Suggestions: suggestionsFor(req.Query),
	}, nil
}
