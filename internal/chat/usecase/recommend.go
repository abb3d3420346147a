package usecase

import (
	"context"
	"fmt"
	"strings"

	"library-assistant/pkg/qdrant"
)

// handleBookRecommend derives candidates from the vector index and
// lets the LLM pick. The outcome is deterministic given identical
// collaborator responses; collaborator failures degrade to the canned
// "nothing suitable" answer rather than erroring, since a
// recommendation is advisory, not a lookup the patron depends on.
func (uc *implUseCase) handleBookRecommend(ctx context.Context, req handlerRequest) (handlerResult, error) {
	vecCtx, cancel := context.WithTimeout(ctx, vectorTimeout)
	defer cancel()

	var candidates []string
	seen := make(map[string]struct{})

	vector, err := uc.embedQuery(vecCtx, LogPrefixRecs, req.Query)
	if err == nil {
		resp, searchErr := uc.vectors.SearchPoints(vecCtx, uc.booksCollection, qdrant.SearchRequest{
			Vector:      vector,
			Limit:       recommendTopK,
			WithPayload: true,
		})
		if searchErr != nil {
			uc.l.Errorf(ctx, "%s: similarity search failed: %v", LogPrefixRecs, searchErr)
		} else {
			for _, point := range resp.Result {
				title := payloadString(point.Payload, "title")
				author := payloadString(point.Payload, "author")
				bookISBN := payloadString(point.Payload, "isbn")
				if title == "" {
					continue
				}
				key := strings.ToLower(title) + "|" + strings.ToLower(author)
				if _, dup := seen[key]; dup {
					continue
				}
				seen[key] = struct{}{}
				if bookISBN == "" {
					bookISBN = "ISBN unavailable"
				}
				candidates = append(candidates, fmt.Sprintf("- %s by %s (ISBN: %s)", title, author, bookISBN))
				if len(candidates) >= recommendTopK {
					break
				}
			}
		}
	}

	if len(candidates) == 0 {
		return handlerResult{
			Answer:      msgNoRecommendable,
			Suggestions: recommendSuggestions,
		}, nil
	}

	prompt := fmt.Sprintf(promptRecommendBooks, req.Query, strings.Join(candidates, "\n"))
	return handlerResult{
		Answer:      uc.generateText(ctx, LogPrefixRecs, prompt, msgLLMUnavailable),
		Suggestions: recommendSuggestions,
	}, nil
}
