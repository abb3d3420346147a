package usecase

import (
	"context"
	"fmt"
	"strings"

	"library-assistant/internal/chat"
	"library-assistant/pkg/isbn"
	"library-assistant/pkg/qdrant"
)

// handleBookLookupISBN resolves ISBN questions. A message carrying an
// identifier is validated locally first: a malformed one is rejected
// with ErrInvalidISBN before any network call. A message with no
// identifier at all ("what is the ISBN of Dune?") is answered from the
// vector index instead.
func (uc *implUseCase) handleBookLookupISBN(ctx context.Context, req handlerRequest) (handlerResult, error) {
	token, found := isbn.Extract(req.Query)
	if found {
		if !isbn.IsValid(token) {
			uc.l.Infof(ctx, "%s: rejected malformed identifier %q", LogPrefixLookup, token)
			return handlerResult{}, fmt.Errorf("%w: %q", chat.ErrInvalidISBN, token)
		}
		return uc.lookupByISBN(ctx, token)
	}
	return uc.lookupByTitle(ctx, req.Query)
}

func (uc *implUseCase) lookupByISBN(ctx context.Context, token string) (handlerResult, error) {
	searchCtx, cancel := context.WithTimeout(ctx, catalogTimeout)
	defer cancel()

	biblios, err := uc.catalog.SearchByISBN(searchCtx, token)
	if err != nil {
		uc.l.Errorf(ctx, "%s: catalog lookup failed: %v", LogPrefixLookup, err)
		return handlerResult{}, fmt.Errorf("%w: catalog lookup: %v", chat.ErrUpstreamUnavailable, err)
	}

	if len(biblios) == 0 {
		return handlerResult{
			Answer:      fmt.Sprintf("We could not find a book with ISBN %s in our catalog.", token),
			Suggestions: searchSuggestions,
		}, nil
	}

	b := biblios[0]
	copies, err := uc.catalog.CountItems(searchCtx, fmt.Sprint(b.BiblioID))
	if err != nil {
		uc.l.Warnf(ctx, "%s: item count failed for biblio %v: %v", LogPrefixLookup, b.BiblioID, err)
		copies = len(biblios)
	}

	prompt := fmt.Sprintf(promptLookupISBN, b.Title, token, copies)
	fallback := fmt.Sprintf("The ISBN of '%s' is %s. We hold %d copies.", b.Title, token, copies)
	return handlerResult{
		Answer:      uc.generateText(ctx, LogPrefixLookup, prompt, fallback),
		Suggestions: searchSuggestions,
	}, nil
}

// lookupByTitle finds the ISBN for a book named in the message via
// similarity search over the catalog collection.
func (uc *implUseCase) lookupByTitle(ctx context.Context, query string) (handlerResult, error) {
	title, bookISBN := "", ""

	vecCtx, cancel := context.WithTimeout(ctx, vectorTimeout)
	defer cancel()

	vectors, err := uc.embedQuery(vecCtx, LogPrefixLookup, cleanQueryText(query))
	if err == nil {
		resp, searchErr := uc.vectors.SearchPoints(vecCtx, uc.booksCollection, qdrant.SearchRequest{
			Vector:      vectors,
			Limit:       lookupTopK,
			WithPayload: true,
		})
		if searchErr != nil {
			uc.l.Errorf(ctx, "%s: similarity search failed: %v", LogPrefixLookup, searchErr)
		} else {
			for _, point := range resp.Result {
				t := payloadString(point.Payload, "title")
				i := payloadString(point.Payload, "isbn")
				if t != "" && i != "" {
					title, bookISBN = t, i
					break
				}
			}
		}
	}

	if title == "" || bookISBN == "" {
		prompt := fmt.Sprintf(promptLookupNotFound, strings.TrimSpace(query))
		return handlerResult{
			Answer:      uc.generateText(ctx, LogPrefixLookup, prompt, msgISBNNotFound),
			Suggestions: searchSuggestions,
		}, nil
	}

	prompt := fmt.Sprintf(promptLookupISBNOnly, title, bookISBN)
	fallback := fmt.Sprintf("The ISBN of '%s' is %s.", title, bookISBN)
	return handlerResult{
		Answer:      uc.generateText(ctx, LogPrefixLookup, prompt, fallback),
		Suggestions: searchSuggestions,
	}, nil
}

// embedQuery turns a query into an embedding vector.
func (uc *implUseCase) embedQuery(ctx context.Context, logPrefix, query string) ([]float32, error) {
	embeddings, err := uc.embedder.Embed(ctx, []string{query})
	if err != nil {
		uc.l.Errorf(ctx, "%s: embedding failed: %v", logPrefix, err)
		return nil, err
	}
	if len(embeddings) == 0 {
		return nil, fmt.Errorf("no embedding returned")
	}
	return embeddings[0], nil
}
