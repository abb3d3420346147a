package usecase

import (
	"context"
	"fmt"
	"strings"

	"library-assistant/internal/chat"
	"library-assistant/internal/model"
	"library-assistant/pkg/gemini"
	"library-assistant/pkg/koha"
)

// handleBookSearch answers catalog questions from a Koha title search.
// Zero matches is a "no matches" answer, not an error; a catalog
// timeout or failure surfaces as ErrUpstreamUnavailable.
func (uc *implUseCase) handleBookSearch(ctx context.Context, req handlerRequest) (handlerResult, error) {
	phrase := cleanQueryText(req.Query)
	if phrase == "" {
		phrase = strings.ToLower(req.Query)
	}

	searchCtx, cancel := context.WithTimeout(ctx, catalogTimeout)
	defer cancel()

	biblios, err := uc.catalog.SearchByTitle(searchCtx, phrase)
	if err != nil {
		uc.l.Errorf(ctx, "%s: catalog search failed: %v", LogPrefixSearch, err)
		return handlerResult{}, fmt.Errorf("%w: catalog search: %v", chat.ErrUpstreamUnavailable, err)
	}

	if len(biblios) == 0 {
		return handlerResult{
			Answer:      msgNoBooksFound,
			Suggestions: searchSuggestions,
		}, nil
	}

	books := groupByISBN(biblios)
	formatted := make([]string, 0, len(books))
	for _, b := range books {
		formatted = append(formatted, fmt.Sprintf(
			"Title: %s, Author: %s, ISBN: %s, Quantity: %d, Publisher: %s",
			b.Title, b.Author, b.ISBN, b.Quantity, b.Publisher))
	}

	prompt := fmt.Sprintf(promptSearchBooks, phrase, strings.Join(formatted, "\n"),
		historyText(tailTurns(req.History, historyWindow)))
	answer := uc.generateText(ctx, LogPrefixSearch, prompt, msgLLMUnavailable)

	return handlerResult{
		Answer:      answer,
		Suggestions: searchSuggestions,
	}, nil
}

// groupByISBN collapses duplicate catalog rows into one book per ISBN
// with a copy count, skipping rows without usable title or ISBN.
func groupByISBN(biblios []koha.Biblio) []model.Book {
	order := make([]string, 0, len(biblios))
	grouped := make(map[string]*model.Book, len(biblios))

	for _, b := range biblios {
		isbn := strings.TrimSpace(b.ISBN)
		title := strings.TrimSpace(b.Title)
		if isbn == "" || title == "" {
			continue
		}
		if existing, ok := grouped[isbn]; ok {
			existing.Quantity++
			continue
		}
		grouped[isbn] = &model.Book{
			Title:     title,
			Author:    strings.TrimSpace(b.Author),
			ISBN:      isbn,
			Publisher: strings.TrimSpace(b.Publisher),
			Year:      strings.TrimSpace(b.CopyrightDate),
			BiblioID:  fmt.Sprint(b.BiblioID),
			Quantity:  1,
		}
		order = append(order, isbn)
	}

	books := make([]model.Book, 0, len(order))
	for _, isbn := range order {
		books = append(books, *grouped[isbn])
	}
	return books
}

// generateText calls the LLM and degrades to a canned answer instead
// of failing the request.
func (uc *implUseCase) generateText(ctx context.Context, logPrefix, prompt, fallback string) string {
	llmCtx, cancel := context.WithTimeout(ctx, llmTimeout)
	defer cancel()

	resp, err := uc.llm.GenerateContent(llmCtx, gemini.GenerateRequest{
		Contents: []gemini.Content{
			{Role: "user", Parts: []gemini.Part{{Text: prompt}}},
		},
	})
	if err != nil {
		uc.l.Errorf(ctx, "%s: LLM generation failed: %v", logPrefix, err)
		return fallback
	}
	answer := strings.TrimSpace(resp.Text())
	if answer == "" {
		uc.l.Warnf(ctx, "%s: empty LLM answer", logPrefix)
		return fallback
	}
	return answer
}
