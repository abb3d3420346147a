package usecase

import (
	"context"

	"library-assistant/internal/model"
	"library-assistant/pkg/koha"
	"library-assistant/pkg/qdrant"
)

// Catalog is the narrow contract required from the Koha collaborator.
type Catalog interface {
	SearchByTitle(ctx context.Context, phrase string) ([]koha.Biblio, error)
	SearchByISBN(ctx context.Context, isbn string) ([]koha.Biblio, error)
	CountItems(ctx context.Context, biblioID string) (int, error)
}

// VectorIndex is the narrow contract required from the Qdrant
// collaborator.
type VectorIndex interface {
	SearchPoints(ctx context.Context, collectionName string, req qdrant.SearchRequest) (*qdrant.SearchResponse, error)
}

// handlerRequest is what every intent handler receives: the verified
// identity, the composed context window and the raw message.
type handlerRequest struct {
	Scope     model.Scope
	SessionID string
	Query     string
	History   []model.Turn
}

// handlerResult is a successful handler outcome. A handler returns
// either a result or an error, never both.
type handlerResult struct {
	Answer      string
	Suggestions []string
}

// handlerFunc is the polymorphic handler capability. One entry per
// intent in the dispatch table; adding an intent is adding an entry
// plus an implementation, nothing else.
type handlerFunc func(ctx context.Context, req handlerRequest) (handlerResult, error)
