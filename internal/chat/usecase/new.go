package usecase

import (
	"library-assistant/internal/chat"
	"library-assistant/internal/chat/repository"
	"library-assistant/internal/router"
	"library-assistant/internal/session"
	"library-assistant/pkg/gemini"
	pkgLog "library-assistant/pkg/log"
	"library-assistant/pkg/voyage"
)

type implUseCase struct {
	l         pkgLog.Logger
	llm       gemini.IGemini
	embedder  voyage.IEmbedder
	catalog   Catalog
	vectors   VectorIndex
	sessions  *session.Store
	retention repository.RetentionRepository
	intents   router.Router

	booksCollection string // vector collection with catalog records
	webCollection   string // vector collection with policy/location text

	dispatch map[router.Intent]handlerFunc
}

var _ chat.UseCase = (*implUseCase)(nil)

// New creates the chat UseCase and builds the dispatch table. The
// table is data: every enumerated intent maps to exactly one handler,
// and out-of-enum labels resolve to the general chat fallback.
func New(
	l pkgLog.Logger,
	llm gemini.IGemini,
	embedder voyage.IEmbedder,
	catalog Catalog,
	vectors VectorIndex,
	sessions *session.Store,
	retention repository.RetentionRepository,
	intents router.Router,
	booksCollection string,
	webCollection string,
) *implUseCase {
	uc := &implUseCase{
		l:               l,
		llm:             llm,
		embedder:        embedder,
		catalog:         catalog,
		vectors:         vectors,
		sessions:        sessions,
		retention:       retention,
		intents:         intents,
		booksCollection: booksCollection,
		webCollection:   webCollection,
	}

	uc.dispatch = map[router.Intent]handlerFunc{
		router.IntentBookSearch:     uc.handleBookSearch,
		router.IntentBookRecommend:  uc.handleBookRecommend,
		router.IntentBookLookupISBN: uc.handleBookLookupISBN,
		router.IntentLibraryInfo:    uc.handleLibraryInfo,
		router.IntentGeneralChat:    uc.handleGeneralChat,
	}

	return uc
}
