package usecase

import (
	"context"
	"fmt"

	"library-assistant/internal/chat/repository"
	"library-assistant/internal/model"
	"library-assistant/internal/router"
	"library-assistant/pkg/gemini"
	"library-assistant/pkg/koha"
	"library-assistant/pkg/qdrant"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock Gemini client: always answers with the configured text.
type mockGemini struct {
	text string
	err  error
}

func (m *mockGemini) GenerateContent(ctx context.Context, req gemini.GenerateRequest) (*gemini.GenerateResponse, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &gemini.GenerateResponse{
		Candidates: []gemini.Candidate{
			{Content: gemini.Content{Parts: []gemini.Part{{Text: m.text}}}},
		},
	}, nil
}

// Stub router: returns a fixed intent without touching the LLM.
type stubRouter struct {
	intent router.Intent
}

func (s *stubRouter) Classify(ctx context.Context, message string, conversationHistory []string) router.Output {
	return router.Output{Intent: s.intent, Confidence: 100}
}

// Mock catalog with per-call hooks and a call counter.
type mockCatalog struct {
	searchTitleFunc func(phrase string) ([]koha.Biblio, error)
	searchISBNFunc  func(isbn string) ([]koha.Biblio, error)
	countFunc       func(biblioID string) (int, error)
	calls           int
}

func (m *mockCatalog) SearchByTitle(ctx context.Context, phrase string) ([]koha.Biblio, error) {
	m.calls++
	if m.searchTitleFunc == nil {
		return nil, nil
	}
	return m.searchTitleFunc(phrase)
}

func (m *mockCatalog) SearchByISBN(ctx context.Context, isbn string) ([]koha.Biblio, error) {
	m.calls++
	if m.searchISBNFunc == nil {
		return nil, nil
	}
	return m.searchISBNFunc(isbn)
}

func (m *mockCatalog) CountItems(ctx context.Context, biblioID string) (int, error) {
	m.calls++
	if m.countFunc == nil {
		return 0, nil
	}
	return m.countFunc(biblioID)
}

// Mock vector index.
type mockVectors struct {
	searchFunc func(collection string, req qdrant.SearchRequest) (*qdrant.SearchResponse, error)
}

func (m *mockVectors) SearchPoints(ctx context.Context, collection string, req qdrant.SearchRequest) (*qdrant.SearchResponse, error) {
	if m.searchFunc == nil {
		return &qdrant.SearchResponse{}, nil
	}
	return m.searchFunc(collection, req)
}

// Mock embedder.
type mockEmbedder struct {
	err error
}

func (m *mockEmbedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([][]float32, len(texts))
	for i := range texts {
		out[i] = []float32{0.1, 0.2, 0.3}
	}
	return out, nil
}

// fakeRetention is an in-memory RetentionRepository honoring the same
// cap and truncation contract as the Mongo implementation.
type fakeRetention struct {
	records     map[string][]model.Turn // key: cardnumber/sessionID
	names       map[string]string
	order       []string
	loadErr     error
	appendErr   error
	listCalls   int
}

func newFakeRetention() *fakeRetention {
	return &fakeRetention{
		records: make(map[string][]model.Turn),
		names:   make(map[string]string),
	}
}

func retKey(cardnumber, sessionID string) string { return cardnumber + "/" + sessionID }

func (f *fakeRetention) LoadTurns(ctx context.Context, cardnumber, sessionID string) ([]model.Turn, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return f.records[retKey(cardnumber, sessionID)], nil
}

func (f *fakeRetention) AppendTurns(ctx context.Context, cardnumber, sessionID string, turns []model.Turn) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	key := retKey(cardnumber, sessionID)
	if _, ok := f.records[key]; !ok {
		f.order = append(f.order, key)
	}
	merged := append(f.records[key], turns...)
	if len(merged) > repository.RetentionLimit {
		merged = merged[len(merged)-repository.RetentionLimit:]
	}
	f.records[key] = merged
	return nil
}

func (f *fakeRetention) RenameSession(ctx context.Context, cardnumber, sessionID, newName string) error {
	key := retKey(cardnumber, sessionID)
	if _, ok := f.records[key]; !ok {
		return repository.ErrSessionNotFound
	}
	f.names[key] = newName
	return nil
}

func (f *fakeRetention) DeleteSession(ctx context.Context, cardnumber, sessionID string) error {
	key := retKey(cardnumber, sessionID)
	delete(f.records, key)
	delete(f.names, key)
	for i, k := range f.order {
		if k == key {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	return nil
}

func (f *fakeRetention) UpdateTurn(ctx context.Context, cardnumber, sessionID string, index int, newText string) ([]model.Turn, error) {
	key := retKey(cardnumber, sessionID)
	turns, ok := f.records[key]
	if !ok {
		return nil, repository.ErrSessionNotFound
	}
	if index < 0 || index >= len(turns) {
		return nil, fmt.Errorf("%w: %d of %d", repository.ErrTurnIndexOutOfRange, index, len(turns))
	}
	truncated := make([]model.Turn, index+1)
	copy(truncated, turns[:index+1])
	truncated[index].Text = newText
	f.records[key] = truncated
	return truncated, nil
}

func (f *fakeRetention) ListSessions(ctx context.Context, cardnumber string) ([]model.SessionInfo, error) {
	f.listCalls++
	out := make([]model.SessionInfo, 0)
	for _, key := range f.order {
		turns, ok := f.records[key]
		if !ok || len(key) <= len(cardnumber) || key[:len(cardnumber)+1] != cardnumber+"/" {
			continue
		}
		info := model.SessionInfo{
			SessionID: key[len(cardnumber)+1:],
			Name:      f.names[key],
		}
		if len(turns) > 0 {
			info.LastUpdated = turns[len(turns)-1].Timestamp
		}
		out = append(out, info)
	}
	return out, nil
}
