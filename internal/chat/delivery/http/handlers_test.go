package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"library-assistant/internal/chat"
	"library-assistant/internal/middleware"
	"library-assistant/internal/model"
	"library-assistant/internal/router"
	"library-assistant/pkg/scope"
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

// Mock use case with per-method hooks.
type mockUseCase struct {
	queryFunc func(sc model.Scope, input chat.QueryInput) (chat.QueryOutput, error)
	deleteErr error
	renameErr error
	editErr   error
}

func (m *mockUseCase) Query(ctx context.Context, sc model.Scope, input chat.QueryInput) (chat.QueryOutput, error) {
	if m.queryFunc == nil {
		return chat.QueryOutput{SessionID: input.SessionID, Intent: router.IntentGeneralChat, Answer: "ok"}, nil
	}
	return m.queryFunc(sc, input)
}

func (m *mockUseCase) ListSessions(ctx context.Context, sc model.Scope) (chat.ListSessionsOutput, error) {
	return chat.ListSessionsOutput{}, nil
}

func (m *mockUseCase) DeleteSession(ctx context.Context, sc model.Scope, sessionID string) error {
	return m.deleteErr
}

func (m *mockUseCase) RenameSession(ctx context.Context, sc model.Scope, input chat.RenameSessionInput) error {
	return m.renameErr
}

func (m *mockUseCase) EditMessage(ctx context.Context, sc model.Scope, input chat.EditMessageInput) (chat.EditMessageOutput, error) {
	return chat.EditMessageOutput{}, m.editErr
}

func newTestRouter(t *testing.T, uc chat.UseCase) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mgr := scope.NewManager("test-secret")
	token, err := mgr.Issue(scope.Payload{Cardnumber: "C100", Username: "reader"})
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	mw := middleware.New(&mockLogger{}, mgr, 6000)
	h := New(&mockLogger{}, uc)

	r := gin.New()
	RegisterRoutes(r.Group("/api/v1/chat"), h, mw)
	return r, token
}

func TestQueryEndpoint(t *testing.T) {
	t.Run("Mints Session Id When Header Missing", func(t *testing.T) {
		var captured chat.QueryInput
		uc := &mockUseCase{
			queryFunc: func(sc model.Scope, input chat.QueryInput) (chat.QueryOutput, error) {
				captured = input
				return chat.QueryOutput{SessionID: input.SessionID, Intent: router.IntentBookSearch, Answer: "found it", Suggestions: []string{"a", "b"}}, nil
			},
		}
		r, token := newTestRouter(t, uc)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/chat/query", strings.NewReader(`{"query":"find Dune"}`))
		req.Header.Set("Authorization", "Bearer "+token)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
		}
		if captured.SessionID == "" {
			t.Error("session id was not minted")
		}
		if captured.Query != "find Dune" {
			t.Errorf("query = %q", captured.Query)
		}

		var env struct {
			Data queryResp `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if env.Data.Suggestion1 != "a" || env.Data.Suggestion2 != "b" || env.Data.Suggestion3 != "" {
			t.Errorf("suggestions = %q %q %q", env.Data.Suggestion1, env.Data.Suggestion2, env.Data.Suggestion3)
		}
	})

	t.Run("Keeps Session Id From Header", func(t *testing.T) {
		var captured chat.QueryInput
		uc := &mockUseCase{
			queryFunc: func(sc model.Scope, input chat.QueryInput) (chat.QueryOutput, error) {
				captured = input
				return chat.QueryOutput{SessionID: input.SessionID}, nil
			},
		}
		r, token := newTestRouter(t, uc)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/chat/query", strings.NewReader(`{"query":"hello"}`))
		req.Header.Set("Authorization", "Bearer "+token)
		req.Header.Set("X-Session-Id", "existing-session")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
		}
		if captured.SessionID != "existing-session" {
			t.Errorf("session id = %q, want existing-session", captured.SessionID)
		}
	})

	t.Run("Rejects Unauthenticated Requests", func(t *testing.T) {
		r, _ := newTestRouter(t, &mockUseCase{})

		req := httptest.NewRequest(http.MethodPost, "/api/v1/chat/query", strings.NewReader(`{"query":"hello"}`))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
	})
}

func TestErrorMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"Invalid ISBN", chat.ErrInvalidISBN, http.StatusBadRequest},
		{"Empty Query", chat.ErrEmptyQuery, http.StatusBadRequest},
		{"Upstream Down", chat.ErrUpstreamUnavailable, http.StatusServiceUnavailable},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc := &mockUseCase{
				queryFunc: func(sc model.Scope, input chat.QueryInput) (chat.QueryOutput, error) {
					return chat.QueryOutput{}, tc.err
				},
			}
			r, token := newTestRouter(t, uc)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/chat/query", strings.NewReader(`{"query":"x"}`))
			req.Header.Set("Authorization", "Bearer "+token)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tc.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tc.wantStatus)
			}
		})
	}
}

func TestSessionEndpoints(t *testing.T) {
	t.Run("Rename Missing Session Is 404", func(t *testing.T) {
		r, token := newTestRouter(t, &mockUseCase{renameErr: chat.ErrSessionNotFound})

		req := httptest.NewRequest(http.MethodPut, "/api/v1/chat/sessions/s1/name", strings.NewReader(`{"new_name":"picks"}`))
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", w.Code)
		}
	})

	t.Run("Edit With Bad Index Is 400", func(t *testing.T) {
		r, token := newTestRouter(t, &mockUseCase{})

		req := httptest.NewRequest(http.MethodPut, "/api/v1/chat/sessions/s1/messages/not-a-number", strings.NewReader(`{"new_text":"x"}`))
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})

	t.Run("Delete Succeeds", func(t *testing.T) {
		r, token := newTestRouter(t, &mockUseCase{})

		req := httptest.NewRequest(http.MethodDelete, "/api/v1/chat/sessions/s1", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("status = %d, want 200", w.Code)
		}
	})
}
