package usecase

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"
	"time"

	"library-assistant/internal/chat"
	"library-assistant/internal/chat/repository"
	"library-assistant/internal/model"
	"library-assistant/internal/router"
	"library-assistant/internal/session"
)

func seedRetention(t *testing.T, retention *fakeRetention, cardnumber, sessionID string, n int) {
	t.Helper()
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		role := model.RoleUser
		if i%2 == 1 {
			role = model.RoleAssistant
		}
		err := retention.AppendTurns(context.Background(), cardnumber, sessionID, []model.Turn{
			{Role: role, Text: fmt.Sprintf("turn-%d", i), Timestamp: base.Add(time.Duration(i) * time.Minute)},
		})
		if err != nil {
			t.Fatalf("seed append: %v", err)
		}
	}
}

func TestListSessions_Idempotent(t *testing.T) {
	retention := newFakeRetention()
	seedRetention(t, retention, "C100", "s1", 2)
	seedRetention(t, retention, "C100", "s2", 4)
	seedRetention(t, retention, "C999", "other", 2)
	uc, _ := newTestUseCase(router.IntentGeneralChat, &mockCatalog{}, retention)

	first, err := uc.ListSessions(context.Background(), testScope())
	if err != nil {
		t.Fatalf("ListSessions() error = %v", err)
	}
	if len(first.Sessions) != 2 {
		t.Fatalf("ListSessions() returned %d sessions, want 2", len(first.Sessions))
	}

	second, err := uc.ListSessions(context.Background(), testScope())
	if err != nil {
		t.Fatalf("second ListSessions() error = %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("two reads without writes differ:\nfirst  = %+v\nsecond = %+v", first, second)
	}
}

func TestDeleteSession_RemovesBothStores(t *testing.T) {
	retention := newFakeRetention()
	seedRetention(t, retention, "C100", "s1", 4)
	uc, sessions := newTestUseCase(router.IntentGeneralChat, &mockCatalog{}, retention)
	sessions.Append("s1", model.Turn{Role: model.RoleUser, Text: "hi"})

	if err := uc.DeleteSession(context.Background(), testScope(), "s1"); err != nil {
		t.Fatalf("DeleteSession() error = %v", err)
	}
	if got := sessions.Len("s1"); got != 0 {
		t.Errorf("session store holds %d turns after delete, want 0", got)
	}
	if retained, _ := retention.LoadTurns(context.Background(), "C100", "s1"); len(retained) != 0 {
		t.Errorf("retention store holds %d turns after delete, want 0", len(retained))
	}

	// Deleting again is a no-op, not an error.
	if err := uc.DeleteSession(context.Background(), testScope(), "s1"); err != nil {
		t.Errorf("second DeleteSession() error = %v, want nil", err)
	}
}

func TestRenameSession(t *testing.T) {
	retention := newFakeRetention()
	seedRetention(t, retention, "C100", "s1", 2)
	uc, _ := newTestUseCase(router.IntentGeneralChat, &mockCatalog{}, retention)

	if err := uc.RenameSession(context.Background(), testScope(), chat.RenameSessionInput{
		SessionID: "s1",
		NewName:   "Sci-fi picks",
	}); err != nil {
		t.Fatalf("RenameSession() error = %v", err)
	}

	out, err := uc.ListSessions(context.Background(), testScope())
	if err != nil {
		t.Fatalf("ListSessions() error = %v", err)
	}
	if out.Sessions[0].Name != "Sci-fi picks" {
		t.Errorf("Name = %q, want %q", out.Sessions[0].Name, "Sci-fi picks")
	}

	if err := uc.RenameSession(context.Background(), testScope(), chat.RenameSessionInput{
		SessionID: "missing",
		NewName:   "x",
	}); !errors.Is(err, chat.ErrSessionNotFound) {
		t.Errorf("rename of missing session: error = %v, want ErrSessionNotFound", err)
	}

	if err := uc.RenameSession(context.Background(), testScope(), chat.RenameSessionInput{
		SessionID: "s1",
		NewName:   "   ",
	}); err == nil {
		t.Error("rename to blank name succeeded, want error")
	}
}

func TestEditMessage_TruncatesAfterIndex(t *testing.T) {
	retention := newFakeRetention()
	seedRetention(t, retention, "C100", "s1", 6)
	uc, sessions := newTestUseCase(router.IntentGeneralChat, &mockCatalog{}, retention)
	sessions.Append("s1", model.Turn{Role: model.RoleUser, Text: "stale window"})

	out, err := uc.EditMessage(context.Background(), testScope(), chat.EditMessageInput{
		SessionID: "s1",
		Index:     2,
		NewText:   "actually, recommend fantasy",
	})
	if err != nil {
		t.Fatalf("EditMessage() error = %v", err)
	}
	if len(out.Turns) != 3 {
		t.Fatalf("EditMessage() returned %d turns, want 3", len(out.Turns))
	}
	if out.Turns[2].Text != "actually, recommend fantasy" {
		t.Errorf("edited turn text = %q", out.Turns[2].Text)
	}
	if out.Turns[2].Role != model.RoleUser {
		t.Errorf("edited turn role = %q, want original role preserved", out.Turns[2].Role)
	}

	retained, _ := retention.LoadTurns(context.Background(), "C100", "s1")
	if len(retained) != 3 {
		t.Errorf("retention store holds %d turns after edit, want 3", len(retained))
	}

	// The stale in-memory window is dropped so the next request
	// rebuilds it from the truncated record.
	if got := sessions.Len("s1"); got != 0 {
		t.Errorf("session store holds %d turns after edit, want 0", got)
	}
}

func TestEditMessage_IndexOutOfRange(t *testing.T) {
	retention := newFakeRetention()
	seedRetention(t, retention, "C100", "s1", 2)
	uc, _ := newTestUseCase(router.IntentGeneralChat, &mockCatalog{}, retention)

	for _, index := range []int{-1, 2, 50} {
		_, err := uc.EditMessage(context.Background(), testScope(), chat.EditMessageInput{
			SessionID: "s1",
			Index:     index,
			NewText:   "x",
		})
		if !errors.Is(err, chat.ErrTurnIndexOutOfRange) {
			t.Errorf("EditMessage(index=%d) error = %v, want ErrTurnIndexOutOfRange", index, err)
		}
	}
}

func TestComposeHistory(t *testing.T) {
	t.Run("Session Store Wins When Populated", func(t *testing.T) {
		retention := newFakeRetention()
		seedRetention(t, retention, "C100", "s1", 6)
		uc, sessions := newTestUseCase(router.IntentGeneralChat, &mockCatalog{}, retention)
		sessions.Append("s1", model.Turn{Role: model.RoleUser, Text: "in memory"})

		history := uc.composeHistory(context.Background(), "C100", "s1")
		if len(history) != 1 || history[0].Text != "in memory" {
			t.Errorf("composeHistory() = %+v, want the single in-memory turn", history)
		}
	})

	t.Run("Falls Back To Retention Tail", func(t *testing.T) {
		retention := newFakeRetention()
		seedRetention(t, retention, "C100", "s1", repository.RetentionLimit)
		uc, _ := newTestUseCase(router.IntentGeneralChat, &mockCatalog{}, retention)

		history := uc.composeHistory(context.Background(), "C100", "s1")
		if len(history) != session.MaxHistoryLength {
			t.Fatalf("composeHistory() returned %d turns, want %d", len(history), session.MaxHistoryLength)
		}
		// Most recent retained turns, oldest first.
		if history[len(history)-1].Text != fmt.Sprintf("turn-%d", repository.RetentionLimit-1) {
			t.Errorf("last composed turn = %q", history[len(history)-1].Text)
		}
	})

	t.Run("Unavailable Retention Degrades To Empty", func(t *testing.T) {
		retention := newFakeRetention()
		retention.loadErr = errors.New("server selection timeout")
		uc, _ := newTestUseCase(router.IntentGeneralChat, &mockCatalog{}, retention)

		if history := uc.composeHistory(context.Background(), "C100", "s1"); len(history) != 0 {
			t.Errorf("composeHistory() = %+v, want empty", history)
		}
	})
}
