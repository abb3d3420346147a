package usecase

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"library-assistant/internal/auth"
	"library-assistant/internal/auth/repository"
	"library-assistant/internal/model"
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

type mockUserRepo struct {
	users map[string]model.User
}

func (m *mockUserRepo) GetByCardnumber(ctx context.Context, cardnumber string) (model.User, error) {
	user, ok := m.users[cardnumber]
	if !ok {
		return model.User{}, repository.ErrUserNotFound
	}
	return user, nil
}

func TestLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("open-sesame"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}

	repo := &mockUserRepo{users: map[string]model.User{
		"C100": {ID: "1", Cardnumber: "C100", Username: "reader", PasswordHash: string(hash)},
	}}
	mgr := scope.NewManager("test-secret")
	uc := New(&mockLogger{}, repo, mgr)

	t.Run("Valid Credentials Issue Verifiable Token", func(t *testing.T) {
		out, err := uc.Login(context.Background(), auth.LoginInput{
			Cardnumber: "C100",
			Password:   "open-sesame",
		})
		if err != nil {
			t.Fatalf("Login() error = %v", err)
		}
		if out.Username != "reader" || out.Cardnumber != "C100" {
			t.Errorf("Login() output = %+v", out)
		}

		payload, err := mgr.Verify(out.Token)
		if err != nil {
			t.Fatalf("issued token does not verify: %v", err)
		}
		if payload.Cardnumber != "C100" {
			t.Errorf("token cardnumber = %q, want C100", payload.Cardnumber)
		}
	})

	t.Run("Wrong Password Rejected", func(t *testing.T) {
		_, err := uc.Login(context.Background(), auth.LoginInput{
			Cardnumber: "C100",
			Password:   "guess",
		})
		if !errors.Is(err, auth.ErrInvalidCredentials) {
			t.Errorf("Login() error = %v, want ErrInvalidCredentials", err)
		}
	})

	t.Run("Unknown Cardnumber Gets The Same Error", func(t *testing.T) {
		_, err := uc.Login(context.Background(), auth.LoginInput{
			Cardnumber: "C999",
			Password:   "open-sesame",
		})
		if !errors.Is(err, auth.ErrInvalidCredentials) {
			t.Errorf("Login() error = %v, want ErrInvalidCredentials", err)
		}
	})
}
