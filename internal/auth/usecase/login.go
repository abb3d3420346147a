package usecase

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"library-assistant/internal/auth"
	"library-assistant/internal/auth/repository"
	"library-assistant/pkg/scope"
)

const logPrefixLogin = "internal.auth.Login"

// Login verifies the password against the stored bcrypt hash and
// issues a token. Unknown cardnumbers and wrong passwords produce the
// same error.
func (uc *implUseCase) Login(ctx context.Context, input auth.LoginInput) (auth.LoginOutput, error) {
	user, err := uc.users.GetByCardnumber(ctx, input.Cardnumber)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			uc.l.Warnf(ctx, "%s: unknown cardnumber %s", logPrefixLogin, input.Cardnumber)
			return auth.LoginOutput{}, auth.ErrInvalidCredentials
		}
		uc.l.Errorf(ctx, "%s: user lookup: %v", logPrefixLogin, err)
		return auth.LoginOutput{}, fmt.Errorf("failed to look up user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)) != nil {
		uc.l.Warnf(ctx, "%s: wrong password for %s", logPrefixLogin, input.Cardnumber)
		return auth.LoginOutput{}, auth.ErrInvalidCredentials
	}

	token, err := uc.jwt.Issue(scope.Payload{
		Cardnumber: user.Cardnumber,
		Username:   user.Username,
	})
	if err != nil {
		uc.l.Errorf(ctx, "%s: token issue: %v", logPrefixLogin, err)
		return auth.LoginOutput{}, fmt.Errorf("failed to issue token: %w", err)
	}

	uc.l.Infof(ctx, "%s: user %s logged in", logPrefixLogin, user.Cardnumber)
	return auth.LoginOutput{
		Token:      token,
		Cardnumber: user.Cardnumber,
		Username:   user.Username,
	}, nil
}
