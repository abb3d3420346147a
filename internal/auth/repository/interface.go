package repository

import (
	"context"
	"errors"

	"library-assistant/internal/model"
)

// ErrUserNotFound signals a lookup for an unknown cardnumber.
var ErrUserNotFound = errors.New("user not found")

// UserRepository reads patron accounts from the durable store.
type UserRepository interface {
	// GetByCardnumber returns the user record for one cardnumber.
	GetByCardnumber(ctx context.Context, cardnumber string) (model.User, error)
}
