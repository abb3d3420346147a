package usecase

import (
	"library-assistant/internal/auth"
	"library-assistant/internal/auth/repository"
	pkgLog "library-assistant/pkg/log"
	"library-assistant/pkg/scope"
)

type implUseCase struct {
	l     pkgLog.Logger
	users repository.UserRepository
	jwt   scope.Manager
}

var _ auth.UseCase = (*implUseCase)(nil)

// New creates the auth UseCase.
func New(l pkgLog.Logger, users repository.UserRepository, jwt scope.Manager) *implUseCase {
	return &implUseCase{
		l:     l,
		users: users,
		jwt:   jwt,
	}
}
