package usecases_port

import (
	"context"

	"six-cities-client/internal/core/domain"
)

// LoginUseCasePort - контракт для сценария входа пользователя.
type LoginUseCasePort interface {
	Execute(ctx context.Context, email, password string) (*domain.AuthInfo, error)
}
