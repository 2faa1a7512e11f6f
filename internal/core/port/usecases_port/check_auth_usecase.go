package usecases_port

import (
	"context"

	"six-cities-client/internal/core/domain"
)

// CheckAuthUseCasePort - контракт для проверки существующей сессии.
// Сценарий никогда не возвращает ошибку: любой сбой сети или 401
// означает "не авторизован", а не ошибку для пользователя.
type CheckAuthUseCasePort interface {
	Execute(ctx context.Context) domain.AuthorizationStatus
}
