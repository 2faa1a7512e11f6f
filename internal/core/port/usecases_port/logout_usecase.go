package usecases_port

import "context"

// LogoutUseCasePort - контракт для сценария выхода из сессии.
type LogoutUseCasePort interface {
	Execute(ctx context.Context) error
}
