package usecases_port

import "context"

// FetchFavoritesUseCasePort - контракт для сценария загрузки избранного.
// Имеет смысл только для авторизованного пользователя.
type FetchFavoritesUseCasePort interface {
	Execute(ctx context.Context) error
}
