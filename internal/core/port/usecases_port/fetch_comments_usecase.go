package usecases_port

import "context"

// FetchCommentsUseCasePort - контракт для сценария загрузки отзывов.
type FetchCommentsUseCasePort interface {
	Execute(ctx context.Context, offerID string) error
}
