package usecases_port

import "context"

// FetchNearbyOffersUseCasePort - контракт для сценария загрузки соседних
// предложений. Независим от загрузки детальной карточки: её провал не
// мешает этому сценарию завершиться успешно.
type FetchNearbyOffersUseCasePort interface {
	Execute(ctx context.Context, offerID string) error
}
