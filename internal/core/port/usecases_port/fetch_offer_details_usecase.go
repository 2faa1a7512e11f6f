package usecases_port

import "context"

// FetchOfferDetailsUseCasePort - контракт для сценария загрузки детальной
// карточки предложения.
type FetchOfferDetailsUseCasePort interface {
	Execute(ctx context.Context, offerID string) error
}
