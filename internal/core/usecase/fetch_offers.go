package usecase

import (
	"context"

	"six-cities-client/internal/contextkeys"
	"six-cities-client/internal/core/domain"
	"six-cities-client/internal/core/port"
	"six-cities-client/internal/state"
)

type FetchOffersUseCase struct {
	api   port.OffersAPIPort
	store *state.Store
}

func NewFetchOffersUseCase(api port.OffersAPIPort, store *state.Store) *FetchOffersUseCase {
	return &FetchOffersUseCase{api: api, store: store}
}

// Execute загружает полный список предложений и заменяет им партицию.
// При ошибке прежний список остаётся, в партиции фиксируется сообщение.
func (uc *FetchOffersUseCase) Execute(ctx context.Context) error {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "FetchOffers",
	})
	logger.Info("Use case started", nil)

	uc.store.BeginOffersLoad()

	offers, err := uc.api.FetchOffers(ctx)
	if err != nil {
		logger.Error("Failed to fetch offers", err, nil)
		uc.store.FailOffersLoad(errorMessage(err, domain.MsgFetchOffersFailed))
		return err
	}

	uc.store.CompleteOffersLoad(offers)
	logger.Info("Use case finished successfully", port.Fields{"offers_count": len(offers)})
	return nil
}
