package usecase

import (
	"context"

	"six-cities-client/internal/contextkeys"
	"six-cities-client/internal/core/port"
	"six-cities-client/internal/state"
)

type FetchNearbyOffersUseCase struct {
	api   port.OffersAPIPort
	store *state.Store
}

func NewFetchNearbyOffersUseCase(api port.OffersAPIPort, store *state.Store) *FetchNearbyOffersUseCase {
	return &FetchNearbyOffersUseCase{api: api, store: store}
}

// Execute загружает соседние предложения. Сценарий независим от загрузки
// детальной карточки: её провал не мешает соседям загрузиться.
func (uc *FetchNearbyOffersUseCase) Execute(ctx context.Context, offerID string) error {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "FetchNearbyOffers",
		"offer_id": offerID,
	})

	offers, err := uc.api.FetchNearbyOffers(ctx, offerID)
	if err != nil {
		logger.Error("Failed to fetch nearby offers", err, nil)
		return err
	}

	uc.store.SetNearbyOffers(offers)
	logger.Info("Nearby offers loaded", port.Fields{"count": len(offers)})
	return nil
}
