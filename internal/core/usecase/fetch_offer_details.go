package usecase

import (
	"context"
	"errors"

	"six-cities-client/internal/contextkeys"
	"six-cities-client/internal/core/domain"
	"six-cities-client/internal/core/port"
	"six-cities-client/internal/state"
)

type FetchOfferDetailsUseCase struct {
	api   port.OffersAPIPort
	store *state.Store
}

func NewFetchOfferDetailsUseCase(api port.OffersAPIPort, store *state.Store) *FetchOfferDetailsUseCase {
	return &FetchOfferDetailsUseCase{api: api, store: store}
}

// Execute загружает детальную карточку предложения. Провал очищает
// текущую карточку, чтобы не показать устаревшие детали; ответ на
// устаревшую загрузку игнорируется стором по номеру поколения.
func (uc *FetchOfferDetailsUseCase) Execute(ctx context.Context, offerID string) error {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "FetchOfferDetails",
		"offer_id": offerID,
	})
	logger.Info("Use case started", nil)

	gen := uc.store.BeginOfferLoad()

	details, err := uc.api.FetchOfferDetails(ctx, offerID)
	if err != nil {
		uc.store.FailOfferLoad(gen)
		if errors.Is(err, domain.ErrNotFound) {
			logger.Warn("Offer not found", nil)
		} else {
			logger.Error("Failed to fetch offer details", err, nil)
		}
		return err
	}

	uc.store.CompleteOfferLoad(gen, details)
	logger.Info("Use case finished successfully", nil)
	return nil
}
