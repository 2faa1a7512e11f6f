package usecase

import (
	"context"

	"six-cities-client/internal/contextkeys"
	"six-cities-client/internal/core/domain"
	"six-cities-client/internal/core/port"
	"six-cities-client/internal/state"
)

type FetchFavoritesUseCase struct {
	api   port.OffersAPIPort
	store *state.Store
}

func NewFetchFavoritesUseCase(api port.OffersAPIPort, store *state.Store) *FetchFavoritesUseCase {
	return &FetchFavoritesUseCase{api: api, store: store}
}

// Execute загружает избранное. Каждое предложение преобразуется в
// проекцию FavoriteOffer при записи в партицию.
func (uc *FetchFavoritesUseCase) Execute(ctx context.Context) error {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "FetchFavorites",
	})
	logger.Info("Use case started", nil)

	uc.store.BeginFavoritesLoad()

	offers, err := uc.api.FetchFavorites(ctx)
	if err != nil {
		logger.Error("Failed to fetch favorites", err, nil)
		uc.store.FailFavoritesLoad(errorMessage(err, domain.MsgFetchFavoritesFailed))
		return err
	}

	uc.store.CompleteFavoritesLoad(offers)
	logger.Info("Use case finished successfully", port.Fields{"favorites_count": len(offers)})
	return nil
}
