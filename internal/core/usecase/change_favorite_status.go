package usecase

import (
	"context"

	"six-cities-client/internal/contextkeys"
	"six-cities-client/internal/core/domain"
	"six-cities-client/internal/core/port"
	"six-cities-client/internal/state"
)

type ChangeFavoriteStatusUseCase struct {
	api   port.OffersAPIPort
	store *state.Store
}

func NewChangeFavoriteStatusUseCase(api port.OffersAPIPort, store *state.Store) *ChangeFavoriteStatusUseCase {
	return &ChangeFavoriteStatusUseCase{api: api, store: store}
}

// Execute переключает флаг избранного. Флаг фиксируется только после
// подтверждения сервера - никакого оптимистичного обновления. Успешный
// ответ применяется одной транзакцией ко всем партициям, где встречается
// этот offer id; при ошибке ни одна партиция не меняется.
func (uc *ChangeFavoriteStatusUseCase) Execute(ctx context.Context, offerID string, status domain.FavoriteStatus) error {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "ChangeFavoriteStatus",
		"offer_id": offerID,
		"status":   int(status),
	})
	logger.Info("Use case started", nil)

	offer, err := uc.api.ChangeFavoriteStatus(ctx, offerID, status)
	if err != nil {
		logger.Error("Failed to change favorite status", err, nil)
		return err
	}

	uc.store.ApplyFavoriteUpdate(*offer)
	logger.Info("Use case finished successfully", port.Fields{"is_favorite": offer.IsFavorite})
	return nil
}
