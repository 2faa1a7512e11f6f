package usecases_port

import (
	"context"

	"six-cities-client/internal/core/domain"
)

// ChangeFavoriteStatusUseCasePort - контракт для переключения флага
// избранного. При ошибке состояние не меняется, ошибка отдаётся
// вызывающему для разового показа.
type ChangeFavoriteStatusUseCasePort interface {
	Execute(ctx context.Context, offerID string, status domain.FavoriteStatus) error
}
