package port

import (
	"context"

	"six-cities-client/internal/core/domain"
)

// OffersAPIPort - контракт для клиента REST API предложений.
// Каждый метод выполняет ровно один сетевой вызов; повторов нет,
// повтор - это повторный вызов метода по инициативе пользователя.
type OffersAPIPort interface {
	FetchOffers(ctx context.Context) ([]domain.Offer, error)
	FetchOfferDetails(ctx context.Context, offerID string) (*domain.OfferDetails, error)
	FetchNearbyOffers(ctx context.Context, offerID string) ([]domain.Offer, error)
	FetchComments(ctx context.Context, offerID string) ([]domain.Review, error)
	SubmitComment(ctx context.Context, offerID, comment string, rating int) (*domain.Review, error)
	FetchFavorites(ctx context.Context) ([]domain.Offer, error)
	ChangeFavoriteStatus(ctx context.Context, offerID string, status domain.FavoriteStatus) (*domain.Offer, error)
}

// AuthAPIPort - контракт для клиента REST API авторизации.
type AuthAPIPort interface {
	// CheckAuth проверяет существующую сессию по сохранённому токену.
	CheckAuth(ctx context.Context) (*domain.AuthInfo, error)

	// Login выполняет вход и возвращает данные пользователя с новым токеном.
	Login(ctx context.Context, email, password string) (*domain.AuthInfo, error)
}
