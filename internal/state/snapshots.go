package state

import "six-cities-client/internal/core/domain"

// Снимки партиций. Каждый снимок - независимая копия: изменения в сторе
// после взятия снимка на него не влияют, и наоборот.

// OffersSnapshot - снимок партиции списка предложений.
type OffersSnapshot struct {
	CityTab string
	Sorting domain.Sorting
	Offers  []domain.Offer
	Status  ResourceStatus
	Error   string
}

// Stale сообщает, что показанный список может быть устаревшим: последняя
// загрузка провалилась, но прежние данные остались на экране.
func (s OffersSnapshot) Stale() bool {
	return s.Status == StatusFailed && len(s.Offers) > 0
}

// AuthSnapshot - снимок партиции сессии.
type AuthSnapshot struct {
	Status domain.AuthorizationStatus
	User   *domain.AuthInfo
}

// OfferDetailsSnapshot - снимок партиции детальной страницы.
type OfferDetailsSnapshot struct {
	CurrentOffer        *domain.OfferDetails
	NearbyOffers        []domain.Offer
	Comments            []domain.Review
	Status              ResourceStatus
	IsCommentSubmitting bool
}

// FavoritesSnapshot - снимок партиции избранного.
type FavoritesSnapshot struct {
	Favorites []domain.FavoriteOffer
	Status    ResourceStatus
	Error     string
}

// Offers возвращает снимок партиции предложений.
func (s *Store) Offers() OffersSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return OffersSnapshot{
		CityTab: s.offers.cityTab,
		Sorting: s.offers.sorting,
		Offers:  copyOffers(s.offers.offers),
		Status:  s.offers.status,
		Error:   s.offers.err,
	}
}

// Auth возвращает снимок партиции сессии.
func (s *Store) Auth() AuthSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var user *domain.AuthInfo
	if s.auth.user != nil {
		u := *s.auth.user
		user = &u
	}
	return AuthSnapshot{
		Status: s.auth.status,
		User:   user,
	}
}

// OfferDetails возвращает снимок партиции детальной страницы.
func (s *Store) OfferDetails() OfferDetailsSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var current *domain.OfferDetails
	if s.details.currentOffer != nil {
		c := *s.details.currentOffer
		current = &c
	}
	return OfferDetailsSnapshot{
		CurrentOffer:        current,
		NearbyOffers:        copyOffers(s.details.nearbyOffers),
		Comments:            copyReviews(s.details.comments),
		Status:              s.details.status,
		IsCommentSubmitting: s.details.isCommentSubmitting,
	}
}

// Favorites возвращает снимок партиции избранного.
func (s *Store) Favorites() FavoritesSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	favorites := make([]domain.FavoriteOffer, len(s.favorites.favorites))
	copy(favorites, s.favorites.favorites)
	return FavoritesSnapshot{
		Favorites: favorites,
		Status:    s.favorites.status,
		Error:     s.favorites.err,
	}
}

func copyOffers(offers []domain.Offer) []domain.Offer {
	copied := make([]domain.Offer, len(offers))
	copy(copied, offers)
	return copied
}

func copyReviews(reviews []domain.Review) []domain.Review {
	copied := make([]domain.Review, len(reviews))
	copy(copied, reviews)
	return copied
}
