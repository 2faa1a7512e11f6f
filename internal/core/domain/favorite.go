package domain

// FavoriteOffer - сокращённая проекция Offer для страницы избранного.
// Никогда не изменяется независимо: всегда результат MapOfferToFavorite.
type FavoriteOffer struct {
	ID            string
	Title         string
	Type          string
	Price         int
	Image         string
	RatingPercent float64
	IsPremium     bool
	City          string
	Location      *Location
}

// MapOfferToFavorite - чистая функция преобразования Offer в FavoriteOffer.
// Рейтинг 0-5 переводится в проценты 0-100.
func MapOfferToFavorite(offer Offer) FavoriteOffer {
	location := offer.Location
	return FavoriteOffer{
		ID:            offer.ID,
		Title:         offer.Title,
		Type:          offer.Type,
		Price:         offer.Price,
		Image:         offer.PreviewImage,
		RatingPercent: offer.Rating * 20,
		IsPremium:     offer.IsPremium,
		City:          offer.City.Name,
		Location:      &location,
	}
}
