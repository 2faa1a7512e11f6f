package api_client

import (
	"time"

	"six-cities-client/internal/core/domain"
)

// DTO для тел запросов и ответов six-cities API.
// Эти структуры должны в точности совпадать с контрактом сервера;
// маппинг в доменные модели изолирует ядро от деталей wire-формата.

type locationDTO struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Zoom      int     `json:"zoom"`
}

type cityDTO struct {
	Name     string      `json:"name"`
	Location locationDTO `json:"location"`
}

type userDTO struct {
	Name      string `json:"name"`
	AvatarURL string `json:"avatarUrl"`
	IsPro     bool   `json:"isPro"`
}

type offerDTO struct {
	ID           string      `json:"id"`
	Title        string      `json:"title"`
	Type         string      `json:"type"`
	Price        int         `json:"price"`
	PreviewImage string      `json:"previewImage"`
	Rating       float64     `json:"rating"`
	IsPremium    bool        `json:"isPremium"`
	IsFavorite   bool        `json:"isFavorite"`
	City         cityDTO     `json:"city"`
	Location     locationDTO `json:"location"`
	Reviews      []reviewDTO `json:"reviews,omitempty"`
}

type offerDetailsDTO struct {
	ID           string      `json:"id"`
	Title        string      `json:"title"`
	Type         string      `json:"type"`
	Price        int         `json:"price"`
	PreviewImage string      `json:"previewImage"`
	Description  string      `json:"description"`
	Images       []string    `json:"images"`
	Goods        []string    `json:"goods"`
	Host         userDTO     `json:"host"`
	Bedrooms     int         `json:"bedrooms"`
	MaxAdults    int         `json:"maxAdults"`
	Rating       float64     `json:"rating"`
	IsPremium    bool        `json:"isPremium"`
	IsFavorite   bool        `json:"isFavorite"`
	City         cityDTO     `json:"city"`
	Location     locationDTO `json:"location"`
}

type reviewDTO struct {
	ID      string  `json:"id"`
	User    userDTO `json:"user"`
	Rating  int     `json:"rating"`
	Comment string  `json:"comment"`
	Date    string  `json:"date"`
}

type authInfoDTO struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatarUrl"`
	IsPro     bool   `json:"isPro"`
	Email     string `json:"email"`
	Token     string `json:"token"`
}

type commentRequest struct {
	Comment string `json:"comment"`
	Rating  int    `json:"rating"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// errorResponse - тело 4xx-ответов сервера.
type errorResponse struct {
	Message string `json:"message"`
}

func (d locationDTO) toDomain() domain.Location {
	return domain.Location{
		Latitude:  d.Latitude,
		Longitude: d.Longitude,
		Zoom:      d.Zoom,
	}
}

func (d cityDTO) toDomain() domain.City {
	return domain.City{
		Name:     d.Name,
		Location: d.Location.toDomain(),
	}
}

func (d offerDTO) toDomain() domain.Offer {
	reviews := make([]domain.Review, 0, len(d.Reviews))
	for _, review := range d.Reviews {
		reviews = append(reviews, review.toDomain())
	}
	return domain.Offer{
		ID:           d.ID,
		Title:        d.Title,
		Type:         d.Type,
		Price:        d.Price,
		PreviewImage: d.PreviewImage,
		Rating:       d.Rating,
		IsPremium:    d.IsPremium,
		IsFavorite:   d.IsFavorite,
		City:         d.City.toDomain(),
		Location:     d.Location.toDomain(),
		Reviews:      reviews,
	}
}

func (d offerDetailsDTO) toDomain() domain.OfferDetails {
	return domain.OfferDetails{
		ID:           d.ID,
		Title:        d.Title,
		Type:         d.Type,
		Price:        d.Price,
		PreviewImage: d.PreviewImage,
		Description:  d.Description,
		Images:       d.Images,
		Goods:        d.Goods,
		Host: domain.Host{
			Name:      d.Host.Name,
			AvatarURL: d.Host.AvatarURL,
			IsPro:     d.Host.IsPro,
		},
		Bedrooms:   d.Bedrooms,
		MaxAdults:  d.MaxAdults,
		Rating:     d.Rating,
		IsPremium:  d.IsPremium,
		IsFavorite: d.IsFavorite,
		City:       d.City.toDomain(),
		Location:   d.Location.toDomain(),
	}
}

func (d reviewDTO) toDomain() domain.Review {
	return domain.Review{
		ID: d.ID,
		User: domain.ReviewUser{
			Name:      d.User.Name,
			AvatarURL: d.User.AvatarURL,
			IsPro:     d.User.IsPro,
		},
		Rating:  d.Rating,
		Comment: d.Comment,
		Date:    parseReviewDate(d.Date),
	}
}

func (d authInfoDTO) toDomain() domain.AuthInfo {
	return domain.AuthInfo{
		ID:        d.ID,
		Name:      d.Name,
		AvatarURL: d.AvatarURL,
		IsPro:     d.IsPro,
		Email:     d.Email,
		Token:     d.Token,
	}
}

// parseReviewDate разбирает дату отзыва. Сервер отдаёт RFC3339, но в
// старых данных встречается короткая форма YYYY-MM-DD.
func parseReviewDate(raw string) time.Time {
	if parsed, err := time.Parse(time.RFC3339, raw); err == nil {
		return parsed
	}
	if parsed, err := time.Parse("2006-01-02", raw); err == nil {
		return parsed
	}
	return time.Time{}
}
