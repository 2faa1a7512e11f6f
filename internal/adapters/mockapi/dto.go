package mockapi

import (
	"time"

	"six-cities-client/internal/core/domain"
)

// DTO ответов dev-сервера. Должны в точности совпадать с контрактом,
// который ожидает клиент (см. internal/schemas/documents).

type locationResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Zoom      int     `json:"zoom"`
}

type cityResponse struct {
	Name     string           `json:"name"`
	Location locationResponse `json:"location"`
}

type userResponse struct {
	Name      string `json:"name"`
	AvatarURL string `json:"avatarUrl"`
	IsPro     bool   `json:"isPro"`
}

type offerResponse struct {
	ID           string           `json:"id"`
	Title        string           `json:"title"`
	Type         string           `json:"type"`
	Price        int              `json:"price"`
	PreviewImage string           `json:"previewImage"`
	Rating       float64          `json:"rating"`
	IsPremium    bool             `json:"isPremium"`
	IsFavorite   bool             `json:"isFavorite"`
	City         cityResponse     `json:"city"`
	Location     locationResponse `json:"location"`
}

type offerDetailsResponse struct {
	ID           string           `json:"id"`
	Title        string           `json:"title"`
	Type         string           `json:"type"`
	Price        int              `json:"price"`
	PreviewImage string           `json:"previewImage"`
	Description  string           `json:"description"`
	Images       []string         `json:"images"`
	Goods        []string         `json:"goods"`
	Host         userResponse     `json:"host"`
	Bedrooms     int              `json:"bedrooms"`
	MaxAdults    int              `json:"maxAdults"`
	Rating       float64          `json:"rating"`
	IsPremium    bool             `json:"isPremium"`
	IsFavorite   bool             `json:"isFavorite"`
	City         cityResponse     `json:"city"`
	Location     locationResponse `json:"location"`
}

type reviewResponse struct {
	ID      string       `json:"id"`
	User    userResponse `json:"user"`
	Rating  int          `json:"rating"`
	Comment string       `json:"comment"`
	Date    string       `json:"date"`
}

type authInfoResponse struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatarUrl"`
	IsPro     bool   `json:"isPro"`
	Email     string `json:"email"`
	Token     string `json:"token"`
}

type commentRequestBody struct {
	Comment string `json:"comment"`
	Rating  int    `json:"rating"`
}

type loginRequestBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func toLocationResponse(location domain.Location) locationResponse {
	return locationResponse{
		Latitude:  location.Latitude,
		Longitude: location.Longitude,
		Zoom:      location.Zoom,
	}
}

func toCityResponse(city domain.City) cityResponse {
	return cityResponse{
		Name:     city.Name,
		Location: toLocationResponse(city.Location),
	}
}

func toOfferResponse(offer domain.Offer) offerResponse {
	return offerResponse{
		ID:           offer.ID,
		Title:        offer.Title,
		Type:         offer.Type,
		Price:        offer.Price,
		PreviewImage: offer.PreviewImage,
		Rating:       offer.Rating,
		IsPremium:    offer.IsPremium,
		IsFavorite:   offer.IsFavorite,
		City:         toCityResponse(offer.City),
		Location:     toLocationResponse(offer.Location),
	}
}

func toOffersResponse(offers []domain.Offer) []offerResponse {
	response := make([]offerResponse, 0, len(offers))
	for _, offer := range offers {
		response = append(response, toOfferResponse(offer))
	}
	return response
}

func toOfferDetailsResponse(details domain.OfferDetails) offerDetailsResponse {
	return offerDetailsResponse{
		ID:           details.ID,
		Title:        details.Title,
		Type:         details.Type,
		Price:        details.Price,
		PreviewImage: details.PreviewImage,
		Description:  details.Description,
		Images:       details.Images,
		Goods:        details.Goods,
		Host: userResponse{
			Name:      details.Host.Name,
			AvatarURL: details.Host.AvatarURL,
			IsPro:     details.Host.IsPro,
		},
		Bedrooms:   details.Bedrooms,
		MaxAdults:  details.MaxAdults,
		Rating:     details.Rating,
		IsPremium:  details.IsPremium,
		IsFavorite: details.IsFavorite,
		City:       toCityResponse(details.City),
		Location:   toLocationResponse(details.Location),
	}
}

func toReviewResponse(review domain.Review) reviewResponse {
	return reviewResponse{
		ID: review.ID,
		User: userResponse{
			Name:      review.User.Name,
			AvatarURL: review.User.AvatarURL,
			IsPro:     review.User.IsPro,
		},
		Rating:  review.Rating,
		Comment: review.Comment,
		Date:    review.Date.Format(time.RFC3339),
	}
}

func toReviewsResponse(reviews []domain.Review) []reviewResponse {
	response := make([]reviewResponse, 0, len(reviews))
	for _, review := range reviews {
		response = append(response, toReviewResponse(review))
	}
	return response
}

func toAuthInfoResponse(user domain.AuthInfo) authInfoResponse {
	return authInfoResponse{
		ID:        user.ID,
		Name:      user.Name,
		AvatarURL: user.AvatarURL,
		IsPro:     user.IsPro,
		Email:     user.Email,
		Token:     user.Token,
	}
}
