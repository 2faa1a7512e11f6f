package mockapi

import (
	"sync"
	"time"

	"six-cities-client/internal/core/domain"
)

// offerRecord - полная запись предложения в датасете: детальная карточка
// плюс отзывы. Списочная проекция выводится из неё.
type offerRecord struct {
	details domain.OfferDetails
	reviews []domain.Review
}

// Dataset - in-memory датасет фикстур для dev-сервера. Потокобезопасен.
type Dataset struct {
	mu     sync.RWMutex
	order  []string
	offers map[string]*offerRecord
}

// NewDataset создает датасет из переданных записей, сохраняя порядок.
func NewDataset(records ...offerRecord) *Dataset {
	ds := &Dataset{offers: make(map[string]*offerRecord, len(records))}
	for i := range records {
		record := records[i]
		ds.order = append(ds.order, record.details.ID)
		ds.offers[record.details.ID] = &record
	}
	return ds
}

// toListOffer сводит детальную карточку к списочной проекции.
func toListOffer(details domain.OfferDetails) domain.Offer {
	return domain.Offer{
		ID:           details.ID,
		Title:        details.Title,
		Type:         details.Type,
		Price:        details.Price,
		PreviewImage: details.PreviewImage,
		Rating:       details.Rating,
		IsPremium:    details.IsPremium,
		IsFavorite:   details.IsFavorite,
		City:         details.City,
		Location:     details.Location,
	}
}

// List возвращает все предложения в исходном порядке.
func (ds *Dataset) List() []domain.Offer {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	offers := make([]domain.Offer, 0, len(ds.order))
	for _, id := range ds.order {
		offers = append(offers, toListOffer(ds.offers[id].details))
	}
	return offers
}

// Get возвращает детальную карточку по id.
func (ds *Dataset) Get(id string) (domain.OfferDetails, bool) {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	record, ok := ds.offers[id]
	if !ok {
		return domain.OfferDetails{}, false
	}
	return record.details, true
}

// Nearby возвращает другие предложения того же города.
func (ds *Dataset) Nearby(id string) ([]domain.Offer, bool) {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	record, ok := ds.offers[id]
	if !ok {
		return nil, false
	}
	var nearby []domain.Offer
	for _, otherID := range ds.order {
		if otherID == id {
			continue
		}
		other := ds.offers[otherID]
		if other.details.City.Name == record.details.City.Name {
			nearby = append(nearby, toListOffer(other.details))
		}
	}
	return nearby, true
}

// Comments возвращает отзывы предложения.
func (ds *Dataset) Comments(id string) ([]domain.Review, bool) {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	record, ok := ds.offers[id]
	if !ok {
		return nil, false
	}
	reviews := make([]domain.Review, len(record.reviews))
	copy(reviews, record.reviews)
	return reviews, true
}

// AddComment добавляет отзыв в конец списка предложения.
func (ds *Dataset) AddComment(id string, review domain.Review) bool {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	record, ok := ds.offers[id]
	if !ok {
		return false
	}
	record.reviews = append(record.reviews, review)
	return true
}

// SetFavorite выставляет флаг избранного и возвращает обновлённую
// списочную проекцию.
func (ds *Dataset) SetFavorite(id string, isFavorite bool) (domain.Offer, bool) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	record, ok := ds.offers[id]
	if !ok {
		return domain.Offer{}, false
	}
	record.details.IsFavorite = isFavorite
	return toListOffer(record.details), true
}

// Favorites возвращает предложения с выставленным флагом избранного.
func (ds *Dataset) Favorites() []domain.Offer {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	var favorites []domain.Offer
	for _, id := range ds.order {
		record := ds.offers[id]
		if record.details.IsFavorite {
			favorites = append(favorites, toListOffer(record.details))
		}
	}
	return favorites
}

var (
	parisLocation     = domain.Location{Latitude: 48.85661, Longitude: 2.351499, Zoom: 13}
	amsterdamLocation = domain.Location{Latitude: 52.37454, Longitude: 4.897976, Zoom: 13}
	cologneLocation   = domain.Location{Latitude: 50.938361, Longitude: 6.959974, Zoom: 13}

	parisCity     = domain.City{Name: "Paris", Location: parisLocation}
	amsterdamCity = domain.City{Name: "Amsterdam", Location: amsterdamLocation}
	cologneCity   = domain.City{Name: "Cologne", Location: cologneLocation}
)

func fixtureDate(value string) time.Time {
	parsed, _ := time.Parse("2006-01-02", value)
	return parsed
}

// DefaultDataset - стартовый набор фикстур dev-сервера.
func DefaultDataset() *Dataset {
	return NewDataset(
		offerRecord{
			details: domain.OfferDetails{
				ID:           "1",
				Title:        "Beautiful & luxurious apartment at great location",
				Type:         "apartment",
				Price:        120,
				PreviewImage: "/img/apartment-01.jpg",
				Description:  "A new spacious villa close to the city center.",
				Images:       []string{"/img/apartment-01.jpg", "/img/apartment-02.jpg"},
				Goods:        []string{"Wi-Fi", "Heating", "Kitchen"},
				Host:         domain.Host{Name: "Angelina", AvatarURL: "/img/avatar-angelina.jpg", IsPro: true},
				Bedrooms:     3,
				MaxAdults:    4,
				Rating:       4.0,
				IsPremium:    true,
				City:         parisCity,
				Location:     domain.Location{Latitude: 48.868610000000004, Longitude: 2.342499, Zoom: 16},
			},
			reviews: []domain.Review{
				{
					ID:      "review-1-1",
					User:    domain.ReviewUser{Name: "Max", AvatarURL: "/img/avatar-max.jpg"},
					Rating:  4,
					Comment: "A quiet cozy house that hides behind a river by the unique lightness of Paris. The building is green and from 18th century.",
					Date:    fixtureDate("2019-04-24"),
				},
			},
		},
		offerRecord{
			details: domain.OfferDetails{
				ID:           "2",
				Title:        "Wood and stone place",
				Type:         "room",
				Price:        80,
				PreviewImage: "/img/room.jpg",
				Description:  "An independent house, strategically located between Rembrand Square and National Opera.",
				Images:       []string{"/img/room.jpg"},
				Goods:        []string{"Wi-Fi", "Washing machine"},
				Host:         domain.Host{Name: "Max", AvatarURL: "/img/avatar-max.jpg"},
				Bedrooms:     1,
				MaxAdults:    2,
				Rating:       4.0,
				City:         parisCity,
				Location:     domain.Location{Latitude: 48.858610000000006, Longitude: 2.330499, Zoom: 16},
			},
		},
		offerRecord{
			details: domain.OfferDetails{
				ID:           "3",
				Title:        "Canal View Prinsengracht",
				Type:         "apartment",
				Price:        132,
				PreviewImage: "/img/apartment-02.jpg",
				Description:  "Located right on the canal with a view of the old town.",
				Images:       []string{"/img/apartment-02.jpg"},
				Goods:        []string{"Wi-Fi", "Heating", "Dishwasher"},
				Host:         domain.Host{Name: "Angelina", AvatarURL: "/img/avatar-angelina.jpg", IsPro: true},
				Bedrooms:     2,
				MaxAdults:    3,
				Rating:       4.0,
				City:         amsterdamCity,
				Location:     domain.Location{Latitude: 52.3909553943508, Longitude: 4.929309666406198, Zoom: 16},
			},
		},
		offerRecord{
			details: domain.OfferDetails{
				ID:           "4",
				Title:        "Nice, cozy, warm big bed apartment",
				Type:         "apartment",
				Price:        180,
				PreviewImage: "/img/apartment-03.jpg",
				Description:  "Perfect for a family vacation, clean and very spacious.",
				Images:       []string{"/img/apartment-03.jpg"},
				Goods:        []string{"Wi-Fi", "Heating", "Kitchen", "Fridge"},
				Host:         domain.Host{Name: "Max", AvatarURL: "/img/avatar-max.jpg"},
				Bedrooms:     3,
				MaxAdults:    5,
				Rating:       5.0,
				IsPremium:    true,
				City:         amsterdamCity,
				Location:     domain.Location{Latitude: 52.3809553943508, Longitude: 4.939309666406198, Zoom: 16},
			},
			reviews: []domain.Review{
				{
					ID:      "review-4-1",
					User:    domain.ReviewUser{Name: "Max", AvatarURL: "/img/avatar-max.jpg"},
					Rating:  5,
					Comment: "The apartment is perfect for a family vacation. Clean, comfortable and very spacious.",
					Date:    fixtureDate("2019-06-10"),
				},
				{
					ID:      "review-4-2",
					User:    domain.ReviewUser{Name: "Angelina", AvatarURL: "/img/avatar-angelina.jpg", IsPro: true},
					Rating:  4,
					Comment: "Great location and beautiful view. The host was very helpful and responsive.",
					Date:    fixtureDate("2019-05-15"),
				},
			},
		},
		offerRecord{
			details: domain.OfferDetails{
				ID:           "5",
				Title:        "Waterfront with extraordinary view",
				Type:         "house",
				Price:        210,
				PreviewImage: "/img/apartment-01.jpg",
				Description:  "A house right on the Rhine with a private pier.",
				Images:       []string{"/img/apartment-01.jpg"},
				Goods:        []string{"Wi-Fi", "Heating", "Parking"},
				Host:         domain.Host{Name: "Sophie", AvatarURL: "/img/avatar-angelina.jpg"},
				Bedrooms:     4,
				MaxAdults:    6,
				Rating:       3.5,
				City:         cologneCity,
				Location:     domain.Location{Latitude: 50.948361, Longitude: 6.969974, Zoom: 16},
			},
		},
	)
}
