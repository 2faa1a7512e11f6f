package domain

// Location - географическая точка с масштабом карты.
type Location struct {
	Latitude  float64
	Longitude float64
	Zoom      int
}

// City - город, к которому привязано предложение.
type City struct {
	Name     string
	Location Location
}

// Offer - краткая карточка предложения для списков и карты.
type Offer struct {
	ID           string
	Title        string
	Type         string
	Price        int
	PreviewImage string
	Rating       float64
	IsPremium    bool
	IsFavorite   bool
	City         City
	Location     Location
	Reviews      []Review
}

// Host - информация о хозяине жилья на странице предложения.
type Host struct {
	Name      string
	AvatarURL string
	IsPro     bool
}

// OfferDetails - расширенная карточка предложения для детальной страницы.
// Единовременно "текущей" может быть только одна; при навигации на другой
// id она заменяется целиком.
type OfferDetails struct {
	ID           string
	Title        string
	Type         string
	Price        int
	PreviewImage string
	Description  string
	Images       []string
	Goods        []string
	Host         Host
	Bedrooms     int
	MaxAdults    int
	Rating       float64
	IsPremium    bool
	IsFavorite   bool
	City         City
	Location     Location
}

// Sorting - вариант сортировки списка предложений.
type Sorting string

const (
	SortingPopular        Sorting = "popular"
	SortingPriceLowToHigh Sorting = "price-low-to-high"
	SortingPriceHighToLow Sorting = "price-high-to-low"
	SortingTopRatedFirst  Sorting = "top-rated-first"
)

// FavoriteStatus - бинарный флаг для операции добавления/удаления из избранного.
type FavoriteStatus int

const (
	FavoriteStatusRemove FavoriteStatus = 0
	FavoriteStatusAdd    FavoriteStatus = 1
)
