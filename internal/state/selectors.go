package state

import (
	"sort"
	"sync"

	"github.com/mmcloughlin/geohash"

	"six-cities-client/internal/core/domain"
)

// DefaultMapCenter - координаты центра карты, когда показывать нечего.
var DefaultMapCenter = domain.Location{
	Latitude:  52.3909553943508,
	Longitude: 4.85309666406198,
	Zoom:      DefaultMapZoom,
}

const (
	// DefaultMapZoom - масштаб карты по умолчанию.
	DefaultMapZoom = 10

	// MaxVisibleComments - сколько последних отзывов показывается.
	MaxVisibleComments = 10

	// MaxNearbyOffers - сколько соседних предложений показывается.
	MaxNearbyOffers = 3

	// mapTileKeyPrecision - длина geohash-ключа тайлов карты.
	mapTileKeyPrecision = 8
)

// Selectors - производные представления поверх Store. Чистые вычисления,
// мемоизированные по версии породившей их партиции: пока партиция не
// менялась, повторный вызов возвращает тот же самый срез. Возвращаемые
// срезы принадлежат кэшу селекторов и предназначены только для чтения;
// вызывающему нужна собственная копия - снимки стора (Offers,
// OfferDetails и т.д.) отдают отсоединённые данные.
type Selectors struct {
	store *Store

	mu sync.Mutex

	offersVersion uint64
	offersValid   bool
	cityOffers    []domain.Offer
	sortedOffers  []domain.Offer
	mapCenter     domain.Location
	mapTileKey    string

	detailsVersion uint64
	detailsValid   bool
	recentComments []domain.Review
	nearbyOffers   []domain.Offer
}

// NewSelectors создает набор селекторов над переданным стором.
func NewSelectors(store *Store) *Selectors {
	return &Selectors{store: store}
}

// CityOffers - предложения активного города в исходном порядке.
// Срез только для чтения.
func (sel *Selectors) CityOffers() []domain.Offer {
	sel.mu.Lock()
	defer sel.mu.Unlock()
	sel.refreshOffers()
	return sel.cityOffers
}

// SortedOffers - предложения активного города в активной сортировке.
// Сортировка стабильна: элементы с равным ключом сохраняют исходный порядок.
// Срез только для чтения.
func (sel *Selectors) SortedOffers() []domain.Offer {
	sel.mu.Lock()
	defer sel.mu.Unlock()
	sel.refreshOffers()
	return sel.sortedOffers
}

// MapCenter - координаты первого предложения отсортированного списка или
// фиксированная точка по умолчанию для пустого списка.
func (sel *Selectors) MapCenter() domain.Location {
	sel.mu.Lock()
	defer sel.mu.Unlock()
	sel.refreshOffers()
	return sel.mapCenter
}

// MapTileKey - geohash-ключ центра карты для кэширования тайлов.
func (sel *Selectors) MapTileKey() string {
	sel.mu.Lock()
	defer sel.mu.Unlock()
	sel.refreshOffers()
	return sel.mapTileKey
}

// RecentComments - отзывы текущего предложения, новые первыми, не более
// MaxVisibleComments штук. Срез только для чтения.
func (sel *Selectors) RecentComments() []domain.Review {
	sel.mu.Lock()
	defer sel.mu.Unlock()
	sel.refreshDetails()
	return sel.recentComments
}

// NearbyOffers - первые MaxNearbyOffers соседних предложений без
// пересортировки. Срез только для чтения.
func (sel *Selectors) NearbyOffers() []domain.Offer {
	sel.mu.Lock()
	defer sel.mu.Unlock()
	sel.refreshDetails()
	return sel.nearbyOffers
}

// FavoritesCount - размер коллекции избранного для бейджа в шапке.
func (sel *Selectors) FavoritesCount() int {
	sel.store.mu.RLock()
	defer sel.store.mu.RUnlock()
	return len(sel.store.favorites.favorites)
}

// refreshOffers пересчитывает представления партиции предложений, если её
// версия изменилась с прошлого вычисления. Вызывается под sel.mu.
func (sel *Selectors) refreshOffers() {
	sel.store.mu.RLock()
	version := sel.store.offersVersion
	if sel.offersValid && version == sel.offersVersion {
		sel.store.mu.RUnlock()
		return
	}
	cityTab := sel.store.offers.cityTab
	sorting := sel.store.offers.sorting
	all := copyOffers(sel.store.offers.offers)
	sel.store.mu.RUnlock()

	cityOffers := make([]domain.Offer, 0, len(all))
	for _, offer := range all {
		if offer.City.Name == cityTab {
			cityOffers = append(cityOffers, offer)
		}
	}

	sorted := make([]domain.Offer, len(cityOffers))
	copy(sorted, cityOffers)
	switch sorting {
	case domain.SortingPriceLowToHigh:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Price < sorted[j].Price })
	case domain.SortingPriceHighToLow:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Price > sorted[j].Price })
	case domain.SortingTopRatedFirst:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Rating > sorted[j].Rating })
	case domain.SortingPopular:
		// исходный порядок
	}

	center := DefaultMapCenter
	if len(sorted) > 0 {
		center = sorted[0].Location
	}

	sel.cityOffers = cityOffers
	sel.sortedOffers = sorted
	sel.mapCenter = center
	sel.mapTileKey = geohash.EncodeWithPrecision(center.Latitude, center.Longitude, mapTileKeyPrecision)
	sel.offersVersion = version
	sel.offersValid = true
}

// refreshDetails пересчитывает представления партиции детальной страницы.
// Вызывается под sel.mu.
func (sel *Selectors) refreshDetails() {
	sel.store.mu.RLock()
	version := sel.store.detailsVersion
	if sel.detailsValid && version == sel.detailsVersion {
		sel.store.mu.RUnlock()
		return
	}
	comments := copyReviews(sel.store.details.comments)
	nearby := copyOffers(sel.store.details.nearbyOffers)
	sel.store.mu.RUnlock()

	sort.SliceStable(comments, func(i, j int) bool {
		return comments[i].Date.After(comments[j].Date)
	})
	if len(comments) > MaxVisibleComments {
		comments = comments[:MaxVisibleComments]
	}

	if len(nearby) > MaxNearbyOffers {
		nearby = nearby[:MaxNearbyOffers]
	}

	sel.recentComments = comments
	sel.nearbyOffers = nearby
	sel.detailsVersion = version
	sel.detailsValid = true
}
