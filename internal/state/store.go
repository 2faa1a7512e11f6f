package state

import (
	"sync"

	"six-cities-client/internal/core/domain"
)

// ResourceStatus - фаза жизненного цикла асинхронно загружаемого ресурса.
// Переходы: Idle -> Loading -> {Ready | Failed}; новый запуск загрузки из
// Ready или Failed возвращает ресурс в Loading и сбрасывает ошибку.
type ResourceStatus int

const (
	StatusIdle ResourceStatus = iota
	StatusLoading
	StatusReady
	StatusFailed
)

// DefaultCityTab - город, выбранный при старте приложения.
const DefaultCityTab = "Paris"

type offersPartition struct {
	cityTab string
	sorting domain.Sorting
	offers  []domain.Offer
	status  ResourceStatus
	err     string
}

type authPartition struct {
	status domain.AuthorizationStatus
	user   *domain.AuthInfo
}

type offerDetailsPartition struct {
	currentOffer        *domain.OfferDetails
	nearbyOffers        []domain.Offer
	comments            []domain.Review
	status              ResourceStatus
	isCommentSubmitting bool
}

type favoritesPartition struct {
	favorites []domain.FavoriteOffer
	status    ResourceStatus
	err       string
}

// Store - контейнер состояния клиента из четырёх независимых партиций.
// Экземпляр создаётся при старте приложения и передаётся явно; никаких
// синглтонов уровня пакета. Все переходы выполняются под одним мьютексом,
// поэтому кросс-партиционные обновления атомарны. Переходы никогда не
// возвращают ошибку; неизвестные/устаревшие переходы игнорируются.
type Store struct {
	mu sync.RWMutex

	offers    offersPartition
	auth      authPartition
	details   offerDetailsPartition
	favorites favoritesPartition

	// Счётчики версий партиций. Каждая запись в партицию увеличивает её
	// версию; селекторы используют версии как ключ мемоизации.
	offersVersion    uint64
	authVersion      uint64
	detailsVersion   uint64
	favoritesVersion uint64

	// Поколение загрузки детальной карточки. Завершение загрузки с
	// устаревшим поколением игнорируется: ответ, пришедший после ухода
	// со страницы, не должен перезаписать более новую карточку.
	detailsGen uint64
}

// NewStore создает контейнер со стартовым состоянием.
func NewStore() *Store {
	return &Store{
		offers: offersPartition{
			cityTab: DefaultCityTab,
			sorting: domain.SortingPopular,
		},
		auth: authPartition{
			status: domain.AuthStatusUnknown,
		},
	}
}

// --- Партиция offers ---

// ChangeCity переключает активную вкладку города.
func (s *Store) ChangeCity(city string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.offers.cityTab = city
	s.offersVersion++
}

// ChangeSorting переключает активную сортировку списка.
func (s *Store) ChangeSorting(sorting domain.Sorting) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.offers.sorting = sorting
	s.offersVersion++
}

// BeginOffersLoad переводит список предложений в Loading и сбрасывает
// предыдущую ошибку.
func (s *Store) BeginOffersLoad() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.offers.status = StatusLoading
	s.offers.err = ""
	s.offersVersion++
}

// CompleteOffersLoad заменяет список предложений целиком.
func (s *Store) CompleteOffersLoad(offers []domain.Offer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.offers.offers = offers
	s.offers.status = StatusReady
	s.offers.err = ""
	s.offersVersion++
}

// FailOffersLoad фиксирует ошибку загрузки. Ранее загруженный список
// остаётся нетронутым: пользователь видит прежние данные с баннером ошибки.
func (s *Store) FailOffersLoad(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.offers.status = StatusFailed
	s.offers.err = message
	s.offersVersion++
}

// --- Партиция auth ---

// SetAuthStatus выставляет статус авторизации.
func (s *Store) SetAuthStatus(status domain.AuthorizationStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.auth.status = status
	s.authVersion++
}

// SetUser сохраняет данные авторизованного пользователя.
func (s *Store) SetUser(user *domain.AuthInfo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.auth.user = user
	s.authVersion++
}

// CompleteLogin фиксирует успешный вход: статус и пользователь меняются
// одним переходом.
func (s *Store) CompleteLogin(user *domain.AuthInfo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.auth.status = domain.AuthStatusAuth
	s.auth.user = user
	s.authVersion++
}

// Logout - единственный по-настоящему кросс-партиционный переход выхода:
// сбрасывает сессию, гасит флаги избранного во всех партициях и очищает
// коллекцию избранного, чтобы состояние не "протекло" в следующую сессию.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.auth.status = domain.AuthStatusNoAuth
	s.auth.user = nil
	s.authVersion++

	for i := range s.offers.offers {
		s.offers.offers[i].IsFavorite = false
	}
	s.offersVersion++

	if s.details.currentOffer != nil {
		s.details.currentOffer.IsFavorite = false
	}
	for i := range s.details.nearbyOffers {
		s.details.nearbyOffers[i].IsFavorite = false
	}
	s.detailsVersion++

	s.favorites.favorites = nil
	s.favorites.err = ""
	s.favorites.status = StatusIdle
	s.favoritesVersion++
}

// --- Партиция offerDetails ---

// BeginOfferLoad начинает загрузку детальной карточки и возвращает номер
// поколения, с которым должно прийти завершение. Текущая карточка
// очищается сразу, чтобы не показывать устаревшие детали.
func (s *Store) BeginOfferLoad() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.detailsGen++
	s.details.status = StatusLoading
	s.details.currentOffer = nil
	s.detailsVersion++
	return s.detailsGen
}

// CompleteOfferLoad фиксирует загруженную карточку. Завершение с
// устаревшим поколением - тождественный переход.
func (s *Store) CompleteOfferLoad(gen uint64, details *domain.OfferDetails) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.detailsGen {
		return
	}
	s.details.status = StatusReady
	s.details.currentOffer = details
	s.detailsVersion++
}

// FailOfferLoad фиксирует провал загрузки карточки и очищает текущую,
// чтобы не показать детали чужого id.
func (s *Store) FailOfferLoad(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.detailsGen {
		return
	}
	s.details.status = StatusFailed
	s.details.currentOffer = nil
	s.detailsVersion++
}

// SetNearbyOffers заменяет список соседних предложений.
func (s *Store) SetNearbyOffers(offers []domain.Offer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.details.nearbyOffers = offers
	s.detailsVersion++
}

// SetComments заменяет список отзывов целиком.
func (s *Store) SetComments(comments []domain.Review) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.details.comments = comments
	s.detailsVersion++
}

// ClearComments очищает список отзывов (провал их загрузки).
func (s *Store) ClearComments() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.details.comments = nil
	s.detailsVersion++
}

// BeginCommentSubmit отмечает начало отправки отзыва.
func (s *Store) BeginCommentSubmit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.details.isCommentSubmitting = true
	s.detailsVersion++
}

// CompleteCommentSubmit добавляет принятый сервером отзыв в конец списка.
func (s *Store) CompleteCommentSubmit(review domain.Review) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.details.isCommentSubmitting = false
	s.details.comments = append(s.details.comments, review)
	s.detailsVersion++
}

// FailCommentSubmit снимает флаг отправки; список отзывов не меняется.
func (s *Store) FailCommentSubmit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.details.isCommentSubmitting = false
	s.detailsVersion++
}

// --- Партиция favorites ---

// BeginFavoritesLoad переводит избранное в Loading.
func (s *Store) BeginFavoritesLoad() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.favorites.status = StatusLoading
	s.favorites.err = ""
	s.favoritesVersion++
}

// CompleteFavoritesLoad заменяет коллекцию избранного, преобразуя каждое
// предложение в проекцию FavoriteOffer.
func (s *Store) CompleteFavoritesLoad(offers []domain.Offer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	favorites := make([]domain.FavoriteOffer, 0, len(offers))
	for _, offer := range offers {
		favorites = append(favorites, domain.MapOfferToFavorite(offer))
	}
	s.favorites.favorites = favorites
	s.favorites.status = StatusReady
	s.favorites.err = ""
	s.favoritesVersion++
}

// FailFavoritesLoad фиксирует ошибку загрузки избранного.
func (s *Store) FailFavoritesLoad(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.favorites.status = StatusFailed
	s.favorites.err = message
	s.favoritesVersion++
}

// ClearFavoritesError сбрасывает сохранённую ошибку избранного.
func (s *Store) ClearFavoritesError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.favorites.err = ""
	s.favoritesVersion++
}

// ApplyFavoriteUpdate применяет подтверждённое сервером изменение флага
// избранного ко всем партициям, где встречается этот offer id: основной
// список, текущая карточка, соседние предложения и коллекция избранного.
// Выполняется одной транзакцией под общим мьютексом, чтобы никакое чтение
// не увидело частично обновлённое состояние. Повторное добавление уже
// присутствующего id и удаление отсутствующего - no-op.
func (s *Store) ApplyFavoriteUpdate(offer domain.Offer) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.offers.offers {
		if s.offers.offers[i].ID == offer.ID {
			s.offers.offers[i].IsFavorite = offer.IsFavorite
		}
	}
	s.offersVersion++

	if s.details.currentOffer != nil && s.details.currentOffer.ID == offer.ID {
		s.details.currentOffer.IsFavorite = offer.IsFavorite
	}
	for i := range s.details.nearbyOffers {
		if s.details.nearbyOffers[i].ID == offer.ID {
			s.details.nearbyOffers[i].IsFavorite = offer.IsFavorite
		}
	}
	s.detailsVersion++

	if offer.IsFavorite {
		for _, fav := range s.favorites.favorites {
			if fav.ID == offer.ID {
				s.favoritesVersion++
				return
			}
		}
		s.favorites.favorites = append(s.favorites.favorites, domain.MapOfferToFavorite(offer))
	} else {
		kept := s.favorites.favorites[:0]
		for _, fav := range s.favorites.favorites {
			if fav.ID != offer.ID {
				kept = append(kept, fav)
			}
		}
		s.favorites.favorites = kept
	}
	s.favoritesVersion++
}
