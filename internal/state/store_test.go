package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"six-cities-client/internal/core/domain"
)

func makeOffer(id, city string, price int, rating float64) domain.Offer {
	return domain.Offer{
		ID:     id,
		Title:  "Offer " + id,
		Type:   "apartment",
		Price:  price,
		Rating: rating,
		City: domain.City{
			Name:     city,
			Location: domain.Location{Latitude: 48.85661, Longitude: 2.351499, Zoom: 13},
		},
		Location: domain.Location{Latitude: 48.8, Longitude: 2.3, Zoom: 16},
	}
}

func favoriteIDs(favorites []domain.FavoriteOffer) []string {
	ids := make([]string, 0, len(favorites))
	for _, fav := range favorites {
		ids = append(ids, fav.ID)
	}
	return ids
}

func TestStoreOffersPartition(t *testing.T) {
	t.Run("NewStoreDefaults", func(t *testing.T) {
		store := NewStore()
		snap := store.Offers()

		assert.Equal(t, DefaultCityTab, snap.CityTab)
		assert.Equal(t, domain.SortingPopular, snap.Sorting)
		assert.Equal(t, StatusIdle, snap.Status)
		assert.Empty(t, snap.Offers)
		assert.Equal(t, domain.AuthStatusUnknown, store.Auth().Status)
	})

	t.Run("ChangeCityAndSorting", func(t *testing.T) {
		store := NewStore()
		store.ChangeCity("Amsterdam")
		store.ChangeSorting(domain.SortingTopRatedFirst)

		snap := store.Offers()
		assert.Equal(t, "Amsterdam", snap.CityTab)
		assert.Equal(t, domain.SortingTopRatedFirst, snap.Sorting)
	})

	t.Run("LoadLifecycle", func(t *testing.T) {
		store := NewStore()

		store.BeginOffersLoad()
		assert.Equal(t, StatusLoading, store.Offers().Status)

		store.CompleteOffersLoad([]domain.Offer{makeOffer("1", "Paris", 100, 4)})
		snap := store.Offers()
		assert.Equal(t, StatusReady, snap.Status)
		assert.Len(t, snap.Offers, 1)
		assert.Empty(t, snap.Error)
	})

	t.Run("FailKeepsPreviousList", func(t *testing.T) {
		store := NewStore()
		store.CompleteOffersLoad([]domain.Offer{makeOffer("1", "Paris", 100, 4)})

		store.FailOffersLoad("Не удалось загрузить предложения")

		snap := store.Offers()
		assert.Equal(t, StatusFailed, snap.Status)
		assert.Equal(t, "Не удалось загрузить предложения", snap.Error)
		assert.Len(t, snap.Offers, 1)
		assert.True(t, snap.Stale())
	})

	t.Run("RetryResetsError", func(t *testing.T) {
		store := NewStore()
		store.FailOffersLoad("boom")
		store.BeginOffersLoad()

		snap := store.Offers()
		assert.Equal(t, StatusLoading, snap.Status)
		assert.Empty(t, snap.Error)
	})

	t.Run("SnapshotIsDetached", func(t *testing.T) {
		store := NewStore()
		store.CompleteOffersLoad([]domain.Offer{makeOffer("1", "Paris", 100, 4)})

		snap := store.Offers()
		snap.Offers[0].IsFavorite = true

		assert.False(t, store.Offers().Offers[0].IsFavorite)
	})
}

func TestStoreOfferDetailsPartition(t *testing.T) {
	details := &domain.OfferDetails{ID: "1", Title: "Nice flat"}

	t.Run("BeginClearsCurrentOffer", func(t *testing.T) {
		store := NewStore()
		gen := store.BeginOfferLoad()
		store.CompleteOfferLoad(gen, details)
		require.NotNil(t, store.OfferDetails().CurrentOffer)

		store.BeginOfferLoad()
		snap := store.OfferDetails()
		assert.Nil(t, snap.CurrentOffer)
		assert.Equal(t, StatusLoading, snap.Status)
	})

	t.Run("StaleCompletionIsIgnored", func(t *testing.T) {
		store := NewStore()
		staleGen := store.BeginOfferLoad()
		freshGen := store.BeginOfferLoad()

		// Ответ первого запроса пришел после начала второго.
		store.CompleteOfferLoad(staleGen, &domain.OfferDetails{ID: "stale"})
		assert.Nil(t, store.OfferDetails().CurrentOffer)

		store.CompleteOfferLoad(freshGen, details)
		snap := store.OfferDetails()
		require.NotNil(t, snap.CurrentOffer)
		assert.Equal(t, "1", snap.CurrentOffer.ID)
	})

	t.Run("StaleFailureIsIgnored", func(t *testing.T) {
		store := NewStore()
		staleGen := store.BeginOfferLoad()
		freshGen := store.BeginOfferLoad()
		store.CompleteOfferLoad(freshGen, details)

		store.FailOfferLoad(staleGen)

		snap := store.OfferDetails()
		assert.Equal(t, StatusReady, snap.Status)
		require.NotNil(t, snap.CurrentOffer)
	})

	t.Run("FailClearsCurrentOffer", func(t *testing.T) {
		store := NewStore()
		gen := store.BeginOfferLoad()
		store.FailOfferLoad(gen)

		snap := store.OfferDetails()
		assert.Equal(t, StatusFailed, snap.Status)
		assert.Nil(t, snap.CurrentOffer)
	})

	t.Run("CommentSubmitLifecycle", func(t *testing.T) {
		store := NewStore()
		store.SetComments([]domain.Review{{ID: "r1"}})

		store.BeginCommentSubmit()
		assert.True(t, store.OfferDetails().IsCommentSubmitting)

		store.CompleteCommentSubmit(domain.Review{ID: "r2"})
		snap := store.OfferDetails()
		assert.False(t, snap.IsCommentSubmitting)
		require.Len(t, snap.Comments, 2)
		assert.Equal(t, "r2", snap.Comments[1].ID)
	})

	t.Run("FailedSubmitKeepsComments", func(t *testing.T) {
		store := NewStore()
		store.SetComments([]domain.Review{{ID: "r1"}})

		store.BeginCommentSubmit()
		store.FailCommentSubmit()

		snap := store.OfferDetails()
		assert.False(t, snap.IsCommentSubmitting)
		assert.Len(t, snap.Comments, 1)
	})

	t.Run("ClearComments", func(t *testing.T) {
		store := NewStore()
		store.SetComments([]domain.Review{{ID: "r1"}})
		store.ClearComments()
		assert.Empty(t, store.OfferDetails().Comments)
	})
}

func TestStoreFavoritesPartition(t *testing.T) {
	t.Run("CompleteLoadMapsOffers", func(t *testing.T) {
		store := NewStore()
		store.BeginFavoritesLoad()
		store.CompleteFavoritesLoad([]domain.Offer{makeOffer("1", "Paris", 100, 4.5)})

		snap := store.Favorites()
		assert.Equal(t, StatusReady, snap.Status)
		require.Len(t, snap.Favorites, 1)
		assert.Equal(t, 90.0, snap.Favorites[0].RatingPercent)
		assert.Equal(t, "Paris", snap.Favorites[0].City)
	})

	t.Run("FailAndClearError", func(t *testing.T) {
		store := NewStore()
		store.FailFavoritesLoad("Не удалось загрузить избранное")
		assert.Equal(t, StatusFailed, store.Favorites().Status)
		assert.NotEmpty(t, store.Favorites().Error)

		store.ClearFavoritesError()
		assert.Empty(t, store.Favorites().Error)
	})
}

func TestStoreApplyFavoriteUpdate(t *testing.T) {
	setup := func() *Store {
		store := NewStore()
		store.CompleteOffersLoad([]domain.Offer{
			makeOffer("1", "Paris", 100, 4),
			makeOffer("2", "Paris", 200, 5),
		})
		gen := store.BeginOfferLoad()
		store.CompleteOfferLoad(gen, &domain.OfferDetails{ID: "1"})
		store.SetNearbyOffers([]domain.Offer{makeOffer("2", "Paris", 200, 5)})
		return store
	}

	t.Run("AddTouchesEveryPartition", func(t *testing.T) {
		store := setup()

		updated := makeOffer("1", "Paris", 100, 4)
		updated.IsFavorite = true
		store.ApplyFavoriteUpdate(updated)

		assert.True(t, store.Offers().Offers[0].IsFavorite)
		assert.False(t, store.Offers().Offers[1].IsFavorite)
		assert.True(t, store.OfferDetails().CurrentOffer.IsFavorite)
		assert.Equal(t, []string{"1"}, favoriteIDs(store.Favorites().Favorites))
	})

	t.Run("RemoveDropsFromCollection", func(t *testing.T) {
		store := setup()
		added := makeOffer("1", "Paris", 100, 4)
		added.IsFavorite = true
		store.ApplyFavoriteUpdate(added)

		removed := makeOffer("1", "Paris", 100, 4)
		store.ApplyFavoriteUpdate(removed)

		assert.False(t, store.Offers().Offers[0].IsFavorite)
		assert.Empty(t, store.Favorites().Favorites)
	})

	t.Run("ToggleBackRestoresCollection", func(t *testing.T) {
		store := setup()
		on := makeOffer("2", "Paris", 200, 5)
		on.IsFavorite = true
		off := makeOffer("2", "Paris", 200, 5)

		store.ApplyFavoriteUpdate(on)
		before := favoriteIDs(store.Favorites().Favorites)

		store.ApplyFavoriteUpdate(off)
		store.ApplyFavoriteUpdate(on)

		assert.ElementsMatch(t, before, favoriteIDs(store.Favorites().Favorites))
		assert.True(t, store.OfferDetails().NearbyOffers[0].IsFavorite)
	})

	t.Run("DuplicateAddIsNoop", func(t *testing.T) {
		store := setup()
		updated := makeOffer("1", "Paris", 100, 4)
		updated.IsFavorite = true

		store.ApplyFavoriteUpdate(updated)
		store.ApplyFavoriteUpdate(updated)

		assert.Equal(t, []string{"1"}, favoriteIDs(store.Favorites().Favorites))
	})
}

func TestStoreLogout(t *testing.T) {
	store := NewStore()
	store.CompleteLogin(&domain.AuthInfo{ID: 7, Email: "keks@htmlacademy.ru"})

	favored := makeOffer("1", "Paris", 100, 4)
	favored.IsFavorite = true
	store.CompleteOffersLoad([]domain.Offer{favored})
	gen := store.BeginOfferLoad()
	store.CompleteOfferLoad(gen, &domain.OfferDetails{ID: "1", IsFavorite: true})
	store.SetNearbyOffers([]domain.Offer{favored})
	store.CompleteFavoritesLoad([]domain.Offer{favored})

	store.Logout()

	auth := store.Auth()
	assert.Equal(t, domain.AuthStatusNoAuth, auth.Status)
	assert.Nil(t, auth.User)

	assert.False(t, store.Offers().Offers[0].IsFavorite)
	assert.False(t, store.OfferDetails().CurrentOffer.IsFavorite)
	assert.False(t, store.OfferDetails().NearbyOffers[0].IsFavorite)

	favorites := store.Favorites()
	assert.Empty(t, favorites.Favorites)
	assert.Equal(t, StatusIdle, favorites.Status)
}
