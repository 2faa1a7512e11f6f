package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"six-cities-client/internal/core/domain"
	"six-cities-client/internal/state"
)

// fakeOffersAPI реализует port.OffersAPIPort на функциях-заглушках и
// считает обращения к ним.
type fakeOffersAPI struct {
	fetchOffersFn          func(ctx context.Context) ([]domain.Offer, error)
	fetchOfferDetailsFn    func(ctx context.Context, offerID string) (*domain.OfferDetails, error)
	fetchNearbyOffersFn    func(ctx context.Context, offerID string) ([]domain.Offer, error)
	fetchCommentsFn        func(ctx context.Context, offerID string) ([]domain.Review, error)
	submitCommentFn        func(ctx context.Context, offerID, comment string, rating int) (*domain.Review, error)
	fetchFavoritesFn       func(ctx context.Context) ([]domain.Offer, error)
	changeFavoriteStatusFn func(ctx context.Context, offerID string, status domain.FavoriteStatus) (*domain.Offer, error)

	submitCommentCalls int
}

func (f *fakeOffersAPI) FetchOffers(ctx context.Context) ([]domain.Offer, error) {
	return f.fetchOffersFn(ctx)
}

func (f *fakeOffersAPI) FetchOfferDetails(ctx context.Context, offerID string) (*domain.OfferDetails, error) {
	return f.fetchOfferDetailsFn(ctx, offerID)
}

func (f *fakeOffersAPI) FetchNearbyOffers(ctx context.Context, offerID string) ([]domain.Offer, error) {
	return f.fetchNearbyOffersFn(ctx, offerID)
}

func (f *fakeOffersAPI) FetchComments(ctx context.Context, offerID string) ([]domain.Review, error) {
	return f.fetchCommentsFn(ctx, offerID)
}

func (f *fakeOffersAPI) SubmitComment(ctx context.Context, offerID, comment string, rating int) (*domain.Review, error) {
	f.submitCommentCalls++
	return f.submitCommentFn(ctx, offerID, comment, rating)
}

func (f *fakeOffersAPI) FetchFavorites(ctx context.Context) ([]domain.Offer, error) {
	return f.fetchFavoritesFn(ctx)
}

func (f *fakeOffersAPI) ChangeFavoriteStatus(ctx context.Context, offerID string, status domain.FavoriteStatus) (*domain.Offer, error) {
	return f.changeFavoriteStatusFn(ctx, offerID, status)
}

type fakeAuthAPI struct {
	checkAuthFn func(ctx context.Context) (*domain.AuthInfo, error)
	loginFn     func(ctx context.Context, email, password string) (*domain.AuthInfo, error)
}

func (f *fakeAuthAPI) CheckAuth(ctx context.Context) (*domain.AuthInfo, error) {
	return f.checkAuthFn(ctx)
}

func (f *fakeAuthAPI) Login(ctx context.Context, email, password string) (*domain.AuthInfo, error) {
	return f.loginFn(ctx, email, password)
}

type fakeTokenStorage struct {
	token   string
	saveErr error
	cleared bool
}

func (f *fakeTokenStorage) Token() (string, bool) { return f.token, f.token != "" }

func (f *fakeTokenStorage) Save(token string) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.token = token
	return nil
}

func (f *fakeTokenStorage) Clear() error {
	f.token = ""
	f.cleared = true
	return nil
}

func testOffer(id string) domain.Offer {
	return domain.Offer{
		ID:    id,
		Title: "Offer " + id,
		Price: 100,
		City:  domain.City{Name: "Paris"},
	}
}

func TestFetchOffersUseCase(t *testing.T) {
	t.Run("SuccessReplacesList", func(t *testing.T) {
		store := state.NewStore()
		api := &fakeOffersAPI{fetchOffersFn: func(ctx context.Context) ([]domain.Offer, error) {
			return []domain.Offer{testOffer("1"), testOffer("2")}, nil
		}}

		err := NewFetchOffersUseCase(api, store).Execute(context.Background())
		require.NoError(t, err)

		snap := store.Offers()
		assert.Equal(t, state.StatusReady, snap.Status)
		assert.Len(t, snap.Offers, 2)
	})

	t.Run("FailureKeepsPreviousList", func(t *testing.T) {
		store := state.NewStore()
		store.CompleteOffersLoad([]domain.Offer{testOffer("1")})
		api := &fakeOffersAPI{fetchOffersFn: func(ctx context.Context) ([]domain.Offer, error) {
			return nil, errors.New("connection refused")
		}}

		err := NewFetchOffersUseCase(api, store).Execute(context.Background())
		require.Error(t, err)

		snap := store.Offers()
		assert.Equal(t, state.StatusFailed, snap.Status)
		assert.Len(t, snap.Offers, 1)
		assert.True(t, snap.Stale())
		assert.NotEmpty(t, snap.Error)
	})
}

func TestFetchOfferDetailsUseCase(t *testing.T) {
	t.Run("SuccessSetsCurrentOffer", func(t *testing.T) {
		store := state.NewStore()
		api := &fakeOffersAPI{fetchOfferDetailsFn: func(ctx context.Context, offerID string) (*domain.OfferDetails, error) {
			return &domain.OfferDetails{ID: offerID, Title: "Nice flat"}, nil
		}}

		err := NewFetchOfferDetailsUseCase(api, store).Execute(context.Background(), "1")
		require.NoError(t, err)

		snap := store.OfferDetails()
		require.NotNil(t, snap.CurrentOffer)
		assert.Equal(t, "1", snap.CurrentOffer.ID)
		assert.Equal(t, state.StatusReady, snap.Status)
	})

	t.Run("NotFoundClearsCurrentOffer", func(t *testing.T) {
		store := state.NewStore()
		api := &fakeOffersAPI{fetchOfferDetailsFn: func(ctx context.Context, offerID string) (*domain.OfferDetails, error) {
			return nil, domain.ErrNotFound
		}}

		err := NewFetchOfferDetailsUseCase(api, store).Execute(context.Background(), "missing")
		require.ErrorIs(t, err, domain.ErrNotFound)

		snap := store.OfferDetails()
		assert.Nil(t, snap.CurrentOffer)
		assert.Equal(t, state.StatusFailed, snap.Status)
	})
}

func TestFetchNearbyOffersUseCase(t *testing.T) {
	t.Run("FailureLeavesListUntouched", func(t *testing.T) {
		store := state.NewStore()
		store.SetNearbyOffers([]domain.Offer{testOffer("2")})
		api := &fakeOffersAPI{fetchNearbyOffersFn: func(ctx context.Context, offerID string) ([]domain.Offer, error) {
			return nil, errors.New("timeout")
		}}

		err := NewFetchNearbyOffersUseCase(api, store).Execute(context.Background(), "1")
		require.Error(t, err)
		assert.Len(t, store.OfferDetails().NearbyOffers, 1)
	})

	t.Run("SuccessReplacesList", func(t *testing.T) {
		store := state.NewStore()
		api := &fakeOffersAPI{fetchNearbyOffersFn: func(ctx context.Context, offerID string) ([]domain.Offer, error) {
			return []domain.Offer{testOffer("2"), testOffer("3")}, nil
		}}

		err := NewFetchNearbyOffersUseCase(api, store).Execute(context.Background(), "1")
		require.NoError(t, err)
		assert.Len(t, store.OfferDetails().NearbyOffers, 2)
	})
}

func TestFetchCommentsUseCase(t *testing.T) {
	t.Run("FailureClearsComments", func(t *testing.T) {
		store := state.NewStore()
		store.SetComments([]domain.Review{{ID: "stale"}})
		api := &fakeOffersAPI{fetchCommentsFn: func(ctx context.Context, offerID string) ([]domain.Review, error) {
			return nil, errors.New("timeout")
		}}

		err := NewFetchCommentsUseCase(api, store).Execute(context.Background(), "1")
		require.Error(t, err)
		assert.Empty(t, store.OfferDetails().Comments)
	})
}

func TestSubmitCommentUseCase(t *testing.T) {
	validComment := strings.Repeat("Отличное место, рекомендую всем! ", 3) // ~99 символов

	t.Run("ShortCommentNeverReachesAPI", func(t *testing.T) {
		store := state.NewStore()
		api := &fakeOffersAPI{submitCommentFn: func(ctx context.Context, offerID, comment string, rating int) (*domain.Review, error) {
			return &domain.Review{ID: "r1"}, nil
		}}

		err := NewSubmitCommentUseCase(api, store).Execute(context.Background(), "1", "Слишком коротко", 5)
		require.ErrorIs(t, err, domain.ErrCommentLength)
		assert.Zero(t, api.submitCommentCalls)
		assert.False(t, store.OfferDetails().IsCommentSubmitting)
	})

	t.Run("TooLongCommentNeverReachesAPI", func(t *testing.T) {
		store := state.NewStore()
		api := &fakeOffersAPI{submitCommentFn: func(ctx context.Context, offerID, comment string, rating int) (*domain.Review, error) {
			return &domain.Review{ID: "r1"}, nil
		}}

		long := strings.Repeat("о", domain.MaxCommentLength+1)
		err := NewSubmitCommentUseCase(api, store).Execute(context.Background(), "1", long, 5)
		require.ErrorIs(t, err, domain.ErrCommentLength)
		assert.Zero(t, api.submitCommentCalls)
	})

	t.Run("AcceptedReviewIsAppended", func(t *testing.T) {
		store := state.NewStore()
		store.SetComments([]domain.Review{{ID: "r1"}})
		api := &fakeOffersAPI{submitCommentFn: func(ctx context.Context, offerID, comment string, rating int) (*domain.Review, error) {
			return &domain.Review{ID: "r2", Comment: comment, Rating: rating}, nil
		}}

		err := NewSubmitCommentUseCase(api, store).Execute(context.Background(), "1", validComment, 4)
		require.NoError(t, err)

		snap := store.OfferDetails()
		require.Len(t, snap.Comments, 2)
		assert.Equal(t, "r2", snap.Comments[1].ID)
		assert.False(t, snap.IsCommentSubmitting)
	})

	t.Run("RejectedSubmitKeepsComments", func(t *testing.T) {
		store := state.NewStore()
		store.SetComments([]domain.Review{{ID: "r1"}})
		api := &fakeOffersAPI{submitCommentFn: func(ctx context.Context, offerID, comment string, rating int) (*domain.Review, error) {
			return nil, domain.ErrValidation
		}}

		err := NewSubmitCommentUseCase(api, store).Execute(context.Background(), "1", validComment, 4)
		require.Error(t, err)

		snap := store.OfferDetails()
		assert.Len(t, snap.Comments, 1)
		assert.False(t, snap.IsCommentSubmitting)
	})
}

func TestLoginUseCase(t *testing.T) {
	t.Run("SuccessPersistsTokenAndSession", func(t *testing.T) {
		store := state.NewStore()
		tokens := &fakeTokenStorage{}
		api := &fakeAuthAPI{loginFn: func(ctx context.Context, email, password string) (*domain.AuthInfo, error) {
			return &domain.AuthInfo{ID: 1, Email: email, Token: "secret-token"}, nil
		}}

		user, err := NewLoginUseCase(api, tokens, store).Execute(context.Background(), "keks@htmlacademy.ru", "w1ld")
		require.NoError(t, err)
		require.NotNil(t, user)

		assert.Equal(t, "secret-token", tokens.token)
		auth := store.Auth()
		assert.Equal(t, domain.AuthStatusAuth, auth.Status)
		require.NotNil(t, auth.User)
		assert.Equal(t, "keks@htmlacademy.ru", auth.User.Email)
	})

	t.Run("ServerRejectionBecomesInvalidCredentials", func(t *testing.T) {
		store := state.NewStore()
		api := &fakeAuthAPI{loginFn: func(ctx context.Context, email, password string) (*domain.AuthInfo, error) {
			return nil, domain.ErrValidation
		}}

		_, err := NewLoginUseCase(api, &fakeTokenStorage{}, store).Execute(context.Background(), "keks@htmlacademy.ru", "")
		require.ErrorIs(t, err, domain.ErrInvalidCredentials)
		assert.Equal(t, domain.AuthStatusUnknown, store.Auth().Status)
	})

	t.Run("TokenSaveErrorIsNotFatal", func(t *testing.T) {
		store := state.NewStore()
		tokens := &fakeTokenStorage{saveErr: errors.New("disk full")}
		api := &fakeAuthAPI{loginFn: func(ctx context.Context, email, password string) (*domain.AuthInfo, error) {
			return &domain.AuthInfo{ID: 1, Token: "secret-token"}, nil
		}}

		_, err := NewLoginUseCase(api, tokens, store).Execute(context.Background(), "keks@htmlacademy.ru", "w1ld")
		require.NoError(t, err)
		assert.Equal(t, domain.AuthStatusAuth, store.Auth().Status)
	})
}

func TestCheckAuthUseCase(t *testing.T) {
	t.Run("ValidSessionRestoresUser", func(t *testing.T) {
		store := state.NewStore()
		api := &fakeAuthAPI{checkAuthFn: func(ctx context.Context) (*domain.AuthInfo, error) {
			return &domain.AuthInfo{ID: 1, Email: "keks@htmlacademy.ru"}, nil
		}}

		status := NewCheckAuthUseCase(api, store).Execute(context.Background())
		assert.Equal(t, domain.AuthStatusAuth, status)
		assert.Equal(t, domain.AuthStatusAuth, store.Auth().Status)
	})

	t.Run("AnyFailureMeansNoAuth", func(t *testing.T) {
		for name, apiErr := range map[string]error{
			"Unauthorized": domain.ErrUnauthorized,
			"Network":      errors.New("connection refused"),
		} {
			t.Run(name, func(t *testing.T) {
				store := state.NewStore()
				api := &fakeAuthAPI{checkAuthFn: func(ctx context.Context) (*domain.AuthInfo, error) {
					return nil, apiErr
				}}

				status := NewCheckAuthUseCase(api, store).Execute(context.Background())
				assert.Equal(t, domain.AuthStatusNoAuth, status)
				assert.Equal(t, domain.AuthStatusNoAuth, store.Auth().Status)
				assert.Nil(t, store.Auth().User)
			})
		}
	})
}

func TestLogoutUseCase(t *testing.T) {
	store := state.NewStore()
	store.CompleteLogin(&domain.AuthInfo{ID: 1})
	store.CompleteFavoritesLoad([]domain.Offer{testOffer("1")})
	tokens := &fakeTokenStorage{token: "secret-token"}

	err := NewLogoutUseCase(tokens, store).Execute(context.Background())
	require.NoError(t, err)

	assert.True(t, tokens.cleared)
	assert.Equal(t, domain.AuthStatusNoAuth, store.Auth().Status)
	assert.Empty(t, store.Favorites().Favorites)
}

func TestFetchFavoritesUseCase(t *testing.T) {
	t.Run("SuccessMapsOffers", func(t *testing.T) {
		store := state.NewStore()
		api := &fakeOffersAPI{fetchFavoritesFn: func(ctx context.Context) ([]domain.Offer, error) {
			return []domain.Offer{testOffer("1")}, nil
		}}

		err := NewFetchFavoritesUseCase(api, store).Execute(context.Background())
		require.NoError(t, err)

		snap := store.Favorites()
		assert.Equal(t, state.StatusReady, snap.Status)
		require.Len(t, snap.Favorites, 1)
		assert.Equal(t, "1", snap.Favorites[0].ID)
	})

	t.Run("FailureRecordsMessage", func(t *testing.T) {
		store := state.NewStore()
		api := &fakeOffersAPI{fetchFavoritesFn: func(ctx context.Context) ([]domain.Offer, error) {
			return nil, errors.New("")
		}}

		err := NewFetchFavoritesUseCase(api, store).Execute(context.Background())
		require.Error(t, err)

		snap := store.Favorites()
		assert.Equal(t, state.StatusFailed, snap.Status)
		assert.Equal(t, domain.MsgFetchFavoritesFailed, snap.Error)
	})
}

func TestChangeFavoriteStatusUseCase(t *testing.T) {
	t.Run("ConfirmedUpdateIsApplied", func(t *testing.T) {
		store := state.NewStore()
		store.CompleteOffersLoad([]domain.Offer{testOffer("1")})
		api := &fakeOffersAPI{changeFavoriteStatusFn: func(ctx context.Context, offerID string, status domain.FavoriteStatus) (*domain.Offer, error) {
			offer := testOffer(offerID)
			offer.IsFavorite = status == domain.FavoriteStatusAdd
			return &offer, nil
		}}

		err := NewChangeFavoriteStatusUseCase(api, store).Execute(context.Background(), "1", domain.FavoriteStatusAdd)
		require.NoError(t, err)

		assert.True(t, store.Offers().Offers[0].IsFavorite)
		require.Len(t, store.Favorites().Favorites, 1)
	})

	t.Run("FailureLeavesStateUntouched", func(t *testing.T) {
		store := state.NewStore()
		store.CompleteOffersLoad([]domain.Offer{testOffer("1")})
		api := &fakeOffersAPI{changeFavoriteStatusFn: func(ctx context.Context, offerID string, status domain.FavoriteStatus) (*domain.Offer, error) {
			return nil, domain.ErrUnauthorized
		}}

		err := NewChangeFavoriteStatusUseCase(api, store).Execute(context.Background(), "1", domain.FavoriteStatusAdd)
		require.ErrorIs(t, err, domain.ErrUnauthorized)

		assert.False(t, store.Offers().Offers[0].IsFavorite)
		assert.Empty(t, store.Favorites().Favorites)
	})
}
