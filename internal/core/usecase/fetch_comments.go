package usecase

import (
	"context"

	"six-cities-client/internal/contextkeys"
	"six-cities-client/internal/core/port"
	"six-cities-client/internal/state"
)

type FetchCommentsUseCase struct {
	api   port.OffersAPIPort
	store *state.Store
}

func NewFetchCommentsUseCase(api port.OffersAPIPort, store *state.Store) *FetchCommentsUseCase {
	return &FetchCommentsUseCase{api: api, store: store}
}

// Execute загружает отзывы предложения. Провал очищает список: отзывы
// чужого предложения показываться не должны.
func (uc *FetchCommentsUseCase) Execute(ctx context.Context, offerID string) error {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "FetchComments",
		"offer_id": offerID,
	})

	comments, err := uc.api.FetchComments(ctx, offerID)
	if err != nil {
		logger.Error("Failed to fetch comments", err, nil)
		uc.store.ClearComments()
		return err
	}

	uc.store.SetComments(comments)
	logger.Info("Comments loaded", port.Fields{"count": len(comments)})
	return nil
}
