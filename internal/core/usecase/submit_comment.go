package usecase

import (
	"context"
	"unicode/utf8"

	"six-cities-client/internal/contextkeys"
	"six-cities-client/internal/core/domain"
	"six-cities-client/internal/core/port"
	"six-cities-client/internal/state"
)

type SubmitCommentUseCase struct {
	api   port.OffersAPIPort
	store *state.Store
}

func NewSubmitCommentUseCase(api port.OffersAPIPort, store *state.Store) *SubmitCommentUseCase {
	return &SubmitCommentUseCase{api: api, store: store}
}

// Execute отправляет отзыв. Длина текста проверяется до обращения к API:
// при нарушении границ шлюз не вызывается вовсе. Успешно принятый отзыв
// добавляется в конец списка; при ошибке список не меняется, ошибка
// отдаётся вызывающему для разового показа.
func (uc *SubmitCommentUseCase) Execute(ctx context.Context, offerID, comment string, rating int) error {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "SubmitComment",
		"offer_id": offerID,
	})

	length := utf8.RuneCountInString(comment)
	if length < domain.MinCommentLength || length > domain.MaxCommentLength {
		logger.Warn("Comment rejected by client-side validation", port.Fields{"length": length})
		return domain.ErrCommentLength
	}

	uc.store.BeginCommentSubmit()

	review, err := uc.api.SubmitComment(ctx, offerID, comment, rating)
	if err != nil {
		logger.Error("Failed to submit comment", err, nil)
		uc.store.FailCommentSubmit()
		return err
	}

	uc.store.CompleteCommentSubmit(*review)
	logger.Info("Use case finished successfully", port.Fields{"review_id": review.ID})
	return nil
}
