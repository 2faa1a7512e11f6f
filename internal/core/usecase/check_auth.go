package usecase

import (
	"context"

	"six-cities-client/internal/contextkeys"
	"six-cities-client/internal/core/domain"
	"six-cities-client/internal/core/port"
	"six-cities-client/internal/state"
)

type CheckAuthUseCase struct {
	api   port.AuthAPIPort
	store *state.Store
}

func NewCheckAuthUseCase(api port.AuthAPIPort, store *state.Store) *CheckAuthUseCase {
	return &CheckAuthUseCase{api: api, store: store}
}

// Execute пытается восстановить сессию по сохранённому токену. Сценарий
// намеренно не возвращает ошибку: любой сбой, включая 401, означает
// обычное состояние "не авторизован", а не повод для баннера об ошибке.
func (uc *CheckAuthUseCase) Execute(ctx context.Context) domain.AuthorizationStatus {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "CheckAuth",
	})

	user, err := uc.api.CheckAuth(ctx)
	if err != nil {
		logger.Debug("Session probe failed, treating as not authenticated", port.Fields{"reason": err.Error()})
		uc.store.SetAuthStatus(domain.AuthStatusNoAuth)
		return domain.AuthStatusNoAuth
	}

	uc.store.CompleteLogin(user)
	logger.Info("Existing session resolved", port.Fields{"user_id": user.ID})
	return domain.AuthStatusAuth
}
