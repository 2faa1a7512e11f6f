package usecase

import (
	"context"

	"six-cities-client/internal/contextkeys"
	"six-cities-client/internal/core/port"
	"six-cities-client/internal/state"
)

type LogoutUseCase struct {
	tokens port.TokenStoragePort
	store  *state.Store
}

func NewLogoutUseCase(tokens port.TokenStoragePort, store *state.Store) *LogoutUseCase {
	return &LogoutUseCase{tokens: tokens, store: store}
}

// Execute завершает сессию: удаляет токен и одной транзакцией стора
// сбрасывает все флаги избранного и очищает коллекцию избранного.
func (uc *LogoutUseCase) Execute(ctx context.Context) error {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "Logout",
	})

	if err := uc.tokens.Clear(); err != nil {
		logger.Error("Failed to clear session token", err, nil)
		return err
	}

	uc.store.Logout()
	logger.Info("Use case finished successfully", nil)
	return nil
}
