package usecase

import (
	"context"
	"errors"
	"fmt"

	"six-cities-client/internal/contextkeys"
	"six-cities-client/internal/core/domain"
	"six-cities-client/internal/core/port"
	"six-cities-client/internal/state"
)

type LoginUseCase struct {
	api    port.AuthAPIPort
	tokens port.TokenStoragePort
	store  *state.Store
}

func NewLoginUseCase(api port.AuthAPIPort, tokens port.TokenStoragePort, store *state.Store) *LoginUseCase {
	return &LoginUseCase{api: api, tokens: tokens, store: store}
}

// Execute выполняет вход. Успех сохраняет токен в долговременное
// хранилище и фиксирует сессию; отказ сервера по данным пользователя
// возвращается как domain.ErrInvalidCredentials, чтобы вызывающий мог
// отличить его от общего сбоя.
func (uc *LoginUseCase) Execute(ctx context.Context, email, password string) (*domain.AuthInfo, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "Login",
		"email":    email,
	})
	logger.Info("Use case started", nil)

	user, err := uc.api.Login(ctx, email, password)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			logger.Warn("Login rejected by server", port.Fields{"reason": err.Error()})
			return nil, fmt.Errorf("%w: %s", domain.ErrInvalidCredentials, err.Error())
		}
		logger.Error("Login failed", err, nil)
		return nil, err
	}

	if err := uc.tokens.Save(user.Token); err != nil {
		// Сессия рабочая, но не переживёт перезапуск клиента.
		logger.Error("Failed to persist session token", err, nil)
	}

	uc.store.CompleteLogin(user)
	logger.Info("Use case finished successfully", port.Fields{"user_id": user.ID})
	return user, nil
}
