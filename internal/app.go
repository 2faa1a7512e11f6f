package internal

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"strings"
	"time"

	api_client "six-cities-client/internal/adapters/api"
	logger_adapter "six-cities-client/internal/adapters/logger"
	"six-cities-client/internal/adapters/tokenstore"
	"six-cities-client/internal/configs"
	"six-cities-client/internal/contextkeys"
	"six-cities-client/internal/core/domain"
	"six-cities-client/internal/core/port"
	"six-cities-client/internal/core/port/usecases_port"
	"six-cities-client/internal/core/usecase"
	"six-cities-client/internal/state"

	"github.com/fluent/fluent-logger-golang/fluent"
	"github.com/google/uuid"
)

// App собирает все компоненты клиента: состояние, селекторы, use cases
// и адаптеры. Run проигрывает демонстрационную сессию против REST API.
type App struct {
	config    *configs.AppConfig
	store     *state.Store
	selectors *state.Selectors

	fetchOffers          usecases_port.FetchOffersUseCasePort
	fetchOfferDetails    usecases_port.FetchOfferDetailsUseCasePort
	fetchNearbyOffers    usecases_port.FetchNearbyOffersUseCasePort
	fetchComments        usecases_port.FetchCommentsUseCasePort
	submitComment        usecases_port.SubmitCommentUseCasePort
	login                usecases_port.LoginUseCasePort
	checkAuth            usecases_port.CheckAuthUseCasePort
	logout               usecases_port.LogoutUseCasePort
	fetchFavorites       usecases_port.FetchFavoritesUseCasePort
	changeFavoriteStatus usecases_port.ChangeFavoriteStatusUseCasePort

	fluentClient *fluent.Fluent
	logger       port.LoggerPort
}

func NewApp() (*App, error) {
	appConfig, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	// --- 1. ИНИЦИАЛИЗАЦИЯ ЛОГГЕРОВ ---
	var activeLoggers []port.LoggerPort

	slogCfg := logger_adapter.SlogConfig{
		Level:    parseLogLevel(appConfig.StdoutLogger.Level),
		IsJSON:   false, // текстовый формат
		UseColor: true,
	}
	stdoutLogger := logger_adapter.NewSlogAdapter(slogCfg)
	activeLoggers = append(activeLoggers, stdoutLogger)

	// Добавляем Fluent Bit логгер, если он включен в конфигурации
	var fluentClient *fluent.Fluent
	if appConfig.FluentBit.Enabled {
		fluentClient, err = logger_adapter.NewFluentClient(logger_adapter.FluentConfig{
			Host:      appConfig.FluentBit.Host,
			Port:      appConfig.FluentBit.Port,
			TagPrefix: appConfig.AppName, // Используем имя приложения как префикс
		})
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit client", err, nil)
			return nil, fmt.Errorf("failed to create fluentbit client: %w", err)
		}

		fluentAdapter, err := logger_adapter.NewFluentLoggerAdapter(fluentClient, parseLogLevel(appConfig.FluentBit.Level))
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit adapter", err, nil)
			fluentClient.Close()
			return nil, err
		}
		activeLoggers = append(activeLoggers, fluentAdapter)
	}

	multiLogger, err := logger_adapter.NewMultiloggerAdapter(activeLoggers...)
	if err != nil {
		return nil, fmt.Errorf("failed to create multi-logger: %w", err)
	}

	// --- 2. СОЗДАЕМ БАЗОВЫЙ ЛОГГЕР ПРИЛОЖЕНИЯ С КОНТЕКСТОМ ---
	baseLogger := multiLogger.WithFields(port.Fields{
		"service_name": appConfig.AppName,
	})

	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})
	appLogger.Info("Logger system initialized", port.Fields{
		"active_loggers": len(activeLoggers), "fluent_enabled": appConfig.FluentBit.Enabled,
	})

	// --- 3. АДАПТЕРЫ ---
	tokenPath := appConfig.TokenPath
	if tokenPath == "" {
		tokenPath, err = tokenstore.DefaultTokenPath()
		if err != nil {
			appLogger.Error("Failed to resolve default token path", err, nil)
			return nil, fmt.Errorf("failed to resolve token path: %w", err)
		}
	}
	tokens := tokenstore.NewFileTokenStorage(tokenPath)

	apiClient := api_client.NewClient(
		appConfig.API.BaseURL,
		time.Duration(appConfig.API.TimeoutMS)*time.Millisecond,
		tokens,
	)
	appLogger.Info("All adapters initialized.", port.Fields{
		"api_base_url": appConfig.API.BaseURL, "token_path": tokenPath,
	})

	// --- 4. СОСТОЯНИЕ И USE CASES (ядро бизнес-логики) ---
	store := state.NewStore()
	selectors := state.NewSelectors(store)

	application := &App{
		config:    appConfig,
		store:     store,
		selectors: selectors,

		fetchOffers:          usecase.NewFetchOffersUseCase(apiClient, store),
		fetchOfferDetails:    usecase.NewFetchOfferDetailsUseCase(apiClient, store),
		fetchNearbyOffers:    usecase.NewFetchNearbyOffersUseCase(apiClient, store),
		fetchComments:        usecase.NewFetchCommentsUseCase(apiClient, store),
		submitComment:        usecase.NewSubmitCommentUseCase(apiClient, store),
		login:                usecase.NewLoginUseCase(apiClient, tokens, store),
		checkAuth:            usecase.NewCheckAuthUseCase(apiClient, store),
		logout:               usecase.NewLogoutUseCase(tokens, store),
		fetchFavorites:       usecase.NewFetchFavoritesUseCase(apiClient, store),
		changeFavoriteStatus: usecase.NewChangeFavoriteStatusUseCase(apiClient, store),

		fluentClient: fluentClient,
		logger:       appLogger,
	}

	return application, nil
}

// Run проигрывает сессию клиента: авторизация, загрузка предложений,
// работа селекторов, избранное. Завершается при отмене контекста.
func (a *App) Run(ctx context.Context) error {
	defer func() {
		a.logger.Info("Application shut down gracefully.", nil)

		if a.fluentClient != nil {
			if err := a.fluentClient.Close(); err != nil {
				// Пишем в stdout, так как fluent может быть уже недоступен
				fmt.Printf("ERROR: Error closing fluent client: %v\n", err)
			}
		}
	}()

	a.logger.Info("Application is starting...", nil)

	sessionCtx := contextkeys.ContextWithLogger(ctx, a.logger)
	sessionCtx = contextkeys.ContextWithTraceID(sessionCtx, uuid.New().String())

	// 1. Проверяем сохраненную авторизацию.
	status := a.checkAuth.Execute(sessionCtx)
	a.logger.Info("Authorization checked", port.Fields{"status": string(status)})

	// 2. Загружаем список предложений.
	if err := a.fetchOffers.Execute(sessionCtx); err != nil {
		a.logger.Error("Failed to fetch offers", err, nil)
	}
	a.renderOffers()

	// 3. Прогоняем сортировку по цене.
	a.store.ChangeSorting(domain.SortingPriceLowToHigh)
	a.renderOffers()

	// 4. Авторизуемся, если заданы демо-учетные данные.
	if a.config.Demo.Email != "" {
		if err := a.runAuthorizedSession(sessionCtx); err != nil {
			a.logger.Error("Authorized session failed", err, nil)
		}
	} else {
		a.logger.Info("Demo credentials are not set, skipping authorized session", nil)
	}

	// 5. Открываем детальную страницу первого предложения.
	offers := a.selectors.CityOffers()
	if len(offers) > 0 {
		a.renderOfferPage(sessionCtx, offers[0].ID)
	}

	select {
	case <-ctx.Done():
		a.logger.Warn("Context cancelled, shutting down...", nil)
	default:
	}

	return nil
}

func (a *App) runAuthorizedSession(ctx context.Context) error {
	user, err := a.login.Execute(ctx, a.config.Demo.Email, a.config.Demo.Password)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}
	a.logger.Info("Logged in", port.Fields{"email": user.Email})

	if err := a.fetchFavorites.Execute(ctx); err != nil {
		return fmt.Errorf("failed to fetch favorites: %w", err)
	}
	a.logger.Info("Favorites loaded", port.Fields{"count": a.selectors.FavoritesCount()})

	offers := a.selectors.CityOffers()
	if len(offers) > 0 {
		if err := a.changeFavoriteStatus.Execute(ctx, offers[0].ID, domain.FavoriteStatusAdd); err != nil {
			a.logger.Warn("Failed to add offer to favorites", port.Fields{
				"offer_id": offers[0].ID, "error": err.Error(),
			})
		} else {
			a.logger.Info("Offer added to favorites", port.Fields{
				"offer_id": offers[0].ID, "favorites_count": a.selectors.FavoritesCount(),
			})
		}
	}

	if len(offers) > 0 {
		a.renderOfferPage(ctx, offers[0].ID)

		comment := "Spent a wonderful week here, the rooms are bright and the host is very welcoming."
		if err := a.submitComment.Execute(ctx, offers[0].ID, comment, 5); err != nil {
			a.logger.Warn("Failed to submit comment", port.Fields{
				"offer_id": offers[0].ID, "error": err.Error(),
			})
		} else {
			a.logger.Info("Comment submitted", port.Fields{
				"offer_id": offers[0].ID, "comments_visible": len(a.selectors.RecentComments()),
			})
		}
	}

	if err := a.logout.Execute(ctx); err != nil {
		return fmt.Errorf("logout failed: %w", err)
	}
	a.logger.Info("Logged out", port.Fields{"favorites_count": a.selectors.FavoritesCount()})

	return nil
}

func (a *App) renderOffers() {
	snap := a.store.Offers()
	offers := a.selectors.SortedOffers()
	center := a.selectors.MapCenter()

	a.logger.Info("Offers rendered", port.Fields{
		"city":     snap.CityTab,
		"sorting":  string(snap.Sorting),
		"count":    len(offers),
		"stale":    snap.Stale(),
		"map_tile": a.selectors.MapTileKey(),
		"map_lat":  center.Latitude,
		"map_lng":  center.Longitude,
	})
}

func (a *App) renderOfferPage(ctx context.Context, offerID string) {
	if err := a.fetchOfferDetails.Execute(ctx, offerID); err != nil {
		a.logger.Error("Failed to fetch offer details", err, port.Fields{"offer_id": offerID})
		return
	}
	if err := a.fetchNearbyOffers.Execute(ctx, offerID); err != nil {
		a.logger.Warn("Failed to fetch nearby offers", port.Fields{"offer_id": offerID, "error": err.Error()})
	}
	if err := a.fetchComments.Execute(ctx, offerID); err != nil {
		a.logger.Warn("Failed to fetch comments", port.Fields{"offer_id": offerID, "error": err.Error()})
	}

	details := a.store.OfferDetails()
	a.logger.Info("Offer page rendered", port.Fields{
		"offer_id": offerID,
		"nearby":   len(a.selectors.NearbyOffers()),
		"comments": len(a.selectors.RecentComments()),
		"loaded":   details.CurrentOffer != nil,
	})
}

func parseLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		// Возвращаем безопасное значение по умолчанию и логируем предупреждение
		log.Printf("Warning: Unknown log level '%s'. Defaulting to 'info'.", levelStr)
		return slog.LevelInfo
	}
}
