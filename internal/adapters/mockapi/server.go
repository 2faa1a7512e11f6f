package mockapi

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"six-cities-client/internal/core/domain"
	core_port "six-cities-client/internal/core/port"
)

// Server - dev-сервер six-cities API поверх фикстурного датасета.
// Нужен, чтобы гонять клиент и браузерный фронтенд локально без
// настоящего бэкенда; продакшен-сервер в зону ответственности этого
// репозитория не входит.
type Server struct {
	httpServer *http.Server
	router     chi.Router
	logger     core_port.LoggerPort
	dataset    *Dataset

	sessionsMu sync.RWMutex
	sessions   map[string]domain.AuthInfo
	nextUserID int
}

// NewServer создает сервер на указанном порту поверх датасета.
func NewServer(port string, dataset *Dataset, baseLogger core_port.LoggerPort) *Server {
	s := &Server{
		logger:     baseLogger,
		dataset:    dataset,
		sessions:   make(map[string]domain.AuthInfo),
		nextUserID: 1,
	}

	r := chi.NewRouter()

	r.Use(LoggerMiddleware(baseLogger))
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		// Dev-сервер vite, на котором крутится браузерный фронтенд.
		AllowedOrigins:   []string{"http://localhost:5173"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Token", "X-Trace-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/offers", s.handleOffers)
	r.Get("/offers/{offerID}", s.handleOfferDetails)
	r.Get("/offers/{offerID}/nearby", s.handleNearbyOffers)
	r.Get("/comments/{offerID}", s.handleComments)
	r.Post("/comments/{offerID}", s.handleSubmitComment)
	r.Get("/favorite", s.handleFavorites)
	r.Post("/favorite/{offerID}/{status}", s.handleChangeFavorite)
	r.Get("/login", s.handleCheckLogin)
	r.Post("/login", s.handleLogin)

	s.router = r
	s.httpServer = &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	return s
}

// Handler возвращает роутер сервера; используется в httptest.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start запускает HTTP-сервер.
func (s *Server) Start() error {
	s.logger.Info("Starting mock API server", core_port.Fields{"address": s.httpServer.Addr})
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		s.logger.Error("Could not start server", err, nil)
		return fmt.Errorf("could not start server: %w", err)
	}
	return nil
}

// Stop корректно останавливает сервер.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping mock API server...", nil)
	return s.httpServer.Shutdown(ctx)
}

// authUser находит сессию по заголовку X-Token.
func (s *Server) authUser(r *http.Request) (domain.AuthInfo, bool) {
	token := r.Header.Get("X-Token")
	if token == "" {
		return domain.AuthInfo{}, false
	}
	s.sessionsMu.RLock()
	defer s.sessionsMu.RUnlock()
	user, ok := s.sessions[token]
	return user, ok
}

// registerSession выдаёт новую сессию для пользователя с данным email.
func (s *Server) registerSession(email, token string) domain.AuthInfo {
	s.sessionsMu.Lock()
	defer s.sessionsMu.Unlock()

	user := domain.AuthInfo{
		ID:        s.nextUserID,
		Name:      displayNameFromEmail(email),
		AvatarURL: "/img/avatar-max.jpg",
		// Все фикстурные сессии выдаются как pro-пользователи.
		IsPro: true,
		Email: email,
		Token: token,
	}
	s.nextUserID++
	s.sessions[token] = user
	return user
}
