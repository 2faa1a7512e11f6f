package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	logger_adapter "six-cities-client/internal/adapters/logger"
	"six-cities-client/internal/adapters/mockapi"
	"six-cities-client/internal/configs"
	"six-cities-client/internal/core/port"
)

func main() {
	appConfig, err := configs.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := logger_adapter.NewSlogAdapter(logger_adapter.SlogConfig{
		Level:    slog.LevelDebug,
		UseColor: true,
	}).WithFields(port.Fields{"service_name": "six-cities-mock-server"})

	server := mockapi.NewServer(appConfig.MockServer.Port, mockapi.DefaultDataset(), logger)

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("Starting mock API server...", port.Fields{"port": appConfig.MockServer.Port})
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			serverErrors <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case receivedSignal := <-quit:
		logger.Warn("Received OS signal, shutting down...", port.Fields{"signal": receivedSignal.String()})
	case err := <-serverErrors:
		logger.Error("Server failed, shutting down", err, nil)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Stop(shutdownCtx); err != nil {
		logger.Error("Error during server shutdown", err, nil)
	}
	logger.Info("Mock API server stopped.", nil)
}
