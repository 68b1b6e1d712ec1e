package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/GoArmGo/AdBoard/internal/config"
	"github.com/GoArmGo/AdBoard/internal/handler"
	"github.com/GoArmGo/AdBoard/internal/usecase"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// newRouter собирает маршруты и middleware HTTP API.
func newRouter(
	cfg *config.Config,
	logger *slog.Logger,
	userUseCase usecase.UserUseCase,
	adUseCase usecase.AdUseCase,
	store handler.Pinger,
) http.Handler {
	userHandler := handler.NewUserHandler(userUseCase, logger)
	adHandler := handler.NewAdHandler(adUseCase, logger)
	healthHandler := handler.NewHealthHandler(store, logger)

	r := chi.NewRouter()
	r.Use(handler.RequestID)
	r.Use(middleware.RealIP)
	r.Use(handler.RequestLogger(logger))
	r.Use(handler.Recoverer(logger))
	r.Use(middleware.Timeout(cfg.RequestTimeout))
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: cfg.CORSAllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete},
			AllowedHeaders: []string{"Content-Type", handler.RequestIDHeader},
			ExposedHeaders: []string{handler.RequestIDHeader},
			MaxAge:         300,
		}))
	}

	r.NotFound(handler.NotFound(logger))
	r.MethodNotAllowed(handler.MethodNotAllowed(logger))

	r.Get("/health", healthHandler.Check)

	r.Post("/user", userHandler.CreateUser)
	r.Get("/user/{id:[0-9]+}", userHandler.GetUser)
	r.Patch("/user/{id:[0-9]+}", userHandler.UpdateUser)
	r.Delete("/user/{id:[0-9]+}", userHandler.DeleteUser)

	r.Post("/ad", adHandler.CreateAd)
	r.Get("/ad/{id:[0-9]+}", adHandler.GetAd)
	r.Patch("/ad/{id:[0-9]+}", adHandler.UpdateAd)
	r.Delete("/ad/{id:[0-9]+}", adHandler.DeleteAd)

	return r
}

// runServer запускает HTTP сервер и блокируется до отмены ctx.
func runServer(ctx context.Context, cfg *config.Config, logger *slog.Logger, h http.Handler) error {
	serverAddr := fmt.Sprintf(":%s", cfg.ServerPort)
	server := &http.Server{
		Addr:              serverAddr,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server started", "addr", serverAddr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("ошибка при запуске сервера: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutdown signal received, stopping http server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	logger.Info("http server stopped")
	return nil
}
