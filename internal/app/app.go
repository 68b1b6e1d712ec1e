package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/GoArmGo/AdBoard/internal/config"
	"github.com/GoArmGo/AdBoard/internal/core/ports"
	"github.com/GoArmGo/AdBoard/internal/usecase"
)

const (
	ModeServer = "server"
	ModeWorker = "worker"
)

type App struct {
	Config      *config.Config
	logger      *slog.Logger
	store       ports.Store
	userUseCase usecase.UserUseCase
	adUseCase   usecase.AdUseCase
	consumer    ports.EntityEventConsumer
	archive     ports.EventArchive
	closers     []func() error
}

func NewApp(
	cfg *config.Config,
	logger *slog.Logger,
	store ports.Store,
	userUseCase usecase.UserUseCase,
	adUseCase usecase.AdUseCase,
	consumer ports.EntityEventConsumer,
	archive ports.EventArchive,
	closers ...func() error,
) *App {
	return &App{
		Config:      cfg,
		logger:      logger,
		store:       store,
		userUseCase: userUseCase,
		adUseCase:   adUseCase,
		consumer:    consumer,
		archive:     archive,
		closers:     closers,
	}
}

func (a *App) LoggerIns() *slog.Logger {
	return a.logger
}

// Run запускает приложение в выбранном режиме до SIGINT/SIGTERM.
func (a *App) Run(ctx context.Context, mode string) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.logger.Info("app starting", "mode", mode, "storage", a.Config.StorageDriver)

	var err error
	switch mode {
	case ModeServer:
		err = runServer(ctx, a.Config, a.logger, newRouter(a.Config, a.logger, a.userUseCase, a.adUseCase, a.store))
	case ModeWorker:
		err = runWorker(ctx, a.logger, a.consumer, a.archive)
	default:
		err = fmt.Errorf("неизвестный режим: %s (используйте 'server' или 'worker')", mode)
	}

	if closeErr := a.Shutdown(); closeErr != nil {
		a.logger.Error("shutdown failed", "error", closeErr)
		err = errors.Join(err, closeErr)
	}
	return err
}

// Shutdown закрывает все ресурсы приложения
func (a *App) Shutdown() error {
	var errs []error
	for _, closeFn := range a.closers {
		if err := closeFn(); err != nil {
			errs = append(errs, err)
		}
	}
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			errs = append(errs, fmt.Errorf("ошибка закрытия хранилища: %w", err))
		}
	}
	return errors.Join(errs...)
}
