package di

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/GoArmGo/AdBoard/internal/adapter/storage/minio"
	"github.com/GoArmGo/AdBoard/internal/app"
	"github.com/GoArmGo/AdBoard/internal/config"
	"github.com/GoArmGo/AdBoard/internal/core/ports"
	"github.com/GoArmGo/AdBoard/internal/database/client"
	"github.com/GoArmGo/AdBoard/internal/database/memory"
	"github.com/GoArmGo/AdBoard/internal/database/postgres"
	"github.com/GoArmGo/AdBoard/internal/database/storage"
	"github.com/GoArmGo/AdBoard/internal/logger"
	"github.com/GoArmGo/AdBoard/internal/password"
	"github.com/GoArmGo/AdBoard/internal/rabbitmq"
	"github.com/GoArmGo/AdBoard/internal/usecase"
)

// BuildApp инициализирует все зависимости и возвращает готовый объект App.
func BuildApp(ctx context.Context, mode string) (*app.App, error) {
	// 1. Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	slogger := logger.NewSlog(logger.SlogConfig{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	slogger.Info("logger initialized", "level", cfg.LogLevel, "format", cfg.LogFormat)

	// 2. Хранилище
	store, err := NewStore(ctx, cfg, slogger)
	if err != nil {
		return nil, err
	}

	// 3. Шина событий
	var (
		publisher ports.EntityEventPublisher = usecase.NopEventPublisher{}
		consumer  ports.EntityEventConsumer
		closers   []func() error
	)
	if cfg.EventsEnabled() {
		mq, err := rabbitmq.NewClient(cfg, slogger)
		if err != nil {
			_ = store.Close()
			return nil, err
		}
		publisher, consumer = mq, mq
		closers = append(closers, mq.Close)
	} else {
		slogger.Info("RABBITMQ_URL is empty, entity events are disabled")
	}

	// 4. Архив событий нужен только воркеру
	var archive ports.EventArchive
	if mode == app.ModeWorker && cfg.ArchiveEnabled() {
		mc, err := minio.NewMinioClient(ctx, cfg, slogger)
		if err != nil {
			closeAll(store, closers)
			return nil, err
		}
		archive = mc
	}

	// 5. Бизнес-логика
	hasher := password.NewBcryptHasher(cfg.BcryptCost)
	userUseCase := usecase.NewUserUseCase(store, hasher, publisher, slogger)
	adUseCase := usecase.NewAdUseCase(store, publisher, slogger)

	application := app.NewApp(cfg, slogger, store, userUseCase, adUseCase, consumer, archive, closers...)

	slogger.Info("all dependencies initialized", "storage", cfg.StorageDriver, "mode", mode)
	return application, nil
}

// NewStore выбирает реализацию ports.Store по STORAGE_DRIVER.
func NewStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (ports.Store, error) {
	switch cfg.StorageDriver {
	case config.DriverSQLX:
		dbClient, err := client.NewClient(ctx, cfg, logger)
		if err != nil {
			return nil, err
		}
		return storage.NewStore(dbClient.DB, logger), nil
	case config.DriverGORM:
		return postgres.Open(ctx, cfg, logger)
	case config.DriverMemory:
		logger.Warn("using in-memory storage, data is lost on restart")
		return memory.NewStore(), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}

func closeAll(store ports.Store, closers []func() error) {
	for _, c := range closers {
		_ = c()
	}
	_ = store.Close()
}
