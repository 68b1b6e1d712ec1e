package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/GoArmGo/AdBoard/internal/config"
	"github.com/GoArmGo/AdBoard/internal/core/ports"
	"github.com/GoArmGo/AdBoard/internal/database/client"
	"github.com/GoArmGo/AdBoard/internal/database/sqlerr"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Store реализует ports.Store с использованием GORM.
type Store struct {
	db     *gorm.DB
	sqlDB  *sql.DB
	logger *slog.Logger
}

// Open подключается к PostgreSQL через GORM (pgx) и применяет миграции.
func Open(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Store, error) {
	start := time.Now()

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), gormConfig())
	if err != nil {
		logger.Error("failed to open PostgreSQL connection", "driver", "gorm", "error", err)
		return nil, fmt.Errorf("ошибка открытия соединения с БД через GORM: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("не удалось получить *sql.DB из GORM: %w", err)
	}
	client.ConfigurePool(sqlDB, cfg)

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("не удалось подключиться к базе данных: %w", err)
	}

	logger.Info("PostgreSQL connection established successfully",
		"driver", "gorm",
		"duration_ms", time.Since(start).Milliseconds(),
	)

	if cfg.MigrateOnStart {
		if err := client.Migrate(sqlDB, logger); err != nil {
			_ = sqlDB.Close()
			return nil, err
		}
	}

	return &Store{db: db, sqlDB: sqlDB, logger: logger}, nil
}

func gormConfig() *gorm.Config {
	return &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	}
}

type unit struct {
	users *UserStorage
	ads   *AdStorage
}

func (u *unit) Users() ports.UserStorage { return u.users }
func (u *unit) Ads() ports.AdStorage     { return u.ads }

// WithUnit выполняет fn внутри db.Transaction: GORM сам откатывает при ошибке и панике.
func (s *Store) WithUnit(ctx context.Context, fn func(ctx context.Context, uow ports.UnitOfWork) error) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, &unit{
			users: NewUserStorage(tx, s.logger),
			ads:   NewAdStorage(tx, s.logger),
		})
	})
	return sqlerr.Classify(err)
}

func (s *Store) Ping(ctx context.Context) error {
	return s.sqlDB.PingContext(ctx)
}

func (s *Store) Close() error {
	if err := s.sqlDB.Close(); err != nil {
		s.logger.Error("failed to close database connection", "driver", "gorm", "error", err)
		return err
	}
	s.logger.Info("database connection closed", "driver", "gorm")
	return nil
}
