package client

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/GoArmGo/AdBoard/internal/config"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// Client представляет клиент для взаимодействия с PostgreSQL через sqlx.
type Client struct {
	DB     *sqlx.DB
	logger *slog.Logger
}

// NewClient открывает пул соединений, проверяет его и при необходимости применяет миграции.
func NewClient(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Client, error) {
	start := time.Now()

	db, err := sqlx.ConnectContext(ctx, "postgres", cfg.DatabaseURL)
	if err != nil {
		logger.Error("failed to open PostgreSQL connection", "error", err)
		return nil, fmt.Errorf("ошибка открытия соединения с БД: %w", err)
	}

	ConfigurePool(db.DB, cfg)

	c := &Client{DB: db, logger: logger}
	if err = c.Ping(ctx); err != nil {
		_ = db.Close()
		logger.Error("failed to ping database", "error", err)
		return nil, fmt.Errorf("не удалось подключиться к базе данных: %w", err)
	}

	logger.Info("PostgreSQL connection established successfully",
		"driver", "sqlx",
		"duration_ms", time.Since(start).Milliseconds(),
	)

	if cfg.MigrateOnStart {
		if err := Migrate(db.DB, logger); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	return c, nil
}

// ConfigurePool применяет настройки пула из конфигурации.
func ConfigurePool(db *sql.DB, cfg *config.Config) {
	db.SetMaxOpenConns(cfg.DBMaxOpenConns)
	db.SetMaxIdleConns(cfg.DBMaxIdleConns)
	db.SetConnMaxLifetime(cfg.DBConnMaxLifetime)
}

func (c *Client) Ping(ctx context.Context) error {
	return c.DB.PingContext(ctx)
}
