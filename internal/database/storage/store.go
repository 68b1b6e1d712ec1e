package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/GoArmGo/AdBoard/internal/core/ports"
	"github.com/GoArmGo/AdBoard/internal/database/sqlerr"
	"github.com/jmoiron/sqlx"
)

// Store реализует ports.Store поверх sqlx: одна единица работы - одна транзакция.
type Store struct {
	db     *sqlx.DB
	logger *slog.Logger
}

func NewStore(db *sqlx.DB, logger *slog.Logger) *Store {
	return &Store{db: db, logger: logger}
}

type unit struct {
	users *UserStorage
	ads   *AdStorage
}

func (u *unit) Users() ports.UserStorage { return u.users }
func (u *unit) Ads() ports.AdStorage     { return u.ads }

// WithUnit открывает транзакцию и передаёт её хранилища в fn.
func (s *Store) WithUnit(ctx context.Context, fn func(ctx context.Context, uow ports.UnitOfWork) error) (err error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		s.logger.Error("failed to begin transaction", "error", err)
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				s.logger.Error("failed to rollback transaction", "error", rbErr)
			}
			return
		}
		if cErr := tx.Commit(); cErr != nil {
			err = fmt.Errorf("commit transaction: %w", sqlerr.Classify(cErr))
		}
	}()

	return fn(ctx, &unit{
		users: NewUserStorage(tx, s.logger),
		ads:   NewAdStorage(tx, s.logger),
	})
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) Close() error {
	start := time.Now()
	if err := s.db.Close(); err != nil {
		s.logger.Error("failed to close database connection", "error", err)
		return err
	}
	s.logger.Info("database connection closed", "duration_ms", time.Since(start).Milliseconds())
	return nil
}
