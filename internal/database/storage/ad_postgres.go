package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/GoArmGo/AdBoard/internal/database/sqlerr"
	"github.com/GoArmGo/AdBoard/internal/domain"
	"github.com/jmoiron/sqlx"
)

// AdStorage реализует ports.AdStorage поверх sqlx.
type AdStorage struct {
	db     sqlx.ExtContext
	logger *slog.Logger
}

func NewAdStorage(db sqlx.ExtContext, logger *slog.Logger) *AdStorage {
	return &AdStorage{db: db, logger: logger}
}

func (s *AdStorage) GetAd(ctx context.Context, id int64) (*domain.Ad, error) {
	var ad domain.Ad
	err := sqlx.GetContext(ctx, s.db, &ad,
		`SELECT id, title, description, creation_time, user_id FROM ad WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("ad %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		s.logger.Error("failed to select ad", "ad_id", id, "error", err)
		return nil, fmt.Errorf("select ad: %w", err)
	}
	return &ad, nil
}

func (s *AdStorage) CreateAd(ctx context.Context, ad *domain.Ad) (int64, error) {
	start := time.Now()

	var id int64
	err := sqlx.GetContext(ctx, s.db, &id,
		`INSERT INTO ad (title, description, user_id) VALUES ($1, $2, $3) RETURNING id`,
		ad.Title, ad.Description, ad.UserID)
	if err != nil {
		err = sqlerr.Classify(err)
		if !isConstraint(err) {
			s.logger.Error("failed to insert ad", "error", err)
		}
		return 0, fmt.Errorf("insert ad: %w", err)
	}

	s.logger.Debug("ad inserted", "ad_id", id, "user_id", ad.UserID, "duration_ms", time.Since(start).Milliseconds())
	return id, nil
}

func (s *AdStorage) UpdateAd(ctx context.Context, id int64, patch domain.AdPatch) error {
	var set setClause
	if patch.Title != nil {
		set.add("title", *patch.Title)
	}
	if patch.Description != nil {
		set.add("description", *patch.Description)
	}
	if patch.UserID != nil {
		set.add("user_id", *patch.UserID)
	}
	if set.empty() {
		_, err := s.GetAd(ctx, id)
		return err
	}

	query, args := set.build("ad", id)
	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		err = sqlerr.Classify(err)
		if !isConstraint(err) {
			s.logger.Error("failed to update ad", "ad_id", id, "error", err)
		}
		return fmt.Errorf("update ad: %w", err)
	}
	return affected(res, "ad", id)
}

func (s *AdStorage) DeleteAd(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM ad WHERE id = $1`, id)
	if err != nil {
		s.logger.Error("failed to delete ad", "ad_id", id, "error", err)
		return fmt.Errorf("delete ad: %w", err)
	}
	return affected(res, "ad", id)
}

// isConstraint - ожидаемые нарушения ограничений, их не логируем как сбой.
func isConstraint(err error) bool {
	return errors.Is(err, domain.ErrAlreadyExists) || errors.Is(err, domain.ErrInvalidReference)
}
