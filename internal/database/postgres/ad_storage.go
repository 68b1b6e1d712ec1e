package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/GoArmGo/AdBoard/internal/database/sqlerr"
	"github.com/GoArmGo/AdBoard/internal/domain"
	"gorm.io/gorm"
)

// AdStorage реализует ports.AdStorage с использованием GORM
type AdStorage struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewAdStorage(db *gorm.DB, logger *slog.Logger) *AdStorage {
	return &AdStorage{db: db, logger: logger}
}

func (s *AdStorage) GetAd(ctx context.Context, id int64) (*domain.Ad, error) {
	var m adModel
	err := s.db.WithContext(ctx).First(&m, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("ad %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		s.logger.Error("failed to select ad", "ad_id", id, "error", err)
		return nil, fmt.Errorf("ошибка при получении объявления с GORM: %w", err)
	}
	return m.toDomain(), nil
}

func (s *AdStorage) CreateAd(ctx context.Context, ad *domain.Ad) (int64, error) {
	m := adModel{Title: ad.Title, Description: ad.Description, UserID: ad.UserID}
	if err := s.db.WithContext(ctx).Create(&m).Error; err != nil {
		return 0, fmt.Errorf("ошибка при создании объявления с GORM: %w", sqlerr.Classify(err))
	}
	return m.ID, nil
}

func (s *AdStorage) UpdateAd(ctx context.Context, id int64, patch domain.AdPatch) error {
	updates := adUpdates(patch)
	if len(updates) == 0 {
		_, err := s.GetAd(ctx, id)
		return err
	}

	res := s.db.WithContext(ctx).Model(&adModel{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return fmt.Errorf("ошибка при обновлении объявления с GORM: %w", sqlerr.Classify(res.Error))
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("ad %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (s *AdStorage) DeleteAd(ctx context.Context, id int64) error {
	res := s.db.WithContext(ctx).Delete(&adModel{}, id)
	if res.Error != nil {
		s.logger.Error("failed to delete ad", "ad_id", id, "error", res.Error)
		return fmt.Errorf("ошибка при удалении объявления с GORM: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("ad %d: %w", id, domain.ErrNotFound)
	}
	return nil
}
