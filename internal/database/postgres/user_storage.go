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

// UserStorage реализует ports.UserStorage с использованием GORM
type UserStorage struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewUserStorage(db *gorm.DB, logger *slog.Logger) *UserStorage {
	return &UserStorage{db: db, logger: logger}
}

func (s *UserStorage) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	var m userModel
	err := s.db.WithContext(ctx).First(&m, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("user %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		s.logger.Error("failed to select user", "user_id", id, "error", err)
		return nil, fmt.Errorf("ошибка при получении пользователя с GORM: %w", err)
	}
	return m.toDomain(), nil
}

func (s *UserStorage) CreateUser(ctx context.Context, user *domain.User) (int64, error) {
	m := userModel{Name: user.Name, Password: user.PasswordHash}
	if err := s.db.WithContext(ctx).Create(&m).Error; err != nil {
		return 0, fmt.Errorf("ошибка при создании пользователя с GORM: %w", sqlerr.Classify(err))
	}
	return m.ID, nil
}

func (s *UserStorage) UpdateUser(ctx context.Context, id int64, patch domain.UserPatch) error {
	updates := userUpdates(patch)
	if len(updates) == 0 {
		_, err := s.GetUser(ctx, id)
		return err
	}

	res := s.db.WithContext(ctx).Model(&userModel{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return fmt.Errorf("ошибка при обновлении пользователя с GORM: %w", sqlerr.Classify(res.Error))
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("user %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (s *UserStorage) DeleteUser(ctx context.Context, id int64) error {
	res := s.db.WithContext(ctx).Delete(&userModel{}, id)
	if res.Error != nil {
		s.logger.Error("failed to delete user", "user_id", id, "error", res.Error)
		return fmt.Errorf("ошибка при удалении пользователя с GORM: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("user %d: %w", id, domain.ErrNotFound)
	}
	return nil
}
