package postgres

import (
	"time"

	"github.com/GoArmGo/AdBoard/internal/domain"
)

// userModel - GORM-модель таблицы "user". Схема создаётся миграциями, не AutoMigrate.
type userModel struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"`
	Name         string    `gorm:"not null;uniqueIndex:ix_user_name"`
	Password     string    `gorm:"not null"`
	CreationTime time.Time `gorm:"not null;default:now()"`
}

func (userModel) TableName() string { return "user" }

func (m userModel) toDomain() *domain.User {
	return &domain.User{
		ID:           m.ID,
		Name:         m.Name,
		PasswordHash: m.Password,
		CreationTime: m.CreationTime,
	}
}

type adModel struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"`
	Title        string    `gorm:"not null;uniqueIndex:ix_ad_title"`
	Description  string    `gorm:"not null"`
	CreationTime time.Time `gorm:"not null;default:now()"`
	UserID       int64     `gorm:"not null;index:ix_ad_user_id"`
}

func (adModel) TableName() string { return "ad" }

func (m adModel) toDomain() *domain.Ad {
	return &domain.Ad{
		ID:           m.ID,
		Title:        m.Title,
		Description:  m.Description,
		CreationTime: m.CreationTime,
		UserID:       m.UserID,
	}
}

// userUpdates превращает patch в набор колонок для Updates.
func userUpdates(p domain.UserPatch) map[string]any {
	updates := make(map[string]any, 2)
	if p.Name != nil {
		updates["name"] = *p.Name
	}
	if p.PasswordHash != nil {
		updates["password"] = *p.PasswordHash
	}
	return updates
}

func adUpdates(p domain.AdPatch) map[string]any {
	updates := make(map[string]any, 3)
	if p.Title != nil {
		updates["title"] = *p.Title
	}
	if p.Description != nil {
		updates["description"] = *p.Description
	}
	if p.UserID != nil {
		updates["user_id"] = *p.UserID
	}
	return updates
}
