package usecase

import (
	"context"

	"github.com/GoArmGo/AdBoard/internal/domain"
)

type CreateAdInput struct {
	Title       string
	Description string
	UserID      int64
}

// AdUseCase определяет бизнес-логику работы с объявлениями
type AdUseCase interface {
	GetAd(ctx context.Context, id int64) (*domain.Ad, error)
	CreateAd(ctx context.Context, in CreateAdInput) (int64, error)
	UpdateAd(ctx context.Context, id int64, patch domain.AdPatch) (int64, error)
	DeleteAd(ctx context.Context, id int64) error
}
