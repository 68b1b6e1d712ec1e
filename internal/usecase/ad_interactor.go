package usecase

import (
	"context"
	"log/slog"

	"github.com/GoArmGo/AdBoard/internal/core/ports"
	"github.com/GoArmGo/AdBoard/internal/domain"
	"github.com/GoArmGo/AdBoard/internal/messaging/payloads"
)

type adUseCase struct {
	store  ports.Store
	events ports.EntityEventPublisher
	logger *slog.Logger
}

func NewAdUseCase(store ports.Store, events ports.EntityEventPublisher, logger *slog.Logger) AdUseCase {
	return &adUseCase{store: store, events: events, logger: logger}
}

func (uc *adUseCase) GetAd(ctx context.Context, id int64) (*domain.Ad, error) {
	var ad *domain.Ad
	err := uc.store.WithUnit(ctx, func(ctx context.Context, uow ports.UnitOfWork) error {
		var err error
		ad, err = uow.Ads().GetAd(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return ad, nil
}

func (uc *adUseCase) CreateAd(ctx context.Context, in CreateAdInput) (int64, error) {
	var id int64
	err := uc.store.WithUnit(ctx, func(ctx context.Context, uow ports.UnitOfWork) error {
		var err error
		id, err = uow.Ads().CreateAd(ctx, &domain.Ad{
			Title:       in.Title,
			Description: in.Description,
			UserID:      in.UserID,
		})
		return err
	})
	if err != nil {
		return 0, err
	}

	uc.logger.Info("ad created", "ad_id", id, "user_id", in.UserID)
	publish(ctx, uc.events, uc.logger, payloads.NewEntityEvent(payloads.EntityAd, payloads.ActionCreated, id))
	return id, nil
}

func (uc *adUseCase) UpdateAd(ctx context.Context, id int64, patch domain.AdPatch) (int64, error) {
	err := uc.store.WithUnit(ctx, func(ctx context.Context, uow ports.UnitOfWork) error {
		return uow.Ads().UpdateAd(ctx, id, patch)
	})
	if err != nil {
		return 0, err
	}

	if !patch.IsEmpty() {
		uc.logger.Info("ad updated", "ad_id", id)
		publish(ctx, uc.events, uc.logger, payloads.NewEntityEvent(payloads.EntityAd, payloads.ActionUpdated, id))
	}
	return id, nil
}

func (uc *adUseCase) DeleteAd(ctx context.Context, id int64) error {
	err := uc.store.WithUnit(ctx, func(ctx context.Context, uow ports.UnitOfWork) error {
		return uow.Ads().DeleteAd(ctx, id)
	})
	if err != nil {
		return err
	}

	uc.logger.Info("ad deleted", "ad_id", id)
	publish(ctx, uc.events, uc.logger, payloads.NewEntityEvent(payloads.EntityAd, payloads.ActionDeleted, id))
	return nil
}
