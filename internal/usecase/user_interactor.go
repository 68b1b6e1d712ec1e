package usecase

import (
	"context"
	"log/slog"

	"github.com/GoArmGo/AdBoard/internal/core/ports"
	"github.com/GoArmGo/AdBoard/internal/domain"
	"github.com/GoArmGo/AdBoard/internal/messaging/payloads"
)

type userUseCase struct {
	store  ports.Store
	hasher PasswordHasher
	events ports.EntityEventPublisher
	logger *slog.Logger
}

// NewUserUseCase создаёт реализацию UserUseCase.
func NewUserUseCase(
	store ports.Store,
	hasher PasswordHasher,
	events ports.EntityEventPublisher,
	logger *slog.Logger,
) UserUseCase {
	return &userUseCase{store: store, hasher: hasher, events: events, logger: logger}
}

func (uc *userUseCase) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	var user *domain.User
	err := uc.store.WithUnit(ctx, func(ctx context.Context, uow ports.UnitOfWork) error {
		var err error
		user, err = uow.Users().GetUser(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (uc *userUseCase) CreateUser(ctx context.Context, in CreateUserInput) (int64, error) {
	hash, err := uc.hasher.Hash(in.Password)
	if err != nil {
		return 0, err
	}

	var id int64
	err = uc.store.WithUnit(ctx, func(ctx context.Context, uow ports.UnitOfWork) error {
		var err error
		id, err = uow.Users().CreateUser(ctx, &domain.User{Name: in.Name, PasswordHash: hash})
		return err
	})
	if err != nil {
		return 0, err
	}

	uc.logger.Info("user created", "user_id", id)
	publish(ctx, uc.events, uc.logger, payloads.NewEntityEvent(payloads.EntityUser, payloads.ActionCreated, id))
	return id, nil
}

func (uc *userUseCase) UpdateUser(ctx context.Context, id int64, in UpdateUserInput) (int64, error) {
	patch := domain.UserPatch{Name: in.Name}
	if in.Password != nil {
		hash, err := uc.hasher.Hash(*in.Password)
		if err != nil {
			return 0, err
		}
		patch.PasswordHash = &hash
	}

	err := uc.store.WithUnit(ctx, func(ctx context.Context, uow ports.UnitOfWork) error {
		return uow.Users().UpdateUser(ctx, id, patch)
	})
	if err != nil {
		return 0, err
	}

	if !patch.IsEmpty() {
		uc.logger.Info("user updated", "user_id", id)
		publish(ctx, uc.events, uc.logger, payloads.NewEntityEvent(payloads.EntityUser, payloads.ActionUpdated, id))
	}
	return id, nil
}

func (uc *userUseCase) DeleteUser(ctx context.Context, id int64) error {
	err := uc.store.WithUnit(ctx, func(ctx context.Context, uow ports.UnitOfWork) error {
		return uow.Users().DeleteUser(ctx, id)
	})
	if err != nil {
		return err
	}

	uc.logger.Info("user deleted", "user_id", id)
	publish(ctx, uc.events, uc.logger, payloads.NewEntityEvent(payloads.EntityUser, payloads.ActionDeleted, id))
	return nil
}
