package ports

import (
	"context"

	"github.com/GoArmGo/AdBoard/internal/domain"
)

// UserStorage определяет методы для работы с таблицей пользователей
// внутри одной единицы работы.
type UserStorage interface {
	GetUser(ctx context.Context, id int64) (*domain.User, error)
	CreateUser(ctx context.Context, user *domain.User) (int64, error)
	UpdateUser(ctx context.Context, id int64, patch domain.UserPatch) error
	DeleteUser(ctx context.Context, id int64) error
}

// AdStorage определяет методы для работы с таблицей объявлений.
type AdStorage interface {
	GetAd(ctx context.Context, id int64) (*domain.Ad, error)
	CreateAd(ctx context.Context, ad *domain.Ad) (int64, error)
	UpdateAd(ctx context.Context, id int64, patch domain.AdPatch) error
	DeleteAd(ctx context.Context, id int64) error
}

// UnitOfWork - хранилища, привязанные к одной транзакции.
type UnitOfWork interface {
	Users() UserStorage
	Ads() AdStorage
}

// Store открывает единицы работы. WithUnit фиксирует изменения, если fn вернула nil,
// и откатывает их при ошибке или панике.
type Store interface {
	WithUnit(ctx context.Context, fn func(ctx context.Context, uow UnitOfWork) error) error
	Ping(ctx context.Context) error
	Close() error
}
