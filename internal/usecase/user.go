package usecase

import (
	"context"

	"github.com/GoArmGo/AdBoard/internal/domain"
)

// PasswordHasher - одностороннее преобразование пароля в хеш для хранения.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
}

// CreateUserInput - проверенные данные для создания пользователя. Пароль в открытом виде.
type CreateUserInput struct {
	Name     string
	Password string
}

// UpdateUserInput - частичное обновление; nil-поля не меняются.
type UpdateUserInput struct {
	Name     *string
	Password *string
}

// UserUseCase определяет бизнес-логику работы с пользователями
type UserUseCase interface {
	GetUser(ctx context.Context, id int64) (*domain.User, error)

	// CreateUser хеширует пароль и сохраняет пользователя, возвращает новый id
	CreateUser(ctx context.Context, in CreateUserInput) (int64, error)

	// UpdateUser применяет только переданные поля, возвращает id пользователя
	UpdateUser(ctx context.Context, id int64, in UpdateUserInput) (int64, error)

	// DeleteUser удаляет пользователя вместе с его объявлениями
	DeleteUser(ctx context.Context, id int64) error
}
