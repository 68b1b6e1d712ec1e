package password

import (
	"errors"
	"fmt"

	"github.com/GoArmGo/AdBoard/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

// BcryptHasher хеширует пароли bcrypt'ом. Соль генерируется на каждый вызов.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher создаёт хешер; стоимость вне диапазона bcrypt заменяется на DefaultCost.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", domain.ErrPasswordTooLong
	}
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// Compare проверяет пароль против сохранённого хеша.
func (h *BcryptHasher) Compare(hash, plaintext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
