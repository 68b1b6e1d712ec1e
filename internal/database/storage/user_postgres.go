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

const userTable = `"user"`

// UserStorage реализует ports.UserStorage поверх sqlx.
// db - транзакция текущей единицы работы или сам пул.
type UserStorage struct {
	db     sqlx.ExtContext
	logger *slog.Logger
}

func NewUserStorage(db sqlx.ExtContext, logger *slog.Logger) *UserStorage {
	return &UserStorage{db: db, logger: logger}
}

// GetUser получает пользователя по id.
func (s *UserStorage) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	var user domain.User
	err := sqlx.GetContext(ctx, s.db, &user,
		`SELECT id, name, password, creation_time FROM "user" WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("user %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		s.logger.Error("failed to select user", "user_id", id, "error", err)
		return nil, fmt.Errorf("select user: %w", err)
	}
	return &user, nil
}

// CreateUser вставляет пользователя и возвращает сгенерированный id.
func (s *UserStorage) CreateUser(ctx context.Context, user *domain.User) (int64, error) {
	start := time.Now()

	var id int64
	err := sqlx.GetContext(ctx, s.db, &id,
		`INSERT INTO "user" (name, password) VALUES ($1, $2) RETURNING id`, user.Name, user.PasswordHash)
	if err != nil {
		err = sqlerr.Classify(err)
		if !errors.Is(err, domain.ErrAlreadyExists) {
			s.logger.Error("failed to insert user", "error", err)
		}
		return 0, fmt.Errorf("insert user: %w", err)
	}

	s.logger.Debug("user inserted", "user_id", id, "duration_ms", time.Since(start).Milliseconds())
	return id, nil
}

// UpdateUser применяет только заполненные поля patch.
func (s *UserStorage) UpdateUser(ctx context.Context, id int64, patch domain.UserPatch) error {
	var set setClause
	if patch.Name != nil {
		set.add("name", *patch.Name)
	}
	if patch.PasswordHash != nil {
		set.add("password", *patch.PasswordHash)
	}
	if set.empty() {
		_, err := s.GetUser(ctx, id)
		return err
	}

	query, args := set.build(userTable, id)
	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		err = sqlerr.Classify(err)
		if !errors.Is(err, domain.ErrAlreadyExists) {
			s.logger.Error("failed to update user", "user_id", id, "error", err)
		}
		return fmt.Errorf("update user: %w", err)
	}
	return affected(res, "user", id)
}

// DeleteUser удаляет пользователя; объявления удаляются каскадом.
func (s *UserStorage) DeleteUser(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM "user" WHERE id = $1`, id)
	if err != nil {
		s.logger.Error("failed to delete user", "user_id", id, "error", err)
		return fmt.Errorf("delete user: %w", err)
	}
	return affected(res, "user", id)
}

// affected превращает ноль затронутых строк в domain.ErrNotFound.
func affected(res sql.Result, entity string, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s %d: %w", entity, id, domain.ErrNotFound)
	}
	return nil
}
