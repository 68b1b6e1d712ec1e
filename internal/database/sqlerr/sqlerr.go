// Package sqlerr переводит ошибки драйверов PostgreSQL в доменные ошибки.
package sqlerr

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/GoArmGo/AdBoard/internal/domain"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

// SQLSTATE коды, которые нас интересуют.
const (
	UniqueViolation     = "23505"
	ForeignKeyViolation = "23503"
)

// Code достаёт SQLSTATE из ошибки lib/pq или pgx. Пустая строка - код не найден.
func Code(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// Classify оборачивает ошибку хранилища в доменную, если её можно распознать.
// Нераспознанные ошибки возвращаются как есть.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %v", domain.ErrNotFound, err)
	}

	switch Code(err) {
	case UniqueViolation:
		return fmt.Errorf("%w: %v", domain.ErrAlreadyExists, err)
	case ForeignKeyViolation:
		return fmt.Errorf("%w: %v", domain.ErrInvalidReference, err)
	}
	return err
}
