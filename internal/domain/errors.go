package domain

import "errors"

var (
	// ErrNotFound - запись с таким id отсутствует.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists - нарушено ограничение уникальности (name, title).
	ErrAlreadyExists = errors.New("already exists")
	// ErrInvalidReference - внешний ключ указывает на несуществующую запись.
	ErrInvalidReference = errors.New("invalid reference")
	// ErrPasswordTooLong - bcrypt не принимает пароли длиннее 72 байт.
	ErrPasswordTooLong = errors.New("password too long")
)
