package domain

import "time"

// User представляет модель пользователя в системе.
// Соответствует таблице "user" в базе данных.
type User struct {
	ID           int64     `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	PasswordHash string    `json:"-" db:"password"`
	CreationTime time.Time `json:"creation_time" db:"creation_time"`
}

// UserPatch описывает частичное обновление пользователя.
// nil-поле означает "не менять".
type UserPatch struct {
	Name         *string
	PasswordHash *string
}

// IsEmpty сообщает, что обновлять нечего.
func (p UserPatch) IsEmpty() bool {
	return p.Name == nil && p.PasswordHash == nil
}
