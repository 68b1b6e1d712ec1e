package domain

import "time"

// Ad представляет объявление. Соответствует таблице "ad".
type Ad struct {
	ID           int64     `json:"id" db:"id"`
	Title        string    `json:"title" db:"title"`
	Description  string    `json:"description" db:"description"`
	CreationTime time.Time `json:"creation_time" db:"creation_time"`
	UserID       int64     `json:"user_id" db:"user_id"`
}

// AdPatch описывает частичное обновление объявления.
type AdPatch struct {
	Title       *string
	Description *string
	UserID      *int64
}

func (p AdPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.UserID == nil
}
