package validation

// Поля-указатели различают "ключ отсутствует или null" и пустое значение.
// Лишние ключи в теле запроса игнорируются.

type CreateUserRequest struct {
	Name     *string `json:"name" validate:"required"`
	Password *string `json:"password" validate:"required,min=4"`
}

type UpdateUserRequest struct {
	Name     *string `json:"name"`
	Password *string `json:"password" validate:"omitempty,min=4"`
}

type CreateAdRequest struct {
	Title       *string `json:"title" validate:"required"`
	Description *string `json:"description" validate:"required,max=100"`
	UserID      *int64  `json:"user_id" validate:"required"`
}

type UpdateAdRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description" validate:"omitempty,max=100"`
	UserID      *int64  `json:"user_id"`
}
