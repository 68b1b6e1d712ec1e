package errs

import (
	"fmt"
	"net/http"
)

// HTTPError - единственный вид ошибки, который уходит клиенту.
// Message - строка или список нарушений валидации.
type HTTPError struct {
	Code    int
	Message any
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %v", e.Code, e.Message)
}

// Response - тело ответа с ошибкой.
type Response struct {
	Status  string `json:"status"`
	Message any    `json:"message"`
}

func (e *HTTPError) Body() Response {
	return Response{Status: "error", Message: e.Message}
}

func New(code int, message any) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}

func NewNotFound(entity string) *HTTPError {
	return New(http.StatusNotFound, entity+" not found")
}

func NewConflict(entity string) *HTTPError {
	return New(http.StatusConflict, entity+" already exist")
}

func NewBadRequest(details any) *HTTPError {
	return New(http.StatusBadRequest, details)
}

func NewInternal() *HTTPError {
	return New(http.StatusInternalServerError, "internal server error")
}
