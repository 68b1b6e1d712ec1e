package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/GoArmGo/AdBoard/internal/domain"
	"github.com/GoArmGo/AdBoard/internal/errs"
	"github.com/GoArmGo/AdBoard/internal/validation"
	"github.com/go-chi/chi/v5"
)

type idResponse struct {
	ID int64 `json:"id"`
}

type statusResponse struct {
	Status string `json:"status"`
}

var deletedResponse = statusResponse{Status: "deleted"}

// respondWithJSON - отправляет JSON-ответ клиенту.
func respondWithJSON(w http.ResponseWriter, code int, payload any, logger *slog.Logger) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.Error("failed to marshal JSON response", "error", err)
		code = http.StatusInternalServerError
		response, _ = json.Marshal(errs.NewInternal().Body())
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err = w.Write(response); err != nil {
		logger.Error("failed to write HTTP response", "error", err)
	}
}

// respondWithError - единая точка перевода ошибок в ответ {"status":"error","message":...}.
func respondWithError(w http.ResponseWriter, r *http.Request, entity string, err error, logger *slog.Logger) {
	httpErr := translate(entity, err)

	attrs := []any{
		"method", r.Method,
		"path", r.URL.Path,
		"status", httpErr.Code,
		"request_id", RequestIDFromContext(r.Context()),
		"error", err,
	}
	if httpErr.Code >= http.StatusInternalServerError {
		logger.Error("request failed", attrs...)
	} else {
		logger.Debug("request rejected", attrs...)
	}

	respondWithJSON(w, httpErr.Code, httpErr.Body(), logger)
}

// translate сопоставляет внутренние ошибки с HTTP-статусом. Детали хранилища наружу не попадают.
func translate(entity string, err error) *errs.HTTPError {
	var httpErr *errs.HTTPError
	var verrs validation.Errors

	switch {
	case errors.As(err, &httpErr):
		return httpErr
	case errors.As(err, &verrs):
		return errs.NewBadRequest(verrs)
	case errors.Is(err, domain.ErrNotFound):
		return errs.NewNotFound(entity)
	case errors.Is(err, domain.ErrAlreadyExists):
		return errs.NewConflict(entity)
	case errors.Is(err, domain.ErrInvalidReference):
		return errs.NewBadRequest(validation.Field("user_id", "references unknown user"))
	case errors.Is(err, domain.ErrPasswordTooLong):
		return errs.NewBadRequest(validation.Field("password", "must not exceed 72 bytes"))
	case errors.Is(err, context.DeadlineExceeded):
		return errs.New(http.StatusGatewayTimeout, "request timed out")
	default:
		return errs.NewInternal()
	}
}

// pathID читает {id} из маршрута. Число вне int64 считается несуществующим id.
func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, domain.ErrNotFound
	}
	return id, nil
}
