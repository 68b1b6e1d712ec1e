package handler

import (
	"log/slog"
	"net/http"

	"github.com/GoArmGo/AdBoard/internal/usecase"
	"github.com/GoArmGo/AdBoard/internal/validation"
)

const userEntity = "user"

// UserHandler - обработчик HTTP-запросов /user.
type UserHandler struct {
	userUseCase usecase.UserUseCase
	logger      *slog.Logger
}

func NewUserHandler(uc usecase.UserUseCase, logger *slog.Logger) *UserHandler {
	return &UserHandler{userUseCase: uc, logger: logger}
}

// GetUser - GET /user/{id}
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondWithError(w, r, userEntity, err, h.logger)
		return
	}

	user, err := h.userUseCase.GetUser(r.Context(), id)
	if err != nil {
		respondWithError(w, r, userEntity, err, h.logger)
		return
	}
	respondWithJSON(w, http.StatusOK, user, h.logger)
}

// CreateUser - POST /user
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req validation.CreateUserRequest
	if err := validation.Bind(r, &req); err != nil {
		respondWithError(w, r, userEntity, err, h.logger)
		return
	}

	id, err := h.userUseCase.CreateUser(r.Context(), usecase.CreateUserInput{
		Name:     *req.Name,
		Password: *req.Password,
	})
	if err != nil {
		respondWithError(w, r, userEntity, err, h.logger)
		return
	}
	respondWithJSON(w, http.StatusOK, idResponse{ID: id}, h.logger)
}

// UpdateUser - PATCH /user/{id}
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondWithError(w, r, userEntity, err, h.logger)
		return
	}

	var req validation.UpdateUserRequest
	if err := validation.Bind(r, &req); err != nil {
		respondWithError(w, r, userEntity, err, h.logger)
		return
	}

	id, err = h.userUseCase.UpdateUser(r.Context(), id, usecase.UpdateUserInput{
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		respondWithError(w, r, userEntity, err, h.logger)
		return
	}
	respondWithJSON(w, http.StatusOK, idResponse{ID: id}, h.logger)
}

// DeleteUser - DELETE /user/{id}
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondWithError(w, r, userEntity, err, h.logger)
		return
	}

	if err := h.userUseCase.DeleteUser(r.Context(), id); err != nil {
		respondWithError(w, r, userEntity, err, h.logger)
		return
	}
	respondWithJSON(w, http.StatusOK, deletedResponse, h.logger)
}
