package handler

import (
	"log/slog"
	"net/http"

	"github.com/GoArmGo/AdBoard/internal/domain"
	"github.com/GoArmGo/AdBoard/internal/usecase"
	"github.com/GoArmGo/AdBoard/internal/validation"
)

const adEntity = "ad"

// AdHandler - обработчик HTTP-запросов /ad.
type AdHandler struct {
	adUseCase usecase.AdUseCase
	logger    *slog.Logger
}

func NewAdHandler(uc usecase.AdUseCase, logger *slog.Logger) *AdHandler {
	return &AdHandler{adUseCase: uc, logger: logger}
}

func (h *AdHandler) GetAd(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondWithError(w, r, adEntity, err, h.logger)
		return
	}

	ad, err := h.adUseCase.GetAd(r.Context(), id)
	if err != nil {
		respondWithError(w, r, adEntity, err, h.logger)
		return
	}
	respondWithJSON(w, http.StatusOK, ad, h.logger)
}

func (h *AdHandler) CreateAd(w http.ResponseWriter, r *http.Request) {
	var req validation.CreateAdRequest
	if err := validation.Bind(r, &req); err != nil {
		respondWithError(w, r, adEntity, err, h.logger)
		return
	}

	id, err := h.adUseCase.CreateAd(r.Context(), usecase.CreateAdInput{
		Title:       *req.Title,
		Description: *req.Description,
		UserID:      *req.UserID,
	})
	if err != nil {
		respondWithError(w, r, adEntity, err, h.logger)
		return
	}
	respondWithJSON(w, http.StatusOK, idResponse{ID: id}, h.logger)
}

func (h *AdHandler) UpdateAd(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondWithError(w, r, adEntity, err, h.logger)
		return
	}

	var req validation.UpdateAdRequest
	if err := validation.Bind(r, &req); err != nil {
		respondWithError(w, r, adEntity, err, h.logger)
		return
	}

	id, err = h.adUseCase.UpdateAd(r.Context(), id, domain.AdPatch{
		Title:       req.Title,
		Description: req.Description,
		UserID:      req.UserID,
	})
	if err != nil {
		respondWithError(w, r, adEntity, err, h.logger)
		return
	}
	respondWithJSON(w, http.StatusOK, idResponse{ID: id}, h.logger)
}

func (h *AdHandler) DeleteAd(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondWithError(w, r, adEntity, err, h.logger)
		return
	}

	if err := h.adUseCase.DeleteAd(r.Context(), id); err != nil {
		respondWithError(w, r, adEntity, err, h.logger)
		return
	}
	respondWithJSON(w, http.StatusOK, deletedResponse, h.logger)
}
