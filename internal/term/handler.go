package term

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"github.com/FelixFel1x/Notendashboard/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto CreateTermDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	t, err := h.service.Create(r.Context(), dto)
	if err != nil {
		writeError(w, log, err, "Failed to create term")
		return
	}

	config.JSON(w, http.StatusCreated, t)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	terms, err := h.service.List(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list terms")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, terms)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	t, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, log, err, "Failed to get term")
		return
	}

	config.JSON(w, http.StatusOK, t)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto UpdateTermDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	t, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), dto)
	if err != nil {
		writeError(w, log, err, "Failed to update term")
		return
	}

	config.JSON(w, http.StatusOK, t)
}

func (h *Handler) UpdateTargets(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto UpdateTermTargetsDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	t, err := h.service.UpdateTargets(r.Context(), chi.URLParam(r, "id"), dto)
	if err != nil {
		writeError(w, log, err, "Failed to update term targets")
		return
	}

	config.JSON(w, http.StatusOK, t)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, log, err, "Failed to delete term")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func writeError(w http.ResponseWriter, log *logrus.Entry, err error, msg string) {
	switch {
	case errors.Is(err, ErrTermNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, ErrNameRequired),
		errors.Is(err, ErrInvalidTargetGrade),
		errors.Is(err, ErrInvalidID):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		log.WithError(err).Error(msg)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
