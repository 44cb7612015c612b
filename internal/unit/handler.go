package unit

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

// Create handles POST /terms/{termId}/units.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto CreateUnitDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	u, err := h.service.Create(r.Context(), chi.URLParam(r, "termId"), dto)
	if err != nil {
		writeError(w, log, err, "Failed to create unit")
		return
	}

	config.JSON(w, http.StatusCreated, u)
}

// ListByTerm handles GET /terms/{termId}/units.
func (h *Handler) ListByTerm(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	units, err := h.service.ListByTerm(r.Context(), chi.URLParam(r, "termId"))
	if err != nil {
		writeError(w, log, err, "Failed to list units")
		return
	}

	config.JSON(w, http.StatusOK, units)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto UpdateUnitDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	u, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), dto)
	if err != nil {
		writeError(w, log, err, "Failed to update unit")
		return
	}

	config.JSON(w, http.StatusOK, u)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, log, err, "Failed to delete unit")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func writeError(w http.ResponseWriter, log *logrus.Entry, err error, msg string) {
	switch {
	case errors.Is(err, ErrUnitNotFound), errors.Is(err, ErrTermNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, ErrNameRequired),
		errors.Is(err, ErrInvalidCredits),
		errors.Is(err, ErrGradeOutOfScale),
		errors.Is(err, ErrInvalidID):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		log.WithError(err).Error(msg)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
