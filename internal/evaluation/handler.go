package evaluation

import (
	"net/http"

	"github.com/FelixFel1x/Notendashboard/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	response, err := h.service.Dashboard(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to build dashboard")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, response)
}
