package unit

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes covers operations addressed by unit id. Creation and listing are
// nested under /terms/{termId}/units and mounted by the top-level router.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)

	return r
}
