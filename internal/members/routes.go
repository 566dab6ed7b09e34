package members

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns the members subrouter, gated behind the session guard.
func (h *Handler) Routes(guard func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(guard)
	r.Get("/", h.MembersHandler)
	return r
}
