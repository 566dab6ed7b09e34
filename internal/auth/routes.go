package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Register wires the auth routes onto the root router. The two
// credential-accepting POSTs go through the throttle.
func (h *Handler) Register(r chi.Router, throttle func(http.Handler) http.Handler) {
	r.Get("/", h.LandingHandler)
	r.Get("/signUp", h.SignUpFormHandler)
	r.Get("/error", h.ErrorHandler)
	r.Get("/login", h.LoginFormHandler)
	r.Get("/loginSubmit", h.LoginFailedHandler)
	r.With(throttle).Post("/submitUser", h.SubmitUserHandler)
	r.With(throttle).Post("/loggingin", h.LoggingInHandler)
	r.Post("/logout", h.LogoutHandler)
}
