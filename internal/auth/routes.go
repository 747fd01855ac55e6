package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/InkwellLabs/inkwell-backend/internal/middleware"
)

// SetupRoutes wires the auth endpoints. guard is the bearer-token
// middleware built in main.
func SetupRoutes(h *Handler, guard func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()

	r.With(middleware.Upload("profileImage")).Post("/register", h.RegisterHandler)
	r.Post("/login", h.LoginHandler)
	r.With(guard).Get("/profile", h.ProfileHandler)

	return r
}
