package blogs

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/InkwellLabs/inkwell-backend/internal/middleware"
)

// SetupRoutes wires the blog endpoints. Listing and single-blog reads are
// public; everything that mutates runs behind the auth guard.
func SetupRoutes(h *Handler, guard func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.GetBlogsHandler)
	r.With(guard).Get("/my-blogs", h.GetUserBlogsHandler)
	r.Get("/{id}", h.GetBlogHandler)
	r.With(guard, middleware.Upload("image")).Post("/", h.CreateBlogHandler)
	r.With(guard, middleware.Upload("image")).Put("/{id}", h.UpdateBlogHandler)
	r.With(guard).Delete("/{id}", h.DeleteBlogHandler)

	return r
}
