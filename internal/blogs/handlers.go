package blogs

import (
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/InkwellLabs/inkwell-backend/internal/auth"
	"github.com/InkwellLabs/inkwell-backend/internal/storage"
	"github.com/InkwellLabs/inkwell-backend/internal/utils"
	"github.com/InkwellLabs/inkwell-backend/internal/validate"
	"github.com/InkwellLabs/inkwell-backend/internal/web"
)

// imageFolder is the blob store folder for blog images. These get the
// bounded transform on upload.
const imageFolder = "blog_images"

type Handler struct {
	Blogs    BlogStore
	Users    auth.UserStore
	Uploader storage.Uploader
}

func NewHandler(blogs BlogStore, users auth.UserStore, uploader storage.Uploader) *Handler {
	return &Handler{Blogs: blogs, Users: users, Uploader: uploader}
}

func validateBlogInput(r *http.Request) []validate.FieldError {
	return validate.Apply(r.FormValue,
		validate.Required("title", "Title is required"),
		validate.Required("description", "Description is required"),
	)
}

func (h *Handler) CreateBlogHandler(w http.ResponseWriter, r *http.Request) {
	if errs := validateBlogInput(r); len(errs) > 0 {
		web.ValidationErrors(w, errs)
		return
	}

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		web.Error(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	file, ok := utils.GetFileFromContext(r.Context())
	if !ok {
		web.Error(w, http.StatusBadRequest, "Blog image is required")
		return
	}

	author, err := h.Users.FindByID(userID)
	if err != nil {
		web.Error(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	// The upload must confirm before anything is written to the database.
	imageURL, err := h.Uploader.Upload(r.Context(), file.Data, imageFolder, true)
	if err != nil {
		log.Printf("create blog: image upload failed: %v", err)
		web.Error(w, http.StatusInternalServerError, "Image upload failed. Please try again.")
		return
	}

	blog := &Blog{
		ID:          uuid.NewString(),
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Image:       imageURL,
		AuthorID:    author.ID,
	}
	if err := h.Blogs.Create(blog); err != nil {
		log.Printf("create blog: insert failed: %v", err)
		web.Error(w, http.StatusInternalServerError, "Server error")
		return
	}
	blog.Author = *author

	web.JSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Blog created successfully",
		"blog":    payload(blog),
	})
}

func (h *Handler) GetBlogsHandler(w http.ResponseWriter, r *http.Request) {
	blogs, err := h.Blogs.ListAll()
	if err != nil {
		log.Printf("get blogs: query failed: %v", err)
		web.Error(w, http.StatusInternalServerError, "Server error")
		return
	}

	web.JSON(w, http.StatusOK, payloads(blogs))
}

func (h *Handler) GetBlogHandler(w http.ResponseWriter, r *http.Request) {
	blog, err := h.Blogs.FindByID(chi.URLParam(r, "id"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		web.Error(w, http.StatusNotFound, "Blog not found")
		return
	}
	if err != nil {
		log.Printf("blog lookup failed: %v", err)
		web.Error(w, http.StatusInternalServerError, "Server error")
		return
	}

	web.JSON(w, http.StatusOK, payload(blog))
}

func (h *Handler) UpdateBlogHandler(w http.ResponseWriter, r *http.Request) {
	if errs := validateBlogInput(r); len(errs) > 0 {
		web.ValidationErrors(w, errs)
		return
	}

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		web.Error(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	blog, err := h.Blogs.FindByID(chi.URLParam(r, "id"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		web.Error(w, http.StatusNotFound, "Blog not found")
		return
	}
	if err != nil {
		log.Printf("blog lookup failed: %v", err)
		web.Error(w, http.StatusInternalServerError, "Server error")
		return
	}

	if blog.AuthorID != userID {
		web.Error(w, http.StatusForbidden, "Not authorized")
		return
	}

	// Without a new file the stored image URL is kept verbatim.
	imageURL := blog.Image
	if file, ok := utils.GetFileFromContext(r.Context()); ok {
		imageURL, err = h.Uploader.Upload(r.Context(), file.Data, imageFolder, true)
		if err != nil {
			log.Printf("update blog: image upload failed: %v", err)
			web.Error(w, http.StatusInternalServerError, "Image upload failed. Please try again.")
			return
		}
	}

	blog.Title = r.FormValue("title")
	blog.Description = r.FormValue("description")
	blog.Image = imageURL

	if err := h.Blogs.Update(blog); err != nil {
		log.Printf("update blog: update failed: %v", err)
		web.Error(w, http.StatusInternalServerError, "Server error")
		return
	}

	web.JSON(w, http.StatusOK, map[string]interface{}{
		"message": "Blog updated successfully",
		"blog":    payload(blog),
	})
}

func (h *Handler) DeleteBlogHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		web.Error(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	blog, err := h.Blogs.FindByID(chi.URLParam(r, "id"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		web.Error(w, http.StatusNotFound, "Blog not found")
		return
	}
	if err != nil {
		log.Printf("blog lookup failed: %v", err)
		web.Error(w, http.StatusInternalServerError, "Server error")
		return
	}

	if blog.AuthorID != userID {
		web.Error(w, http.StatusForbidden, "Not authorized")
		return
	}

	if err := h.Blogs.Delete(blog.ID); err != nil {
		log.Printf("delete blog: delete failed: %v", err)
		web.Error(w, http.StatusInternalServerError, "Server error")
		return
	}

	web.JSON(w, http.StatusOK, map[string]string{"message": "Blog deleted successfully"})
}

func (h *Handler) GetUserBlogsHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		web.Error(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	blogs, err := h.Blogs.ListByAuthor(userID)
	if err != nil {
		log.Printf("get user blogs: query failed: %v", err)
		web.Error(w, http.StatusInternalServerError, "Server error")
		return
	}

	web.JSON(w, http.StatusOK, payloads(blogs))
}
