package auth

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/InkwellLabs/inkwell-backend/internal/storage"
	"github.com/InkwellLabs/inkwell-backend/internal/token"
	"github.com/InkwellLabs/inkwell-backend/internal/utils"
	"github.com/InkwellLabs/inkwell-backend/internal/validate"
	"github.com/InkwellLabs/inkwell-backend/internal/web"
)

// profileFolder is the blob store folder for profile images. They are
// uploaded as-is, without the blog-image transform.
const profileFolder = "blog_profiles"

type Handler struct {
	Users    UserStore
	Tokens   *token.Manager
	Uploader storage.Uploader
}

func NewHandler(users UserStore, tokens *token.Manager, uploader storage.Uploader) *Handler {
	return &Handler{Users: users, Tokens: tokens, Uploader: uploader}
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// decodeCredentials accepts either a JSON body or form fields; registration
// arrives as multipart when a profile image is attached, login as JSON.
// A JSON body that fails to parse is an error, not empty credentials.
func decodeCredentials(r *http.Request) (credentials, error) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		var creds credentials
		if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
			return credentials{}, err
		}
		return creds, nil
	}
	return credentials{
		Email:    r.FormValue("email"),
		Password: r.FormValue("password"),
	}, nil
}

func (h *Handler) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	creds, err := decodeCredentials(r)
	if err != nil {
		web.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	errs := validate.Apply(func(field string) string {
		switch field {
		case "email":
			return creds.Email
		default:
			return creds.Password
		}
	},
		validate.Email("email", "Please enter a valid email"),
		validate.MinLength("password", 6, "Password must be at least 6 characters long"),
	)
	if len(errs) > 0 {
		web.ValidationErrors(w, errs)
		return
	}

	// Duplicate check happens before any hashing or upload work.
	if _, err := h.Users.FindByEmail(creds.Email); err == nil {
		web.Error(w, http.StatusBadRequest, "User already exists")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("register: user lookup failed: %v", err)
		web.Error(w, http.StatusInternalServerError, "Server error")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("register: hashing failed: %v", err)
		web.Error(w, http.StatusInternalServerError, "Server error")
		return
	}

	profileImageURL := ""
	if file, ok := utils.GetFileFromContext(r.Context()); ok {
		url, err := h.Uploader.Upload(r.Context(), file.Data, profileFolder, false)
		if err != nil {
			log.Printf("register: image upload failed: %v", err)
			web.Error(w, http.StatusInternalServerError, "Image upload failed. Please try again.")
			return
		}
		profileImageURL = url
	}

	user := &User{
		ID:           uuid.NewString(),
		Email:        creds.Email,
		Password:     string(hashed),
		ProfileImage: profileImageURL,
	}
	if err := h.Users.Create(user); err != nil {
		log.Printf("register: insert failed: %v", err)
		web.Error(w, http.StatusInternalServerError, "Server error")
		return
	}

	tok, err := h.Tokens.Generate(user.ID)
	if err != nil {
		log.Printf("register: token generation failed: %v", err)
		web.Error(w, http.StatusInternalServerError, "Server error")
		return
	}

	web.JSON(w, http.StatusCreated, map[string]interface{}{
		"message": "User registered successfully",
		"token":   tok,
		"user":    payload(user),
	})
}

func (h *Handler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	creds, err := decodeCredentials(r)
	if err != nil {
		web.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	errs := validate.Apply(func(field string) string {
		switch field {
		case "email":
			return creds.Email
		default:
			return creds.Password
		}
	},
		validate.Email("email", "Please enter a valid email"),
		validate.Required("password", "Password is required"),
	)
	if len(errs) > 0 {
		web.ValidationErrors(w, errs)
		return
	}

	// Same response for unknown email and wrong password. Store failures
	// are server errors, not bad credentials.
	user, err := h.Users.FindByEmail(creds.Email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		web.Error(w, http.StatusBadRequest, "Invalid credentials")
		return
	}
	if err != nil {
		log.Printf("login: user lookup failed: %v", err)
		web.Error(w, http.StatusInternalServerError, "Server error")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(creds.Password)); err != nil {
		web.Error(w, http.StatusBadRequest, "Invalid credentials")
		return
	}

	tok, err := h.Tokens.Generate(user.ID)
	if err != nil {
		log.Printf("login: token generation failed: %v", err)
		web.Error(w, http.StatusInternalServerError, "Server error")
		return
	}

	web.JSON(w, http.StatusOK, map[string]interface{}{
		"message": "Login successful",
		"token":   tok,
		"user":    payload(user),
	})
}

func (h *Handler) ProfileHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		web.Error(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	user, err := h.Users.FindByID(userID)
	if err != nil {
		log.Printf("profile: user lookup failed: %v", err)
		web.Error(w, http.StatusInternalServerError, "Server error")
		return
	}

	// Password carries json:"-", so the full record is safe to return.
	web.JSON(w, http.StatusOK, user)
}
