package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/InkwellLabs/inkwell-backend/internal/utils"
	"github.com/InkwellLabs/inkwell-backend/internal/web"
)

// TokenVerifier checks a bearer token and returns the user id it encodes.
type TokenVerifier interface {
	Verify(tokenString string) (string, error)
}

// UserFetcher reports whether a user id still resolves to a live record.
type UserFetcher interface {
	UserExists(id string) (bool, error)
}

// AuthMiddleware extracts the bearer token from the Authorization header,
// verifies it, and confirms the encoded user still exists before injecting
// the user id into the request context. Every failure gets the same 401
// body so the client cannot tell a missing token from a bad one.
func AuthMiddleware(tokens TokenVerifier, users UserFetcher) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				web.Error(w, http.StatusUnauthorized, "Invalid token")
				return
			}

			userID, err := tokens.Verify(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				web.Error(w, http.StatusUnauthorized, "Invalid token")
				return
			}

			exists, err := users.UserExists(userID)
			if err != nil || !exists {
				web.Error(w, http.StatusUnauthorized, "Invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), utils.ContextUserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func CORSMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods",
			"GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers",
			"Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
