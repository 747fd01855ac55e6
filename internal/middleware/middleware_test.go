package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/InkwellLabs/inkwell-backend/internal/middleware"
	"github.com/InkwellLabs/inkwell-backend/internal/utils"
)

// mockVerifier implements middleware.TokenVerifier without real signing.
type mockVerifier struct {
	userID string
	err    error
}

func (m mockVerifier) Verify(tokenString string) (string, error) {
	return m.userID, m.err
}

// mockFetcher implements middleware.UserFetcher without a database.
type mockFetcher struct {
	exists bool
	err    error
}

func (m mockFetcher) UserExists(id string) (bool, error) {
	return m.exists, m.err
}

// callWithHeader wraps a 200-OK inner handler in the auth middleware,
// optionally setting the Authorization header, and returns the recorded
// response.
func callWithHeader(t *testing.T, mw func(http.Handler) http.Handler, header string) *httptest.ResponseRecorder {
	t.Helper()

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	handler := mw(inner)
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	mw := middleware.AuthMiddleware(mockVerifier{userID: "u1"}, mockFetcher{exists: true})

	rec := callWithHeader(t, mw, "")

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_NotBearer(t *testing.T) {
	mw := middleware.AuthMiddleware(mockVerifier{userID: "u1"}, mockFetcher{exists: true})

	rec := callWithHeader(t, mw, "Basic dXNlcjpwYXNz")

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_BadToken(t *testing.T) {
	mw := middleware.AuthMiddleware(mockVerifier{err: errors.New("bad signature")}, mockFetcher{exists: true})

	rec := callWithHeader(t, mw, "Bearer whatever")

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Invalid token") {
		t.Errorf("expected generic message, got: %q", rec.Body.String())
	}
}

func TestAuthMiddleware_VanishedUser(t *testing.T) {
	mw := middleware.AuthMiddleware(mockVerifier{userID: "gone"}, mockFetcher{exists: false})

	rec := callWithHeader(t, mw, "Bearer sometoken")

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

// TestAuthMiddleware_SameBodyForAllFailures verifies the client cannot
// distinguish a missing token from a rejected one.
func TestAuthMiddleware_SameBodyForAllFailures(t *testing.T) {
	missing := callWithHeader(t,
		middleware.AuthMiddleware(mockVerifier{userID: "u1"}, mockFetcher{exists: true}), "")
	rejected := callWithHeader(t,
		middleware.AuthMiddleware(mockVerifier{err: errors.New("expired")}, mockFetcher{exists: true}),
		"Bearer expired-token")

	if missing.Body.String() != rejected.Body.String() {
		t.Errorf("failure bodies differ: %q vs %q", missing.Body.String(), rejected.Body.String())
	}
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	const wantUserID = "test-user-123"

	// inner handler reads and checks the userID from context
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, ok := utils.GetUserIDFromContext(r.Context())
		if !ok {
			http.Error(w, "userID not in context", http.StatusInternalServerError)
			return
		}
		if gotUserID != wantUserID {
			http.Error(w, "wrong userID in context: "+gotUserID, http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	mw := middleware.AuthMiddleware(mockVerifier{userID: wantUserID}, mockFetcher{exists: true})
	handler := mw(inner)

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d, body: %s", rec.Code, rec.Body.String())
	}
}
