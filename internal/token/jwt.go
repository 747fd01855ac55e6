package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims carries the registered claims plus the one custom claim this
// service needs: the id of the authenticated user.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"userId"`
}

// Manager signs and verifies session tokens (HS256).
type Manager struct {
	secret   []byte
	validity time.Duration
}

func NewManager(secret []byte, validity time.Duration) *Manager {
	return &Manager{secret: secret, validity: validity}
}

// Generate issues a signed token for userID that expires after the
// manager's validity duration.
func (m *Manager) Generate(userID string) (string, error) {
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.validity)),
		},
		UserID: userID,
	})

	signed, err := tok.SignedString(m.secret)
	if err != nil {
		return "", err
	}

	return signed, nil
}

// Verify checks the signature and expiry of tokenString and returns the
// user id it encodes.
func (m *Manager) Verify(tokenString string) (string, error) {
	claims := &Claims{}

	tok, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	})
	if err != nil {
		return "", err
	}

	if !tok.Valid {
		return "", ErrInvalidToken
	}

	return claims.UserID, nil
}
