package blogs

import (
	"time"

	"github.com/InkwellLabs/inkwell-backend/internal/auth"
)

type Blog struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"not null" json:"description"`
	Image       string    `json:"image"`
	AuthorID    string    `gorm:"not null;index" json:"-"`
	Author      auth.User `gorm:"foreignKey:AuthorID" json:"-"`
	CreatedAt   time.Time `json:"createdAt"`
}

// AuthorPayload is the author shape embedded in blog responses: id and
// email only, never the stored password hash.
type AuthorPayload struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type BlogPayload struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Image       string        `json:"image"`
	Author      AuthorPayload `json:"author"`
	CreatedAt   time.Time     `json:"createdAt"`
}

func payload(b *Blog) BlogPayload {
	return BlogPayload{
		ID:          b.ID,
		Title:       b.Title,
		Description: b.Description,
		Image:       b.Image,
		Author:      AuthorPayload{ID: b.AuthorID, Email: b.Author.Email},
		CreatedAt:   b.CreatedAt,
	}
}

func payloads(blogs []Blog) []BlogPayload {
	out := make([]BlogPayload, 0, len(blogs))
	for i := range blogs {
		out = append(out, payload(&blogs[i]))
	}
	return out
}
