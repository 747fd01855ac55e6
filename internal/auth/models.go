package auth

import "time"

type User struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	Password     string    `gorm:"not null" json:"-"`
	ProfileImage string    `json:"profileImage"`
	CreatedAt    time.Time `json:"createdAt"`
}

// UserPayload is the user shape returned by register and login: id, email
// and profile image only.
type UserPayload struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	ProfileImage string `json:"profileImage"`
}

func payload(u *User) UserPayload {
	return UserPayload{ID: u.ID, Email: u.Email, ProfileImage: u.ProfileImage}
}
