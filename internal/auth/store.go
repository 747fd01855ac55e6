package auth

import (
	"gorm.io/gorm"
)

// UserStore is the persistence surface the handlers need. gorm.ErrRecordNotFound
// is the contract for missing users.
type UserStore interface {
	FindByEmail(email string) (*User, error)
	FindByID(id string) (*User, error)
	Create(user *User) error
}

type GormUserStore struct {
	db *gorm.DB
}

func NewGormUserStore(db *gorm.DB) *GormUserStore {
	return &GormUserStore{db: db}
}

func (s *GormUserStore) FindByEmail(email string) (*User, error) {
	var user User
	if err := s.db.First(&user, "email = ?", email).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *GormUserStore) FindByID(id string) (*User, error) {
	var user User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *GormUserStore) Create(user *User) error {
	return s.db.Create(user).Error
}

// UserExists satisfies the auth middleware's UserFetcher.
func (s *GormUserStore) UserExists(id string) (bool, error) {
	var count int64
	if err := s.db.Model(&User{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
