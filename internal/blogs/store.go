package blogs

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BlogStore is the persistence surface the handlers need. gorm.ErrRecordNotFound
// is the contract for missing blogs.
type BlogStore interface {
	Create(b *Blog) error
	FindByID(id string) (*Blog, error)
	ListAll() ([]Blog, error)
	ListByAuthor(authorID string) ([]Blog, error)
	Update(b *Blog) error
	Delete(id string) error
}

type GormBlogStore struct {
	db *gorm.DB
}

func NewGormBlogStore(db *gorm.DB) *GormBlogStore {
	return &GormBlogStore{db: db}
}

func (s *GormBlogStore) Create(b *Blog) error {
	// Author is preloaded for responses only, never written through here.
	return s.db.Omit(clause.Associations).Create(b).Error
}

func (s *GormBlogStore) FindByID(id string) (*Blog, error) {
	var b Blog
	if err := s.db.Preload("Author").First(&b, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (s *GormBlogStore) ListAll() ([]Blog, error) {
	var blogs []Blog
	err := s.db.Preload("Author").Order("created_at DESC").Find(&blogs).Error
	return blogs, err
}

func (s *GormBlogStore) ListByAuthor(authorID string) ([]Blog, error) {
	var blogs []Blog
	err := s.db.Preload("Author").Where("author_id = ?", authorID).
		Order("created_at DESC").Find(&blogs).Error
	return blogs, err
}

func (s *GormBlogStore) Update(b *Blog) error {
	return s.db.Model(&Blog{ID: b.ID}).Updates(map[string]interface{}{
		"title":       b.Title,
		"description": b.Description,
		"image":       b.Image,
	}).Error
}

func (s *GormBlogStore) Delete(id string) error {
	return s.db.Delete(&Blog{}, "id = ?", id).Error
}
