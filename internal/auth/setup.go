package auth

import (
	"log"

	"gorm.io/gorm"
)

func Init(db *gorm.DB) {
	if err := db.AutoMigrate(&User{}); err != nil {
		log.Fatal("Failed to auto-migrate users table: ", err)
	}
}
