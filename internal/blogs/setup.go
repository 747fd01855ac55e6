package blogs

import (
	"log"

	"gorm.io/gorm"
)

func Init(db *gorm.DB) {
	if err := db.AutoMigrate(&Blog{}); err != nil {
		log.Fatal("Failed to auto-migrate blogs table: ", err)
	}
}
