package database

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/IrfanFared/package-uas/config"
	"github.com/IrfanFared/package-uas/models"
)

var DB *gorm.DB

// Connect opens the academic store. The service is useless without it, so any
// failure here is fatal (early fail).
func Connect(cfg *config.Config) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	DB = db

	if err := DB.AutoMigrate(
		&models.Mahasiswa{},
		&models.Course{},
		&models.GradeWeight{},
		&models.Enrollment{},
	); err != nil {
		log.Fatalf("auto migrate failed: %v", err)
	}

	log.Printf("acad service: connected to PostgreSQL")
}
