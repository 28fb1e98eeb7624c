package db

import (
	"log"
	"os"
	"upishield/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		// Fallback for local dev if not set
		dsn = "host=localhost user=postgres password=postgres dbname=upishield port=5432 sslmode=disable TimeZone=Asia/Kolkata"
	}

	var err error
	// TranslateError lets the services match unique-index violations as
	// gorm.ErrDuplicatedKey instead of driver-specific error codes.
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Println("Database connection established")

	// Auto Migrate
	err = DB.AutoMigrate(
		&models.User{},
		&models.UpiIdentity{},
		&models.Report{},
		&models.Verification{},
		&models.VerificationVote{},
		&models.UserReputation{},
		&models.ContributionLog{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")
}
