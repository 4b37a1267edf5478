package database

import (
	"fmt"
	"log"

	"github.com/joanvup/MUN-Snack-Manager/internal/config"
	"github.com/joanvup/MUN-Snack-Manager/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Connect(cfg *config.Config) *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	log.Println("database connected")
	return db
}

func AutoMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&models.User{},
		&models.Committee{},
		&models.Country{},
		&models.Institution{},
		&models.Participant{},
		&models.EventConfig{},
		&models.Redemption{},
	)
	if err != nil {
		log.Fatalf("failed to auto-migrate: %v", err)
	}
	log.Println("database migrated")
}

// Seed creates the admin account and the event configuration row on
// first run so the API is usable before any other data is loaded.
func Seed(db *gorm.DB, cfg *config.Config) {
	var userCount int64
	db.Model(&models.User{}).Count(&userCount)
	if userCount == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("failed to hash admin password: %v", err)
		}
		admin := models.User{
			Username:     "admin",
			PasswordHash: string(hash),
			Role:         models.RoleAdmin,
		}
		if err := db.Create(&admin).Error; err != nil {
			log.Fatalf("failed to seed admin user: %v", err)
		}
		log.Println("seeded admin user")
	}

	var configCount int64
	db.Model(&models.EventConfig{}).Count(&configCount)
	if configCount == 0 {
		eventConfig := models.EventConfig{
			EventName:       "MUN Event",
			InitialBalance:  6,
			CooldownMinutes: 60,
		}
		if err := db.Create(&eventConfig).Error; err != nil {
			log.Fatalf("failed to seed event config: %v", err)
		}
		log.Println("seeded event config")
	}
}
