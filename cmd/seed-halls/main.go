// seed-halls migrates the schema, installs the fixed hall set (delete-all then
// insert, in one transaction) and optionally bootstraps an admin account from
// ADMIN_EMAIL/ADMIN_USERNAME/ADMIN_PASSWORD.
package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"hall-booking-api/config"
	"hall-booking-api/models"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config.InitDB()

	if err := config.DB.AutoMigrate(
		&models.User{},
		&models.Hall{},
		&models.BookingRequest{},
		&models.BookingRequestHall{},
		&models.Notification{},
	); err != nil {
		log.Fatalf("Schema migration failed: %v", err)
	}

	halls := models.DefaultHalls()
	for i := range halls {
		halls[i].IsActive = true
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.BookingRequestHall{}).Error; err != nil {
			return err
		}
		if err := tx.Where("1 = 1").Delete(&models.Hall{}).Error; err != nil {
			return err
		}
		return tx.Create(&halls).Error
	})
	if err != nil {
		log.Fatalf("Hall reset failed: %v", err)
	}
	log.Printf("Installed %d halls", len(halls))

	seedAdmin()
}

func seedAdmin() {
	email := os.Getenv("ADMIN_EMAIL")
	username := os.Getenv("ADMIN_USERNAME")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || username == "" || password == "" {
		log.Println("ADMIN_EMAIL/ADMIN_USERNAME/ADMIN_PASSWORD not set, skipping admin bootstrap")
		return
	}

	var existing models.User
	if err := config.DB.Where("email = ?", email).First(&existing).Error; err == nil {
		log.Printf("Admin %s already exists, skipping", email)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Password hashing failed: %v", err)
	}

	admin := models.User{
		Username:        username,
		Email:           email,
		Password:        string(hash),
		Role:            models.RoleAdmin,
		IsActive:        true,
		IsEmailVerified: true,
	}
	if err := config.DB.Create(&admin).Error; err != nil {
		log.Fatalf("Admin bootstrap failed: %v", err)
	}
	log.Printf("Created admin account %s", email)
}
