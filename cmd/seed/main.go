package main

import (
	"fmt"
	"log"
	"os"

	"wholesale-portal/internal/auth"
	"wholesale-portal/internal/client"
	"wholesale-portal/internal/config"
	"wholesale-portal/internal/model"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seeds the account store with the standard test accounts:
//
//	admin@wholesale.com / admin123 (ADMIN)
//	user@wholesale.com  / user123  (USER)
//
// Existing accounts are left untouched.
func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}

	db, err := client.InitDBClient(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("database init: ", err)
	}

	log.Println("Seeding database...")

	if err := seedUser(db, model.User{
		Email: "admin@wholesale.com",
		Name:  "Admin User",
		Role:  auth.RoleAdmin,
	}, "admin123"); err != nil {
		log.Fatal("seed admin: ", err)
	}
	log.Println("Admin user created: admin@wholesale.com")

	if err := seedUser(db, model.User{
		Email:   "user@wholesale.com",
		Name:    "Test User",
		Company: "Test Company",
		Phone:   "123-456-7890",
		Role:    auth.RoleUser,
	}, "user123"); err != nil {
		log.Fatal("seed user: ", err)
	}
	log.Println("Test user created: user@wholesale.com")

	log.Println("Database seeding completed!")
}

func seedUser(db *gorm.DB, user model.User, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	user.Password = string(hash)

	var existing model.User
	return db.Where("email = ?", user.Email).Attrs(user).FirstOrCreate(&existing).Error
}
