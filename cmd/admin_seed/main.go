// Command admin_seed creates the initial super-admin user with a
// USR-prefixed sequenced code.
package main

import (
	"context"
	"log"
	"os"

	"simpasar/internal/config"
	"simpasar/internal/models"
	"simpasar/internal/repositories"
	"simpasar/internal/services/sequence"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	config.LoadEnv()

	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	adminName := config.GetEnv("ADMIN_NAME", "Super Admin")

	if adminEmail == "" || adminPassword == "" {
		log.Fatal("ADMIN_EMAIL and ADMIN_PASSWORD must be set in environment")
	}

	if err := repositories.InitDB(); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer func() {
		if repositories.DB != nil {
			if sqlDB, err := repositories.DB.DB(); err == nil {
				if err := sqlDB.Close(); err != nil {
					log.Printf("⚠️ Failed to close PostgreSQL connection: %v", err)
				}
			}
		}
		if repositories.CacheService != nil {
			if err := repositories.CacheService.Close(); err != nil {
				log.Printf("⚠️ Failed to close Redis connection: %v", err)
			}
		}
	}()

	ctx := context.Background()
	userRepo := repositories.NewUserRepository(repositories.DB)

	if existing, err := userRepo.GetByEmail(ctx, adminEmail); err == nil {
		log.Printf("Admin user already exists: %s", existing.UserCode)
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	sequencer := sequence.NewService(repositories.NewSequenceStore(repositories.DB))
	code, err := sequencer.Mint(ctx, sequence.ForSuperAdmin(), func(code string) error {
		return userRepo.Create(ctx, &models.User{
			UserCode: code,
			Email:    adminEmail,
			Password: string(hashedPassword),
			Name:     adminName,
			Role:     models.RoleSuperAdmin,
			Status:   "active",
		})
	})
	if err != nil {
		log.Fatal("Failed to create admin user:", err)
	}

	log.Printf("✅ Super admin created: %s (%s)", code, adminEmail)
}
