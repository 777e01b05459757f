package main

import (
	"context"
	"errors"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"shopadmin/internal/config"
	"shopadmin/internal/db"
	"shopadmin/internal/model"
	"shopadmin/internal/repository"
)

const defaultAdminEmail = "admin@example.com"

var starterCategories = []model.Category{
	{Name: "Apparel", Color: "#4f46e5"},
	{Name: "Accessories", Color: "#059669"},
	{Name: "Home", Color: "#d97706"},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.Admin{}, &model.Category{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()

	if err := seedAdmin(ctx, repository.NewAdminRepository(gormDB)); err != nil {
		log.Fatalf("Failed to seed admin: %v", err)
	}
	if err := seedCategories(ctx, repository.NewCategoryRepository(gormDB)); err != nil {
		log.Fatalf("Failed to seed categories: %v", err)
	}

	log.Println("Seed completed successfully!")
}

// seedAdmin creates the default super admin unless one already exists. The
// password comes from SEED_ADMIN_PASSWORD so no default secret ends up in
// version control.
func seedAdmin(ctx context.Context, repo repository.AdminRepository) error {
	email := envOr("SEED_ADMIN_EMAIL", defaultAdminEmail)

	if _, err := repo.FindByEmail(ctx, email); err == nil {
		log.Printf("Admin %s already exists, skipping", email)
		return nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		log.Fatal("SEED_ADMIN_PASSWORD must be set to create the default admin")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	if err != nil {
		return err
	}

	admin := &model.Admin{
		Name:         envOr("SEED_ADMIN_NAME", "Administrator"),
		Email:        email,
		PasswordHash: string(hashed),
		Role:         model.RoleSuperAdmin,
		Status:       model.StatusActive,
	}
	if err := repo.Create(ctx, admin); err != nil {
		return err
	}
	log.Printf("Created admin %s", email)
	return nil
}

// seedCategories inserts the starter categories that are missing.
func seedCategories(ctx context.Context, repo repository.CategoryRepository) error {
	created := 0
	for i := range starterCategories {
		category := starterCategories[i]
		if _, err := repo.FindByName(ctx, category.Name); err == nil {
			continue
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := repo.Create(ctx, &category); err != nil {
			return err
		}
		created++
	}
	log.Printf("Created %d starter categories", created)
	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
