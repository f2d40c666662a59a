package main

import (
	"context"
	"flag"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"

	"news-cms/cmd/internal/logger"
	"news-cms/config"
	"news-cms/db"
	"news-cms/models"
	"news-cms/repositories"
)

// initadmin seeds or refreshes an admin account. The password comes from
// the ADMIN_PASSWORD environment variable so it never lands in shell
// history.
func main() {
	username := flag.String("username", "admin", "admin username")
	email := flag.String("email", "", "admin email")
	role := flag.String("role", models.RoleAdmin, "account role (admin or editor)")
	flag.Parse()

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		log.Fatal("ADMIN_PASSWORD is not set")
	}
	if len(password) < 8 {
		log.Fatal("ADMIN_PASSWORD must be at least 8 characters")
	}
	if *role != models.RoleAdmin && *role != models.RoleEditor {
		log.Fatalf("unknown role %q", *role)
	}

	config.InitApp()
	logger.InitFromEnv("LOG_LEVEL")

	ctx := context.Background()
	if err := db.Init(ctx); err != nil {
		log.Fatal("failed to initialize MongoDB:", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("hash password:", err)
	}

	userRepo := repositories.NewUserRepository(db.Database())
	res, err := userRepo.UpsertByUsername(ctx, &models.AdminUser{
		Username: *username,
		Email:    *email,
		Password: string(hash),
		Role:     *role,
		IsActive: true,
	})
	if err != nil {
		log.Fatal("upsert admin user:", err)
	}

	action := "updated"
	if res.UpsertedCount > 0 {
		action = "created"
	}
	logger.InfoWithFields("admin account "+action, logger.Fields{
		"username": *username,
		"role":     *role,
	})
}
