// seed bootstraps the first superAdmin account so the API is usable on a
// fresh database.
//
// Usage: go run ./cmd/seed
// Reads SEED_PHONE, SEED_PASSWORD and SEED_NAME from the environment;
// defaults are for local development only.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/stockflow/stockflow-api/internal/domain/entity"
	"github.com/stockflow/stockflow-api/internal/infrastructure/postgres"
	"github.com/stockflow/stockflow-api/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load configuration: %v\n", err)
		os.Exit(1)
	}

	phone := envOr("SEED_PHONE", "0700000000")
	password := envOr("SEED_PASSWORD", "changeme123")
	name := envOr("SEED_NAME", "Head Office")

	ctx := context.Background()

	if err := postgres.Migrate(cfg.DB); err != nil {
		fmt.Fprintf(os.Stderr, "migrations: %v\n", err)
		os.Exit(1)
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "PostgreSQL connection: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)

	existing, err := userRepo.GetByPhone(phone)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lookup: %v\n", err)
		os.Exit(1)
	}
	if existing != nil {
		fmt.Printf("superAdmin %s already exists, nothing to do\n", phone)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hash password: %v\n", err)
		os.Exit(1)
	}

	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		FullName:     name,
		PhoneNumber:  phone,
		PasswordHash: string(hash),
		Role:         entity.RoleSuperAdmin,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := userRepo.Create(user); err != nil {
		fmt.Fprintf(os.Stderr, "create superAdmin: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("superAdmin %s created\n", phone)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
