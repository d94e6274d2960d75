package main

import (
	"context"
	"fmt"
	"log"

	"farmstand/internal/auth"
	"farmstand/internal/config"
	"farmstand/internal/database"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Seeds a local database with a couple of demo accounts and products
// so the site has something to show after a fresh start.
//
// Usage: go run scripts/seed_demo_data.go
//
// Demo logins:
//
//	alice@farm.example / alicepw (farmer)
//	bob@town.example   / bobpw   (customer)
func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := config.NewLogger(cfg.Logger)

	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool, logger); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	aliceID, err := seedUser(ctx, pool, "alice@farm.example", "Alice Greenfield", "alicepw", true)
	if err != nil {
		log.Fatalf("Failed to seed farmer account: %v", err)
	}

	if _, err := seedUser(ctx, pool, "bob@town.example", "Bob Miller", "bobpw", false); err != nil {
		log.Fatalf("Failed to seed customer account: %v", err)
	}

	products := []struct {
		name        string
		description string
		price       float64
	}{
		{"Eggs", "Free range, dozen", 3.50},
		{"Honey", "Wildflower, 500g jar", 8.00},
		{"Milk", "Whole milk, 1L bottle", 2.00},
		{"Tomatoes", "Heirloom, per kg", 4.25},
	}

	for _, p := range products {
		if err := seedProduct(ctx, pool, p.name, p.description, p.price, aliceID); err != nil {
			log.Fatalf("Failed to seed product %s: %v", p.name, err)
		}
		fmt.Printf("Created product %s at %.2f\n", p.name, p.price)
	}

	fmt.Println("\nDemo data seeded successfully!")
	fmt.Println("\nDemo logins:")
	fmt.Println("  - alice@farm.example / alicepw (farmer)")
	fmt.Println("  - bob@town.example   / bobpw   (customer)")
}

// seedUser inserts a user unless the email is already taken, returning
// the user's ID either way.
func seedUser(ctx context.Context, pool *pgxpool.Pool, email, fullName, password string, isFarmer bool) (int64, error) {
	var id int64
	err := pool.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&id)
	if err == nil {
		fmt.Printf("User %s already exists, skipping\n", email)
		return id, nil
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return 0, fmt.Errorf("failed to hash password: %w", err)
	}

	err = pool.QueryRow(ctx,
		"INSERT INTO users (email, hashed_password, full_name, is_farmer) VALUES ($1, $2, $3, $4) RETURNING id",
		email, hash, fullName, isFarmer,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert user: %w", err)
	}

	fmt.Printf("Created user %s\n", email)
	return id, nil
}

func seedProduct(ctx context.Context, pool *pgxpool.Pool, name, description string, price float64, ownerID int64) error {
	_, err := pool.Exec(ctx,
		"INSERT INTO products (name, description, price, owner_id) VALUES ($1, $2, $3, $4)",
		name, description, price, ownerID,
	)
	return err
}
