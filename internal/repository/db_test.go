package repository

import (
	"context"
	"testing"
	"time"

	"farmstand/internal/database"
	"farmstand/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupTestDB creates a PostgreSQL testcontainer with the application
// schema applied and returns a connection pool.
func setupTestDB(t *testing.T) (*pgxpool.Pool, func()) {
	t.Helper()

	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)

	require.NoError(t, database.Migrate(ctx, pool, zerolog.Nop()))

	cleanup := func() {
		pool.Close()
		_ = pgContainer.Terminate(ctx)
	}

	return pool, cleanup
}

// seedUser inserts a user directly and returns it with its generated ID.
func seedUser(t *testing.T, pool *pgxpool.Pool, email, fullName string, isFarmer bool) *model.User {
	t.Helper()

	u := &model.User{
		Email:          email,
		HashedPassword: "$2a$10$fixturefixturefixturefixturefix",
		FullName:       fullName,
		IsFarmer:       isFarmer,
	}

	query := `
		INSERT INTO users (email, hashed_password, full_name, is_farmer)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	err := pool.QueryRow(context.Background(), query,
		u.Email, u.HashedPassword, u.FullName, u.IsFarmer,
	).Scan(&u.ID, &u.CreatedAt)
	require.NoError(t, err)

	return u
}

// seedProduct inserts a product directly and returns it with its generated ID.
func seedProduct(t *testing.T, pool *pgxpool.Pool, name string, price float64, ownerID int64) *model.Product {
	t.Helper()

	p := &model.Product{
		Name:    name,
		Price:   price,
		OwnerID: ownerID,
	}

	query := `
		INSERT INTO products (name, price, owner_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	err := pool.QueryRow(context.Background(), query, p.Name, p.Price, p.OwnerID).
		Scan(&p.ID, &p.CreatedAt)
	require.NoError(t, err)

	return p
}
