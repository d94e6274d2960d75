package repository

import (
	"context"
	"errors"
	"fmt"

	"farmstand/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// reviewRepository implements the ReviewRepository interface using PostgreSQL.
type reviewRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewReviewRepository creates a new PostgreSQL-backed review repository.
func NewReviewRepository(pool *pgxpool.Pool, logger zerolog.Logger) ReviewRepository {
	return &reviewRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "review").Logger(),
	}
}

// Create inserts a new review. The unique constraint on order_id keeps
// reviews one-to-one with orders.
func (r *reviewRepository) Create(ctx context.Context, review *model.Review) error {
	query := `
		INSERT INTO reviews (order_id, author_id, rating, comment)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.pool.QueryRow(ctx, query,
		review.OrderID,
		review.AuthorID,
		review.Rating,
		review.Comment,
	).Scan(&review.ID, &review.CreatedAt)
	if err != nil {
		r.logger.Error().
			Err(err).
			Int64("order_id", review.OrderID).
			Msg("failed to create review")
		return fmt.Errorf("failed to create review: %w", err)
	}

	r.logger.Debug().
		Int64("review_id", review.ID).
		Int64("order_id", review.OrderID).
		Msg("review created")

	return nil
}

// GetByOrderID retrieves the review for an order.
func (r *reviewRepository) GetByOrderID(ctx context.Context, orderID int64) (*model.Review, error) {
	query := `
		SELECT id, order_id, author_id, rating, comment, created_at
		FROM reviews
		WHERE order_id = $1
	`

	var rv model.Review
	err := r.pool.QueryRow(ctx, query, orderID).Scan(
		&rv.ID,
		&rv.OrderID,
		&rv.AuthorID,
		&rv.Rating,
		&rv.Comment,
		&rv.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		r.logger.Error().Err(err).Int64("order_id", orderID).Msg("failed to query review")
		return nil, fmt.Errorf("failed to query review: %w", err)
	}

	return &rv, nil
}
