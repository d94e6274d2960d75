package repository

import (
	"context"

	"farmstand/internal/model"
)

// UserRepository defines the interface for user data access operations.
type UserRepository interface {
	// Create inserts a new user. The email column's unique constraint
	// is the authoritative duplicate guard; a violation surfaces as
	// model.ErrEmailTaken.
	Create(ctx context.Context, user *model.User) error

	// GetByEmail retrieves a user by email. Returns nil if not found.
	GetByEmail(ctx context.Context, email string) (*model.User, error)

	// GetByID retrieves a user by ID. Returns nil if not found.
	GetByID(ctx context.Context, id int64) (*model.User, error)
}

// ProductRepository defines the interface for product data access operations.
type ProductRepository interface {
	// Create inserts a new product.
	Create(ctx context.Context, product *model.Product) error

	// GetAll retrieves products with pagination support, ordered by id.
	GetAll(ctx context.Context, limit, offset int) ([]model.Product, error)

	// GetByID retrieves a single product by its ID. Returns nil if not found.
	GetByID(ctx context.Context, id int64) (*model.Product, error)

	// GetByOwner retrieves all products listed by the given farmer.
	GetByOwner(ctx context.Context, ownerID int64) ([]model.Product, error)
}

// OrderRepository defines the interface for order data access operations.
type OrderRepository interface {
	// Create inserts a new order.
	Create(ctx context.Context, order *model.Order) error

	// GetByID retrieves an order by its ID. Returns nil if not found.
	GetByID(ctx context.Context, id int64) (*model.Order, error)
}

// ReviewRepository defines the interface for review data access operations.
type ReviewRepository interface {
	// Create inserts a new review. Each order accepts at most one review.
	Create(ctx context.Context, review *model.Review) error

	// GetByOrderID retrieves the review for an order. Returns nil if
	// the order has no review.
	GetByOrderID(ctx context.Context, orderID int64) (*model.Review, error)
}
