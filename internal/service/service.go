package service

import (
	"context"

	"farmstand/internal/model"
)

// UserService defines operations for registration and login.
type UserService interface {
	// Register creates a new user with a hashed password.
	// Returns model.ErrEmailTaken if the email is already registered.
	Register(ctx context.Context, email, fullName, password string, isFarmer bool) (*model.User, error)

	// Login verifies credentials and returns the matching user.
	// Unknown email and wrong password both return
	// model.ErrInvalidCredentials; callers cannot tell them apart.
	Login(ctx context.Context, email, password string) (*model.User, error)
}

// ProductService defines operations for product management.
type ProductService interface {
	// List retrieves products with pagination. Limit defaults to 100
	// and is capped at 100 server-side.
	List(ctx context.Context, limit, offset int) ([]model.Product, error)

	// ListByOwner retrieves the products listed by the given farmer.
	ListByOwner(ctx context.Context, ownerID int64) ([]model.Product, error)

	// Create lists a new product for the given owner.
	Create(ctx context.Context, name string, description *string, price float64, imageURL *string, ownerID int64) (*model.Product, error)
}

// OrderService defines operations for order management.
type OrderService interface {
	// Create places an order for one product, with status "new" and
	// quantity 1.
	Create(ctx context.Context, productID int64, address string, customerID int64) (*model.Order, error)

	// GetByID retrieves an order along with its review, if any.
	GetByID(ctx context.Context, id int64) (*model.OrderDetail, error)
}
