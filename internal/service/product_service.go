package service

import (
	"context"
	"fmt"

	"farmstand/internal/model"
	"farmstand/internal/repository"

	"github.com/rs/zerolog"
)

const (
	defaultListLimit = 100
	maxListLimit     = 100
)

// productService implements ProductService.
type productService struct {
	productRepo repository.ProductRepository
	logger      zerolog.Logger
}

// NewProductService creates a new product service.
func NewProductService(productRepo repository.ProductRepository, logger zerolog.Logger) ProductService {
	return &productService{
		productRepo: productRepo,
		logger:      logger.With().Str("service", "product").Logger(),
	}
}

// List retrieves products with pagination. Limit is capped server-side
// to keep a single request from scanning the whole table.
func (s *productService) List(ctx context.Context, limit, offset int) ([]model.Product, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}

	products, err := s.productRepo.GetAll(ctx, limit, offset)
	if err != nil {
		s.logger.Error().Err(err).
			Int("limit", limit).
			Int("offset", offset).
			Msg("failed to list products")
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	s.logger.Debug().
		Int("count", len(products)).
		Int("limit", limit).
		Int("offset", offset).
		Msg("listed products")

	return products, nil
}

// ListByOwner retrieves the products listed by the given farmer.
func (s *productService) ListByOwner(ctx context.Context, ownerID int64) ([]model.Product, error) {
	products, err := s.productRepo.GetByOwner(ctx, ownerID)
	if err != nil {
		s.logger.Error().Err(err).Int64("owner_id", ownerID).Msg("failed to list products by owner")
		return nil, fmt.Errorf("failed to list products by owner: %w", err)
	}

	return products, nil
}

// Create lists a new product. Negative prices are rejected; zero is
// allowed (give-aways).
func (s *productService) Create(ctx context.Context, name string, description *string, price float64, imageURL *string, ownerID int64) (*model.Product, error) {
	if name == "" {
		return nil, fmt.Errorf("product name is required")
	}
	if price < 0 {
		s.logger.Warn().Float64("price", price).Msg("negative price rejected")
		return nil, model.ErrInvalidPrice
	}

	product := &model.Product{
		Name:        name,
		Description: description,
		Price:       price,
		ImageURL:    imageURL,
		OwnerID:     ownerID,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		s.logger.Error().Err(err).Int64("owner_id", ownerID).Msg("failed to create product")
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.logger.Info().
		Int64("product_id", product.ID).
		Int64("owner_id", ownerID).
		Msg("product created")

	return product, nil
}
