package service

import (
	"context"
	"fmt"

	"farmstand/internal/model"
	"farmstand/internal/repository"

	"github.com/rs/zerolog"
)

// orderService implements OrderService.
type orderService struct {
	orderRepo  repository.OrderRepository
	reviewRepo repository.ReviewRepository
	logger     zerolog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(orderRepo repository.OrderRepository, reviewRepo repository.ReviewRepository, logger zerolog.Logger) OrderService {
	return &orderService{
		orderRepo:  orderRepo,
		reviewRepo: reviewRepo,
		logger:     logger.With().Str("service", "order").Logger(),
	}
}

// Create places an order for one product. Status and quantity are
// fixed at "new" and 1 regardless of input. A customer ordering their
// own product is permitted.
func (s *orderService) Create(ctx context.Context, productID int64, address string, customerID int64) (*model.Order, error) {
	if address == "" {
		return nil, fmt.Errorf("delivery address is required")
	}

	order := &model.Order{
		CustomerID: customerID,
		ProductID:  productID,
		Status:     model.OrderStatusNew,
		Quantity:   1,
		Address:    address,
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		s.logger.Error().
			Err(err).
			Int64("product_id", productID).
			Int64("customer_id", customerID).
			Msg("failed to create order")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	s.logger.Info().
		Int64("order_id", order.ID).
		Int64("product_id", productID).
		Int64("customer_id", customerID).
		Msg("order created")

	return order, nil
}

// GetByID retrieves an order along with its review, if any.
func (s *orderService) GetByID(ctx context.Context, id int64) (*model.OrderDetail, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int64("order_id", id).Msg("failed to get order")
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	if order == nil {
		return nil, model.ErrOrderNotFound
	}

	review, err := s.reviewRepo.GetByOrderID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int64("order_id", id).Msg("failed to get review for order")
		return nil, fmt.Errorf("failed to get review for order: %w", err)
	}

	return &model.OrderDetail{Order: *order, Review: review}, nil
}
