package order

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"restaurant-orders/internal/logger"
	"restaurant-orders/internal/models"
)

// Service provides order creation and lookup
type Service struct {
	store     OrderStore
	publisher EventPublisher
	logger    *logger.Logger
}

// NewService creates a new order service. The publisher may be nil
// when messaging is not configured.
func NewService(store OrderStore, publisher EventPublisher, log *logger.Logger) *Service {
	return &Service{
		store:     store,
		publisher: publisher,
		logger:    log,
	}
}

// CreateOrder validates the request, computes the total with decimal
// arithmetic, and persists header and items atomically. Validation
// happens before any database work.
func (s *Service) CreateOrder(ctx context.Context, req *models.CreateOrderRequest, requestID string) (*models.CreateOrderResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	order := &models.Order{
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		CustomerEmail: req.CustomerEmail,
		TotalAmount:   req.TotalAmount(),
		Status:        models.StatusPending,
	}

	items := make([]models.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, models.OrderItem{
			DishID:   int(item.ID),
			DishName: item.Name,
			Quantity: item.Quantity,
			Price:    decimal.NewFromFloat(item.Price),
		})
	}

	if err := s.store.CreateOrder(ctx, order, items); err != nil {
		s.logger.Error("order_creation_failed", "Failed to persist order", requestID, err, map[string]interface{}{
			"customer_name": req.CustomerName,
			"item_count":    len(req.Items),
		})
		return nil, fmt.Errorf("database error: %w", err)
	}

	s.logger.Info("order_created", "Order created", requestID, map[string]interface{}{
		"order_id":     order.ID,
		"total_amount": order.TotalAmount.String(),
	})

	s.publishOrderCreated(ctx, order, items, requestID)

	return &models.CreateOrderResponse{
		OrderID: order.ID,
		Status:  order.Status,
		Message: "Order created successfully",
	}, nil
}

// publishOrderCreated emits the order event best-effort. The order is
// already committed, so a publish failure is logged and swallowed.
func (s *Service) publishOrderCreated(ctx context.Context, order *models.Order, items []models.OrderItem, requestID string) {
	if s.publisher == nil {
		return
	}

	event := models.OrderCreatedEvent{
		OrderID:      order.ID,
		CustomerName: order.CustomerName,
		TotalAmount:  order.TotalAmount.InexactFloat64(),
		Status:       order.Status,
		CreatedAt:    order.CreatedAt,
	}
	for _, item := range items {
		event.Items = append(event.Items, models.OrderItemEvent{
			DishName: item.DishName,
			Quantity: item.Quantity,
			Price:    item.Price.InexactFloat64(),
		})
	}

	if err := s.publisher.PublishOrderCreated(ctx, event); err != nil {
		s.logger.Error("event_publish_failed", "Failed to publish order created event", requestID, err, map[string]interface{}{
			"order_id": order.ID,
		})
	}
}

// GetOrder fetches an order header with its items and assembles the
// combined view.
func (s *Service) GetOrder(ctx context.Context, id int, requestID string) (*models.OrderView, error) {
	order, err := s.store.GetOrder(ctx, id)
	if err != nil {
		if errors.Is(err, models.ErrOrderNotFound) {
			return nil, err
		}
		s.logger.Error("db_query_failed", "Failed to query order", requestID, err, map[string]interface{}{
			"order_id": id,
		})
		return nil, fmt.Errorf("database error: %w", err)
	}

	items, err := s.store.ListOrderItems(ctx, id)
	if err != nil {
		s.logger.Error("db_query_failed", "Failed to query order items", requestID, err, map[string]interface{}{
			"order_id": id,
		})
		return nil, fmt.Errorf("database error: %w", err)
	}

	view := order.View(items)
	return &view, nil
}

// HealthCheck checks the health of dependencies
func (s *Service) HealthCheck(ctx context.Context) bool {
	if err := s.store.Ping(ctx); err != nil {
		s.logger.Error("health_check_failed", "Database ping failed", "", err, nil)
		return false
	}
	return true
}
