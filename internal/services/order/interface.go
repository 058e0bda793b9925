package order

import (
	"context"

	"restaurant-orders/internal/models"
)

// OrderStore persists and reads orders. CreateOrder writes the header
// and its items in one transaction and fills in the order's generated
// id and created_at.
type OrderStore interface {
	CreateOrder(ctx context.Context, order *models.Order, items []models.OrderItem) error
	GetOrder(ctx context.Context, id int) (*models.Order, error)
	ListOrderItems(ctx context.Context, orderID int) ([]models.OrderItem, error)
	Ping(ctx context.Context) error
}

// EventPublisher announces committed orders to interested consumers.
type EventPublisher interface {
	PublishOrderCreated(ctx context.Context, event models.OrderCreatedEvent) error
}
