package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rabbitmq/amqp091-go"

	"restaurant-orders/internal/logger"
	"restaurant-orders/internal/models"
)

// routingKeyOrderCreated is the routing key for order creation events.
const routingKeyOrderCreated = "order.created"

// Publisher publishes order lifecycle events to RabbitMQ
type Publisher struct {
	conn   *Connection
	logger *logger.Logger
}

// NewPublisher creates a new event publisher
func NewPublisher(conn *Connection, log *logger.Logger) *Publisher {
	return &Publisher{
		conn:   conn,
		logger: log,
	}
}

// PublishOrderCreated publishes an order-created event to the orders
// topic exchange.
func (p *Publisher) PublishOrderCreated(ctx context.Context, event models.OrderCreatedEvent) error {
	// Check if connection is alive
	if p.conn.IsClosed() {
		if err := p.conn.Reconnect(); err != nil {
			return fmt.Errorf("failed to reconnect: %w", err)
		}
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	publishing := amqp091.Publishing{
		ContentType:  "application/json",
		Body:         body,
		DeliveryMode: 2, // Persistent
		Timestamp:    time.Now(),
	}

	// Publish with timeout
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	err = p.conn.Channel().PublishWithContext(
		ctx,
		ordersExchange,
		routingKeyOrderCreated,
		false, // mandatory
		false, // immediate
		publishing,
	)
	if err != nil {
		p.logger.Error("event_publish_failed",
			fmt.Sprintf("Failed to publish event to exchange %s", ordersExchange),
			"", err, map[string]interface{}{
				"exchange":    ordersExchange,
				"routing_key": routingKeyOrderCreated,
				"order_id":    event.OrderID,
			})
		return fmt.Errorf("failed to publish event: %w", err)
	}

	p.logger.Debug("event_published",
		fmt.Sprintf("Published event to exchange %s", ordersExchange),
		"", map[string]interface{}{
			"exchange":    ordersExchange,
			"routing_key": routingKeyOrderCreated,
			"order_id":    event.OrderID,
		})

	return nil
}

// Close closes the publisher's connection
func (p *Publisher) Close() error {
	return p.conn.Close()
}
