package order

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"restaurant-orders/internal/database"
	"restaurant-orders/internal/models"
)

// Store implements OrderStore on PostgreSQL
type Store struct {
	db *database.DB
}

// NewStore creates a new order store
func NewStore(db *database.DB) *Store {
	return &Store{db: db}
}

// CreateOrder inserts the order header and all of its items in a
// single transaction. Either everything commits or the rollback leaves
// no partial order behind.
func (s *Store) CreateOrder(ctx context.Context, order *models.Order, items []models.OrderItem) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, database.InsertOrderSQL,
		order.CustomerName,
		order.CustomerPhone,
		order.CustomerEmail,
		order.TotalAmount,
		order.Status,
	).Scan(&order.ID, &order.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}

	for _, item := range items {
		_, err := tx.Exec(ctx, database.InsertOrderItemSQL,
			order.ID,
			item.DishID,
			item.DishName,
			item.Quantity,
			item.Price,
		)
		if err != nil {
			return fmt.Errorf("failed to insert order item: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit order: %w", err)
	}

	return nil
}

// GetOrder fetches one order header by id
func (s *Store) GetOrder(ctx context.Context, id int) (*models.Order, error) {
	var order models.Order
	err := s.db.QueryRow(ctx, database.GetOrderSQL, id).Scan(
		&order.ID,
		&order.CustomerName,
		&order.CustomerPhone,
		&order.CustomerEmail,
		&order.TotalAmount,
		&order.Status,
		&order.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to query order: %w", err)
	}

	return &order, nil
}

// ListOrderItems fetches all line items belonging to an order
func (s *Store) ListOrderItems(ctx context.Context, orderID int) ([]models.OrderItem, error) {
	rows, err := s.db.Query(ctx, database.ListOrderItemsSQL, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to query order items: %w", err)
	}
	defer rows.Close()

	var items []models.OrderItem
	for rows.Next() {
		var item models.OrderItem
		err := rows.Scan(
			&item.OrderID,
			&item.DishID,
			&item.DishName,
			&item.Quantity,
			&item.Price,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order item row: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate order item rows: %w", err)
	}

	return items, nil
}

// Ping tests the underlying database connection
func (s *Store) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}
