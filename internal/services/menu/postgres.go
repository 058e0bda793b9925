package menu

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"restaurant-orders/internal/database"
	"restaurant-orders/internal/models"
)

// Store implements DishStore on PostgreSQL
type Store struct {
	db *database.DB
}

// NewStore creates a new dish store
func NewStore(db *database.DB) *Store {
	return &Store{db: db}
}

// ListDishes returns dishes ordered by id, optionally filtered by
// category.
func (s *Store) ListDishes(ctx context.Context, category string) ([]models.Dish, error) {
	var (
		rows pgx.Rows
		err  error
	)

	if category != "" {
		rows, err = s.db.Query(ctx, database.ListDishesByCategorySQL, category)
	} else {
		rows, err = s.db.Query(ctx, database.ListDishesSQL)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query dishes: %w", err)
	}
	defer rows.Close()

	var dishes []models.Dish
	for rows.Next() {
		var dish models.Dish
		err := rows.Scan(
			&dish.ID,
			&dish.Name,
			&dish.Description,
			&dish.Price,
			&dish.OldPrice,
			&dish.Image,
			&dish.Category,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan dish row: %w", err)
		}
		dishes = append(dishes, dish)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate dish rows: %w", err)
	}

	return dishes, nil
}
