package menu

import (
	"context"

	"restaurant-orders/internal/models"
)

// DishStore reads dishes from storage. An empty category means no
// filter.
type DishStore interface {
	ListDishes(ctx context.Context, category string) ([]models.Dish, error)
}
