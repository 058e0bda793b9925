package menu

import (
	"context"
	"fmt"

	"restaurant-orders/internal/logger"
	"restaurant-orders/internal/models"
)

// Service provides menu reads
type Service struct {
	store  DishStore
	logger *logger.Logger
}

// NewService creates a new menu service
func NewService(store DishStore, log *logger.Logger) *Service {
	return &Service{
		store:  store,
		logger: log,
	}
}

// GetMenu returns the dish list in wire form, optionally filtered by
// category. The result is always a non-nil slice so the response body
// carries an empty array rather than null.
func (s *Service) GetMenu(ctx context.Context, category, requestID string) ([]models.MenuDish, error) {
	dishes, err := s.store.ListDishes(ctx, category)
	if err != nil {
		s.logger.Error("db_query_failed", "Failed to query dishes", requestID, err, map[string]interface{}{
			"category": category,
		})
		return nil, fmt.Errorf("database error: %w", err)
	}

	views := make([]models.MenuDish, 0, len(dishes))
	for _, dish := range dishes {
		views = append(views, dish.MenuView())
	}

	return views, nil
}
