package menu

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant-orders/internal/logger"
	"restaurant-orders/internal/models"
)

// fakeDishStore implements DishStore in memory for tests.
type fakeDishStore struct {
	dishes []models.Dish
	err    error

	lastCategory string
	calls        int
	hadDeadline  bool
}

func (f *fakeDishStore) ListDishes(ctx context.Context, category string) ([]models.Dish, error) {
	f.calls++
	f.lastCategory = category
	_, f.hadDeadline = ctx.Deadline()
	if f.err != nil {
		return nil, f.err
	}
	if category == "" {
		return f.dishes, nil
	}
	var filtered []models.Dish
	for _, dish := range f.dishes {
		if dish.Category == category {
			filtered = append(filtered, dish)
		}
	}
	return filtered, nil
}

func testDishes() []models.Dish {
	return []models.Dish{
		{
			ID:          1,
			Name:        "Caesar Salad",
			Description: "Fresh romaine lettuce",
			Price:       decimal.RequireFromString("12.99"),
			OldPrice:    decimal.NullDecimal{Decimal: decimal.RequireFromString("15.99"), Valid: true},
			Image:       "https://example.com/caesar.jpg",
			Category:    "Salads",
		},
		{
			ID:       2,
			Name:     "Margherita Pizza",
			Price:    decimal.RequireFromString("18.99"),
			Category: "Main Courses",
		},
	}
}

func TestService_GetMenu(t *testing.T) {
	store := &fakeDishStore{dishes: testDishes()}
	service := NewService(store, logger.New("test"))

	dishes, err := service.GetMenu(context.Background(), "", "req-1")
	require.NoError(t, err)

	require.Len(t, dishes, 2)
	assert.Equal(t, "1", dishes[0].ID)
	assert.Equal(t, 12.99, dishes[0].Price)
	require.NotNil(t, dishes[0].OldPrice)
	assert.Equal(t, 15.99, *dishes[0].OldPrice)
	assert.Nil(t, dishes[1].OldPrice)
}

func TestService_GetMenu_CategoryFilter(t *testing.T) {
	store := &fakeDishStore{dishes: testDishes()}
	service := NewService(store, logger.New("test"))

	dishes, err := service.GetMenu(context.Background(), "Salads", "req-1")
	require.NoError(t, err)

	assert.Equal(t, "Salads", store.lastCategory)
	require.Len(t, dishes, 1)
	assert.Equal(t, "Caesar Salad", dishes[0].Name)
}

func TestService_GetMenu_EmptyResultIsNotNil(t *testing.T) {
	store := &fakeDishStore{}
	service := NewService(store, logger.New("test"))

	dishes, err := service.GetMenu(context.Background(), "Soups", "req-1")
	require.NoError(t, err)
	assert.NotNil(t, dishes)
	assert.Empty(t, dishes)
}

func TestService_GetMenu_StoreError(t *testing.T) {
	store := &fakeDishStore{err: errors.New("connection refused")}
	service := NewService(store, logger.New("test"))

	_, err := service.GetMenu(context.Background(), "", "req-1")
	assert.Error(t, err)
}
