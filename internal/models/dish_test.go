package models

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDish_MenuView(t *testing.T) {
	dish := Dish{
		ID:          1,
		Name:        "Caesar Salad",
		Description: "Fresh romaine lettuce",
		Price:       decimal.RequireFromString("12.99"),
		OldPrice:    decimal.NullDecimal{Decimal: decimal.RequireFromString("15.99"), Valid: true},
		Image:       "https://example.com/caesar.jpg",
		Category:    "Salads",
	}

	view := dish.MenuView()

	assert.Equal(t, "1", view.ID)
	assert.Equal(t, 12.99, view.Price)
	require.NotNil(t, view.OldPrice)
	assert.Equal(t, 15.99, *view.OldPrice)
}

func TestDish_MenuView_OldPriceOmitted(t *testing.T) {
	tests := []struct {
		name     string
		oldPrice decimal.NullDecimal
	}{
		{name: "null old price", oldPrice: decimal.NullDecimal{}},
		{name: "zero old price", oldPrice: decimal.NullDecimal{Decimal: decimal.Zero, Valid: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dish := Dish{
				ID:       2,
				Name:     "Margherita Pizza",
				Price:    decimal.RequireFromString("18.99"),
				OldPrice: tt.oldPrice,
			}

			view := dish.MenuView()
			assert.Nil(t, view.OldPrice)

			body, err := json.Marshal(view)
			require.NoError(t, err)
			assert.NotContains(t, string(body), "oldPrice")
		})
	}
}
