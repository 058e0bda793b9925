package models

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// Dish is a menu entry as stored in the dishes table. Dishes are
// read-only from this service's perspective.
type Dish struct {
	ID          int                 `db:"id"`
	Name        string              `db:"name"`
	Description string              `db:"description"`
	Price       decimal.Decimal     `db:"price"`
	OldPrice    decimal.NullDecimal `db:"old_price"`
	Image       string              `db:"image"`
	Category    string              `db:"category"`
}

// MenuDish is the wire representation of a dish. The id is rendered as
// a string and oldPrice appears only when the stored value is non-null
// and non-zero, which is what the web client expects.
type MenuDish struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	OldPrice    *float64 `json:"oldPrice,omitempty"`
	Image       string   `json:"image"`
	Category    string   `json:"category"`
}

// MenuResponse wraps the dish list returned by the menu endpoint.
type MenuResponse struct {
	Dishes []MenuDish `json:"dishes"`
}

// MenuView converts a stored dish into its wire representation.
func (d Dish) MenuView() MenuDish {
	view := MenuDish{
		ID:          strconv.Itoa(d.ID),
		Name:        d.Name,
		Description: d.Description,
		Price:       d.Price.InexactFloat64(),
		Image:       d.Image,
		Category:    d.Category,
	}
	if d.OldPrice.Valid && !d.OldPrice.Decimal.IsZero() {
		oldPrice := d.OldPrice.Decimal.InexactFloat64()
		view.OldPrice = &oldPrice
	}
	return view
}
