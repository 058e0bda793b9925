package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// StatusPending is the status every new order is created with. Later
// transitions happen outside this service.
const StatusPending = "pending"

// Order is an order header row.
type Order struct {
	ID            int             `db:"id"`
	CustomerName  string          `db:"customer_name"`
	CustomerPhone string          `db:"customer_phone"`
	CustomerEmail string          `db:"customer_email"`
	TotalAmount   decimal.Decimal `db:"total_amount"`
	Status        string          `db:"status"`
	CreatedAt     time.Time       `db:"created_at"`
}

// OrderItem is one line item of an order. Name and price are
// snapshotted from the client payload at order time, not re-read from
// the dishes table.
type OrderItem struct {
	OrderID  int             `db:"order_id"`
	DishID   int             `db:"dish_id"`
	DishName string          `db:"dish_name"`
	Quantity int             `db:"quantity"`
	Price    decimal.Decimal `db:"price"`
}

// DishID decodes an item id that may arrive either as a JSON string
// (the web client sends string ids) or as a bare number.
type DishID int

func (d *DishID) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return fmt.Errorf("invalid dish id %q", raw)
		}
		*d = DishID(n)
		return nil
	}

	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*d = DishID(n)
	return nil
}

// CreateOrderItem is one item of an incoming order payload.
type CreateOrderItem struct {
	ID       DishID  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// CreateOrderRequest is the payload accepted by the order creation
// endpoint.
type CreateOrderRequest struct {
	CustomerName  string            `json:"customerName"`
	CustomerPhone string            `json:"customerPhone"`
	CustomerEmail string            `json:"customerEmail"`
	Items         []CreateOrderItem `json:"items"`
}

// Validate checks the required fields. The check is deliberately a
// truthiness check: empty strings and an empty items slice fail the
// same way missing fields do.
func (r *CreateOrderRequest) Validate() error {
	if r.CustomerName == "" || r.CustomerPhone == "" || len(r.Items) == 0 {
		return ValidationError{Message: "Missing required fields"}
	}
	return nil
}

// TotalAmount computes the order total as Σ price×quantity using
// decimal arithmetic so currency values never accumulate float drift.
func (r *CreateOrderRequest) TotalAmount() decimal.Decimal {
	total := decimal.Zero
	for _, item := range r.Items {
		price := decimal.NewFromFloat(item.Price)
		total = total.Add(price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

// CreateOrderResponse is returned after a successful order creation.
type CreateOrderResponse struct {
	OrderID int    `json:"orderId"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

// OrderItemView is the wire representation of a line item. The dish id
// is rendered as a string, mirroring the menu's id typing.
type OrderItemView struct {
	DishID   string  `json:"dishId"`
	DishName string  `json:"dishName"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// OrderView is the combined header-plus-items representation returned
// by the order lookup endpoint. The header id stays an integer.
type OrderView struct {
	ID            int             `json:"id"`
	CustomerName  string          `json:"customerName"`
	CustomerPhone string          `json:"customerPhone"`
	CustomerEmail string          `json:"customerEmail"`
	TotalAmount   float64         `json:"totalAmount"`
	Status        string          `json:"status"`
	CreatedAt     string          `json:"createdAt"`
	Items         []OrderItemView `json:"items"`
}

// OrderLookupResponse wraps the order view.
type OrderLookupResponse struct {
	Order OrderView `json:"order"`
}

// View assembles the wire representation of an order and its items.
func (o *Order) View(items []OrderItem) OrderView {
	itemViews := make([]OrderItemView, 0, len(items))
	for _, item := range items {
		itemViews = append(itemViews, OrderItemView{
			DishID:   strconv.Itoa(item.DishID),
			DishName: item.DishName,
			Quantity: item.Quantity,
			Price:    item.Price.InexactFloat64(),
		})
	}

	return OrderView{
		ID:            o.ID,
		CustomerName:  o.CustomerName,
		CustomerPhone: o.CustomerPhone,
		CustomerEmail: o.CustomerEmail,
		TotalAmount:   o.TotalAmount.InexactFloat64(),
		Status:        o.Status,
		CreatedAt:     o.CreatedAt.Format(time.RFC3339),
		Items:         itemViews,
	}
}

// OrderCreatedEvent is published to the orders exchange after an order
// commits.
type OrderCreatedEvent struct {
	OrderID      int              `json:"order_id"`
	CustomerName string           `json:"customer_name"`
	TotalAmount  float64          `json:"total_amount"`
	Status       string           `json:"status"`
	CreatedAt    time.Time        `json:"created_at"`
	Items        []OrderItemEvent `json:"items"`
}

// OrderItemEvent is one line item inside an order event.
type OrderItemEvent struct {
	DishName string  `json:"dish_name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}
