package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderRequest_Validate(t *testing.T) {
	validItems := []CreateOrderItem{
		{ID: 1, Name: "Margherita Pizza", Price: 18.99, Quantity: 1},
	}

	tests := []struct {
		name    string
		req     *CreateOrderRequest
		wantErr bool
	}{
		{
			name: "valid request",
			req: &CreateOrderRequest{
				CustomerName:  "John Doe",
				CustomerPhone: "+15551234567",
				Items:         validItems,
			},
			wantErr: false,
		},
		{
			name: "valid without email",
			req: &CreateOrderRequest{
				CustomerName:  "John Doe",
				CustomerPhone: "+15551234567",
				CustomerEmail: "",
				Items:         validItems,
			},
			wantErr: false,
		},
		{
			name: "missing customer name",
			req: &CreateOrderRequest{
				CustomerPhone: "+15551234567",
				Items:         validItems,
			},
			wantErr: true,
		},
		{
			name: "missing customer phone",
			req: &CreateOrderRequest{
				CustomerName: "John Doe",
				Items:        validItems,
			},
			wantErr: true,
		},
		{
			name: "empty items",
			req: &CreateOrderRequest{
				CustomerName:  "John Doe",
				CustomerPhone: "+15551234567",
				Items:         []CreateOrderItem{},
			},
			wantErr: true,
		},
		{
			name: "nil items",
			req: &CreateOrderRequest{
				CustomerName:  "John Doe",
				CustomerPhone: "+15551234567",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				require.Error(t, err)
				var validationErr ValidationError
				assert.ErrorAs(t, err, &validationErr)
				assert.Equal(t, "Missing required fields", validationErr.Message)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCreateOrderRequest_TotalAmount(t *testing.T) {
	req := &CreateOrderRequest{
		Items: []CreateOrderItem{
			{ID: 1, Name: "A", Price: 10.00, Quantity: 2},
			{ID: 2, Name: "B", Price: 5.50, Quantity: 1},
		},
	}

	// Decimal arithmetic must give exactly 25.5, not 25.499999...
	assert.Equal(t, "25.5", req.TotalAmount().String())
}

func TestCreateOrderRequest_TotalAmount_NoDrift(t *testing.T) {
	// 0.1 added ten times drifts with float accumulation; decimals
	// must land on exactly 1.
	items := make([]CreateOrderItem, 10)
	for i := range items {
		items[i] = CreateOrderItem{ID: 1, Name: "A", Price: 0.1, Quantity: 1}
	}
	req := &CreateOrderRequest{Items: items}

	assert.Equal(t, "1", req.TotalAmount().String())
}

func TestDishID_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		want    DishID
		wantErr bool
	}{
		{name: "string id", data: `"3"`, want: 3},
		{name: "numeric id", data: `3`, want: 3},
		{name: "padded string id", data: `" 7 "`, want: 7},
		{name: "non-numeric string", data: `"abc"`, wantErr: true},
		{name: "float id", data: `3.5`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var id DishID
			err := json.Unmarshal([]byte(tt.data), &id)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, id)
		})
	}
}

func TestOrder_View(t *testing.T) {
	createdAt := time.Date(2024, 3, 15, 12, 30, 0, 0, time.UTC)
	order := Order{
		ID:            42,
		CustomerName:  "John Doe",
		CustomerPhone: "+15551234567",
		CustomerEmail: "",
		TotalAmount:   decimal.RequireFromString("25.50"),
		Status:        StatusPending,
		CreatedAt:     createdAt,
	}
	items := []OrderItem{
		{OrderID: 42, DishID: 3, DishName: "Grilled Salmon", Quantity: 1, Price: decimal.RequireFromString("24.99")},
	}

	view := order.View(items)

	assert.Equal(t, 42, view.ID)
	assert.Equal(t, "pending", view.Status)
	assert.Equal(t, 25.5, view.TotalAmount)
	assert.Equal(t, "2024-03-15T12:30:00Z", view.CreatedAt)
	require.Len(t, view.Items, 1)
	assert.Equal(t, "3", view.Items[0].DishID)
	assert.Equal(t, 24.99, view.Items[0].Price)
}

func TestOrder_View_NoItems(t *testing.T) {
	order := Order{ID: 7, TotalAmount: decimal.Zero, Status: StatusPending}

	view := order.View(nil)

	// An empty items slice must serialize as [], not null.
	body, err := json.Marshal(view)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"items":[]`)
}

func TestCreateOrderRequest_DecodesClientPayload(t *testing.T) {
	// The web client sends string ids and camelCase keys.
	payload := `{
		"customerName": "John Doe",
		"customerPhone": "+15551234567",
		"customerEmail": "john@example.com",
		"items": [
			{"id": "2", "name": "Margherita Pizza", "price": 18.99, "quantity": 2}
		]
	}`

	var req CreateOrderRequest
	require.NoError(t, json.Unmarshal([]byte(payload), &req))

	assert.Equal(t, "John Doe", req.CustomerName)
	assert.Equal(t, "+15551234567", req.CustomerPhone)
	assert.Equal(t, "john@example.com", req.CustomerEmail)
	require.Len(t, req.Items, 1)
	assert.Equal(t, DishID(2), req.Items[0].ID)
	assert.Equal(t, 2, req.Items[0].Quantity)
	assert.Equal(t, "37.98", req.TotalAmount().String())
}
