package database

// Dish queries
const (
	ListDishesSQL = `
		SELECT id, name, description, price, old_price, image, category
		FROM dishes
		ORDER BY id`

	ListDishesByCategorySQL = `
		SELECT id, name, description, price, old_price, image, category
		FROM dishes
		WHERE category = $1
		ORDER BY id`
)

// Order queries
const (
	InsertOrderSQL = `
		INSERT INTO orders (customer_name, customer_phone, customer_email, total_amount, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	InsertOrderItemSQL = `
		INSERT INTO order_items (order_id, dish_id, dish_name, quantity, price)
		VALUES ($1, $2, $3, $4, $5)`

	GetOrderSQL = `
		SELECT id, customer_name, customer_phone, customer_email, total_amount, status, created_at
		FROM orders
		WHERE id = $1`

	ListOrderItemsSQL = `
		SELECT order_id, dish_id, dish_name, quantity, price
		FROM order_items
		WHERE order_id = $1`
)
