package database

// Person queries
const (
	InsertPersonSQL = `
		INSERT INTO persons (name)
		VALUES ($1)
		RETURNING id`

	GetPersonByIDSQL = `
		SELECT id, name FROM persons WHERE id = $1`

	CountPersonsSQL = `
		SELECT COUNT(*) FROM persons`
)

// Order queries
const (
	InsertOrderSQL = `
		INSERT INTO orders (crust, flavour, size, table_no, customer_id, order_ts)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	GetAllOrdersSQL = `
		SELECT id, crust, flavour, size, table_no, customer_id, order_ts
		FROM orders
		ORDER BY order_ts ASC, id ASC`

	GetOrdersByCustomerSQL = `
		SELECT id, crust, flavour, size, table_no, customer_id, order_ts
		FROM orders
		WHERE customer_id = $1
		ORDER BY order_ts ASC, id ASC`

	DeleteOrderSQL = `
		DELETE FROM orders WHERE id = $1`
)
