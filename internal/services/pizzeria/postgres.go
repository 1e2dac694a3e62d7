package pizzeria

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"pizzeria-backend/internal/database"
	"pizzeria-backend/internal/models"
)

// Repository is the persistence interface for persons and orders
type Repository interface {
	InsertPerson(ctx context.Context, name string) (int64, error)
	GetPersonByID(ctx context.Context, id int64) (*models.Person, error)
	CountPersons(ctx context.Context) (int64, error)
	InsertOrder(ctx context.Context, order *models.Order) (int64, error)
	GetAllOrders(ctx context.Context) ([]models.Order, error)
	GetOrdersByCustomer(ctx context.Context, customerID int64) ([]models.Order, error)
	DeleteOrder(ctx context.Context, id int64) error
	Ping(ctx context.Context) error
}

// PostgresRepository implements Repository on the shared connection pool
type PostgresRepository struct {
	db *database.DB
}

// NewPostgresRepository creates a repository backed by PostgreSQL
func NewPostgresRepository(db *database.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// InsertPerson persists a person and returns the assigned id
func (r *PostgresRepository) InsertPerson(ctx context.Context, name string) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, database.InsertPersonSQL, name).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert person: %w", err)
	}
	return id, nil
}

// GetPersonByID returns the person or a NotFoundError
func (r *PostgresRepository) GetPersonByID(ctx context.Context, id int64) (*models.Person, error) {
	var person models.Person
	err := r.db.QueryRow(ctx, database.GetPersonByIDSQL, id).Scan(&person.ID, &person.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.NewPersonNotFound(id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get person: %w", err)
	}
	return &person, nil
}

// CountPersons returns the number of registered persons
func (r *PostgresRepository) CountPersons(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, database.CountPersonsSQL).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count persons: %w", err)
	}
	return count, nil
}

// InsertOrder persists an order and returns the assigned id
func (r *PostgresRepository) InsertOrder(ctx context.Context, order *models.Order) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, database.InsertOrderSQL,
		order.Crust, order.Flavour, order.Size, order.TableNo, order.CustomerID, order.Timestamp,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert order: %w", err)
	}
	return id, nil
}

// GetAllOrders returns every order, ascending by timestamp
func (r *PostgresRepository) GetAllOrders(ctx context.Context) ([]models.Order, error) {
	rows, err := r.db.Query(ctx, database.GetAllOrdersSQL)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	return scanOrders(rows)
}

// GetOrdersByCustomer returns the given customer's orders, ascending by timestamp
func (r *PostgresRepository) GetOrdersByCustomer(ctx context.Context, customerID int64) ([]models.Order, error) {
	rows, err := r.db.Query(ctx, database.GetOrdersByCustomerSQL, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders for customer %d: %w", customerID, err)
	}
	defer rows.Close()

	return scanOrders(rows)
}

// DeleteOrder removes an order or returns a NotFoundError
func (r *PostgresRepository) DeleteOrder(ctx context.Context, id int64) error {
	tag, err := r.db.Pool.Exec(ctx, database.DeleteOrderSQL, id)
	if err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.NewOrderNotFound(id)
	}
	return nil
}

// Ping checks the database connection
func (r *PostgresRepository) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}

func scanOrders(rows pgx.Rows) ([]models.Order, error) {
	orders := make([]models.Order, 0)
	for rows.Next() {
		var o models.Order
		err := rows.Scan(&o.ID, &o.Crust, &o.Flavour, &o.Size, &o.TableNo, &o.CustomerID, &o.Timestamp)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}
