package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"petcare_backend/internal/models"
)

// CustomerRepository defines the interface for customer-related database operations.
type CustomerRepository interface {
	ListCustomers(ctx context.Context) ([]models.Customer, error)
	GetCustomerByID(ctx context.Context, id int64) (*models.Customer, error)
	CreateCustomer(ctx context.Context, customer *models.Customer) (int64, error)
	UpdateCustomer(ctx context.Context, customer *models.Customer) error
	DeleteCustomer(ctx context.Context, id int64) error
	// FindCustomerByCredentials matches first name, last name and phone exactly.
	FindCustomerByCredentials(ctx context.Context, firstName, lastName, phone string) (*models.Customer, error)
}

type customerRepository struct {
	db SQLExecutor
}

// NewCustomerRepository creates a new instance of CustomerRepository.
func NewCustomerRepository(db SQLExecutor) CustomerRepository {
	return &customerRepository{db: db}
}

const customerColumns = `id, first_name, last_name, phone_num, address`

func scanCustomer(s scanner) (models.Customer, error) {
	var c models.Customer
	var address sql.NullString
	if err := s.Scan(&c.ID, &c.FirstName, &c.LastName, &c.PhoneNum, &address); err != nil {
		return c, err
	}
	if address.Valid {
		c.Address = &address.String
	}
	return c, nil
}

func (r *customerRepository) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	return queryList(ctx, r.db, scanCustomer, "customers",
		`SELECT `+customerColumns+` FROM customers ORDER BY id`)
}

// GetCustomerByID retrieves a customer by their ID.
func (r *customerRepository) GetCustomerByID(ctx context.Context, id int64) (*models.Customer, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+customerColumns+` FROM customers WHERE id = $1`, id)
	customer, err := scanCustomer(row)
	if err != nil {
		return nil, wrapReadError(err, fmt.Sprintf("getting customer by ID %d", id))
	}
	return &customer, nil
}

// CreateCustomer inserts a new customer and sets its generated ID.
func (r *customerRepository) CreateCustomer(ctx context.Context, customer *models.Customer) (int64, error) {
	query := `INSERT INTO customers (first_name, last_name, phone_num, address)
	          VALUES ($1, $2, $3, $4)
	          RETURNING id`

	err := r.db.QueryRowContext(ctx, query,
		customer.FirstName, customer.LastName, customer.PhoneNum, customer.Address,
	).Scan(&customer.ID)
	if err != nil {
		return 0, wrapWriteError(err, "creating customer")
	}
	return customer.ID, nil
}

// UpdateCustomer replaces every mutable column of an existing customer.
func (r *customerRepository) UpdateCustomer(ctx context.Context, customer *models.Customer) error {
	query := `UPDATE customers SET
	            first_name = $1, last_name = $2, phone_num = $3, address = $4
	          WHERE id = $5`

	result, err := r.db.ExecContext(ctx, query,
		customer.FirstName, customer.LastName, customer.PhoneNum, customer.Address, customer.ID,
	)
	if err != nil {
		return wrapWriteError(err, fmt.Sprintf("updating customer ID %d", customer.ID))
	}
	return expectOneRow(result, fmt.Sprintf("updating customer ID %d", customer.ID))
}

// DeleteCustomer removes a customer. Pets and bookings referencing it are left as they are.
func (r *customerRepository) DeleteCustomer(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return wrapWriteError(err, fmt.Sprintf("deleting customer ID %d", id))
	}
	return expectOneRow(result, fmt.Sprintf("deleting customer ID %d", id))
}

func (r *customerRepository) FindCustomerByCredentials(ctx context.Context, firstName, lastName, phone string) (*models.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers
	          WHERE first_name = $1 AND last_name = $2 AND phone_num = $3
	          ORDER BY id LIMIT 1`
	customer, err := scanCustomer(r.db.QueryRowContext(ctx, query, firstName, lastName, phone))
	if err != nil {
		return nil, wrapReadError(err, "finding customer by credentials")
	}
	return &customer, nil
}
