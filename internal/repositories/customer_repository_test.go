package repositories

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"petcare_backend/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})
	return db, mock
}

var customerRowColumns = []string{"id", "first_name", "last_name", "phone_num", "address"}

func TestCustomerRepositoryList(t *testing.T) {
	db, mock := newMock(t)
	repo := NewCustomerRepository(db)

	mock.ExpectQuery(`SELECT (.+) FROM customers ORDER BY id`).
		WillReturnRows(sqlmock.NewRows(customerRowColumns).
			AddRow(1, "Amy", "Lee", "555-0100", nil).
			AddRow(2, "Bo", "Chen", "555-0101", "1 Main St"))

	customers, err := repo.ListCustomers(context.Background())
	require.NoError(t, err)
	require.Len(t, customers, 2)
	assert.Nil(t, customers[0].Address)
	require.NotNil(t, customers[1].Address)
	assert.Equal(t, "1 Main St", *customers[1].Address)
}

func TestCustomerRepositoryListEmpty(t *testing.T) {
	db, mock := newMock(t)
	repo := NewCustomerRepository(db)

	mock.ExpectQuery(`SELECT (.+) FROM customers`).WillReturnRows(sqlmock.NewRows(customerRowColumns))

	customers, err := repo.ListCustomers(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, customers)
	assert.Empty(t, customers)
}

func TestCustomerRepositoryGetByIDNotFound(t *testing.T) {
	db, mock := newMock(t)
	repo := NewCustomerRepository(db)

	mock.ExpectQuery(`SELECT (.+) FROM customers WHERE id = \$1`).
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows(customerRowColumns))

	_, err := repo.GetCustomerByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCustomerRepositoryGetByIDDatabaseError(t *testing.T) {
	db, mock := newMock(t)
	repo := NewCustomerRepository(db)

	mock.ExpectQuery(`SELECT (.+) FROM customers WHERE id = \$1`).
		WithArgs(int64(1)).
		WillReturnError(errors.New("connection refused"))

	_, err := repo.GetCustomerByID(context.Background(), 1)
	assert.ErrorIs(t, err, ErrDatabaseError)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestCustomerRepositoryCreate(t *testing.T) {
	db, mock := newMock(t)
	repo := NewCustomerRepository(db)

	mock.ExpectQuery(`INSERT INTO customers`).
		WithArgs("Amy", "Lee", "555-0100", nil).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	customer := &models.Customer{FirstName: "Amy", LastName: "Lee", PhoneNum: "555-0100"}
	id, err := repo.CreateCustomer(context.Background(), customer)
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)
	assert.Equal(t, int64(7), customer.ID)
}

func TestCustomerRepositoryCreateDuplicate(t *testing.T) {
	db, mock := newMock(t)
	repo := NewCustomerRepository(db)

	mock.ExpectQuery(`INSERT INTO customers`).
		WillReturnError(&pq.Error{Code: "23505", Message: "duplicate key", Constraint: "customers_phone_key"})

	_, err := repo.CreateCustomer(context.Background(), &models.Customer{FirstName: "A", LastName: "B", PhoneNum: "1"})
	assert.ErrorIs(t, err, ErrDuplicateKey)
}

func TestCustomerRepositoryUpdate(t *testing.T) {
	db, mock := newMock(t)
	repo := NewCustomerRepository(db)
	address := "2 Oak Ave"

	mock.ExpectExec(`UPDATE customers SET`).
		WithArgs("Amy", "Lee", "555-0199", "2 Oak Ave", int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE customers SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateCustomer(context.Background(), &models.Customer{ID: 3, FirstName: "Amy", LastName: "Lee", PhoneNum: "555-0199", Address: &address})
	require.NoError(t, err)

	err = repo.UpdateCustomer(context.Background(), &models.Customer{ID: 99, FirstName: "X", LastName: "Y", PhoneNum: "Z"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCustomerRepositoryDelete(t *testing.T) {
	db, mock := newMock(t)
	repo := NewCustomerRepository(db)

	mock.ExpectExec(`DELETE FROM customers WHERE id = \$1`).WithArgs(int64(3)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM customers WHERE id = \$1`).WithArgs(int64(4)).WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.DeleteCustomer(context.Background(), 3))
	assert.ErrorIs(t, repo.DeleteCustomer(context.Background(), 4), ErrNotFound)
}

func TestCustomerRepositoryFindByCredentials(t *testing.T) {
	db, mock := newMock(t)
	repo := NewCustomerRepository(db)

	mock.ExpectQuery(`FROM customers\s+WHERE first_name = \$1 AND last_name = \$2 AND phone_num = \$3`).
		WithArgs("Amy", "Lee", "555-0100").
		WillReturnRows(sqlmock.NewRows(customerRowColumns).AddRow(5, "Amy", "Lee", "555-0100", nil))

	customer, err := repo.FindCustomerByCredentials(context.Background(), "Amy", "Lee", "555-0100")
	require.NoError(t, err)
	assert.Equal(t, int64(5), customer.ID)
}
