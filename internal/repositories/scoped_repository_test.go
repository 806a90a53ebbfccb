package repositories

import (
	"context"
	"testing"
	"time"

	"petcare_backend/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPetRepositoryListByCustomer(t *testing.T) {
	db, mock := newMock(t)
	repo := NewPetRepository(db)

	mock.ExpectQuery(`FROM pets WHERE customer_id = \$1`).
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "customer_id", "name", "species", "birth_date", "breed", "notes"}).
			AddRow(10, 2, "Rex", "Dog", time.Date(2019, 4, 1, 0, 0, 0, 0, time.UTC), "Beagle", nil))

	pets, err := repo.ListPetsByCustomer(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, pets, 1)
	assert.Equal(t, "2019-04-01", pets[0].BirthDate.String())
	require.NotNil(t, pets[0].Breed)
	assert.Equal(t, "Beagle", *pets[0].Breed)
	assert.Nil(t, pets[0].Notes)
}

func TestPetRepositoryCreateSendsDateAsText(t *testing.T) {
	db, mock := newMock(t)
	repo := NewPetRepository(db)

	mock.ExpectQuery(`INSERT INTO pets`).
		WithArgs(int64(2), "Rex", "Dog", "2019-04-01", nil, nil).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))

	pet := &models.Pet{CustomerID: 2, Name: "Rex", Species: "Dog", BirthDate: models.NewDate(2019, time.April, 1)}
	id, err := repo.CreatePet(context.Background(), pet)
	require.NoError(t, err)
	assert.Equal(t, int64(11), id)
}

func TestClassRepositoryListByTrainer(t *testing.T) {
	db, mock := newMock(t)
	repo := NewClassRepository(db)

	mock.ExpectQuery(`FROM classes WHERE trainer_id = \$1`).
		WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "trainer_id", "class_type", "title", "description", "location",
			"start_time", "end_time", "start_date", "end_date", "max_capacity", "price", "category",
		}).AddRow(
			1, 4, "Group", "Puppy Basics", "Intro", "Hall A",
			time.Date(0, 1, 1, 9, 0, 0, 0, time.UTC), time.Date(0, 1, 1, 10, 30, 0, 0, time.UTC),
			time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC), time.Date(2024, 2, 26, 0, 0, 0, 0, time.UTC),
			8, []byte("120.50"), nil,
		))

	classes, err := repo.ListClassesByTrainer(context.Background(), 4)
	require.NoError(t, err)
	require.Len(t, classes, 1)
	assert.Equal(t, "09:00:00", classes[0].StartTime.String())
	assert.Equal(t, "10:30:00", classes[0].EndTime.String())
	assert.Equal(t, "2024-02-26", classes[0].EndDate.String())
	assert.InDelta(t, 120.50, classes[0].Price, 0.001)
	assert.Nil(t, classes[0].Category)
}

var bookingRowColumns = []string{"id", "class_id", "pet_id", "employee_id", "booking_date", "status", "payment_status", "amount_paid"}

func TestBookingRepositoryListByTrainerJoinsClasses(t *testing.T) {
	db, mock := newMock(t)
	repo := NewBookingRepository(db)

	mock.ExpectQuery(`FROM bookings b\s+JOIN classes c ON c.id = b.class_id\s+WHERE c.trainer_id = \$1`).
		WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows(bookingRowColumns).
			AddRow(1, 1, 10, 3, time.Date(2024, 1, 8, 9, 0, 0, 0, time.UTC), "Confirmed", "Paid", 120.5))

	bookings, err := repo.ListBookingsByTrainer(context.Background(), 4)
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, "Confirmed", bookings[0].Status)
}

func TestBookingRepositoryListByCustomerJoinsPets(t *testing.T) {
	db, mock := newMock(t)
	repo := NewBookingRepository(db)

	mock.ExpectQuery(`FROM bookings b\s+JOIN pets p ON p.id = b.pet_id\s+WHERE p.customer_id = \$1`).
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows(bookingRowColumns))

	bookings, err := repo.ListBookingsByCustomer(context.Background(), 2)
	require.NoError(t, err)
	assert.Empty(t, bookings)
}

func TestEmployeeRepositoryFindByNameIgnoresPhone(t *testing.T) {
	db, mock := newMock(t)
	repo := NewEmployeeRepository(db)

	mock.ExpectQuery(`FROM employees\s+WHERE first_name = \$1 AND last_name = \$2`).
		WithArgs("Sam", "Hill").
		WillReturnRows(sqlmock.NewRows([]string{"id", "first_name", "last_name", "email", "phone", "position", "hire_date"}).
			AddRow(9, "Sam", "Hill", nil, "555-0000", "Manager", time.Date(2018, 3, 1, 0, 0, 0, 0, time.UTC)))

	employee, err := repo.FindEmployeeByName(context.Background(), "Sam", "Hill")
	require.NoError(t, err)
	assert.Equal(t, int64(9), employee.ID)
	require.NotNil(t, employee.HireDate)
	assert.Equal(t, "2018-03-01", employee.HireDate.String())
	assert.Nil(t, employee.Email)
}
