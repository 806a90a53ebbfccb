//go:build integration

package repositories_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"petcare_backend/internal/database"
	"petcare_backend/internal/models"
	"petcare_backend/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupPostgres(t *testing.T) *sql.DB {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("petcare_db"),
		postgres.WithUsername("petcare_user"),
		postgres.WithPassword("petcare_password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate container: %v", err)
		}
	})

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := database.OpenDSN(ctx, dsn, 5)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	// Applying twice proves the migrate path is idempotent.
	require.NoError(t, database.ApplySchema(ctx, db, ""))
	require.NoError(t, database.ApplySchema(ctx, db, ""))
	return db
}

func TestPostgresRoundTrip(t *testing.T) {
	db := setupPostgres(t)
	ctx := context.Background()

	customers := repositories.NewCustomerRepository(db)
	pets := repositories.NewPetRepository(db)
	trainers := repositories.NewTrainerRepository(db)
	employees := repositories.NewEmployeeRepository(db)
	classes := repositories.NewClassRepository(db)
	bookings := repositories.NewBookingRepository(db)

	customer := &models.Customer{FirstName: "Amy", LastName: "Lee", PhoneNum: "555-0100"}
	customerID, err := customers.CreateCustomer(ctx, customer)
	require.NoError(t, err)
	assert.Positive(t, customerID)

	customer.PhoneNum = "555-0199"
	require.NoError(t, customers.UpdateCustomer(ctx, customer))
	got, err := customers.GetCustomerByID(ctx, customerID)
	require.NoError(t, err)
	assert.Equal(t, "555-0199", got.PhoneNum)
	assert.Nil(t, got.Address)

	found, err := customers.FindCustomerByCredentials(ctx, "Amy", "Lee", "555-0199")
	require.NoError(t, err)
	assert.Equal(t, customerID, found.ID)

	trainer := &models.Trainer{FirstName: "Tom", LastName: "Ray", PhoneNum: "555-0300"}
	trainerID, err := trainers.CreateTrainer(ctx, trainer)
	require.NoError(t, err)

	employee := &models.Employee{FirstName: "Eve", LastName: "Stone"}
	employeeID, err := employees.CreateEmployee(ctx, employee)
	require.NoError(t, err)
	gotEmployee, err := employees.GetEmployeeByID(ctx, employeeID)
	require.NoError(t, err)
	assert.Nil(t, gotEmployee.HireDate)

	breed := "Beagle"
	pet := &models.Pet{CustomerID: customerID, Name: "Rex", Species: "Dog", BirthDate: models.NewDate(2020, time.May, 1), Breed: &breed}
	petID, err := pets.CreatePet(ctx, pet)
	require.NoError(t, err)
	gotPet, err := pets.GetPetByID(ctx, petID)
	require.NoError(t, err)
	assert.Equal(t, "2020-05-01", gotPet.BirthDate.String())
	require.NotNil(t, gotPet.Breed)
	assert.Equal(t, "Beagle", *gotPet.Breed)

	class := &models.Class{
		TrainerID: trainerID, ClassType: "Obedience", Title: "Puppy basics", Description: "Sit", Location: "Hall A",
		StartTime: models.NewTimeOfDay(9, 0, 0), EndTime: models.NewTimeOfDay(10, 30, 0),
		StartDate: models.NewDate(2024, time.June, 1), EndDate: models.NewDate(2024, time.August, 31),
		MaxCapacity: 8, Price: 120.5,
	}
	classID, err := classes.CreateClass(ctx, class)
	require.NoError(t, err)
	gotClass, err := classes.GetClassByID(ctx, classID)
	require.NoError(t, err)
	assert.Equal(t, "10:30:00", gotClass.EndTime.String())
	assert.InDelta(t, 120.5, gotClass.Price, 0.001)

	var bookingDate models.DateTime
	require.NoError(t, bookingDate.UnmarshalJSON([]byte(`"2024-05-20T14:30:00"`)))
	booking := &models.Booking{
		ClassID: classID, PetID: petID, EmployeeID: employeeID, BookingDate: bookingDate,
		Status: models.BookingStatusConfirmed, PaymentStatus: models.PaymentStatusPaid, AmountPaid: 120.5,
	}
	bookingID, err := bookings.CreateBooking(ctx, booking)
	require.NoError(t, err)

	byTrainer, err := bookings.ListBookingsByTrainer(ctx, trainerID)
	require.NoError(t, err)
	require.Len(t, byTrainer, 1)
	assert.Equal(t, bookingID, byTrainer[0].ID)
	assert.Equal(t, 14, byTrainer[0].BookingDate.Hour())

	byCustomer, err := bookings.ListBookingsByCustomer(ctx, customerID)
	require.NoError(t, err)
	assert.Len(t, byCustomer, 1)

	none, err := classes.ListClassesByTrainer(ctx, trainerID+1000)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)

	// No cascade: deleting the customer leaves the pet and booking in place.
	require.NoError(t, customers.DeleteCustomer(ctx, customerID))
	_, err = pets.GetPetByID(ctx, petID)
	assert.NoError(t, err)
	_, err = customers.GetCustomerByID(ctx, customerID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	assert.ErrorIs(t, customers.DeleteCustomer(ctx, customerID), repositories.ErrNotFound)
}
