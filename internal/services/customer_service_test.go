package services

import (
	"context"
	"testing"

	"petcare_backend/internal/models"
	"petcare_backend/internal/repositories"
	"petcare_backend/internal/repositories/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestCreateCustomerRejectsBlankFieldsInOrder(t *testing.T) {
	svc := NewCustomerService(memory.NewCustomerRepo(memory.NewStore()))

	cases := []struct {
		name    string
		in      models.Customer
		message string
	}{
		{"blank first", models.Customer{FirstName: "  ", LastName: "Lee", PhoneNum: "555"}, "First name is required"},
		{"blank last", models.Customer{FirstName: "Amy", LastName: "\t", PhoneNum: "555"}, "Last name is required"},
		{"blank phone", models.Customer{FirstName: "Amy", LastName: "Lee", PhoneNum: " "}, "Phone number is required"},
		{"all blank", models.Customer{}, "First name is required"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateCustomer(context.Background(), tc.in)
			require.ErrorIs(t, err, ErrValidation)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.message, verr.Message)
		})
	}
}

func TestCreateCustomerTrimsAndDropsBlankAddress(t *testing.T) {
	svc := NewCustomerService(memory.NewCustomerRepo(memory.NewStore()))

	created, err := svc.CreateCustomer(context.Background(), models.Customer{
		ID: 99, FirstName: " Amy ", LastName: "Lee ", PhoneNum: " 555-0100", Address: strPtr("   "),
	})
	require.NoError(t, err)
	assert.Positive(t, created.ID)
	assert.NotEqual(t, int64(99), created.ID)
	assert.Equal(t, "Amy", created.FirstName)
	assert.Equal(t, "Lee", created.LastName)
	assert.Equal(t, "555-0100", created.PhoneNum)
	assert.Nil(t, created.Address)

	fetched, err := svc.GetCustomerByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, *created, *fetched)
}

type untouchableCustomerRepo struct {
	repositories.CustomerRepository
	calls int
}

func (r *untouchableCustomerRepo) UpdateCustomer(ctx context.Context, c *models.Customer) error {
	r.calls++
	return nil
}

func TestUpdateCustomerIDMismatchNeverReachesStore(t *testing.T) {
	repo := &untouchableCustomerRepo{}
	svc := NewCustomerService(repo)

	err := svc.UpdateCustomer(context.Background(), 1, models.Customer{ID: 2, FirstName: "A", LastName: "B", PhoneNum: "C"})
	assert.ErrorIs(t, err, ErrIDMismatch)
	assert.Zero(t, repo.calls)
}

func TestUpdateAndDeleteMissingCustomer(t *testing.T) {
	svc := NewCustomerService(memory.NewCustomerRepo(memory.NewStore()))

	err := svc.UpdateCustomer(context.Background(), 404, models.Customer{ID: 404, FirstName: "A", LastName: "B", PhoneNum: "C"})
	assert.ErrorIs(t, err, ErrCustomerNotFound)
	assert.ErrorIs(t, svc.DeleteCustomer(context.Background(), 404), ErrCustomerNotFound)

	_, err = svc.GetCustomerByID(context.Background(), 404)
	assert.ErrorIs(t, err, ErrCustomerNotFound)
}

func TestCustomerRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc := NewCustomerService(memory.NewCustomerRepo(memory.NewStore()))

	created, err := svc.CreateCustomer(ctx, models.Customer{FirstName: "Amy", LastName: "Lee", PhoneNum: "555-0100"})
	require.NoError(t, err)

	replacement := models.Customer{ID: created.ID, FirstName: "Amy", LastName: "Lee", PhoneNum: "555-0199", Address: strPtr("9 Pine Rd")}
	require.NoError(t, svc.UpdateCustomer(ctx, created.ID, replacement))

	fetched, err := svc.GetCustomerByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, replacement, *fetched)

	require.NoError(t, svc.DeleteCustomer(ctx, created.ID))
	_, err = svc.GetCustomerByID(ctx, created.ID)
	assert.ErrorIs(t, err, ErrCustomerNotFound)
}

func TestUpdateCustomerStoresBodyAsGiven(t *testing.T) {
	ctx := context.Background()
	svc := NewCustomerService(memory.NewCustomerRepo(memory.NewStore()))

	created, err := svc.CreateCustomer(ctx, models.Customer{FirstName: "Amy", LastName: "Lee", PhoneNum: "555-0100", Address: strPtr("1 Elm St")})
	require.NoError(t, err)

	replacement := models.Customer{ID: created.ID, FirstName: "  ", LastName: " Lee ", PhoneNum: "", Address: strPtr("   ")}
	require.NoError(t, svc.UpdateCustomer(ctx, created.ID, replacement))

	fetched, err := svc.GetCustomerByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "  ", fetched.FirstName)
	assert.Equal(t, " Lee ", fetched.LastName)
	assert.Equal(t, "", fetched.PhoneNum)
	assert.Nil(t, fetched.Address)
}
