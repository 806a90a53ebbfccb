package services

import (
	"context"
	"strings"

	"petcare_backend/internal/models"
	"petcare_backend/internal/repositories"
	"petcare_backend/pkg/utils"
)

// CustomerService is the customer use-case layer.
type CustomerService interface {
	ListCustomers(ctx context.Context) ([]models.Customer, error)
	GetCustomerByID(ctx context.Context, id int64) (*models.Customer, error)
	CreateCustomer(ctx context.Context, customer models.Customer) (*models.Customer, error)
	UpdateCustomer(ctx context.Context, id int64, customer models.Customer) error
	DeleteCustomer(ctx context.Context, id int64) error
}

type customerService struct {
	customerRepo repositories.CustomerRepository
}

// NewCustomerService creates a new instance of CustomerService.
func NewCustomerService(repo repositories.CustomerRepository) CustomerService {
	return &customerService{customerRepo: repo}
}

// normalizeCustomer trims required fields, rejects blank ones in field order
// and collapses a blank address to no value.
func normalizeCustomer(c *models.Customer) error {
	c.FirstName = strings.TrimSpace(c.FirstName)
	c.LastName = strings.TrimSpace(c.LastName)
	c.PhoneNum = strings.TrimSpace(c.PhoneNum)
	c.Address = utils.TrimToNil(c.Address)

	switch {
	case c.FirstName == "":
		return newValidationError("firstName", "First name is required")
	case c.LastName == "":
		return newValidationError("lastName", "Last name is required")
	case c.PhoneNum == "":
		return newValidationError("phoneNum", "Phone number is required")
	}
	return nil
}

func (s *customerService) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	customers, err := s.customerRepo.ListCustomers(ctx)
	if err != nil {
		return nil, translateNotFound(err, ErrCustomerNotFound, "list customers")
	}
	return customers, nil
}

func (s *customerService) GetCustomerByID(ctx context.Context, id int64) (*models.Customer, error) {
	customer, err := s.customerRepo.GetCustomerByID(ctx, id)
	if err != nil {
		return nil, translateNotFound(err, ErrCustomerNotFound, "get customer by ID")
	}
	return customer, nil
}

// CreateCustomer ignores any client supplied id.
func (s *customerService) CreateCustomer(ctx context.Context, customer models.Customer) (*models.Customer, error) {
	if err := normalizeCustomer(&customer); err != nil {
		return nil, err
	}
	customer.ID = 0
	if _, err := s.customerRepo.CreateCustomer(ctx, &customer); err != nil {
		return nil, translateNotFound(err, ErrCustomerNotFound, "create customer")
	}
	return &customer, nil
}

// UpdateCustomer replaces the stored record with the body as given; only the
// address is collapsed to no value when blank.
func (s *customerService) UpdateCustomer(ctx context.Context, id int64, customer models.Customer) error {
	if err := checkIDMatch(id, customer.ID); err != nil {
		return err
	}
	customer.Address = utils.TrimToNil(customer.Address)
	if err := s.customerRepo.UpdateCustomer(ctx, &customer); err != nil {
		return translateNotFound(err, ErrCustomerNotFound, "update customer")
	}
	return nil
}

func (s *customerService) DeleteCustomer(ctx context.Context, id int64) error {
	if err := s.customerRepo.DeleteCustomer(ctx, id); err != nil {
		return translateNotFound(err, ErrCustomerNotFound, "delete customer")
	}
	return nil
}
