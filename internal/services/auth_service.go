package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"petcare_backend/internal/models"
	"petcare_backend/internal/repositories"
	"petcare_backend/pkg/utils"

	"golang.org/x/crypto/bcrypt"
)

// AuthService resolves a name/phone triple to a role and issues an access token.
type AuthService interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error)
	CurrentUser(tokenString string) (*models.CurrentUser, error)
}

// AdminCredential decides which submitted phone numbers grant the admin role.
// When Hash is set it is a bcrypt hash and Phone is ignored.
type AdminCredential struct {
	Phone string
	Hash  string
}

func (a AdminCredential) matches(phone string) bool {
	if a.Hash != "" {
		return bcrypt.CompareHashAndPassword([]byte(a.Hash), []byte(phone)) == nil
	}
	if a.Phone == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(phone), []byte(a.Phone)) == 1
}

type authService struct {
	customerRepo repositories.CustomerRepository
	trainerRepo  repositories.TrainerRepository
	employeeRepo repositories.EmployeeRepository
	tokens       *utils.TokenIssuer
	admin        AdminCredential
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(
	customerRepo repositories.CustomerRepository,
	trainerRepo repositories.TrainerRepository,
	employeeRepo repositories.EmployeeRepository,
	tokens *utils.TokenIssuer,
	admin AdminCredential,
) AuthService {
	return &authService{
		customerRepo: customerRepo,
		trainerRepo:  trainerRepo,
		employeeRepo: employeeRepo,
		tokens:       tokens,
		admin:        admin,
	}
}

// Login checks customers, then trainers, then employees; the first match wins.
// Employees are matched by name only and become admin solely through the admin phone.
func (s *authService) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	if utils.IsEmpty(req.FirstName) || utils.IsEmpty(req.LastName) || utils.IsEmpty(req.PhoneNumber) {
		return nil, newValidationError("credentials", "First name, last name, and phone number are required")
	}

	customer, err := s.customerRepo.FindCustomerByCredentials(ctx, req.FirstName, req.LastName, req.PhoneNumber)
	switch {
	case err == nil:
		return s.issue(models.RoleCustomer, customer.ID, customer.FirstName, customer.LastName, customer.PhoneNum)
	case !errors.Is(err, repositories.ErrNotFound):
		return nil, fmt.Errorf("failed to look up customer: %w", err)
	}

	trainer, err := s.trainerRepo.FindTrainerByCredentials(ctx, req.FirstName, req.LastName, req.PhoneNumber)
	switch {
	case err == nil:
		return s.issue(models.RoleTrainer, trainer.ID, trainer.FirstName, trainer.LastName, trainer.PhoneNum)
	case !errors.Is(err, repositories.ErrNotFound):
		return nil, fmt.Errorf("failed to look up trainer: %w", err)
	}

	employee, err := s.employeeRepo.FindEmployeeByName(ctx, req.FirstName, req.LastName)
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return nil, ErrInvalidCredentials
	case err != nil:
		return nil, fmt.Errorf("failed to look up employee: %w", err)
	}
	if !s.admin.matches(req.PhoneNumber) {
		return nil, ErrInvalidCredentials
	}
	return s.issue(models.RoleAdmin, employee.ID, employee.FirstName, employee.LastName, req.PhoneNumber)
}

func (s *authService) issue(role string, id int64, firstName, lastName, phone string) (*models.LoginResponse, error) {
	token, expiresAt, err := s.tokens.GenerateAccessToken(id, strings.TrimSpace(firstName+" "+lastName), role)
	if err != nil {
		return nil, fmt.Errorf("failed to issue access token: %w", err)
	}
	return &models.LoginResponse{
		Success:     true,
		UserType:    role,
		UserID:      id,
		FirstName:   firstName,
		LastName:    lastName,
		PhoneNumber: phone,
		AccessToken: token,
		ExpiresAt:   expiresAt,
	}, nil
}

func (s *authService) CurrentUser(tokenString string) (*models.CurrentUser, error) {
	claims, err := s.tokens.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}
	user := &models.CurrentUser{
		UserID:   claims.UserID,
		Username: claims.Username,
		UserType: claims.Role,
	}
	if claims.ExpiresAt != nil {
		user.ExpiresAt = claims.ExpiresAt.Time
	}
	return user, nil
}
