package services

import (
	"errors"
	"fmt"

	"petcare_backend/internal/repositories"
)

// --- Shared Service Errors ---
var (
	// ErrIDMismatch is returned when an update's path id differs from the body id.
	ErrIDMismatch = errors.New("ID mismatch")

	// ErrValidation is matched by every *ValidationError.
	ErrValidation = errors.New("validation failed")

	ErrCustomerNotFound = errors.New("customer not found")
	ErrPetNotFound      = errors.New("pet not found")
	ErrTrainerNotFound  = errors.New("trainer not found")
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrClassNotFound    = errors.New("class not found")
	ErrBookingNotFound  = errors.New("booking not found")

	// ErrInvalidCredentials is returned when login finds no matching identity.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError carries a message meant for the caller, e.g. "First name is required".
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

func newValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// translateNotFound maps the repository miss onto the resource's own sentinel.
func translateNotFound(err error, notFound error, action string) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return notFound
	}
	return fmt.Errorf("failed to %s: %w", action, err)
}

func checkIDMatch(pathID, bodyID int64) error {
	if pathID != bodyID {
		return ErrIDMismatch
	}
	return nil
}
