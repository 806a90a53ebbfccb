package services

import (
	"context"

	"petcare_backend/internal/models"
	"petcare_backend/internal/repositories"
)

type EmployeeService interface {
	ListEmployees(ctx context.Context) ([]models.Employee, error)
	GetEmployeeByID(ctx context.Context, id int64) (*models.Employee, error)
	CreateEmployee(ctx context.Context, employee models.Employee) (*models.Employee, error)
	UpdateEmployee(ctx context.Context, id int64, employee models.Employee) error
	DeleteEmployee(ctx context.Context, id int64) error
}

type employeeService struct {
	employeeRepo repositories.EmployeeRepository
}

func NewEmployeeService(repo repositories.EmployeeRepository) EmployeeService {
	return &employeeService{employeeRepo: repo}
}

func (s *employeeService) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	employees, err := s.employeeRepo.ListEmployees(ctx)
	if err != nil {
		return nil, translateNotFound(err, ErrEmployeeNotFound, "list employees")
	}
	return employees, nil
}

func (s *employeeService) GetEmployeeByID(ctx context.Context, id int64) (*models.Employee, error) {
	employee, err := s.employeeRepo.GetEmployeeByID(ctx, id)
	if err != nil {
		return nil, translateNotFound(err, ErrEmployeeNotFound, "get employee by ID")
	}
	return employee, nil
}

func (s *employeeService) CreateEmployee(ctx context.Context, employee models.Employee) (*models.Employee, error) {
	employee.ID = 0
	if _, err := s.employeeRepo.CreateEmployee(ctx, &employee); err != nil {
		return nil, translateNotFound(err, ErrEmployeeNotFound, "create employee")
	}
	return &employee, nil
}

func (s *employeeService) UpdateEmployee(ctx context.Context, id int64, employee models.Employee) error {
	if err := checkIDMatch(id, employee.ID); err != nil {
		return err
	}
	if err := s.employeeRepo.UpdateEmployee(ctx, &employee); err != nil {
		return translateNotFound(err, ErrEmployeeNotFound, "update employee")
	}
	return nil
}

func (s *employeeService) DeleteEmployee(ctx context.Context, id int64) error {
	if err := s.employeeRepo.DeleteEmployee(ctx, id); err != nil {
		return translateNotFound(err, ErrEmployeeNotFound, "delete employee")
	}
	return nil
}
