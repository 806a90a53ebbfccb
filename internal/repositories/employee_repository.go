package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"petcare_backend/internal/models"
)

// EmployeeRepository defines the interface for employee-related database operations.
type EmployeeRepository interface {
	ListEmployees(ctx context.Context) ([]models.Employee, error)
	GetEmployeeByID(ctx context.Context, id int64) (*models.Employee, error)
	CreateEmployee(ctx context.Context, employee *models.Employee) (int64, error)
	UpdateEmployee(ctx context.Context, employee *models.Employee) error
	DeleteEmployee(ctx context.Context, id int64) error
	// FindEmployeeByName matches first and last name only; phone is not part of the lookup.
	FindEmployeeByName(ctx context.Context, firstName, lastName string) (*models.Employee, error)
}

type employeeRepository struct {
	db SQLExecutor
}

func NewEmployeeRepository(db SQLExecutor) EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeColumns = `id, first_name, last_name, email, phone, position, hire_date`

func scanEmployee(s scanner) (models.Employee, error) {
	var e models.Employee
	var email, phone, position sql.NullString
	var hireDate sql.NullTime
	if err := s.Scan(&e.ID, &e.FirstName, &e.LastName, &email, &phone, &position, &hireDate); err != nil {
		return e, err
	}
	if email.Valid {
		e.Email = &email.String
	}
	if phone.Valid {
		e.Phone = &phone.String
	}
	if position.Valid {
		e.Position = &position.String
	}
	if hireDate.Valid {
		d := models.NewDate(hireDate.Time.Year(), hireDate.Time.Month(), hireDate.Time.Day())
		e.HireDate = &d
	}
	return e, nil
}

func (r *employeeRepository) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	return queryList(ctx, r.db, scanEmployee, "employees",
		`SELECT `+employeeColumns+` FROM employees ORDER BY id`)
}

func (r *employeeRepository) GetEmployeeByID(ctx context.Context, id int64) (*models.Employee, error) {
	employee, err := scanEmployee(r.db.QueryRowContext(ctx, `SELECT `+employeeColumns+` FROM employees WHERE id = $1`, id))
	if err != nil {
		return nil, wrapReadError(err, fmt.Sprintf("getting employee by ID %d", id))
	}
	return &employee, nil
}

func (r *employeeRepository) CreateEmployee(ctx context.Context, employee *models.Employee) (int64, error) {
	query := `INSERT INTO employees (first_name, last_name, email, phone, position, hire_date)
	          VALUES ($1, $2, $3, $4, $5, $6)
	          RETURNING id`
	err := r.db.QueryRowContext(ctx, query,
		employee.FirstName, employee.LastName, employee.Email, employee.Phone, employee.Position, employee.HireDate,
	).Scan(&employee.ID)
	if err != nil {
		return 0, wrapWriteError(err, "creating employee")
	}
	return employee.ID, nil
}

func (r *employeeRepository) UpdateEmployee(ctx context.Context, employee *models.Employee) error {
	query := `UPDATE employees SET
	            first_name = $1, last_name = $2, email = $3, phone = $4, position = $5, hire_date = $6
	          WHERE id = $7`
	result, err := r.db.ExecContext(ctx, query,
		employee.FirstName, employee.LastName, employee.Email, employee.Phone, employee.Position, employee.HireDate, employee.ID,
	)
	if err != nil {
		return wrapWriteError(err, fmt.Sprintf("updating employee ID %d", employee.ID))
	}
	return expectOneRow(result, fmt.Sprintf("updating employee ID %d", employee.ID))
}

func (r *employeeRepository) DeleteEmployee(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return wrapWriteError(err, fmt.Sprintf("deleting employee ID %d", id))
	}
	return expectOneRow(result, fmt.Sprintf("deleting employee ID %d", id))
}

func (r *employeeRepository) FindEmployeeByName(ctx context.Context, firstName, lastName string) (*models.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees
	          WHERE first_name = $1 AND last_name = $2
	          ORDER BY id LIMIT 1`
	employee, err := scanEmployee(r.db.QueryRowContext(ctx, query, firstName, lastName))
	if err != nil {
		return nil, wrapReadError(err, "finding employee by name")
	}
	return &employee, nil
}
