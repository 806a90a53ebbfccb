package memory

import (
	"context"

	"petcare_backend/internal/models"
	"petcare_backend/internal/repositories"
)

type customerRepo struct{ s *Store }

func NewCustomerRepo(s *Store) repositories.CustomerRepository { return &customerRepo{s: s} }

func (r *customerRepo) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	return r.s.customers.filter(nil), nil
}

func (r *customerRepo) GetCustomerByID(ctx context.Context, id int64) (*models.Customer, error) {
	c, ok := r.s.customers.get(id)
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &c, nil
}

func (r *customerRepo) CreateCustomer(ctx context.Context, customer *models.Customer) (int64, error) {
	customer.ID = r.s.customers.insert(*customer)
	return customer.ID, nil
}

func (r *customerRepo) UpdateCustomer(ctx context.Context, customer *models.Customer) error {
	if !r.s.customers.replace(customer.ID, *customer) {
		return repositories.ErrNotFound
	}
	return nil
}

func (r *customerRepo) DeleteCustomer(ctx context.Context, id int64) error {
	if !r.s.customers.remove(id) {
		return repositories.ErrNotFound
	}
	return nil
}

func (r *customerRepo) FindCustomerByCredentials(ctx context.Context, firstName, lastName, phone string) (*models.Customer, error) {
	c, ok := r.s.customers.first(func(c models.Customer) bool {
		return c.FirstName == firstName && c.LastName == lastName && c.PhoneNum == phone
	})
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &c, nil
}

type trainerRepo struct{ s *Store }

func NewTrainerRepo(s *Store) repositories.TrainerRepository { return &trainerRepo{s: s} }

func (r *trainerRepo) ListTrainers(ctx context.Context) ([]models.Trainer, error) {
	return r.s.trainers.filter(nil), nil
}

func (r *trainerRepo) GetTrainerByID(ctx context.Context, id int64) (*models.Trainer, error) {
	t, ok := r.s.trainers.get(id)
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &t, nil
}

func (r *trainerRepo) CreateTrainer(ctx context.Context, trainer *models.Trainer) (int64, error) {
	trainer.ID = r.s.trainers.insert(*trainer)
	return trainer.ID, nil
}

func (r *trainerRepo) UpdateTrainer(ctx context.Context, trainer *models.Trainer) error {
	if !r.s.trainers.replace(trainer.ID, *trainer) {
		return repositories.ErrNotFound
	}
	return nil
}

func (r *trainerRepo) DeleteTrainer(ctx context.Context, id int64) error {
	if !r.s.trainers.remove(id) {
		return repositories.ErrNotFound
	}
	return nil
}

func (r *trainerRepo) FindTrainerByCredentials(ctx context.Context, firstName, lastName, phone string) (*models.Trainer, error) {
	t, ok := r.s.trainers.first(func(t models.Trainer) bool {
		return t.FirstName == firstName && t.LastName == lastName && t.PhoneNum == phone
	})
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &t, nil
}

type employeeRepo struct{ s *Store }

func NewEmployeeRepo(s *Store) repositories.EmployeeRepository { return &employeeRepo{s: s} }

func (r *employeeRepo) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	return r.s.employees.filter(nil), nil
}

func (r *employeeRepo) GetEmployeeByID(ctx context.Context, id int64) (*models.Employee, error) {
	e, ok := r.s.employees.get(id)
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &e, nil
}

func (r *employeeRepo) CreateEmployee(ctx context.Context, employee *models.Employee) (int64, error) {
	employee.ID = r.s.employees.insert(*employee)
	return employee.ID, nil
}

func (r *employeeRepo) UpdateEmployee(ctx context.Context, employee *models.Employee) error {
	if !r.s.employees.replace(employee.ID, *employee) {
		return repositories.ErrNotFound
	}
	return nil
}

func (r *employeeRepo) DeleteEmployee(ctx context.Context, id int64) error {
	if !r.s.employees.remove(id) {
		return repositories.ErrNotFound
	}
	return nil
}

func (r *employeeRepo) FindEmployeeByName(ctx context.Context, firstName, lastName string) (*models.Employee, error) {
	e, ok := r.s.employees.first(func(e models.Employee) bool {
		return e.FirstName == firstName && e.LastName == lastName
	})
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &e, nil
}
