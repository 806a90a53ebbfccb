package models

// Employee is a staff member. Admin login resolves against this table by name.
type Employee struct {
	ID        int64   `json:"employeeId" db:"id"`
	FirstName string  `json:"firstName" db:"first_name" binding:"required"`
	LastName  string  `json:"lastName" db:"last_name" binding:"required"`
	Email     *string `json:"email" db:"email"`
	Phone     *string `json:"phone" db:"phone"`
	Position  *string `json:"position" db:"position"`
	HireDate  *Date   `json:"hireDate" db:"hire_date"`
}
