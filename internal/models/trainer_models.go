package models

// Trainer teaches classes.
type Trainer struct {
	ID         int64   `json:"trainerId" db:"id"`
	FirstName  string  `json:"firstName" db:"first_name" binding:"required"`
	LastName   string  `json:"lastName" db:"last_name" binding:"required"`
	PhoneNum   string  `json:"phoneNum" db:"phone_num" binding:"required"`
	Speciality *string `json:"speciality" db:"speciality"`
}
