package models

// Pet belongs to a customer through CustomerID. The reference is not checked by the store.
type Pet struct {
	ID         int64   `json:"petId" db:"id"`
	CustomerID int64   `json:"customerId" db:"customer_id"`
	Name       string  `json:"name" db:"name" binding:"required"`
	Species    string  `json:"species" db:"species" binding:"required"`
	BirthDate  Date    `json:"birthDate" db:"birth_date"`
	Breed      *string `json:"breed" db:"breed"`
	Notes      *string `json:"notes" db:"notes"`
}
