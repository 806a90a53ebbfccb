package models

// Customer is a client of the business who owns pets.
type Customer struct {
	ID        int64   `json:"customerId" db:"id"`
	FirstName string  `json:"firstName" db:"first_name"`
	LastName  string  `json:"lastName" db:"last_name"`
	PhoneNum  string  `json:"phoneNum" db:"phone_num"`
	Address   *string `json:"address" db:"address"`
}
