package models

// Booking statuses and payment statuses are free text; these are the values the client offers.
const (
	BookingStatusConfirmed = "Confirmed"
	BookingStatusPending   = "Pending"
	BookingStatusCancelled = "Cancelled"
	BookingStatusCompleted = "Completed"

	PaymentStatusPaid     = "Paid"
	PaymentStatusPending  = "Pending"
	PaymentStatusRefunded = "Refunded"
)

// Booking reserves a class slot for a pet, recorded by an employee.
type Booking struct {
	ID            int64    `json:"bookingId" db:"id"`
	ClassID       int64    `json:"classId" db:"class_id"`
	PetID         int64    `json:"petId" db:"pet_id"`
	EmployeeID    int64    `json:"employeeId" db:"employee_id"`
	BookingDate   DateTime `json:"bookingDate" db:"booking_date"`
	Status        string   `json:"status" db:"status" binding:"required"`
	PaymentStatus string   `json:"paymentStatus" db:"payment_status" binding:"required"`
	AmountPaid    float64  `json:"amountPaid" db:"amount_paid"`
}
