package repositories

import (
	"context"
	"fmt"

	"petcare_backend/internal/models"
)

// BookingRepository defines the interface for booking-related database operations.
type BookingRepository interface {
	ListBookings(ctx context.Context) ([]models.Booking, error)
	// ListBookingsByTrainer returns bookings of every class the trainer teaches.
	ListBookingsByTrainer(ctx context.Context, trainerID int64) ([]models.Booking, error)
	// ListBookingsByCustomer returns bookings of every pet the customer owns.
	ListBookingsByCustomer(ctx context.Context, customerID int64) ([]models.Booking, error)
	GetBookingByID(ctx context.Context, id int64) (*models.Booking, error)
	CreateBooking(ctx context.Context, booking *models.Booking) (int64, error)
	UpdateBooking(ctx context.Context, booking *models.Booking) error
	DeleteBooking(ctx context.Context, id int64) error
}

type bookingRepository struct {
	db SQLExecutor
}

// NewBookingRepository creates a new instance of BookingRepository.
func NewBookingRepository(db SQLExecutor) BookingRepository {
	return &bookingRepository{db: db}
}

const bookingColumns = `b.id, b.class_id, b.pet_id, b.employee_id, b.booking_date, b.status, b.payment_status, b.amount_paid`

func scanBooking(s scanner) (models.Booking, error) {
	var b models.Booking
	err := s.Scan(&b.ID, &b.ClassID, &b.PetID, &b.EmployeeID, &b.BookingDate, &b.Status, &b.PaymentStatus, &b.AmountPaid)
	return b, err
}

func (r *bookingRepository) ListBookings(ctx context.Context) ([]models.Booking, error) {
	return queryList(ctx, r.db, scanBooking, "bookings",
		`SELECT `+bookingColumns+` FROM bookings b ORDER BY b.id`)
}

func (r *bookingRepository) ListBookingsByTrainer(ctx context.Context, trainerID int64) ([]models.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings b
	          JOIN classes c ON c.id = b.class_id
	          WHERE c.trainer_id = $1
	          ORDER BY b.id`
	return queryList(ctx, r.db, scanBooking, fmt.Sprintf("bookings of trainer %d", trainerID), query, trainerID)
}

func (r *bookingRepository) ListBookingsByCustomer(ctx context.Context, customerID int64) ([]models.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings b
	          JOIN pets p ON p.id = b.pet_id
	          WHERE p.customer_id = $1
	          ORDER BY b.id`
	return queryList(ctx, r.db, scanBooking, fmt.Sprintf("bookings of customer %d", customerID), query, customerID)
}

func (r *bookingRepository) GetBookingByID(ctx context.Context, id int64) (*models.Booking, error) {
	booking, err := scanBooking(r.db.QueryRowContext(ctx, `SELECT `+bookingColumns+` FROM bookings b WHERE b.id = $1`, id))
	if err != nil {
		return nil, wrapReadError(err, fmt.Sprintf("getting booking by ID %d", id))
	}
	return &booking, nil
}

func (r *bookingRepository) CreateBooking(ctx context.Context, booking *models.Booking) (int64, error) {
	query := `INSERT INTO bookings (class_id, pet_id, employee_id, booking_date, status, payment_status, amount_paid)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)
	          RETURNING id`
	err := r.db.QueryRowContext(ctx, query,
		booking.ClassID, booking.PetID, booking.EmployeeID, booking.BookingDate,
		booking.Status, booking.PaymentStatus, booking.AmountPaid,
	).Scan(&booking.ID)
	if err != nil {
		return 0, wrapWriteError(err, "creating booking")
	}
	return booking.ID, nil
}

func (r *bookingRepository) UpdateBooking(ctx context.Context, booking *models.Booking) error {
	query := `UPDATE bookings SET
	            class_id = $1, pet_id = $2, employee_id = $3, booking_date = $4,
	            status = $5, payment_status = $6, amount_paid = $7
	          WHERE id = $8`
	result, err := r.db.ExecContext(ctx, query,
		booking.ClassID, booking.PetID, booking.EmployeeID, booking.BookingDate,
		booking.Status, booking.PaymentStatus, booking.AmountPaid, booking.ID,
	)
	if err != nil {
		return wrapWriteError(err, fmt.Sprintf("updating booking ID %d", booking.ID))
	}
	return expectOneRow(result, fmt.Sprintf("updating booking ID %d", booking.ID))
}

func (r *bookingRepository) DeleteBooking(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return wrapWriteError(err, fmt.Sprintf("deleting booking ID %d", id))
	}
	return expectOneRow(result, fmt.Sprintf("deleting booking ID %d", id))
}
