package services

import (
	"context"
	"time"

	"petcare_backend/internal/events"
	"petcare_backend/internal/models"
	"petcare_backend/internal/repositories"
	"petcare_backend/pkg/utils"
)

type BookingService interface {
	ListBookings(ctx context.Context) ([]models.Booking, error)
	ListBookingsByTrainer(ctx context.Context, trainerID int64) ([]models.Booking, error)
	ListBookingsByCustomer(ctx context.Context, customerID int64) ([]models.Booking, error)
	GetBookingByID(ctx context.Context, id int64) (*models.Booking, error)
	CreateBooking(ctx context.Context, booking models.Booking) (*models.Booking, error)
	UpdateBooking(ctx context.Context, id int64, booking models.Booking) error
	DeleteBooking(ctx context.Context, id int64) error
}

// bookingPublishTimeout caps how long a request waits on the event broker.
const bookingPublishTimeout = 2 * time.Second

type bookingService struct {
	bookingRepo repositories.BookingRepository
	publisher   events.BookingPublisher
}

// NewBookingService creates a new instance of BookingService. A nil publisher drops events.
func NewBookingService(repo repositories.BookingRepository, publisher events.BookingPublisher) BookingService {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	return &bookingService{bookingRepo: repo, publisher: publisher}
}

// publish reports a committed change. Failures are logged and never fail the
// request. The change is already stored, so a cancelled request still
// publishes, bounded by bookingPublishTimeout.
func (s *bookingService) publish(ctx context.Context, eventType string, bookingID int64, booking *models.Booking) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), bookingPublishTimeout)
	defer cancel()
	if err := s.publisher.PublishBooking(ctx, eventType, bookingID, booking); err != nil {
		utils.LogWarn(err, "BookingService: failed to publish "+eventType)
	}
}

func (s *bookingService) ListBookings(ctx context.Context) ([]models.Booking, error) {
	bookings, err := s.bookingRepo.ListBookings(ctx)
	if err != nil {
		return nil, translateNotFound(err, ErrBookingNotFound, "list bookings")
	}
	return bookings, nil
}

func (s *bookingService) ListBookingsByTrainer(ctx context.Context, trainerID int64) ([]models.Booking, error) {
	bookings, err := s.bookingRepo.ListBookingsByTrainer(ctx, trainerID)
	if err != nil {
		return nil, translateNotFound(err, ErrBookingNotFound, "list bookings by trainer")
	}
	return bookings, nil
}

func (s *bookingService) ListBookingsByCustomer(ctx context.Context, customerID int64) ([]models.Booking, error) {
	bookings, err := s.bookingRepo.ListBookingsByCustomer(ctx, customerID)
	if err != nil {
		return nil, translateNotFound(err, ErrBookingNotFound, "list bookings by customer")
	}
	return bookings, nil
}

func (s *bookingService) GetBookingByID(ctx context.Context, id int64) (*models.Booking, error) {
	booking, err := s.bookingRepo.GetBookingByID(ctx, id)
	if err != nil {
		return nil, translateNotFound(err, ErrBookingNotFound, "get booking by ID")
	}
	return booking, nil
}

func (s *bookingService) CreateBooking(ctx context.Context, booking models.Booking) (*models.Booking, error) {
	booking.ID = 0
	if _, err := s.bookingRepo.CreateBooking(ctx, &booking); err != nil {
		return nil, translateNotFound(err, ErrBookingNotFound, "create booking")
	}
	s.publish(ctx, events.BookingCreated, booking.ID, &booking)
	return &booking, nil
}

func (s *bookingService) UpdateBooking(ctx context.Context, id int64, booking models.Booking) error {
	if err := checkIDMatch(id, booking.ID); err != nil {
		return err
	}
	if err := s.bookingRepo.UpdateBooking(ctx, &booking); err != nil {
		return translateNotFound(err, ErrBookingNotFound, "update booking")
	}
	s.publish(ctx, events.BookingUpdated, booking.ID, &booking)
	return nil
}

func (s *bookingService) DeleteBooking(ctx context.Context, id int64) error {
	if err := s.bookingRepo.DeleteBooking(ctx, id); err != nil {
		return translateNotFound(err, ErrBookingNotFound, "delete booking")
	}
	s.publish(ctx, events.BookingDeleted, id, nil)
	return nil
}
