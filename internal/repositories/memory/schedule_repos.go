package memory

import (
	"context"

	"petcare_backend/internal/models"
	"petcare_backend/internal/repositories"
)

type petRepo struct{ s *Store }

func NewPetRepo(s *Store) repositories.PetRepository { return &petRepo{s: s} }

func (r *petRepo) ListPets(ctx context.Context) ([]models.Pet, error) {
	return r.s.pets.filter(nil), nil
}

func (r *petRepo) ListPetsByCustomer(ctx context.Context, customerID int64) ([]models.Pet, error) {
	return r.s.pets.filter(func(p models.Pet) bool { return p.CustomerID == customerID }), nil
}

func (r *petRepo) GetPetByID(ctx context.Context, id int64) (*models.Pet, error) {
	p, ok := r.s.pets.get(id)
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &p, nil
}

func (r *petRepo) CreatePet(ctx context.Context, pet *models.Pet) (int64, error) {
	pet.ID = r.s.pets.insert(*pet)
	return pet.ID, nil
}

func (r *petRepo) UpdatePet(ctx context.Context, pet *models.Pet) error {
	if !r.s.pets.replace(pet.ID, *pet) {
		return repositories.ErrNotFound
	}
	return nil
}

func (r *petRepo) DeletePet(ctx context.Context, id int64) error {
	if !r.s.pets.remove(id) {
		return repositories.ErrNotFound
	}
	return nil
}

type classRepo struct{ s *Store }

func NewClassRepo(s *Store) repositories.ClassRepository { return &classRepo{s: s} }

func (r *classRepo) ListClasses(ctx context.Context) ([]models.Class, error) {
	return r.s.classes.filter(nil), nil
}

func (r *classRepo) ListClassesByTrainer(ctx context.Context, trainerID int64) ([]models.Class, error) {
	return r.s.classes.filter(func(c models.Class) bool { return c.TrainerID == trainerID }), nil
}

func (r *classRepo) GetClassByID(ctx context.Context, id int64) (*models.Class, error) {
	c, ok := r.s.classes.get(id)
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &c, nil
}

func (r *classRepo) CreateClass(ctx context.Context, class *models.Class) (int64, error) {
	class.ID = r.s.classes.insert(*class)
	return class.ID, nil
}

func (r *classRepo) UpdateClass(ctx context.Context, class *models.Class) error {
	if !r.s.classes.replace(class.ID, *class) {
		return repositories.ErrNotFound
	}
	return nil
}

func (r *classRepo) DeleteClass(ctx context.Context, id int64) error {
	if !r.s.classes.remove(id) {
		return repositories.ErrNotFound
	}
	return nil
}

type bookingRepo struct{ s *Store }

func NewBookingRepo(s *Store) repositories.BookingRepository { return &bookingRepo{s: s} }

func (r *bookingRepo) ListBookings(ctx context.Context) ([]models.Booking, error) {
	return r.s.bookings.filter(nil), nil
}

func (r *bookingRepo) ListBookingsByTrainer(ctx context.Context, trainerID int64) ([]models.Booking, error) {
	taught := map[int64]bool{}
	for _, c := range r.s.classes.filter(func(c models.Class) bool { return c.TrainerID == trainerID }) {
		taught[c.ID] = true
	}
	return r.s.bookings.filter(func(b models.Booking) bool { return taught[b.ClassID] }), nil
}

func (r *bookingRepo) ListBookingsByCustomer(ctx context.Context, customerID int64) ([]models.Booking, error) {
	owned := map[int64]bool{}
	for _, p := range r.s.pets.filter(func(p models.Pet) bool { return p.CustomerID == customerID }) {
		owned[p.ID] = true
	}
	return r.s.bookings.filter(func(b models.Booking) bool { return owned[b.PetID] }), nil
}

func (r *bookingRepo) GetBookingByID(ctx context.Context, id int64) (*models.Booking, error) {
	b, ok := r.s.bookings.get(id)
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &b, nil
}

func (r *bookingRepo) CreateBooking(ctx context.Context, booking *models.Booking) (int64, error) {
	booking.ID = r.s.bookings.insert(*booking)
	return booking.ID, nil
}

func (r *bookingRepo) UpdateBooking(ctx context.Context, booking *models.Booking) error {
	if !r.s.bookings.replace(booking.ID, *booking) {
		return repositories.ErrNotFound
	}
	return nil
}

func (r *bookingRepo) DeleteBooking(ctx context.Context, id int64) error {
	if !r.s.bookings.remove(id) {
		return repositories.ErrNotFound
	}
	return nil
}
