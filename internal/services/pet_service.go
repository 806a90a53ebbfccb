package services

import (
	"context"

	"petcare_backend/internal/models"
	"petcare_backend/internal/repositories"
)

type PetService interface {
	ListPets(ctx context.Context) ([]models.Pet, error)
	ListPetsByCustomer(ctx context.Context, customerID int64) ([]models.Pet, error)
	GetPetByID(ctx context.Context, id int64) (*models.Pet, error)
	CreatePet(ctx context.Context, pet models.Pet) (*models.Pet, error)
	UpdatePet(ctx context.Context, id int64, pet models.Pet) error
	DeletePet(ctx context.Context, id int64) error
}

type petService struct {
	petRepo repositories.PetRepository
}

func NewPetService(repo repositories.PetRepository) PetService {
	return &petService{petRepo: repo}
}

func (s *petService) ListPets(ctx context.Context) ([]models.Pet, error) {
	pets, err := s.petRepo.ListPets(ctx)
	if err != nil {
		return nil, translateNotFound(err, ErrPetNotFound, "list pets")
	}
	return pets, nil
}

// ListPetsByCustomer does not check that the customer exists; an unknown owner has no pets.
func (s *petService) ListPetsByCustomer(ctx context.Context, customerID int64) ([]models.Pet, error) {
	pets, err := s.petRepo.ListPetsByCustomer(ctx, customerID)
	if err != nil {
		return nil, translateNotFound(err, ErrPetNotFound, "list pets by customer")
	}
	return pets, nil
}

func (s *petService) GetPetByID(ctx context.Context, id int64) (*models.Pet, error) {
	pet, err := s.petRepo.GetPetByID(ctx, id)
	if err != nil {
		return nil, translateNotFound(err, ErrPetNotFound, "get pet by ID")
	}
	return pet, nil
}

func (s *petService) CreatePet(ctx context.Context, pet models.Pet) (*models.Pet, error) {
	pet.ID = 0
	if _, err := s.petRepo.CreatePet(ctx, &pet); err != nil {
		return nil, translateNotFound(err, ErrPetNotFound, "create pet")
	}
	return &pet, nil
}

func (s *petService) UpdatePet(ctx context.Context, id int64, pet models.Pet) error {
	if err := checkIDMatch(id, pet.ID); err != nil {
		return err
	}
	if err := s.petRepo.UpdatePet(ctx, &pet); err != nil {
		return translateNotFound(err, ErrPetNotFound, "update pet")
	}
	return nil
}

func (s *petService) DeletePet(ctx context.Context, id int64) error {
	if err := s.petRepo.DeletePet(ctx, id); err != nil {
		return translateNotFound(err, ErrPetNotFound, "delete pet")
	}
	return nil
}
