package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"petcare_backend/internal/models"
)

// PetRepository defines the interface for pet-related database operations.
type PetRepository interface {
	ListPets(ctx context.Context) ([]models.Pet, error)
	ListPetsByCustomer(ctx context.Context, customerID int64) ([]models.Pet, error)
	GetPetByID(ctx context.Context, id int64) (*models.Pet, error)
	CreatePet(ctx context.Context, pet *models.Pet) (int64, error)
	UpdatePet(ctx context.Context, pet *models.Pet) error
	DeletePet(ctx context.Context, id int64) error
}

type petRepository struct {
	db SQLExecutor
}

func NewPetRepository(db SQLExecutor) PetRepository {
	return &petRepository{db: db}
}

const petColumns = `id, customer_id, name, species, birth_date, breed, notes`

func scanPet(s scanner) (models.Pet, error) {
	var p models.Pet
	var breed, notes sql.NullString
	if err := s.Scan(&p.ID, &p.CustomerID, &p.Name, &p.Species, &p.BirthDate, &breed, &notes); err != nil {
		return p, err
	}
	if breed.Valid {
		p.Breed = &breed.String
	}
	if notes.Valid {
		p.Notes = &notes.String
	}
	return p, nil
}

func (r *petRepository) ListPets(ctx context.Context) ([]models.Pet, error) {
	return queryList(ctx, r.db, scanPet, "pets",
		`SELECT `+petColumns+` FROM pets ORDER BY id`)
}

func (r *petRepository) ListPetsByCustomer(ctx context.Context, customerID int64) ([]models.Pet, error) {
	return queryList(ctx, r.db, scanPet, fmt.Sprintf("pets of customer %d", customerID),
		`SELECT `+petColumns+` FROM pets WHERE customer_id = $1 ORDER BY id`, customerID)
}

func (r *petRepository) GetPetByID(ctx context.Context, id int64) (*models.Pet, error) {
	pet, err := scanPet(r.db.QueryRowContext(ctx, `SELECT `+petColumns+` FROM pets WHERE id = $1`, id))
	if err != nil {
		return nil, wrapReadError(err, fmt.Sprintf("getting pet by ID %d", id))
	}
	return &pet, nil
}

func (r *petRepository) CreatePet(ctx context.Context, pet *models.Pet) (int64, error) {
	query := `INSERT INTO pets (customer_id, name, species, birth_date, breed, notes)
	          VALUES ($1, $2, $3, $4, $5, $6)
	          RETURNING id`
	err := r.db.QueryRowContext(ctx, query,
		pet.CustomerID, pet.Name, pet.Species, pet.BirthDate, pet.Breed, pet.Notes,
	).Scan(&pet.ID)
	if err != nil {
		return 0, wrapWriteError(err, "creating pet")
	}
	return pet.ID, nil
}

func (r *petRepository) UpdatePet(ctx context.Context, pet *models.Pet) error {
	query := `UPDATE pets SET
	            customer_id = $1, name = $2, species = $3, birth_date = $4, breed = $5, notes = $6
	          WHERE id = $7`
	result, err := r.db.ExecContext(ctx, query,
		pet.CustomerID, pet.Name, pet.Species, pet.BirthDate, pet.Breed, pet.Notes, pet.ID,
	)
	if err != nil {
		return wrapWriteError(err, fmt.Sprintf("updating pet ID %d", pet.ID))
	}
	return expectOneRow(result, fmt.Sprintf("updating pet ID %d", pet.ID))
}

func (r *petRepository) DeletePet(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM pets WHERE id = $1`, id)
	if err != nil {
		return wrapWriteError(err, fmt.Sprintf("deleting pet ID %d", id))
	}
	return expectOneRow(result, fmt.Sprintf("deleting pet ID %d", id))
}
