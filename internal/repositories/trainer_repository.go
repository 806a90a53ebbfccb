package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"petcare_backend/internal/models"
)

// TrainerRepository defines the interface for trainer-related database operations.
type TrainerRepository interface {
	ListTrainers(ctx context.Context) ([]models.Trainer, error)
	GetTrainerByID(ctx context.Context, id int64) (*models.Trainer, error)
	CreateTrainer(ctx context.Context, trainer *models.Trainer) (int64, error)
	UpdateTrainer(ctx context.Context, trainer *models.Trainer) error
	DeleteTrainer(ctx context.Context, id int64) error
	FindTrainerByCredentials(ctx context.Context, firstName, lastName, phone string) (*models.Trainer, error)
}

type trainerRepository struct {
	db SQLExecutor
}

func NewTrainerRepository(db SQLExecutor) TrainerRepository {
	return &trainerRepository{db: db}
}

const trainerColumns = `id, first_name, last_name, phone_num, speciality`

func scanTrainer(s scanner) (models.Trainer, error) {
	var t models.Trainer
	var speciality sql.NullString
	if err := s.Scan(&t.ID, &t.FirstName, &t.LastName, &t.PhoneNum, &speciality); err != nil {
		return t, err
	}
	if speciality.Valid {
		t.Speciality = &speciality.String
	}
	return t, nil
}

func (r *trainerRepository) ListTrainers(ctx context.Context) ([]models.Trainer, error) {
	return queryList(ctx, r.db, scanTrainer, "trainers",
		`SELECT `+trainerColumns+` FROM trainers ORDER BY id`)
}

func (r *trainerRepository) GetTrainerByID(ctx context.Context, id int64) (*models.Trainer, error) {
	trainer, err := scanTrainer(r.db.QueryRowContext(ctx, `SELECT `+trainerColumns+` FROM trainers WHERE id = $1`, id))
	if err != nil {
		return nil, wrapReadError(err, fmt.Sprintf("getting trainer by ID %d", id))
	}
	return &trainer, nil
}

func (r *trainerRepository) CreateTrainer(ctx context.Context, trainer *models.Trainer) (int64, error) {
	query := `INSERT INTO trainers (first_name, last_name, phone_num, speciality)
	          VALUES ($1, $2, $3, $4)
	          RETURNING id`
	err := r.db.QueryRowContext(ctx, query,
		trainer.FirstName, trainer.LastName, trainer.PhoneNum, trainer.Speciality,
	).Scan(&trainer.ID)
	if err != nil {
		return 0, wrapWriteError(err, "creating trainer")
	}
	return trainer.ID, nil
}

func (r *trainerRepository) UpdateTrainer(ctx context.Context, trainer *models.Trainer) error {
	query := `UPDATE trainers SET
	            first_name = $1, last_name = $2, phone_num = $3, speciality = $4
	          WHERE id = $5`
	result, err := r.db.ExecContext(ctx, query,
		trainer.FirstName, trainer.LastName, trainer.PhoneNum, trainer.Speciality, trainer.ID,
	)
	if err != nil {
		return wrapWriteError(err, fmt.Sprintf("updating trainer ID %d", trainer.ID))
	}
	return expectOneRow(result, fmt.Sprintf("updating trainer ID %d", trainer.ID))
}

func (r *trainerRepository) DeleteTrainer(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM trainers WHERE id = $1`, id)
	if err != nil {
		return wrapWriteError(err, fmt.Sprintf("deleting trainer ID %d", id))
	}
	return expectOneRow(result, fmt.Sprintf("deleting trainer ID %d", id))
}

func (r *trainerRepository) FindTrainerByCredentials(ctx context.Context, firstName, lastName, phone string) (*models.Trainer, error) {
	query := `SELECT ` + trainerColumns + ` FROM trainers
	          WHERE first_name = $1 AND last_name = $2 AND phone_num = $3
	          ORDER BY id LIMIT 1`
	trainer, err := scanTrainer(r.db.QueryRowContext(ctx, query, firstName, lastName, phone))
	if err != nil {
		return nil, wrapReadError(err, "finding trainer by credentials")
	}
	return &trainer, nil
}
