package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"petcare_backend/internal/models"
)

// ClassRepository defines the interface for class-related database operations.
type ClassRepository interface {
	ListClasses(ctx context.Context) ([]models.Class, error)
	ListClassesByTrainer(ctx context.Context, trainerID int64) ([]models.Class, error)
	GetClassByID(ctx context.Context, id int64) (*models.Class, error)
	CreateClass(ctx context.Context, class *models.Class) (int64, error)
	UpdateClass(ctx context.Context, class *models.Class) error
	DeleteClass(ctx context.Context, id int64) error
}

type classRepository struct {
	db SQLExecutor
}

func NewClassRepository(db SQLExecutor) ClassRepository {
	return &classRepository{db: db}
}

const classColumns = `id, trainer_id, class_type, title, description, location,
	start_time, end_time, start_date, end_date, max_capacity, price, category`

func scanClass(s scanner) (models.Class, error) {
	var c models.Class
	var category sql.NullString
	err := s.Scan(
		&c.ID, &c.TrainerID, &c.ClassType, &c.Title, &c.Description, &c.Location,
		&c.StartTime, &c.EndTime, &c.StartDate, &c.EndDate, &c.MaxCapacity, &c.Price, &category,
	)
	if err != nil {
		return c, err
	}
	if category.Valid {
		c.Category = &category.String
	}
	return c, nil
}

func (r *classRepository) ListClasses(ctx context.Context) ([]models.Class, error) {
	return queryList(ctx, r.db, scanClass, "classes",
		`SELECT `+classColumns+` FROM classes ORDER BY id`)
}

func (r *classRepository) ListClassesByTrainer(ctx context.Context, trainerID int64) ([]models.Class, error) {
	return queryList(ctx, r.db, scanClass, fmt.Sprintf("classes of trainer %d", trainerID),
		`SELECT `+classColumns+` FROM classes WHERE trainer_id = $1 ORDER BY id`, trainerID)
}

func (r *classRepository) GetClassByID(ctx context.Context, id int64) (*models.Class, error) {
	class, err := scanClass(r.db.QueryRowContext(ctx, `SELECT `+classColumns+` FROM classes WHERE id = $1`, id))
	if err != nil {
		return nil, wrapReadError(err, fmt.Sprintf("getting class by ID %d", id))
	}
	return &class, nil
}

func (r *classRepository) CreateClass(ctx context.Context, class *models.Class) (int64, error) {
	query := `INSERT INTO classes (trainer_id, class_type, title, description, location,
	            start_time, end_time, start_date, end_date, max_capacity, price, category)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	          RETURNING id`
	err := r.db.QueryRowContext(ctx, query,
		class.TrainerID, class.ClassType, class.Title, class.Description, class.Location,
		class.StartTime, class.EndTime, class.StartDate, class.EndDate, class.MaxCapacity, class.Price, class.Category,
	).Scan(&class.ID)
	if err != nil {
		return 0, wrapWriteError(err, "creating class")
	}
	return class.ID, nil
}

func (r *classRepository) UpdateClass(ctx context.Context, class *models.Class) error {
	query := `UPDATE classes SET
	            trainer_id = $1, class_type = $2, title = $3, description = $4, location = $5,
	            start_time = $6, end_time = $7, start_date = $8, end_date = $9,
	            max_capacity = $10, price = $11, category = $12
	          WHERE id = $13`
	result, err := r.db.ExecContext(ctx, query,
		class.TrainerID, class.ClassType, class.Title, class.Description, class.Location,
		class.StartTime, class.EndTime, class.StartDate, class.EndDate, class.MaxCapacity, class.Price, class.Category,
		class.ID,
	)
	if err != nil {
		return wrapWriteError(err, fmt.Sprintf("updating class ID %d", class.ID))
	}
	return expectOneRow(result, fmt.Sprintf("updating class ID %d", class.ID))
}

func (r *classRepository) DeleteClass(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM classes WHERE id = $1`, id)
	if err != nil {
		return wrapWriteError(err, fmt.Sprintf("deleting class ID %d", id))
	}
	return expectOneRow(result, fmt.Sprintf("deleting class ID %d", id))
}
