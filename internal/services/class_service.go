package services

import (
	"context"

	"petcare_backend/internal/models"
	"petcare_backend/internal/repositories"
)

type ClassService interface {
	ListClasses(ctx context.Context) ([]models.Class, error)
	ListClassesByTrainer(ctx context.Context, trainerID int64) ([]models.Class, error)
	GetClassByID(ctx context.Context, id int64) (*models.Class, error)
	CreateClass(ctx context.Context, class models.Class) (*models.Class, error)
	UpdateClass(ctx context.Context, id int64, class models.Class) error
	DeleteClass(ctx context.Context, id int64) error
}

type classService struct {
	classRepo repositories.ClassRepository
}

func NewClassService(repo repositories.ClassRepository) ClassService {
	return &classService{classRepo: repo}
}

func (s *classService) ListClasses(ctx context.Context) ([]models.Class, error) {
	classes, err := s.classRepo.ListClasses(ctx)
	if err != nil {
		return nil, translateNotFound(err, ErrClassNotFound, "list classes")
	}
	return classes, nil
}

func (s *classService) ListClassesByTrainer(ctx context.Context, trainerID int64) ([]models.Class, error) {
	classes, err := s.classRepo.ListClassesByTrainer(ctx, trainerID)
	if err != nil {
		return nil, translateNotFound(err, ErrClassNotFound, "list classes by trainer")
	}
	return classes, nil
}

func (s *classService) GetClassByID(ctx context.Context, id int64) (*models.Class, error) {
	class, err := s.classRepo.GetClassByID(ctx, id)
	if err != nil {
		return nil, translateNotFound(err, ErrClassNotFound, "get class by ID")
	}
	return class, nil
}

func (s *classService) CreateClass(ctx context.Context, class models.Class) (*models.Class, error) {
	class.ID = 0
	if _, err := s.classRepo.CreateClass(ctx, &class); err != nil {
		return nil, translateNotFound(err, ErrClassNotFound, "create class")
	}
	return &class, nil
}

func (s *classService) UpdateClass(ctx context.Context, id int64, class models.Class) error {
	if err := checkIDMatch(id, class.ID); err != nil {
		return err
	}
	if err := s.classRepo.UpdateClass(ctx, &class); err != nil {
		return translateNotFound(err, ErrClassNotFound, "update class")
	}
	return nil
}

func (s *classService) DeleteClass(ctx context.Context, id int64) error {
	if err := s.classRepo.DeleteClass(ctx, id); err != nil {
		return translateNotFound(err, ErrClassNotFound, "delete class")
	}
	return nil
}
