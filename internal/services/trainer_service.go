package services

import (
	"context"

	"petcare_backend/internal/models"
	"petcare_backend/internal/repositories"
)

type TrainerService interface {
	ListTrainers(ctx context.Context) ([]models.Trainer, error)
	GetTrainerByID(ctx context.Context, id int64) (*models.Trainer, error)
	CreateTrainer(ctx context.Context, trainer models.Trainer) (*models.Trainer, error)
	UpdateTrainer(ctx context.Context, id int64, trainer models.Trainer) error
	DeleteTrainer(ctx context.Context, id int64) error
}

type trainerService struct {
	trainerRepo repositories.TrainerRepository
}

func NewTrainerService(repo repositories.TrainerRepository) TrainerService {
	return &trainerService{trainerRepo: repo}
}

func (s *trainerService) ListTrainers(ctx context.Context) ([]models.Trainer, error) {
	trainers, err := s.trainerRepo.ListTrainers(ctx)
	if err != nil {
		return nil, translateNotFound(err, ErrTrainerNotFound, "list trainers")
	}
	return trainers, nil
}

func (s *trainerService) GetTrainerByID(ctx context.Context, id int64) (*models.Trainer, error) {
	trainer, err := s.trainerRepo.GetTrainerByID(ctx, id)
	if err != nil {
		return nil, translateNotFound(err, ErrTrainerNotFound, "get trainer by ID")
	}
	return trainer, nil
}

func (s *trainerService) CreateTrainer(ctx context.Context, trainer models.Trainer) (*models.Trainer, error) {
	trainer.ID = 0
	if _, err := s.trainerRepo.CreateTrainer(ctx, &trainer); err != nil {
		return nil, translateNotFound(err, ErrTrainerNotFound, "create trainer")
	}
	return &trainer, nil
}

func (s *trainerService) UpdateTrainer(ctx context.Context, id int64, trainer models.Trainer) error {
	if err := checkIDMatch(id, trainer.ID); err != nil {
		return err
	}
	if err := s.trainerRepo.UpdateTrainer(ctx, &trainer); err != nil {
		return translateNotFound(err, ErrTrainerNotFound, "update trainer")
	}
	return nil
}

func (s *trainerService) DeleteTrainer(ctx context.Context, id int64) error {
	if err := s.trainerRepo.DeleteTrainer(ctx, id); err != nil {
		return translateNotFound(err, ErrTrainerNotFound, "delete trainer")
	}
	return nil
}
