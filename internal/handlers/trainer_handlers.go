package handlers

import (
	"net/http"

	"petcare_backend/internal/models"
	"petcare_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// TrainerHandler holds the trainer service.
type TrainerHandler struct {
	trainerService services.TrainerService
}

// NewTrainerHandler creates a new TrainerHandler.
func NewTrainerHandler(ts services.TrainerService) *TrainerHandler {
	return &TrainerHandler{trainerService: ts}
}

// ListTrainers handles fetching all trainers.
func (h *TrainerHandler) ListTrainers(c *gin.Context) {
	trainers, err := h.trainerService.ListTrainers(c.Request.Context())
	if err != nil {
		respondServiceError(c, "ListTrainers", err, nil, "", "Error retrieving trainers")
		return
	}
	c.JSON(http.StatusOK, trainers)
}

// GetTrainerByID handles fetching a single trainer by ID.
func (h *TrainerHandler) GetTrainerByID(c *gin.Context) {
	id, ok := parseID(c, trainerResource)
	if !ok {
		return
	}

	trainer, err := h.trainerService.GetTrainerByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, "GetTrainerByID", err, services.ErrTrainerNotFound, trainerResource.notFoundMessage(id), "Error retrieving trainer")
		return
	}
	c.JSON(http.StatusOK, trainer)
}

// CreateTrainer handles the creation of a new trainer.
func (h *TrainerHandler) CreateTrainer(c *gin.Context) {
	var req models.Trainer
	if !bindJSON(c, "CreateTrainer", &req) {
		return
	}

	trainer, err := h.trainerService.CreateTrainer(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, "CreateTrainer", err, nil, "", "Error creating trainer")
		return
	}
	respondCreated(c, trainerResource, trainer.ID, trainer)
}

// UpdateTrainer handles replacing a trainer.
func (h *TrainerHandler) UpdateTrainer(c *gin.Context) {
	id, ok := parseID(c, trainerResource)
	if !ok {
		return
	}
	var req models.Trainer
	if !bindJSON(c, "UpdateTrainer", &req) {
		return
	}

	if err := h.trainerService.UpdateTrainer(c.Request.Context(), id, req); err != nil {
		respondServiceError(c, "UpdateTrainer", err, services.ErrTrainerNotFound, trainerResource.notFoundMessage(id), "Error updating trainer")
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteTrainer handles deleting a trainer.
func (h *TrainerHandler) DeleteTrainer(c *gin.Context) {
	id, ok := parseID(c, trainerResource)
	if !ok {
		return
	}

	if err := h.trainerService.DeleteTrainer(c.Request.Context(), id); err != nil {
		respondServiceError(c, "DeleteTrainer", err, services.ErrTrainerNotFound, trainerResource.notFoundMessage(id), "Error deleting trainer")
		return
	}
	c.Status(http.StatusNoContent)
}
