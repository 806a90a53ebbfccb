package handlers

import (
	"net/http"

	"petcare_backend/internal/models"
	"petcare_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// ClassHandler holds the class service.
type ClassHandler struct {
	classService services.ClassService
}

// NewClassHandler creates a new ClassHandler.
func NewClassHandler(cs services.ClassService) *ClassHandler {
	return &ClassHandler{classService: cs}
}

// ListClasses handles fetching all classes.
func (h *ClassHandler) ListClasses(c *gin.Context) {
	classes, err := h.classService.ListClasses(c.Request.Context())
	if err != nil {
		respondServiceError(c, "ListClasses", err, nil, "", "Error retrieving classes")
		return
	}
	c.JSON(http.StatusOK, classes)
}

// ListClassesByTrainer serves GET /Trainer/:id/classes.
func (h *ClassHandler) ListClassesByTrainer(c *gin.Context) {
	trainerID, ok := parseID(c, trainerResource)
	if !ok {
		return
	}

	classes, err := h.classService.ListClassesByTrainer(c.Request.Context(), trainerID)
	if err != nil {
		respondServiceError(c, "ListClassesByTrainer", err, nil, "", "Error retrieving classes")
		return
	}
	c.JSON(http.StatusOK, classes)
}

// GetClassByID handles fetching a single class by ID.
func (h *ClassHandler) GetClassByID(c *gin.Context) {
	id, ok := parseID(c, classResource)
	if !ok {
		return
	}

	class, err := h.classService.GetClassByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, "GetClassByID", err, services.ErrClassNotFound, classResource.notFoundMessage(id), "Error retrieving class")
		return
	}
	c.JSON(http.StatusOK, class)
}

// CreateClass handles the creation of a new class.
func (h *ClassHandler) CreateClass(c *gin.Context) {
	var req models.Class
	if !bindJSON(c, "CreateClass", &req) {
		return
	}

	class, err := h.classService.CreateClass(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, "CreateClass", err, nil, "", "Error creating class")
		return
	}
	respondCreated(c, classResource, class.ID, class)
}

// UpdateClass handles replacing a class.
func (h *ClassHandler) UpdateClass(c *gin.Context) {
	id, ok := parseID(c, classResource)
	if !ok {
		return
	}
	var req models.Class
	if !bindJSON(c, "UpdateClass", &req) {
		return
	}

	if err := h.classService.UpdateClass(c.Request.Context(), id, req); err != nil {
		respondServiceError(c, "UpdateClass", err, services.ErrClassNotFound, classResource.notFoundMessage(id), "Error updating class")
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteClass handles deleting a class. Bookings that reference it are kept.
func (h *ClassHandler) DeleteClass(c *gin.Context) {
	id, ok := parseID(c, classResource)
	if !ok {
		return
	}

	if err := h.classService.DeleteClass(c.Request.Context(), id); err != nil {
		respondServiceError(c, "DeleteClass", err, services.ErrClassNotFound, classResource.notFoundMessage(id), "Error deleting class")
		return
	}
	c.Status(http.StatusNoContent)
}
