package handlers

import (
	"net/http"

	"petcare_backend/internal/models"
	"petcare_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// PetHandler holds the pet service.
type PetHandler struct {
	petService services.PetService
}

// NewPetHandler creates a new PetHandler.
func NewPetHandler(ps services.PetService) *PetHandler {
	return &PetHandler{petService: ps}
}

func (h *PetHandler) ListPets(c *gin.Context) {
	pets, err := h.petService.ListPets(c.Request.Context())
	if err != nil {
		respondServiceError(c, "ListPets", err, nil, "", "Error retrieving pets")
		return
	}
	c.JSON(http.StatusOK, pets)
}

// ListPetsByCustomer serves GET /Customer/:id/pets. An unknown customer yields [].
func (h *PetHandler) ListPetsByCustomer(c *gin.Context) {
	customerID, ok := parseID(c, customerResource)
	if !ok {
		return
	}

	pets, err := h.petService.ListPetsByCustomer(c.Request.Context(), customerID)
	if err != nil {
		respondServiceError(c, "ListPetsByCustomer", err, nil, "", "Error retrieving pets")
		return
	}
	c.JSON(http.StatusOK, pets)
}

func (h *PetHandler) GetPetByID(c *gin.Context) {
	id, ok := parseID(c, petResource)
	if !ok {
		return
	}

	pet, err := h.petService.GetPetByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, "GetPetByID", err, services.ErrPetNotFound, petResource.notFoundMessage(id), "Error retrieving pet")
		return
	}
	c.JSON(http.StatusOK, pet)
}

func (h *PetHandler) CreatePet(c *gin.Context) {
	var req models.Pet
	if !bindJSON(c, "CreatePet", &req) {
		return
	}

	pet, err := h.petService.CreatePet(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, "CreatePet", err, nil, "", "Error creating pet")
		return
	}
	respondCreated(c, petResource, pet.ID, pet)
}

func (h *PetHandler) UpdatePet(c *gin.Context) {
	id, ok := parseID(c, petResource)
	if !ok {
		return
	}
	var req models.Pet
	if !bindJSON(c, "UpdatePet", &req) {
		return
	}

	if err := h.petService.UpdatePet(c.Request.Context(), id, req); err != nil {
		respondServiceError(c, "UpdatePet", err, services.ErrPetNotFound, petResource.notFoundMessage(id), "Error updating pet")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *PetHandler) DeletePet(c *gin.Context) {
	id, ok := parseID(c, petResource)
	if !ok {
		return
	}

	if err := h.petService.DeletePet(c.Request.Context(), id); err != nil {
		respondServiceError(c, "DeletePet", err, services.ErrPetNotFound, petResource.notFoundMessage(id), "Error deleting pet")
		return
	}
	c.Status(http.StatusNoContent)
}
