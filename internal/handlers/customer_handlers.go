package handlers

import (
	"net/http"

	"petcare_backend/internal/models"
	"petcare_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// CustomerHandler holds the customer service.
type CustomerHandler struct {
	customerService services.CustomerService
}

// NewCustomerHandler creates a new CustomerHandler.
func NewCustomerHandler(cs services.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: cs}
}

// ListCustomers handles fetching all customers.
func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	customers, err := h.customerService.ListCustomers(c.Request.Context())
	if err != nil {
		respondServiceError(c, "ListCustomers", err, nil, "", "Error retrieving customers")
		return
	}
	c.JSON(http.StatusOK, customers)
}

// GetCustomerByID handles fetching a single customer by ID.
func (h *CustomerHandler) GetCustomerByID(c *gin.Context) {
	id, ok := parseID(c, customerResource)
	if !ok {
		return
	}

	customer, err := h.customerService.GetCustomerByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, "GetCustomerByID", err, services.ErrCustomerNotFound, customerResource.notFoundMessage(id), "Error retrieving customer")
		return
	}
	c.JSON(http.StatusOK, customer)
}

// CreateCustomer handles the creation of a new customer.
func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var req models.Customer
	if !bindJSON(c, "CreateCustomer", &req) {
		return
	}

	customer, err := h.customerService.CreateCustomer(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, "CreateCustomer", err, nil, "", "Error creating customer")
		return
	}
	respondCreated(c, customerResource, customer.ID, customer)
}

// UpdateCustomer handles replacing a customer.
func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	id, ok := parseID(c, customerResource)
	if !ok {
		return
	}
	var req models.Customer
	if !bindJSON(c, "UpdateCustomer", &req) {
		return
	}

	if err := h.customerService.UpdateCustomer(c.Request.Context(), id, req); err != nil {
		respondServiceError(c, "UpdateCustomer", err, services.ErrCustomerNotFound, customerResource.notFoundMessage(id), "Error updating customer")
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteCustomer handles deleting a customer. Pets and bookings are left in place.
func (h *CustomerHandler) DeleteCustomer(c *gin.Context) {
	id, ok := parseID(c, customerResource)
	if !ok {
		return
	}

	if err := h.customerService.DeleteCustomer(c.Request.Context(), id); err != nil {
		respondServiceError(c, "DeleteCustomer", err, services.ErrCustomerNotFound, customerResource.notFoundMessage(id), "Error deleting customer")
		return
	}
	c.Status(http.StatusNoContent)
}
