package handlers

import (
	"net/http"

	"petcare_backend/internal/models"
	"petcare_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type EmployeeHandler struct {
	employeeService services.EmployeeService
}

func NewEmployeeHandler(es services.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employeeService: es}
}

func (h *EmployeeHandler) ListEmployees(c *gin.Context) {
	employees, err := h.employeeService.ListEmployees(c.Request.Context())
	if err != nil {
		respondServiceError(c, "ListEmployees", err, nil, "", "Error retrieving employees")
		return
	}
	c.JSON(http.StatusOK, employees)
}

func (h *EmployeeHandler) GetEmployeeByID(c *gin.Context) {
	id, ok := parseID(c, employeeResource)
	if !ok {
		return
	}

	employee, err := h.employeeService.GetEmployeeByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, "GetEmployeeByID", err, services.ErrEmployeeNotFound, employeeResource.notFoundMessage(id), "Error retrieving employee")
		return
	}
	c.JSON(http.StatusOK, employee)
}

func (h *EmployeeHandler) CreateEmployee(c *gin.Context) {
	var req models.Employee
	if !bindJSON(c, "CreateEmployee", &req) {
		return
	}

	employee, err := h.employeeService.CreateEmployee(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, "CreateEmployee", err, nil, "", "Error creating employee")
		return
	}
	respondCreated(c, employeeResource, employee.ID, employee)
}

func (h *EmployeeHandler) UpdateEmployee(c *gin.Context) {
	id, ok := parseID(c, employeeResource)
	if !ok {
		return
	}
	var req models.Employee
	if !bindJSON(c, "UpdateEmployee", &req) {
		return
	}

	if err := h.employeeService.UpdateEmployee(c.Request.Context(), id, req); err != nil {
		respondServiceError(c, "UpdateEmployee", err, services.ErrEmployeeNotFound, employeeResource.notFoundMessage(id), "Error updating employee")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *EmployeeHandler) DeleteEmployee(c *gin.Context) {
	id, ok := parseID(c, employeeResource)
	if !ok {
		return
	}

	if err := h.employeeService.DeleteEmployee(c.Request.Context(), id); err != nil {
		respondServiceError(c, "DeleteEmployee", err, services.ErrEmployeeNotFound, employeeResource.notFoundMessage(id), "Error deleting employee")
		return
	}
	c.Status(http.StatusNoContent)
}
