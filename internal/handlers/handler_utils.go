package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"petcare_backend/internal/services"
	"petcare_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// resource names one REST collection for messages and Location headers.
type resource struct {
	name   string // path segment and display name, e.g. "Customer"
	single string // lower-case singular used in error messages
	plural string
}

var (
	customerResource = resource{name: "Customer", single: "customer", plural: "customers"}
	petResource      = resource{name: "Pet", single: "pet", plural: "pets"}
	trainerResource  = resource{name: "Trainer", single: "trainer", plural: "trainers"}
	employeeResource = resource{name: "Employee", single: "employee", plural: "employees"}
	classResource    = resource{name: "Class", single: "class", plural: "classes"}
	bookingResource  = resource{name: "Booking", single: "booking", plural: "bookings"}
)

func (r resource) notFoundMessage(id int64) string {
	return fmt.Sprintf("%s with ID %d not found", r.name, id)
}

func (r resource) location(id int64) string {
	return "/api/" + r.name + "/" + utils.Int64ToStr(id)
}

// parseID reads the :id path parameter and writes a 400 when it is not a positive integer.
func parseID(c *gin.Context, r resource) (int64, bool) {
	idStr := c.Param("id")
	id, err := utils.ParsePositiveID(idStr)
	if err != nil {
		utils.RespondValidationFailed(c, "Invalid "+r.single+" ID format.", err.Error())
		return 0, false
	}
	return id, true
}

// bindJSON decodes the request body and writes a 400 on malformed input.
func bindJSON(c *gin.Context, op string, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		utils.LogError(err, op+": Failed to bind JSON")
		utils.RespondValidationFailed(c, "Invalid request payload: "+err.Error(), err.Error())
		return false
	}
	return true
}

// respondServiceError maps a service error onto the HTTP status taxonomy.
// notFoundMessage is only used when err matches notFound.
func respondServiceError(c *gin.Context, op string, err error, notFound error, notFoundMessage string, failMessage string) {
	utils.LogError(err, op)

	var validationErr *services.ValidationError
	switch {
	case errors.Is(err, services.ErrIDMismatch):
		utils.RespondValidationFailed(c, "ID mismatch", "")
	case errors.As(err, &validationErr):
		utils.RespondValidationFailed(c, validationErr.Message, "")
	case notFound != nil && errors.Is(err, notFound):
		utils.RespondNotFound(c, notFoundMessage)
	default:
		utils.RespondInternalError(c, failMessage, err)
	}
}

// respondCreated writes 201 with the Location of the new record.
func respondCreated(c *gin.Context, r resource, id int64, body interface{}) {
	c.Header("Location", r.location(id))
	c.JSON(http.StatusCreated, body)
}
