package handlers

import (
	"net/http"

	"petcare_backend/internal/models"
	"petcare_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// BookingHandler holds the booking service.
type BookingHandler struct {
	bookingService services.BookingService
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(bs services.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bs}
}

// ListBookings handles fetching all bookings.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	bookings, err := h.bookingService.ListBookings(c.Request.Context())
	if err != nil {
		respondServiceError(c, "ListBookings", err, nil, "", "Error retrieving bookings")
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// ListBookingsByTrainer serves GET /Trainer/:id/bookings: bookings of the classes the trainer teaches.
func (h *BookingHandler) ListBookingsByTrainer(c *gin.Context) {
	trainerID, ok := parseID(c, trainerResource)
	if !ok {
		return
	}

	bookings, err := h.bookingService.ListBookingsByTrainer(c.Request.Context(), trainerID)
	if err != nil {
		respondServiceError(c, "ListBookingsByTrainer", err, nil, "", "Error retrieving bookings")
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// ListBookingsByCustomer serves GET /Customer/:id/bookings: bookings of the customer's pets.
func (h *BookingHandler) ListBookingsByCustomer(c *gin.Context) {
	customerID, ok := parseID(c, customerResource)
	if !ok {
		return
	}

	bookings, err := h.bookingService.ListBookingsByCustomer(c.Request.Context(), customerID)
	if err != nil {
		respondServiceError(c, "ListBookingsByCustomer", err, nil, "", "Error retrieving bookings")
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GetBookingByID handles fetching a single booking by ID.
func (h *BookingHandler) GetBookingByID(c *gin.Context) {
	id, ok := parseID(c, bookingResource)
	if !ok {
		return
	}

	booking, err := h.bookingService.GetBookingByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, "GetBookingByID", err, services.ErrBookingNotFound, bookingResource.notFoundMessage(id), "Error retrieving booking")
		return
	}
	c.JSON(http.StatusOK, booking)
}

// CreateBooking handles the creation of a new booking.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req models.Booking
	if !bindJSON(c, "CreateBooking", &req) {
		return
	}

	booking, err := h.bookingService.CreateBooking(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, "CreateBooking", err, nil, "", "Error creating booking")
		return
	}
	respondCreated(c, bookingResource, booking.ID, booking)
}

// UpdateBooking handles replacing a booking.
func (h *BookingHandler) UpdateBooking(c *gin.Context) {
	id, ok := parseID(c, bookingResource)
	if !ok {
		return
	}
	var req models.Booking
	if !bindJSON(c, "UpdateBooking", &req) {
		return
	}

	if err := h.bookingService.UpdateBooking(c.Request.Context(), id, req); err != nil {
		respondServiceError(c, "UpdateBooking", err, services.ErrBookingNotFound, bookingResource.notFoundMessage(id), "Error updating booking")
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteBooking handles deleting a booking.
func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	id, ok := parseID(c, bookingResource)
	if !ok {
		return
	}

	if err := h.bookingService.DeleteBooking(c.Request.Context(), id); err != nil {
		respondServiceError(c, "DeleteBooking", err, services.ErrBookingNotFound, bookingResource.notFoundMessage(id), "Error deleting booking")
		return
	}
	c.Status(http.StatusNoContent)
}
