package handlers

import (
	"errors"
	"net/http"

	"petcare_backend/internal/middleware"
	"petcare_backend/internal/models"
	"petcare_backend/internal/services"
	"petcare_backend/pkg/utils" // For APIError and error codes

	"github.com/gin-gonic/gin"
)

const invalidCredentialsMessage = "Invalid credentials. Please check your first name, last name, and phone number."

// AuthHandler holds the authentication service.
type AuthHandler struct {
	authService services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(as services.AuthService) *AuthHandler {
	return &AuthHandler{authService: as}
}

// Login resolves the submitted name and phone to a customer, trainer or admin.
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if !bindJSON(c, "Login", &req) {
		return
	}

	authResp, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		utils.LogError(err, "Login: Error from authService.Login")
		var validationErr *services.ValidationError
		if errors.As(err, &validationErr) {
			utils.RespondValidationFailed(c, validationErr.Message, "")
		} else if errors.Is(err, services.ErrInvalidCredentials) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusUnauthorized, utils.ErrCodeUnauthorized, invalidCredentialsMessage, ""))
		} else {
			utils.RespondInternalError(c, "Error during login", err)
		}
		return
	}
	c.JSON(http.StatusOK, authResp)
}

// GetCurrentUser returns what the presented access token says about its bearer.
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	token, ok := middleware.BearerToken(c)
	if !ok {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusUnauthorized, utils.ErrCodeUnauthorized, "User not authenticated.", "Missing bearer token"))
		return
	}

	user, err := h.authService.CurrentUser(token)
	if err != nil {
		utils.LogError(err, "GetCurrentUser: Error from authService.CurrentUser")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Invalid or expired token", err.Error()))
		return
	}
	c.JSON(http.StatusOK, user)
}
