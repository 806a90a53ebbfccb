package router

import (
	"petcare_backend/internal/handlers"
	"petcare_backend/internal/middleware"
	"petcare_backend/internal/models"

	"github.com/gin-gonic/gin"
)

// guards attaches role checks to a route when authorization is enforced.
type guards struct {
	enforce bool
}

func (g guards) chain(check gin.HandlerFunc, h gin.HandlerFunc) []gin.HandlerFunc {
	if !g.enforce {
		return []gin.HandlerFunc{h}
	}
	return []gin.HandlerFunc{check, h}
}

// admin allows only administrators.
func (g guards) admin(h gin.HandlerFunc) []gin.HandlerFunc {
	return g.chain(middleware.RoleAuthMiddleware(models.RoleAdmin), h)
}

// anyRole allows every authenticated caller.
func (g guards) anyRole(h gin.HandlerFunc) []gin.HandlerFunc {
	return g.chain(middleware.RoleAuthMiddleware(models.RoleCustomer, models.RoleTrainer, models.RoleAdmin), h)
}

// owner allows administrators and the ownerRole user whose id is the :id parameter.
func (g guards) owner(ownerRole string, h gin.HandlerFunc) []gin.HandlerFunc {
	return g.chain(middleware.OwnerOrRoleMiddleware(ownerRole, "id", models.RoleAdmin), h)
}

// SetupLoginRoutes sets up the login routes. A nil limiter disables rate limiting.
func SetupLoginRoutes(apiGroup *gin.RouterGroup, authHandler *handlers.AuthHandler, limiter middleware.RateLimiter) {
	loginRoutes := apiGroup.Group("/Login")
	{
		if limiter != nil {
			loginRoutes.POST("", middleware.RateLimit(limiter, true), authHandler.Login)
		} else {
			loginRoutes.POST("", authHandler.Login)
		}
		loginRoutes.GET("/me", authHandler.GetCurrentUser)
	}
}

// SetupCustomerRoutes sets up the customer routes and the customer-scoped views.
func SetupCustomerRoutes(group *gin.RouterGroup, g guards, customerHandler *handlers.CustomerHandler, petHandler *handlers.PetHandler, bookingHandler *handlers.BookingHandler) {
	customerRoutes := group.Group("/Customer")
	{
		customerRoutes.GET("", g.admin(customerHandler.ListCustomers)...)
		customerRoutes.GET("/:id", g.owner(models.RoleCustomer, customerHandler.GetCustomerByID)...)
		customerRoutes.POST("", g.admin(customerHandler.CreateCustomer)...)
		customerRoutes.PUT("/:id", g.admin(customerHandler.UpdateCustomer)...)
		customerRoutes.DELETE("/:id", g.admin(customerHandler.DeleteCustomer)...)

		customerRoutes.GET("/:id/pets", g.owner(models.RoleCustomer, petHandler.ListPetsByCustomer)...)
		customerRoutes.GET("/:id/bookings", g.owner(models.RoleCustomer, bookingHandler.ListBookingsByCustomer)...)
	}
}

// SetupPetRoutes sets up the pet routes.
func SetupPetRoutes(group *gin.RouterGroup, g guards, petHandler *handlers.PetHandler) {
	petRoutes := group.Group("/Pet")
	{
		petRoutes.GET("", g.admin(petHandler.ListPets)...)
		petRoutes.GET("/:id", g.admin(petHandler.GetPetByID)...)
		petRoutes.POST("", g.admin(petHandler.CreatePet)...)
		petRoutes.PUT("/:id", g.admin(petHandler.UpdatePet)...)
		petRoutes.DELETE("/:id", g.admin(petHandler.DeletePet)...)
	}
}

// SetupTrainerRoutes sets up the trainer routes and the trainer-scoped views.
func SetupTrainerRoutes(group *gin.RouterGroup, g guards, trainerHandler *handlers.TrainerHandler, classHandler *handlers.ClassHandler, bookingHandler *handlers.BookingHandler) {
	trainerRoutes := group.Group("/Trainer")
	{
		trainerRoutes.GET("", g.anyRole(trainerHandler.ListTrainers)...)
		trainerRoutes.GET("/:id", g.anyRole(trainerHandler.GetTrainerByID)...)
		trainerRoutes.POST("", g.admin(trainerHandler.CreateTrainer)...)
		trainerRoutes.PUT("/:id", g.admin(trainerHandler.UpdateTrainer)...)
		trainerRoutes.DELETE("/:id", g.admin(trainerHandler.DeleteTrainer)...)

		trainerRoutes.GET("/:id/classes", g.owner(models.RoleTrainer, classHandler.ListClassesByTrainer)...)
		trainerRoutes.GET("/:id/bookings", g.owner(models.RoleTrainer, bookingHandler.ListBookingsByTrainer)...)
	}
}

// SetupEmployeeRoutes sets up the employee routes.
func SetupEmployeeRoutes(group *gin.RouterGroup, g guards, employeeHandler *handlers.EmployeeHandler) {
	employeeRoutes := group.Group("/Employee")
	{
		employeeRoutes.GET("", g.admin(employeeHandler.ListEmployees)...)
		employeeRoutes.GET("/:id", g.admin(employeeHandler.GetEmployeeByID)...)
		employeeRoutes.POST("", g.admin(employeeHandler.CreateEmployee)...)
		employeeRoutes.PUT("/:id", g.admin(employeeHandler.UpdateEmployee)...)
		employeeRoutes.DELETE("/:id", g.admin(employeeHandler.DeleteEmployee)...)
	}
}

// SetupClassRoutes sets up the class routes.
func SetupClassRoutes(group *gin.RouterGroup, g guards, classHandler *handlers.ClassHandler) {
	classRoutes := group.Group("/Class")
	{
		classRoutes.GET("", g.anyRole(classHandler.ListClasses)...)
		classRoutes.GET("/:id", g.anyRole(classHandler.GetClassByID)...)
		classRoutes.POST("", g.admin(classHandler.CreateClass)...)
		classRoutes.PUT("/:id", g.admin(classHandler.UpdateClass)...)
		classRoutes.DELETE("/:id", g.admin(classHandler.DeleteClass)...)
	}
}

// SetupBookingRoutes sets up the booking routes.
func SetupBookingRoutes(group *gin.RouterGroup, g guards, bookingHandler *handlers.BookingHandler) {
	bookingRoutes := group.Group("/Booking")
	{
		bookingRoutes.GET("", g.admin(bookingHandler.ListBookings)...)
		bookingRoutes.GET("/:id", g.admin(bookingHandler.GetBookingByID)...)
		bookingRoutes.POST("", g.admin(bookingHandler.CreateBooking)...)
		bookingRoutes.PUT("/:id", g.admin(bookingHandler.UpdateBooking)...)
		bookingRoutes.DELETE("/:id", g.admin(bookingHandler.DeleteBooking)...)
	}
}
