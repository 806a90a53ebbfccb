package router

import (
	"database/sql"
	"net/http"
	"strings"
	"time"

	"petcare_backend/internal/config"
	"petcare_backend/internal/database"
	"petcare_backend/internal/events"
	"petcare_backend/internal/handlers"
	"petcare_backend/internal/middleware"
	"petcare_backend/internal/repositories"
	"petcare_backend/internal/repositories/memory"
	"petcare_backend/internal/services"
	"petcare_backend/pkg/utils"
	"petcare_backend/web"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Dependencies are the collaborators built by the caller. DB selects the
// PostgreSQL repositories; when it is nil the in-memory Store is used.
type Dependencies struct {
	Config    config.Config
	DB        *sql.DB
	Store     *memory.Store
	Tokens    *utils.TokenIssuer
	Publisher events.BookingPublisher
	Limiter   middleware.RateLimiter
}

type repositorySet struct {
	customers repositories.CustomerRepository
	pets      repositories.PetRepository
	trainers  repositories.TrainerRepository
	employees repositories.EmployeeRepository
	classes   repositories.ClassRepository
	bookings  repositories.BookingRepository
}

func buildRepositories(deps Dependencies) repositorySet {
	if deps.DB != nil {
		return repositorySet{
			customers: repositories.NewCustomerRepository(deps.DB),
			pets:      repositories.NewPetRepository(deps.DB),
			trainers:  repositories.NewTrainerRepository(deps.DB),
			employees: repositories.NewEmployeeRepository(deps.DB),
			classes:   repositories.NewClassRepository(deps.DB),
			bookings:  repositories.NewBookingRepository(deps.DB),
		}
	}
	store := deps.Store
	if store == nil {
		store = memory.NewStore()
	}
	return repositorySet{
		customers: memory.NewCustomerRepo(store),
		pets:      memory.NewPetRepo(store),
		trainers:  memory.NewTrainerRepo(store),
		employees: memory.NewEmployeeRepo(store),
		classes:   memory.NewClassRepo(store),
		bookings:  memory.NewBookingRepo(store),
	}
}

// New builds the gin engine with the ambient middleware, the operational
// endpoints, the /api routes and, when configured, the browser client.
func New(deps Dependencies) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(utils.GinLogger())
	engine.Use(cors.New(corsConfig(deps.Config.CORS)))

	var pinger database.Pinger
	if deps.DB != nil {
		pinger = deps.DB
	}
	healthHandler := handlers.NewHealthHandler(pinger)
	engine.GET("/ping", healthHandler.Ping)
	engine.GET("/healthz", healthHandler.Healthz)
	engine.GET("/readyz", healthHandler.Readyz)

	Setup(engine, deps)

	if deps.Config.ServeWeb {
		mountWeb(engine)
	}
	return engine
}

// Setup initializes the /api routing for the application.
func Setup(engine *gin.Engine, deps Dependencies) {
	repos := buildRepositories(deps)

	// Initialize Services
	customerService := services.NewCustomerService(repos.customers)
	petService := services.NewPetService(repos.pets)
	trainerService := services.NewTrainerService(repos.trainers)
	employeeService := services.NewEmployeeService(repos.employees)
	classService := services.NewClassService(repos.classes)
	bookingService := services.NewBookingService(repos.bookings, deps.Publisher)
	authService := services.NewAuthService(repos.customers, repos.trainers, repos.employees, deps.Tokens, services.AdminCredential{
		Phone: deps.Config.Auth.AdminPhone,
		Hash:  deps.Config.Auth.AdminPhoneHash,
	})

	// Initialize Handlers
	customerHandler := handlers.NewCustomerHandler(customerService)
	petHandler := handlers.NewPetHandler(petService)
	trainerHandler := handlers.NewTrainerHandler(trainerService)
	employeeHandler := handlers.NewEmployeeHandler(employeeService)
	classHandler := handlers.NewClassHandler(classService)
	bookingHandler := handlers.NewBookingHandler(bookingService)
	authHandler := handlers.NewAuthHandler(authService)

	api := engine.Group("/api")

	// Login stays public whether or not authorization is enforced.
	SetupLoginRoutes(api, authHandler, loginLimiter(deps))

	g := guards{enforce: deps.Config.Auth.Enforce}
	protected := api.Group("")
	if g.enforce {
		protected.Use(middleware.AuthMiddleware(deps.Tokens))
	}
	{
		SetupCustomerRoutes(protected, g, customerHandler, petHandler, bookingHandler)
		SetupPetRoutes(protected, g, petHandler)
		SetupTrainerRoutes(protected, g, trainerHandler, classHandler, bookingHandler)
		SetupEmployeeRoutes(protected, g, employeeHandler)
		SetupClassRoutes(protected, g, classHandler)
		SetupBookingRoutes(protected, g, bookingHandler)
	}
}

// loginLimiter returns nil when LOGIN_RATE_LIMIT disables limiting, whatever
// limiter was supplied.
func loginLimiter(deps Dependencies) middleware.RateLimiter {
	if deps.Config.Auth.LoginRateLimit <= 0 {
		return nil
	}
	if deps.Limiter != nil {
		return deps.Limiter
	}
	window := deps.Config.Auth.LoginWindow
	if window <= 0 {
		window = time.Minute
	}
	return middleware.NewMemoryRateLimiter(deps.Config.Auth.LoginRateLimit, window)
}

func corsConfig(cfg config.CORSConfig) cors.Config {
	c := cors.DefaultConfig()
	if cfg.AllowAll() {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = cfg.AllowedOrigins
		c.AllowCredentials = true
	}
	c.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	c.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", middleware.RequestIDHeader}
	c.ExposeHeaders = []string{"Location", middleware.RequestIDHeader}
	return c
}

// mountWeb serves the embedded client for every GET that no route claimed.
func mountWeb(engine *gin.Engine) {
	fileServer := http.FileServer(web.StaticFS())
	engine.NoRoute(func(c *gin.Context) {
		if c.Request.Method != http.MethodGet || strings.HasPrefix(c.Request.URL.Path, "/api/") {
			utils.RespondNotFound(c, "Resource not found")
			return
		}
		fileServer.ServeHTTP(c.Writer, c.Request)
	})
}
