package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/ahmetcoskunkizilkaya/clinic-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/clinic-backend/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/clinic-backend/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/clinic-backend/internal/services"
)

// Setup wires the route table. The access guard chain depends on the
// configured auth strategy: token mode verifies the JWT signature and
// then resolves it against the allow-list, session mode resolves the
// session cookie.
func Setup(
	app *fiber.App,
	cfg *config.Config,
	authService *services.AuthService,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	userHandler *handlers.UserHandler,
	patientHandler *handlers.PatientHandler,
	consultationHandler *handlers.ConsultationHandler,
	appointmentHandler *handlers.AppointmentHandler,
) {
	// General rate limiter: 60 req/min per IP
	app.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	app.Get("/health", healthHandler.Check)

	// Login gets a stricter limit: 10 req/min per IP
	app.Post("/login", limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}), authHandler.Login)

	var guards []fiber.Handler
	if cfg.AuthStrategy == config.StrategySession {
		guards = []fiber.Handler{
			csrf.New(csrf.Config{
				KeyLookup:      "header:X-CSRF-Token",
				CookieName:     "clinic_csrf",
				CookieHTTPOnly: false,
				CookieSameSite: fiber.CookieSameSiteLaxMode,
				Expiration:     cfg.SessionExpiry,
			}),
			middleware.SessionIdentity(cfg, authService),
		}
	} else {
		guards = []fiber.Handler{
			middleware.JWTProtected(cfg),
			middleware.TokenIdentity(authService),
		}
	}

	protected := app.Group("", guards...)

	protected.Post("/logout", authHandler.Logout)
	protected.Get("/user", authHandler.Me)

	users := protected.Group("/users")
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.Get)
	users.Post("/", middleware.AdminRequired(), userHandler.Create)
	users.Put("/:id", middleware.AdminRequired(), userHandler.Update)
	users.Delete("/:id", middleware.AdminRequired(), userHandler.Delete)

	patients := protected.Group("/patients")
	patients.Get("/", patientHandler.List)
	patients.Get("/search", patientHandler.Search)
	patients.Get("/gender", patientHandler.ByGender)
	patients.Get("/:id", patientHandler.Get)
	patients.Post("/", patientHandler.Create)
	patients.Put("/:id", patientHandler.Update)
	patients.Delete("/:id", patientHandler.Delete)

	consultations := protected.Group("/consultations")
	consultations.Get("/", consultationHandler.List)
	consultations.Get("/:id", consultationHandler.Get)
	consultations.Post("/", consultationHandler.Create)
	consultations.Put("/:id", consultationHandler.Update)
	consultations.Delete("/:id", consultationHandler.Delete)

	appointments := protected.Group("/appointments")
	appointments.Get("/", appointmentHandler.List)
	appointments.Get("/:id", appointmentHandler.Get)
	appointments.Post("/", appointmentHandler.Create)
	appointments.Put("/:id", appointmentHandler.Update)
	appointments.Delete("/:id", appointmentHandler.Delete)
}
