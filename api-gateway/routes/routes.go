package routes

import (
	"context"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/tair/petshop-backend/api-gateway/config"
	"github.com/tair/petshop-backend/api-gateway/health"
	"github.com/tair/petshop-backend/api-gateway/middleware"
	"github.com/tair/petshop-backend/api-gateway/proxy"
	"github.com/tair/petshop-backend/pkg/auth"
	"github.com/tair/petshop-backend/pkg/logger"
)

// RouteDefinition defines a route mapping
type RouteDefinition struct {
	Prefix       string
	ServiceName  string
	Description  string
	RequireAuth  bool
	RequireAdmin bool
}

// Routes holds all route definitions
var Routes = []RouteDefinition{
	{
		Prefix:      "/purchases",
		ServiceName: "petshop",
		Description: "Purchase confirmation and cancellation",
		RequireAuth: true,
	},
	{
		Prefix:      "/clients",
		ServiceName: "petshop",
		Description: "Client management",
		RequireAuth: true,
	},
	{
		Prefix:      "/animals",
		ServiceName: "petshop",
		Description: "Animal management",
		RequireAuth: true,
	},
	{
		Prefix:       "/inventories",
		ServiceName:  "petshop",
		Description:  "Stock management",
		RequireAuth:  true,
		RequireAdmin: true,
	},
	{
		Prefix:       "/foods",
		ServiceName:  "petshop",
		Description:  "Food catalog",
		RequireAuth:  true,
		RequireAdmin: true,
	},
	{
		Prefix:       "/toys",
		ServiceName:  "petshop",
		Description:  "Toy catalog",
		RequireAuth:  true,
		RequireAdmin: true,
	},
	{
		Prefix:       "/medicines",
		ServiceName:  "petshop",
		Description:  "Medicine catalog",
		RequireAuth:  true,
		RequireAdmin: true,
	},
}

// staffCredentials holds the gateway login credentials
type staffCredentials struct {
	Username     string
	PasswordHash []byte
	Role         string
}

func loadStaffCredentials() staffCredentials {
	creds := staffCredentials{
		Username: getEnv("STAFF_USERNAME", "staff"),
		Role:     getEnv("STAFF_ROLE", "admin"),
	}

	if hash := os.Getenv("STAFF_PASSWORD_HASH"); hash != "" {
		creds.PasswordHash = []byte(hash)
		return creds
	}

	// Hash the plaintext fallback once at startup
	password := getEnv("STAFF_PASSWORD", "petshop-admin")
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to hash staff password")
	}
	creds.PasswordHash = hash
	return creds
}

// SetupRoutes configures all routes in the gateway
func SetupRoutes(app *fiber.App, cfg *config.GatewayConfig) {
	reverseProxy := proxy.NewReverseProxy(cfg)

	healthChecker := health.NewHealthChecker(cfg)

	creds := loadStaffCredentials()

	// Staff login issues a JWT for the protected routes
	app.Post("/auth/login", func(c *fiber.Ctx) error {
		var req struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid request body",
			})
		}

		if req.Username != creds.Username ||
			bcrypt.CompareHashAndPassword(creds.PasswordHash, []byte(req.Password)) != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid credentials",
			})
		}

		token, err := auth.GenerateToken(creds.Username, creds.Role)
		if err != nil {
			logger.Logger.Error().Err(err).Msg("Failed to generate token")
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to generate token",
			})
		}

		return c.JSON(fiber.Map{
			"token": token,
			"user": fiber.Map{
				"username": creds.Username,
				"role":     creds.Role,
			},
		})
	})

	// Gateway quick health check (no downstream checks)
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(healthChecker.QuickCheck())
	})

	// Liveness probe (for Kubernetes)
	app.Get("/health/live", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "alive",
		})
	})

	// Readiness probe (checks backend instances)
	app.Get("/health/ready", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 3*time.Second)
		defer cancel()

		healthStatus := healthChecker.CheckAllInstances(ctx)

		statusCode := fiber.StatusOK
		if healthStatus.Status == "unhealthy" {
			statusCode = fiber.StatusServiceUnavailable
		}

		return c.Status(statusCode).JSON(healthStatus)
	})

	// Detailed instance health checks
	app.Get("/health/services", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
		defer cancel()

		healthStatus := healthChecker.CheckAllInstances(ctx)
		return c.JSON(healthStatus)
	})

	// API routes overview
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Petshop API Gateway",
			"version": "1.0.0",
			"routes":  Routes,
		})
	})

	for _, route := range Routes {
		registerServiceRoutes(app, route, reverseProxy)
	}
}

// registerServiceRoutes registers all HTTP methods for a service prefix
func registerServiceRoutes(app *fiber.App, route RouteDefinition, proxyHandler *proxy.ReverseProxy) {
	handler := func(c *fiber.Ctx) error {
		return proxyHandler.ProxyRequest(c, route.ServiceName)
	}

	var middlewares []fiber.Handler

	if route.RequireAdmin {
		middlewares = append(middlewares, middleware.AuthMiddleware(), middleware.AdminMiddleware())
	} else if route.RequireAuth {
		middlewares = append(middlewares, middleware.AuthMiddleware())
	}

	group := app.Group(route.Prefix, middlewares...)

	group.All("/*", handler)

	if len(middlewares) > 0 {
		app.All(route.Prefix, append(middlewares, handler)...)
	} else {
		app.All(route.Prefix, handler)
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
