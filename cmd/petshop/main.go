package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	animalHTTP "github.com/tair/petshop-backend/internal/animal/delivery/http"
	animalrepo "github.com/tair/petshop-backend/internal/animal/repository"
	catalogHTTP "github.com/tair/petshop-backend/internal/catalog/delivery/http"
	catalogrepo "github.com/tair/petshop-backend/internal/catalog/repository"
	clientHTTP "github.com/tair/petshop-backend/internal/client/delivery/http"
	clientrepo "github.com/tair/petshop-backend/internal/client/repository"
	inventoryHTTP "github.com/tair/petshop-backend/internal/inventory/delivery/http"
	inventoryrepo "github.com/tair/petshop-backend/internal/inventory/repository"
	"github.com/tair/petshop-backend/internal/inventory/usecase/query"
	"github.com/tair/petshop-backend/internal/purchase"
	purchaseHTTP "github.com/tair/petshop-backend/internal/purchase/delivery/http"
	purchasedomain "github.com/tair/petshop-backend/internal/purchase/domain"
	purchaserepo "github.com/tair/petshop-backend/internal/purchase/repository"
	"github.com/tair/petshop-backend/kafka"
	"github.com/tair/petshop-backend/pkg/database"
	"github.com/tair/petshop-backend/pkg/logger"
	"github.com/tair/petshop-backend/pkg/tracing"
)

func main() {
	// Initialize logger
	serviceName := getEnv("OTEL_SERVICE_NAME", "petshop-service")
	isDevelopment := getEnv("ENVIRONMENT", "development") == "development"
	logger.Init(serviceName, isDevelopment)

	logLevel := getEnv("LOG_LEVEL", "info")
	logger.SetLevel(logLevel)

	logger.Logger.Info().
		Str("service", serviceName).
		Str("environment", getEnv("ENVIRONMENT", "development")).
		Str("log_level", logLevel).
		Msg("Starting petshop service")

	// Initialize tracer
	tp, err := tracing.InitTracer(serviceName)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to initialize tracer")
	} else {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tracing.Shutdown(ctx, tp); err != nil {
				logger.Logger.Error().Err(err).Msg("Failed to shutdown tracer")
			}
		}()
	}

	// Load database configuration
	dbConfig := database.Config{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", "postgres"),
		DBName:   getEnv("DB_NAME", "petshopdb"),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
	}

	// Connect to database
	db, err := database.NewGormConnection(dbConfig)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to get database instance")
	}
	defer sqlDB.Close()

	// Build repositories
	clientRepo := clientrepo.NewGormClientRepository(db)
	animalRepo := animalrepo.NewGormAnimalRepository(db)
	inventoryRepo := inventoryrepo.NewGormInventoryRepository(db)
	foodRepo := catalogrepo.NewGormFoodRepository(db)
	toyRepo := catalogrepo.NewGormToyRepository(db)
	medicineRepo := catalogrepo.NewGormMedicineRepository(db)
	purchaseRepo := purchaserepo.NewGormPurchaseRepository(db)

	// Run migrations
	migrators := []interface{ AutoMigrate() error }{
		clientRepo, animalRepo, inventoryRepo, foodRepo, toyRepo, medicineRepo, purchaseRepo,
	}
	for _, m := range migrators {
		if err := m.AutoMigrate(); err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to run migrations")
		}
	}

	logger.Logger.Info().Msg("Database initialized successfully")

	// Kafka publisher (optional)
	var publisher purchasedomain.EventPublisher
	var kafkaPublisher *kafka.Publisher
	if getEnv("KAFKA_ENABLED", "false") == "true" {
		brokers := strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ",")
		kafkaPublisher, err = kafka.NewPublisher(brokers)
		if err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to initialize Kafka publisher")
		}
		defer kafkaPublisher.Close()
		publisher = kafkaPublisher
	}

	// Initialize purchase handler with Wire DI
	purchaseHandler, err := purchase.InitializeHTTPHandler(db, publisher)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize purchase handler")
	}

	resolver := query.NewResolveProductHandler(inventoryRepo, foodRepo, toyRepo, medicineRepo)

	clientHandler := clientHTTP.NewClientHandler(clientRepo)
	animalHandler := animalHTTP.NewAnimalHandler(animalRepo, clientRepo)
	inventoryHandler := inventoryHTTP.NewInventoryHandler(inventoryRepo, resolver)
	foodHandler := catalogHTTP.NewFoodHandler(foodRepo)
	toyHandler := catalogHTTP.NewToyHandler(toyRepo)
	medicineHandler := catalogHTTP.NewMedicineHandler(medicineRepo)

	// Start HTTP server
	httpPort := getEnv("HTTP_PORT", "8080")
	go startHTTPServer(httpPort, sqlDB,
		purchaseHandler, clientHandler, animalHandler, inventoryHandler,
		foodHandler, toyHandler, medicineHandler,
	)

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server...")
}

func startHTTPServer(
	port string,
	db *sql.DB,
	purchaseHandler *purchaseHTTP.PurchaseHandler,
	clientHandler *clientHTTP.ClientHandler,
	animalHandler *animalHTTP.AnimalHandler,
	inventoryHandler *inventoryHTTP.InventoryHandler,
	foodHandler *catalogHTTP.FoodHandler,
	toyHandler *catalogHTTP.ToyHandler,
	medicineHandler *catalogHTTP.MedicineHandler,
) {
	router := mux.NewRouter()

	// Middlewares
	purchaseHTTP.RegisterMiddlewares(router, purchaseHTTP.DefaultMiddlewareConfig())

	// Register routes
	purchaseHandler.RegisterRoutes(router)
	clientHandler.RegisterRoutes(router)
	animalHandler.RegisterRoutes(router)
	inventoryHandler.RegisterRoutes(router)
	foodHandler.RegisterRoutes(router)
	toyHandler.RegisterRoutes(router)
	medicineHandler.RegisterRoutes(router)

	// Health check endpoint
	inventoryHandler.RegisterHealthCheck(router, db)

	// Prometheus metrics endpoint
	router.Handle("/metrics", promhttp.Handler())

	// Swagger UI
	purchaseHTTP.RegisterSwaggerDocs(router, httpSwagger.Handler())

	corsHandler := purchaseHTTP.SetupCORS(purchaseHTTP.DefaultMiddlewareConfig())

	logger.Logger.Info().
		Str("port", port).
		Str("metrics_endpoint", "/metrics").
		Msg("HTTP server started")

	if err := http.ListenAndServe(":"+port, corsHandler(router)); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
