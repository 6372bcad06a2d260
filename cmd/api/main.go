package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	handlerHttp "github.com/echolabs-dev/echo-api/internal/handler/http"
	"github.com/echolabs-dev/echo-api/internal/infrastructure/config"
	"github.com/echolabs-dev/echo-api/internal/infrastructure/database"
	"github.com/echolabs-dev/echo-api/internal/infrastructure/external_services"
	"github.com/echolabs-dev/echo-api/internal/infrastructure/jwt"
	"github.com/echolabs-dev/echo-api/internal/infrastructure/logger"
	passwordservice "github.com/echolabs-dev/echo-api/internal/infrastructure/password_service"
	randomgenerator "github.com/echolabs-dev/echo-api/internal/infrastructure/random_generator"
	"github.com/echolabs-dev/echo-api/internal/infrastructure/repository/postgres"
	"github.com/echolabs-dev/echo-api/internal/infrastructure/uuidgen"
	"github.com/echolabs-dev/echo-api/internal/infrastructure/validator"
	"github.com/echolabs-dev/echo-api/internal/usecase"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	appConfig := config.NewConfig()
	if appConfig.DatabaseURL == "" {
		log.Fatal("DATABASE_URL environment variable not set")
	}
	if appConfig.JWTSecret == "" {
		log.Fatal("JWT_SECRET environment variable not set")
	}

	// Establish database connection and apply migrations
	db, err := database.NewPostgresDB(appConfig.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer db.Close()

	if err := database.RunMigrations(context.Background(), db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize Gin router
	router := gin.Default()

	// Dependency Injection: Repositories
	userRepo := postgres.NewUserRepository(db)

	// Dependency Injection: Services
	hasher := passwordservice.NewHasher()
	jwtManager := jwt.NewJWTManager(appConfig.JWTSecret, appConfig.AccessTokenExpiry)
	jwtService := jwt.NewJWTService(jwtManager)
	appLogger := logger.NewZerologLogger()
	mailService := external_services.NewEmailService(
		appConfig.SMTPHost, appConfig.SMTPPort,
		appConfig.SMTPUsername, appConfig.SMTPPassword, appConfig.FromEmail,
	)
	randomGenerator := randomgenerator.NewRandomGenerator()
	appValidator := validator.NewValidator()
	uuidGenerator := uuidgen.NewGenerator()

	// Dependency Injection: Usecases
	emailUsecase := usecase.NewEmailVerificationUseCase(userRepo, mailService, randomGenerator, appLogger, appConfig)
	authUsecase := usecase.NewAuthUsecase(userRepo, emailUsecase, hasher, jwtService, appLogger, appValidator, uuidGenerator)

	// Setup API routes
	appRouter := handlerHttp.NewRouter(authUsecase, emailUsecase)
	appRouter.SetupRoutes(router)

	// Start the server
	log.Printf("Server running on port %s", appConfig.Port)
	if err := router.Run(":" + appConfig.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
