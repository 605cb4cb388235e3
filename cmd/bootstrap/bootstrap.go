package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dental-clinic-service/config"
	deliveryHttp "dental-clinic-service/internal/delivery/http"
	"dental-clinic-service/internal/delivery/http/handler"
	"dental-clinic-service/internal/delivery/http/middleware"
	"dental-clinic-service/internal/infrastructure/cache"
	"dental-clinic-service/internal/infrastructure/database"
	"dental-clinic-service/internal/repository"
	"dental-clinic-service/internal/service"
	"dental-clinic-service/internal/usecase"
	"dental-clinic-service/pkg/jwt"
	"dental-clinic-service/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	// Apply schema migrations
	if err := database.RunMigrations(cfg.DB, "migrations"); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	// Initialize all layers
	server := initializeServer(cfg, db, redisClient)
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *http.Server {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	clinicRepo := repository.NewClinicRepository()
	doctorProfileRepo := repository.NewDoctorProfileRepository()
	employeeProfileRepo := repository.NewEmployeeProfileRepository()
	patientRepo := repository.NewPatientRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	anamnesisRepo := repository.NewAnamnesisRepository()
	odontogramRepo := repository.NewOdontogramRepository()
	paymentRepo := repository.NewPaymentRepository()
	ticketRepo := repository.NewSupportTicketRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize external collaborators
	paymentGateway := service.NewPaymentGateway(cfg.Payment)
	pdfRenderer := service.NewPDFRenderer(cfg.PDF)
	mailer := service.NewMailer(cfg.SMTP)
	auditRecorder := service.NewAuditRecorder(db, log, auditLogRepo)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, clinicRepo, jwtService, redisClient)
	clinicUsecase := usecase.NewClinicUsecase(db, log, clinicRepo)
	doctorUsecase := usecase.NewDoctorUsecase(db, log, userRepo, doctorProfileRepo, auditRecorder)
	employeeUsecase := usecase.NewEmployeeUsecase(db, log, userRepo, employeeProfileRepo)
	patientUsecase := usecase.NewPatientUsecase(db, log, patientRepo)
	availabilityUsecase := usecase.NewAvailabilityUsecase(db, log, doctorProfileRepo, appointmentRepo)
	appointmentUsecase := usecase.NewAppointmentUsecase(db, log, appointmentRepo, patientRepo, availabilityUsecase, auditRecorder)
	anamnesisUsecase := usecase.NewAnamnesisUsecase(db, log, anamnesisRepo, patientRepo, auditRecorder)
	odontogramUsecase := usecase.NewOdontogramUsecase(db, log, odontogramRepo, patientRepo, doctorProfileRepo, auditRecorder)
	financialUsecase := usecase.NewFinancialUsecase(db, log, paymentRepo, patientRepo, clinicRepo, pdfRenderer, auditRecorder)
	billingUsecase := usecase.NewBillingUsecase(db, log, cfg.Payment, clinicRepo, paymentGateway)
	ticketUsecase := usecase.NewTicketUsecase(db, log, cfg.SMTP, ticketRepo, userRepo, mailer, auditRecorder)
	auditLogUsecase := usecase.NewAuditLogUsecase(db, log, auditLogRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator)
	clinicHandler := handler.NewClinicHandler(clinicUsecase, customValidator)
	doctorHandler := handler.NewDoctorHandler(doctorUsecase, customValidator)
	employeeHandler := handler.NewEmployeeHandler(employeeUsecase, customValidator)
	patientHandler := handler.NewPatientHandler(patientUsecase, customValidator)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator)
	availabilityHandler := handler.NewAvailabilityHandler(availabilityUsecase)
	anamnesisHandler := handler.NewAnamnesisHandler(anamnesisUsecase, customValidator)
	odontogramHandler := handler.NewOdontogramHandler(odontogramUsecase, customValidator)
	financialHandler := handler.NewFinancialHandler(financialUsecase, customValidator)
	billingHandler := handler.NewBillingHandler(billingUsecase, customValidator)
	ticketHandler := handler.NewTicketHandler(ticketUsecase, customValidator)
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(
		authHandler,
		clinicHandler,
		doctorHandler,
		employeeHandler,
		patientHandler,
		appointmentHandler,
		availabilityHandler,
		anamnesisHandler,
		odontogramHandler,
		financialHandler,
		billingHandler,
		ticketHandler,
		auditLogHandler,
		authMiddleware,
		corsMiddleware,
	)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
