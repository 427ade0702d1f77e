package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"medifind/config"
	deliveryHttp "medifind/internal/delivery/http"
	"medifind/internal/delivery/http/handler"
	"medifind/internal/delivery/http/middleware"
	"medifind/internal/infrastructure/cache"
	"medifind/internal/infrastructure/database"
	"medifind/internal/infrastructure/storage"
	"medifind/internal/repository"
	"medifind/internal/service"
	"medifind/internal/store"
	"medifind/internal/usecase"
	"medifind/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	Log         *logrus.Logger
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg

	log := setupLogger(cfg.App.LogLevel)
	app.Log = log
	log.Info("Configuration loaded successfully")

	backend, err := app.openBackend(cfg)
	if err != nil {
		return nil, err
	}
	log.Infof("Using %s store backend", cfg.Store.Driver)

	app.Server = initializeServer(cfg, log, backend)

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger(level string) *logrus.Logger {
	log := logrus.StandardLogger()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)

	return log
}

// openBackend connects the key-value backend selected by STORE_DRIVER.
func (app *App) openBackend(cfg *config.Config) (store.Backend, error) {
	switch cfg.Store.Driver {
	case config.StoreDriverRedis:
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		app.RedisClient = redisClient
		app.Log.Info("Redis connected successfully")
		return storage.NewRedisBackend(redisClient), nil
	case config.StoreDriverPostgres:
		db, err := database.NewPostgresConnection(cfg.DB)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		app.DB = db
		app.Log.Info("Database connected successfully")
		return storage.NewPostgresBackend(db), nil
	default:
		return storage.NewMemoryBackend(), nil
	}
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, log *logrus.Logger, backend store.Backend) *http.Server {
	kv := store.New(backend, cfg.Store.KeyPrefix, log)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	doctorRepo := repository.NewDoctorRepository(kv, log)
	reviewRepo := repository.NewReviewRepository(kv, log)
	medicineRepo := repository.NewMedicineRepository(kv, log)
	appointmentRepo := repository.NewAppointmentRepository(kv, log)
	sessionRepo := repository.NewSessionRepository(kv)

	// Initialize usecases
	sessionUsecase := usecase.NewSessionUsecase(log, customValidator, sessionRepo)
	doctorUsecase := usecase.NewDoctorUsecase(log, doctorRepo, reviewRepo)
	reviewUsecase := usecase.NewReviewUsecase(log, customValidator, reviewRepo, doctorRepo)
	medicineUsecase := usecase.NewMedicineUsecase(log, customValidator, medicineRepo)
	appointmentUsecase := usecase.NewAppointmentUsecase(log, customValidator, appointmentRepo, doctorRepo)
	recommendationUsecase := usecase.NewRecommendationUsecase(log, doctorRepo, reviewRepo)

	ctx := context.Background()
	if cfg.Store.SeedOnStartup {
		seeder := service.NewCatalogSeedService(log, doctorRepo, medicineRepo)
		if err := seeder.SeedOnStartup(ctx); err != nil {
			log.Warnf("Catalog seeding failed, falling back to lazy seeding: %+v", err)
		}
	}
	if err := sessionUsecase.Restore(ctx); err != nil {
		log.Warnf("Failed to restore session: %+v", err)
	}

	// Initialize handlers
	sessionHandler := handler.NewSessionHandler(sessionUsecase)
	doctorHandler := handler.NewDoctorHandler(doctorUsecase)
	reviewHandler := handler.NewReviewHandler(reviewUsecase)
	medicineHandler := handler.NewMedicineHandler(medicineUsecase)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase)
	symptomHandler := handler.NewSymptomHandler(recommendationUsecase)

	// Initialize middleware
	sessionMiddleware := middleware.NewSessionMiddleware(sessionUsecase)
	loggingMiddleware := middleware.NewLoggingMiddleware(log)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(
		sessionHandler,
		doctorHandler,
		reviewHandler,
		medicineHandler,
		appointmentHandler,
		symptomHandler,
		sessionMiddleware,
		loggingMiddleware,
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
		app.Log.Infof("Server starting on port %s", app.Config.App.Port)
		app.Log.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			app.Log.Fatalf("Failed to start server: %v", err)
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

	app.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), app.Config.App.ShutdownTimeout)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		app.Log.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	app.Log.Info("Server shutdown complete")
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
