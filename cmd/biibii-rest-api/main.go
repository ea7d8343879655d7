// cmd/biibii-rest-api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	v1 "github.com/pandamaske/biibii-sub002/internal/api/rest/v1"
	"github.com/pandamaske/biibii-sub002/internal/app"
	"github.com/pandamaske/biibii-sub002/internal/domain/livedata"
	"github.com/pandamaske/biibii-sub002/internal/infrastructure/cache"
	"github.com/pandamaske/biibii-sub002/internal/infrastructure/persistence"
	"github.com/pandamaske/biibii-sub002/internal/pkg/config"
	"github.com/pandamaske/biibii-sub002/internal/pkg/logger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/gin-gonic/gin"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "../../configs/rest-app.yaml"
	}

	restConfig, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	// Initialize logger
	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	// Initialize application dependencies
	deps, err := initializeDependencies(restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	defer deps.close(log)

	// Setup and start server with graceful shutdown
	return startServerWithGracefulShutdown(restConfig, deps, log)
}

// appDependencies holds all initialized application components
type appDependencies struct {
	db       *gorm.DB
	cache    livedata.Cache
	services *app.Services
}

func (d *appDependencies) close(log logger.Logger) {
	if closer, ok := d.cache.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			log.Warn("Failed to close live data cache: ", err)
		}
	}
	if err := persistence.CloseDB(d.db); err != nil {
		log.Warn("Failed to close database: ", err)
	}
}

// openDB is replaced in tests
var openDB = persistence.NewDBConnection

// initializeDependencies sets up all application components. Whatever was
// opened before a failing step is closed again.
func initializeDependencies(cfg *config.RestConfig, log logger.Logger) (_ *appDependencies, err error) {
	// Initialize database
	db, err := openDB(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	deps := &appDependencies{db: db}
	defer func() {
		if err != nil {
			deps.close(log)
		}
	}()

	// Run migrations
	if err := persistence.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	log.Info("Database migrations completed successfully")

	// Initialize repositories
	repos, err := initializeRepositories(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize repositories: %w", err)
	}

	// Initialize live data cache
	if deps.cache, err = cache.NewLiveDataCache(context.Background(), &cfg.LiveDataCache, log); err != nil {
		return nil, fmt.Errorf("failed to initialize live data cache: %w", err)
	}

	// Initialize services
	if deps.services, err = app.NewServices(repos, deps.cache, log); err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}
	log.Info("Application services initialized successfully")

	return deps, nil
}

// initializeRepositories creates one GORM repository per aggregate
func initializeRepositories(db *gorm.DB, log logger.Logger) (*app.Repositories, error) {
	var (
		repos app.Repositories
		err   error
	)

	if repos.Users, err = persistence.NewGormUserRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create user repository: %w", err)
	}
	if repos.Babies, err = persistence.NewGormBabyRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create baby repository: %w", err)
	}
	if repos.Settings, err = persistence.NewGormSettingsRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create settings repository: %w", err)
	}
	if repos.Feedings, err = persistence.NewGormFeedingRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create feeding repository: %w", err)
	}
	if repos.Sleeps, err = persistence.NewGormSleepRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create sleep repository: %w", err)
	}
	if repos.Diapers, err = persistence.NewGormDiaperRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create diaper repository: %w", err)
	}
	if repos.Growth, err = persistence.NewGormGrowthRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create growth repository: %w", err)
	}
	if repos.Vaccines, err = persistence.NewGormVaccineRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create vaccine repository: %w", err)
	}
	if repos.Appointments, err = persistence.NewGormAppointmentRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create appointment repository: %w", err)
	}
	if repos.Milestones, err = persistence.NewGormMilestoneRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create milestone repository: %w", err)
	}
	if repos.Providers, err = persistence.NewGormProviderRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create provider repository: %w", err)
	}
	if repos.Medications, err = persistence.NewGormMedicationRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create medication repository: %w", err)
	}
	if repos.MedicationEntries, err = persistence.NewGormMedicationEntryRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create medication entry repository: %w", err)
	}
	if repos.Goals, err = persistence.NewGormGoalRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create goal repository: %w", err)
	}
	if repos.Profiles, err = persistence.NewGormProfileRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create profile repository: %w", err)
	}
	if repos.Activity, err = persistence.NewGormActivityRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create activity repository: %w", err)
	}

	return &repos, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, deps *appDependencies, log logger.Logger) error {
	if cfg.Logger.LogLevel != config.LogLevelDebug {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup router
	r := gin.New()
	r.Use(v1.LoggerMiddleware(log), gin.Recovery())

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", v1.ActorHeader},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: !allowsAnyOrigin(cfg.CORS.AllowOrigins),
		MaxAge:           12 * time.Hour,
	}))

	if cfg.Metrics.Enabled {
		r.Use(v1.MetricsMiddleware())
		r.GET(cfg.Metrics.Path, gin.WrapH(promhttp.Handler()))
	}

	// Setup API routes
	v1.SetupRoutes(r, deps.services, log)

	// Create HTTP server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start server in goroutine
	go func() {
		log.Info("Starting server on port ", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or server error
	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal ", sig, ", initiating graceful shutdown")
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}

// credentials are only allowed for an explicit origin list
func allowsAnyOrigin(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}
