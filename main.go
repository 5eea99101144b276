package main

import (
	"context"
	"log"
	"net/http"

	"go.uber.org/zap"

	"github.com/riskworks/erm-engine/pkg/config"
	"github.com/riskworks/erm-engine/pkg/database"
	"github.com/riskworks/erm-engine/pkg/handlers"
	"github.com/riskworks/erm-engine/pkg/logging"
	"github.com/riskworks/erm-engine/pkg/middleware"
	"github.com/riskworks/erm-engine/pkg/repositories"
	"github.com/riskworks/erm-engine/pkg/services"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	// Load configuration
	cfg, err := config.Load(Version)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := logging.NewLogger(cfg.Env)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Configuration loaded",
		zap.String("environment", cfg.Env),
		zap.String("port", cfg.Port),
		zap.String("database",
			cfg.Database.User+"@"+cfg.Database.Host+"/"+cfg.Database.Database))

	ctx := context.Background()

	// Apply pending migrations before serving traffic
	migrationDB, err := database.OpenForMigrations(cfg.Database.ConnectionString())
	if err != nil {
		logger.Fatal("Failed to open migration connection", zap.Error(err))
	}
	if err := database.RunMigrations(migrationDB, cfg.MigrationsPath, logger); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}
	_ = migrationDB.Close()

	db, err := database.NewConnection(ctx, &database.Config{
		URL:            cfg.Database.ConnectionString(),
		MaxConnections: cfg.Database.MaxConnections,
	})
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Repositories
	registryRepo := repositories.NewRiskRegistryRepository(db)
	registryAssessmentRepo := repositories.NewRegistryAssessmentRepository(db)
	riskAssessmentRepo := repositories.NewRiskAssessmentRepository(db)
	strategicRepo := repositories.NewStrategicRepository(db)

	// Services
	registryService := services.NewRegistryService(registryRepo, registryAssessmentRepo, logger)
	assessmentService := services.NewAssessmentService(registryAssessmentRepo, riskAssessmentRepo, logger)
	strategicService := services.NewStrategicService(strategicRepo, logger)

	mux := http.NewServeMux()

	// Register handlers
	healthHandler := handlers.NewHealthHandler(cfg, logger)
	healthHandler.RegisterRoutes(mux)

	registryHandler := handlers.NewRiskRegistryHandler(registryService, logger)
	registryHandler.RegisterRoutes(mux)

	registryAssessmentHandler := handlers.NewRegistryAssessmentHandler(assessmentService, logger)
	registryAssessmentHandler.RegisterRoutes(mux)

	riskAssessmentHandler := handlers.NewRiskAssessmentHandler(assessmentService, logger)
	riskAssessmentHandler.RegisterRoutes(mux)

	strategicHandler := handlers.NewStrategicHandler(strategicService, logger)
	strategicHandler.RegisterRoutes(mux)

	handler := middleware.RequestLogger(logger)(mux)

	addr := cfg.BindAddr + ":" + cfg.Port
	logger.Info("Starting erm-engine",
		zap.String("addr", addr),
		zap.String("version", cfg.Version))
	if err := http.ListenAndServe(addr, handler); err != nil {
		logger.Fatal("Server failed", zap.Error(err))
	}
}
