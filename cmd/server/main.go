package main

import (
	"fmt"
	"os"

	"github.com/gin-contrib/sessions"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/yukikurage/portfolio-dashboard-api/internal/config"
	"github.com/yukikurage/portfolio-dashboard-api/internal/constants"
	"github.com/yukikurage/portfolio-dashboard-api/internal/database"
	"github.com/yukikurage/portfolio-dashboard-api/internal/handlers"
	"github.com/yukikurage/portfolio-dashboard-api/internal/logger"
	"github.com/yukikurage/portfolio-dashboard-api/internal/middleware"
	"github.com/yukikurage/portfolio-dashboard-api/internal/migration"
	"github.com/yukikurage/portfolio-dashboard-api/internal/report"
	"github.com/yukikurage/portfolio-dashboard-api/internal/repository"
	"github.com/yukikurage/portfolio-dashboard-api/internal/services"
	"github.com/yukikurage/portfolio-dashboard-api/internal/storage"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg := config.MustLoad()

	log, err := logger.Init(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	db, err := database.Connect(cfg, log)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}

	// Run migrations
	if err := database.Migrate(db, log); err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}

	store, err := storage.NewLocalStore(cfg.UploadDir, cfg.PublicBaseURL)
	if err != nil {
		log.Fatal("failed to create blob store", zap.Error(err))
	}

	projectRepo := repository.NewProjectRepository(db)
	unitRepo := repository.NewUnitRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Initialize AI service
	var narrator services.NarrativeGenerator
	if cfg.OpenAIAPIKey != "" {
		narrator = services.NewAIService(cfg.OpenAIAPIKey)
	}

	svc := handlers.Services{
		Auth:      services.NewAuthService(userRepo),
		Projects:  services.NewProjectService(projectRepo, unitRepo, store, log),
		Units:     services.NewUnitService(unitRepo),
		Reports:   services.NewReportService(projectRepo, report.NewBuilder(cfg.ReportPrefix), narrator),
		Migration: services.NewMigrationService(migration.NewMigrator(projectRepo, unitRepo, log), cfg.SeedFile, cfg.SeedRandom),
	}

	// Initialize Gin router
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(log))

	// Setup session middleware with Redis
	redisAddr := cfg.RedisHost + ":" + cfg.RedisPort
	sessionStore, err := redisStore.NewStore(
		10,        // Redis pool size
		"tcp",     // network type
		redisAddr, // Redis address from config
		"",        // username (empty for default user)
		"",        // password (empty = no password)
		[]byte(cfg.SessionSecret),
	)
	if err != nil {
		log.Fatal("failed to create Redis store", zap.Error(err))
	}
	isProduction := cfg.GinMode == gin.ReleaseMode
	sessionStore.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   isProduction,
		SameSite: 2, // Lax
	})
	r.Use(sessions.Sessions(constants.SessionCookieName, sessionStore))

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Portfolio Dashboard API is running",
		})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.Static("/uploads", cfg.UploadDir)

	handlers.RegisterRoutes(r, svc)

	// Start server
	log.Info("server starting", zap.String("addr", cfg.HTTPAddr))
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}
