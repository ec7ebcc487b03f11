package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/yukikurage/portfolio-dashboard-api/internal/config"
	"github.com/yukikurage/portfolio-dashboard-api/internal/database"
	"github.com/yukikurage/portfolio-dashboard-api/internal/logger"
	"github.com/yukikurage/portfolio-dashboard-api/internal/migration"
	"github.com/yukikurage/portfolio-dashboard-api/internal/repository"
	"github.com/yukikurage/portfolio-dashboard-api/internal/services"
	"go.uber.org/zap"
)

func main() {
	seedData := flag.Bool("seed", false, "migrate the seed dataset after updating the schema")
	seedFile := flag.String("file", "", "seed YAML file (defaults to SEED_FILE, then the embedded dataset)")
	flag.Parse()

	cfg := config.MustLoad()

	log, err := logger.Init(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	db, err := database.Connect(cfg, log)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	if err := database.Migrate(db, log); err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}

	if !*seedData {
		return
	}

	file := cfg.SeedFile
	if *seedFile != "" {
		file = *seedFile
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	projectRepo := repository.NewProjectRepository(db)
	unitRepo := repository.NewUnitRepository(db)
	svc := services.NewMigrationService(migration.NewMigrator(projectRepo, unitRepo, log), file, cfg.SeedRandom)

	result, err := svc.Run(ctx)
	if err != nil {
		log.Fatal("failed to load seed dataset", zap.Error(err))
	}

	for _, item := range result.Items {
		line := fmt.Sprintf("%-12s %-24s units=%d", item.Outcome, item.ProjectID, item.Units)
		if item.Error != "" {
			line += " error=" + item.Error
		}
		fmt.Println(line)
	}
	fmt.Printf("migrated %d of %d projects\n", result.Succeeded(), len(result.Items))

	if result.Failed() > 0 {
		os.Exit(1)
	}
}
