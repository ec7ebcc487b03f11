package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/yukikurage/portfolio-dashboard-api/internal/config"
	"github.com/yukikurage/portfolio-dashboard-api/internal/database"
	"github.com/yukikurage/portfolio-dashboard-api/internal/logger"
	"github.com/yukikurage/portfolio-dashboard-api/internal/repository"
	"github.com/yukikurage/portfolio-dashboard-api/internal/services"
	"go.uber.org/zap"
)

func main() {
	email := flag.String("email", "", "admin email address")
	name := flag.String("name", "", "admin full name")
	password := flag.String("password", "", "admin password")
	flag.Parse()

	if *email == "" || *password == "" {
		fmt.Fprintln(os.Stderr, "usage: create-admin -email <email> -password <password> [-name <name>]")
		os.Exit(2)
	}

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

	authService := services.NewAuthService(repository.NewUserRepository(db))
	user, err := authService.CreateAdmin(services.CreateUserInput{
		Email:    *email,
		FullName: *name,
		Password: *password,
	})
	if err != nil {
		log.Fatal("failed to create admin", zap.Error(err))
	}

	log.Info("admin created", zap.Uint64("id", user.ID), zap.String("email", user.Email))
}
