package main

import (
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/karzeg/ztp-project-blog/db"
	"github.com/karzeg/ztp-project-blog/internal/auth"
	"github.com/karzeg/ztp-project-blog/internal/config"
	"github.com/karzeg/ztp-project-blog/internal/handlers"
	"github.com/karzeg/ztp-project-blog/internal/router"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	if err := auth.Init(cfg.JWTSecret); err != nil {
		logger.Fatal("auth init failed", zap.Error(err))
	}

	if err := db.ConnectDatabase(cfg.DatabaseURL); err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	if err := db.MigrateDatabase(); err != nil {
		logger.Fatal("failed to migrate database", zap.Error(err))
	}

	if cfg.SeedDemoData {
		if err := db.SeedDemoData(); err != nil {
			logger.Fatal("failed to seed demo data", zap.Error(err))
		}
		logger.Info("demo data seeded")
	}

	r := router.NewRouter(handlers.New(db.DB, logger), cfg.AllowedOrigins)

	logger.Info("starting server", zap.String("addr", cfg.Addr))

	if err := r.Run(cfg.Addr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
