package main

import (
	"github.com/joho/godotenv"
	"github.com/larder-dev/larder/db"
	"github.com/larder-dev/larder/internal/auth"
	"github.com/larder-dev/larder/internal/config"
	"github.com/larder-dev/larder/internal/logger"
	"github.com/larder-dev/larder/internal/router"
	"go.uber.org/zap"
)

func main() {
	dotenvErr := godotenv.Load()

	logger.Initialize()
	defer logger.Close()

	if dotenvErr != nil {
		logger.Warn("No .env file loaded, relying on environment", zap.Error(dotenvErr))
	}

	if err := auth.InitJWTSecret(); err != nil {
		logger.Fatal("Failed to initialize JWT secret", zap.Error(err))
	}

	if err := db.ConnectDatabase(config.DatabaseDSN()); err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}

	if err := db.MigrateDatabase(); err != nil {
		logger.Fatal("Failed to migrate database", zap.Error(err))
	}

	r := router.NewRouter()

	port := config.GetEnv("PORT", "8000")

	logger.Info("Starting server", zap.String("port", port))

	if err := r.Run(":" + port); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}
