package main

import (
	"context"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"missing-person-tracker/internal/config"
	"missing-person-tracker/internal/database/migrations"
	"missing-person-tracker/internal/pkg/logger"
)

func main() {
	envErr := godotenv.Load()

	cfg := config.Load()
	logger.Init(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	if envErr != nil {
		logrus.Info("No .env file found, using environment variables")
	}

	db, err := config.NewPostgresDB(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to connect to database")
	}
	defer db.Close()

	applied, err := migrations.Apply(context.Background(), db)
	if err != nil {
		logrus.WithError(err).Fatal("Migration failed")
	}

	for _, name := range applied {
		logrus.WithField("file", name).Info("applied")
	}
	logrus.Info("Database schema is up to date")
}
