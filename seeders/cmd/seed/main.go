package main

import (
	"context"

	"go.uber.org/zap"

	"gear-tracker/pkg/config"
	"gear-tracker/pkg/database/postgresql"
	applogger "gear-tracker/pkg/logger"
	"gear-tracker/seeders"
)

func main() {
	logger := applogger.NewLogger()
	defer logger.Sync()

	cfg := config.New()

	ctx := context.Background()
	dbConn, err := postgresql.Connect(ctx, cfg.Postgres.DSN)
	if err != nil {
		logger.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer dbConn.Close()

	if err := seeders.NewRunner(dbConn, logger).Run(ctx); err != nil {
		logger.Fatal("seed failed", zap.Error(err))
	}
}
