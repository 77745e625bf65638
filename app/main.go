package main

import (
	"context"
	"net/http"
	"path/filepath"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"gear-tracker/internal/routes"
	"gear-tracker/pkg/config"
	"gear-tracker/pkg/database/postgresql"
	"gear-tracker/pkg/filestorage"
	applogger "gear-tracker/pkg/logger"
	"gear-tracker/pkg/middleware"
	"gear-tracker/pkg/service"
	"gear-tracker/pkg/utils"
	"gear-tracker/pkg/validation"
)

func main() {
	e := echo.New()
	logger := applogger.NewLogger()
	defer logger.Sync()

	cfg := config.New()

	e.Use(echomw.RecoverWithConfig(echomw.RecoverConfig{
		DisableStackAll: true,
		StackSize:       1 << 10,
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			logger.Error("panic recovered",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Error(err),
				zap.String("stack", string(stack)),
			)
			if !c.Response().Committed {
				utils.ErrorResponse(c, err, logger)
			}
			return err
		},
	}))
	e.Use(middleware.RequestLogger(logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:  []string{cfg.App.BaseURL, "http://localhost:5173"},
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		ExposeHeaders: []string{"Content-Disposition"},
	}))

	v, err := validation.New()
	if err != nil {
		logger.Fatal("failed to build validator", zap.Error(err))
	}
	e.Validator = v

	ctx := context.Background()

	dbConn, err := postgresql.Connect(ctx, cfg.Postgres.DSN)
	if err != nil {
		logger.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer dbConn.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       0,
	})
	if _, err := redisClient.Ping(ctx).Result(); err != nil {
		logger.Fatal("failed to connect to redis", zap.Error(err), zap.String("address", cfg.Redis.Address))
	}

	var storage filestorage.FileStorage
	switch cfg.Storage.Backend {
	case "gcs":
		storage, err = filestorage.NewGCSFileStorage(ctx, cfg.Storage.GCSBucket, cfg.Storage.GCSCredentials, cfg.Storage.GCSBaseURL)
		if err != nil {
			logger.Fatal("failed to build gcs storage", zap.Error(err))
		}
	default:
		storage, err = filestorage.NewLocalFileStorage(cfg.Storage.LocalPath, cfg.Storage.LocalBaseURL)
		if err != nil {
			logger.Fatal("failed to build local storage", zap.Error(err))
		}
		absPath, err := filepath.Abs(cfg.Storage.LocalPath)
		if err != nil {
			logger.Fatal("failed to resolve uploads path", zap.Error(err))
		}
		e.Static(cfg.Storage.LocalBaseURL, absPath)
	}

	jwtSvc := service.NewJWTService(cfg.JWT.SecretKey, cfg.JWT.AccessTokenTTL, cfg.JWT.RefreshTokenTTL, logger)

	routes.InitRouter(e, dbConn, redisClient, jwtSvc, storage, logger, cfg)

	logger.Info("server listening", zap.String("port", cfg.Server.Port))
	if err := e.Start(":" + cfg.Server.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
