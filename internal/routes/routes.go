package routes

import (
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gear-tracker/internal/controllers"
	"gear-tracker/internal/repositories"
	"gear-tracker/internal/services"
	"gear-tracker/pkg/config"
	"gear-tracker/pkg/filestorage"
	"gear-tracker/pkg/middleware"
	"gear-tracker/pkg/service"
)

func InitRouter(
	e *echo.Echo,
	dbConn *pgxpool.Pool,
	redisClient *redis.Client,
	jwtSvc service.JWTService,
	fileStorage filestorage.FileStorage,
	logger *zap.Logger,
	cfg *config.Config,
) {
	api := e.Group("/api")

	cacheRepo := repositories.NewRedisCacheRepository(redisClient)
	authMW := middleware.NewAuthMiddleware(jwtSvc, cacheRepo, logger)

	equipmentRepo := repositories.NewEquipmentRepository(dbConn, logger)
	photoRepo := repositories.NewPhotoRepository(dbConn)
	categoryRepo := repositories.NewCategoryRepository(dbConn)
	maintenanceRepo := repositories.NewMaintenanceRepository(dbConn)
	eventUsageRepo := repositories.NewEventUsageRepository(dbConn)
	statsRepo := repositories.NewStatsRepository(dbConn, logger)

	equipmentService := services.NewEquipmentService(
		equipmentRepo, photoRepo, maintenanceRepo, eventUsageRepo,
		cacheRepo, fileStorage, cfg.App.BaseURL, logger,
	)
	photoService := services.NewPhotoService(equipmentRepo, photoRepo, fileStorage, logger)
	categoryService := services.NewCategoryService(categoryRepo, logger)
	statsService := services.NewStatsService(statsRepo, logger)

	equipmentController := controllers.NewEquipmentController(equipmentService, logger)
	photoController := controllers.NewPhotoController(photoService, logger)
	categoryController := controllers.NewCategoryController(categoryService, logger)
	statsController := controllers.NewStatsController(statsService, logger)

	RegisterEquipmentRoutes(api, authMW, equipmentController, photoController, categoryController, statsController)
}
