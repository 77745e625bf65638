package routes

import (
	"github.com/labstack/echo/v4"

	"gear-tracker/internal/controllers"
	"gear-tracker/pkg/middleware"
)

func RegisterEquipmentRoutes(
	api *echo.Group,
	authMW *middleware.AuthMiddleware,
	equipment *controllers.EquipmentController,
	photos *controllers.PhotoController,
	categories *controllers.CategoryController,
	stats *controllers.StatsController,
) {
	group := api.Group("/equipment", authMW.Auth)

	group.GET("", equipment.List)
	group.GET("/export", equipment.Export)
	group.GET("/stats/summary", stats.Summary)
	group.GET("/categories/all", categories.List)
	group.POST("/categories", categories.Create)

	group.GET("/:id", equipment.Find)
	group.POST("", equipment.Create)
	group.PUT("/:id", equipment.Update)
	group.DELETE("/:id", equipment.Delete)

	group.POST("/:id/photos", photos.Upload)
	group.DELETE("/:equipmentId/photos/:photoId", photos.Delete)
	group.POST("/:id/qrcode", equipment.GenerateQr)
}
