package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gear-tracker/internal/services"
	"gear-tracker/pkg/utils"
)

type StatsController struct {
	service services.StatsServiceInterface
	logger  *zap.Logger
}

func NewStatsController(service services.StatsServiceInterface, logger *zap.Logger) *StatsController {
	return &StatsController{
		service: service,
		logger:  logger,
	}
}

func (ctl *StatsController) Summary(c echo.Context) error {
	orgID, err := utils.GetOrganizationIDFromCtx(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err, ctl.logger)
	}

	summary, err := ctl.service.Summarize(c.Request().Context(), orgID)
	if err != nil {
		return utils.ErrorResponse(c, err, ctl.logger)
	}
	return utils.SuccessResponse(c, http.StatusOK, summary)
}
