package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gear-tracker/internal/dto"
	"gear-tracker/internal/services"
	apperrors "gear-tracker/pkg/errors"
	"gear-tracker/pkg/utils"
)

type CategoryController struct {
	service services.CategoryServiceInterface
	logger  *zap.Logger
}

func NewCategoryController(service services.CategoryServiceInterface, logger *zap.Logger) *CategoryController {
	return &CategoryController{
		service: service,
		logger:  logger,
	}
}

func (ctl *CategoryController) List(c echo.Context) error {
	orgID, err := utils.GetOrganizationIDFromCtx(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err, ctl.logger)
	}

	categories, err := ctl.service.List(c.Request().Context(), orgID)
	if err != nil {
		return utils.ErrorResponse(c, err, ctl.logger)
	}
	return utils.SuccessResponse(c, http.StatusOK, categories)
}

func (ctl *CategoryController) Create(c echo.Context) error {
	orgID, err := utils.GetOrganizationIDFromCtx(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err, ctl.logger)
	}

	var in dto.CreateCategoryDTO
	if err := c.Bind(&in); err != nil {
		return utils.ErrorResponse(c, apperrors.NewInvalidInputError("malformed request body"), ctl.logger)
	}
	if err := c.Validate(&in); err != nil {
		return utils.ErrorResponse(c, err, ctl.logger)
	}

	category, err := ctl.service.Create(c.Request().Context(), orgID, in)
	if err != nil {
		return utils.ErrorResponse(c, err, ctl.logger)
	}
	return utils.SuccessResponse(c, http.StatusCreated, category)
}
