package controllers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gear-tracker/internal/dto"
	"gear-tracker/internal/services"
	apperrors "gear-tracker/pkg/errors"
	"gear-tracker/pkg/types"
	"gear-tracker/pkg/utils"
)

type EquipmentController struct {
	service services.EquipmentServiceInterface
	logger  *zap.Logger
}

func NewEquipmentController(service services.EquipmentServiceInterface, logger *zap.Logger) *EquipmentController {
	return &EquipmentController{
		service: service,
		logger:  logger,
	}
}

func parsePathID(c echo.Context, name string) (string, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return "", apperrors.NewInvalidInputError("invalid %s", name)
	}
	return id.String(), nil
}

func (ctl *EquipmentController) List(c echo.Context) error {
	orgID, err := utils.GetOrganizationIDFromCtx(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err, ctl.logger)
	}

	params := utils.ParseListQuery(c.QueryParams())
	items, total, err := ctl.service.List(c.Request().Context(), orgID, params)
	if err != nil {
		return utils.ErrorResponse(c, err, ctl.logger)
	}

	return utils.ListResponse(c, items, len(items), types.NewPagination(total, params.Page, params.Limit))
}

func (ctl *EquipmentController) Find(c echo.Context) error {
	orgID, err := utils.GetOrganizationIDFromCtx(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err, ctl.logger)
	}
	id, err := parsePathID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err, ctl.logger)
	}

	item, err := ctl.service.Find(c.Request().Context(), orgID, id)
	if err != nil {
		return utils.ErrorResponse(c, err, ctl.logger)
	}
	return utils.SuccessResponse(c, http.StatusOK, item)
}

func (ctl *EquipmentController) Create(c echo.Context) error {
	orgID, err := utils.GetOrganizationIDFromCtx(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err, ctl.logger)
	}

	var in dto.CreateEquipmentDTO
	if err := c.Bind(&in); err != nil {
		return utils.ErrorResponse(c, apperrors.NewInvalidInputError("malformed request body"), ctl.logger)
	}
	if err := c.Validate(&in); err != nil {
		return utils.ErrorResponse(c, err, ctl.logger)
	}

	item, err := ctl.service.Create(c.Request().Context(), orgID, in)
	if err != nil {
		return utils.ErrorResponse(c, err, ctl.logger)
	}
	return utils.SuccessResponse(c, http.StatusCreated, item)
}

func (ctl *EquipmentController) Update(c echo.Context) error {
	orgID, err := utils.GetOrganizationIDFromCtx(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err, ctl.logger)
	}
	id, err := parsePathID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err, ctl.logger)
	}

	var in dto.UpdateEquipmentDTO
	if err := c.Bind(&in); err != nil {
		return utils.ErrorResponse(c, apperrors.NewInvalidInputError("malformed request body"), ctl.logger)
	}
	if err := c.Validate(&in); err != nil {
		return utils.ErrorResponse(c, err, ctl.logger)
	}

	item, err := ctl.service.Update(c.Request().Context(), orgID, id, in)
	if err != nil {
		return utils.ErrorResponse(c, err, ctl.logger)
	}
	return utils.SuccessResponse(c, http.StatusOK, item)
}

func (ctl *EquipmentController) Delete(c echo.Context) error {
	orgID, err := utils.GetOrganizationIDFromCtx(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err, ctl.logger)
	}
	id, err := parsePathID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err, ctl.logger)
	}

	if err := ctl.service.Delete(c.Request().Context(), orgID, id); err != nil {
		return utils.ErrorResponse(c, err, ctl.logger)
	}
	return utils.SuccessResponse(c, http.StatusOK, echo.Map{"deleted": id})
}

func (ctl *EquipmentController) GenerateQr(c echo.Context) error {
	orgID, err := utils.GetOrganizationIDFromCtx(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err, ctl.logger)
	}
	id, err := parsePathID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err, ctl.logger)
	}

	ref, err := ctl.service.GenerateQrReference(c.Request().Context(), orgID, id)
	if err != nil {
		return utils.ErrorResponse(c, err, ctl.logger)
	}
	return utils.SuccessResponse(c, http.StatusOK, ref)
}

func (ctl *EquipmentController) Export(c echo.Context) error {
	orgID, err := utils.GetOrganizationIDFromCtx(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err, ctl.logger)
	}

	params := utils.ParseListQuery(c.QueryParams())
	f, err := ctl.service.Export(c.Request().Context(), orgID, params)
	if err != nil {
		return utils.ErrorResponse(c, err, ctl.logger)
	}

	c.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="equipment.xlsx"`)
	c.Response().WriteHeader(http.StatusOK)

	_, err = f.WriteTo(c.Response())
	return err
}
