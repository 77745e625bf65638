package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gear-tracker/internal/services"
	apperrors "gear-tracker/pkg/errors"
	"gear-tracker/pkg/utils"
)

type PhotoController struct {
	service services.PhotoServiceInterface
	logger  *zap.Logger
}

func NewPhotoController(service services.PhotoServiceInterface, logger *zap.Logger) *PhotoController {
	return &PhotoController{
		service: service,
		logger:  logger,
	}
}

func (ctl *PhotoController) Upload(c echo.Context) error {
	orgID, err := utils.GetOrganizationIDFromCtx(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err, ctl.logger)
	}
	equipmentID, err := parsePathID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err, ctl.logger)
	}

	form, err := c.MultipartForm()
	if err != nil {
		return utils.ErrorResponse(c, apperrors.NewInvalidInputError("multipart form is required"), ctl.logger)
	}
	files := form.File["photos"]

	uploads := make([]services.PhotoUpload, 0, len(files))
	for _, fileHeader := range files {
		src, err := fileHeader.Open()
		if err != nil {
			return utils.ErrorResponse(c, apperrors.NewInvalidInputError("unreadable file %s", fileHeader.Filename), ctl.logger)
		}
		defer src.Close()

		uploads = append(uploads, services.PhotoUpload{
			FileName:    fileHeader.Filename,
			ContentType: fileHeader.Header.Get("Content-Type"),
			Content:     src,
		})
	}

	photos, err := ctl.service.Upload(c.Request().Context(), orgID, equipmentID, uploads)
	if err != nil {
		return utils.ErrorResponse(c, err, ctl.logger)
	}
	return utils.SuccessResponse(c, http.StatusCreated, photos)
}

func (ctl *PhotoController) Delete(c echo.Context) error {
	orgID, err := utils.GetOrganizationIDFromCtx(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err, ctl.logger)
	}
	equipmentID, err := parsePathID(c, "equipmentId")
	if err != nil {
		return utils.ErrorResponse(c, err, ctl.logger)
	}
	photoID, err := parsePathID(c, "photoId")
	if err != nil {
		return utils.ErrorResponse(c, err, ctl.logger)
	}

	if err := ctl.service.Delete(c.Request().Context(), orgID, equipmentID, photoID); err != nil {
		return utils.ErrorResponse(c, err, ctl.logger)
	}
	return utils.SuccessResponse(c, http.StatusOK, echo.Map{"deleted": photoID})
}
