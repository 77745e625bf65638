package utils

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "gear-tracker/pkg/errors"
	"gear-tracker/pkg/types"
)

type SuccessEnvelope struct {
	Status string      `json:"status"`
	Data   interface{} `json:"data"`
}

type ListEnvelope struct {
	Status     string           `json:"status"`
	Data       interface{}      `json:"data"`
	Results    int              `json:"results"`
	Pagination types.Pagination `json:"pagination"`
}

type ErrorEnvelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func SuccessResponse(c echo.Context, code int, data interface{}) error {
	return c.JSON(code, &SuccessEnvelope{
		Status: "success",
		Data:   data,
	})
}

func ListResponse(c echo.Context, data interface{}, results int, pagination types.Pagination) error {
	return c.JSON(http.StatusOK, &ListEnvelope{
		Status:     "success",
		Data:       data,
		Results:    results,
		Pagination: pagination,
	})
}

// ErrorResponse maps domain errors onto HTTP statuses. Anything it
// does not recognize is logged and reported as a generic 500 so driver
// details never leak to the client.
func ErrorResponse(c echo.Context, err error, logger *zap.Logger) error {
	code := http.StatusInternalServerError
	message := "internal server error"

	var invalidInput *apperrors.InvalidInputError

	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		code = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, apperrors.ErrConflict):
		code = http.StatusConflict
		message = err.Error()
	case errors.As(err, &invalidInput):
		code = http.StatusBadRequest
		message = invalidInput.Message
	case errors.Is(err, apperrors.ErrBadRequest):
		code = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, apperrors.ErrEmptyAuthHeader),
		errors.Is(err, apperrors.ErrInvalidAuthHeader),
		errors.Is(err, apperrors.ErrInvalidToken),
		errors.Is(err, apperrors.ErrTokenExpired),
		errors.Is(err, apperrors.ErrTokenNotYetValid),
		errors.Is(err, apperrors.ErrTokenRevoked),
		errors.Is(err, apperrors.ErrTokenIsNotAccess),
		errors.Is(err, apperrors.ErrInvalidSigningMethod),
		errors.Is(err, apperrors.ErrUnauthorized),
		errors.Is(err, apperrors.ErrUserIDNotFoundInContext),
		errors.Is(err, apperrors.ErrOrgIDNotFoundInContext):
		code = http.StatusUnauthorized
		message = err.Error()
	default:
		logger.Error("unhandled error",
			zap.String("method", c.Request().Method),
			zap.String("uri", c.Request().RequestURI),
			zap.Error(err),
		)
	}

	return c.JSON(code, &ErrorEnvelope{
		Status:  "error",
		Message: message,
	})
}
