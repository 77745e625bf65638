package middleware

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gear-tracker/internal/repositories"
	"gear-tracker/pkg/contextkeys"
	apperrors "gear-tracker/pkg/errors"
	"gear-tracker/pkg/service"
	"gear-tracker/pkg/utils"
)

const revokedSessionPrefix = "session:revoked:"

type AuthMiddleware struct {
	jwtService service.JWTService
	cache      repositories.CacheRepositoryInterface
	logger     *zap.Logger
}

func NewAuthMiddleware(jwtSvc service.JWTService, cache repositories.CacheRepositoryInterface, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtSvc,
		cache:      cache,
		logger:     logger,
	}
}

// Auth validates the bearer token, rejects revoked sessions and stores
// the caller identity in the request context.
func (m *AuthMiddleware) Auth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return utils.ErrorResponse(c, apperrors.ErrEmptyAuthHeader, m.logger)
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return utils.ErrorResponse(c, apperrors.ErrInvalidAuthHeader, m.logger)
		}

		claims, err := m.jwtService.ValidateToken(parts[1])
		if err != nil {
			return utils.ErrorResponse(c, err, m.logger)
		}

		if claims.IsRefreshToken {
			return utils.ErrorResponse(c, apperrors.ErrTokenIsNotAccess, m.logger)
		}

		if claims.ID != "" {
			revoked, err := m.cache.Exists(c.Request().Context(), revokedSessionPrefix+claims.ID)
			if err != nil {
				m.logger.Warn("revoked-session lookup failed", zap.Error(err))
			} else if revoked {
				return utils.ErrorResponse(c, apperrors.ErrTokenRevoked, m.logger)
			}
		}

		ctx := c.Request().Context()
		ctx = context.WithValue(ctx, contextkeys.UserIDKey, claims.UserID)
		ctx = context.WithValue(ctx, contextkeys.OrganizationIDKey, claims.OrganizationID)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
