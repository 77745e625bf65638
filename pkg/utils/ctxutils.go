package utils

import (
	"context"

	"gear-tracker/pkg/contextkeys"
	apperrors "gear-tracker/pkg/errors"
)

func GetUserIDFromCtx(ctx context.Context) (string, error) {
	userID, ok := ctx.Value(contextkeys.UserIDKey).(string)
	if !ok || userID == "" {
		return "", apperrors.ErrUserIDNotFoundInContext
	}
	return userID, nil
}

func GetOrganizationIDFromCtx(ctx context.Context) (string, error) {
	orgID, ok := ctx.Value(contextkeys.OrganizationIDKey).(string)
	if !ok || orgID == "" {
		return "", apperrors.ErrOrgIDNotFoundInContext
	}
	return orgID, nil
}
