package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestGenerateAndValidateTokens(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour, 24*time.Hour, zap.NewNop())

	access, refresh, err := svc.GenerateTokens("user-1", "org-1")
	require.NoError(t, err)
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)

	claims, err := svc.ValidateToken(access)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "org-1", claims.OrganizationID)
	assert.False(t, claims.IsRefreshToken)
	assert.NotEmpty(t, claims.ID)

	refreshClaims, err := svc.ValidateToken(refresh)
	require.NoError(t, err)
	assert.True(t, refreshClaims.IsRefreshToken)
}

func TestValidateTokenRejectsWrongKey(t *testing.T) {
	signer := NewJWTService("secret-a", time.Hour, 24*time.Hour, zap.NewNop())
	verifier := NewJWTService("secret-b", time.Hour, 24*time.Hour, zap.NewNop())

	access, _, err := signer.GenerateTokens("user-1", "org-1")
	require.NoError(t, err)

	_, err = verifier.ValidateToken(access)
	assert.Error(t, err)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour, 24*time.Hour, zap.NewNop())

	_, err := svc.ValidateToken("not.a.token")
	assert.Error(t, err)
}
