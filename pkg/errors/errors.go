package errors

import "fmt"

var (
	// tokens
	ErrInvalidSigningMethod = fmt.Errorf("unexpected token signing method")
	ErrInvalidToken         = fmt.Errorf("invalid token")
	ErrTokenExpired         = fmt.Errorf("token has expired")
	ErrTokenNotYetValid     = fmt.Errorf("token is not valid yet")
	ErrTokenRevoked         = fmt.Errorf("token has been revoked")
	ErrTokenIsNotAccess     = fmt.Errorf("refresh token cannot be used for access")

	// authorization
	ErrEmptyAuthHeader   = fmt.Errorf("authorization header is missing")
	ErrInvalidAuthHeader = fmt.Errorf("authorization header is malformed")
	ErrUnauthorized      = fmt.Errorf("unauthorized")

	// request context
	ErrUserIDNotFoundInContext = fmt.Errorf("user id not found in request context")
	ErrOrgIDNotFoundInContext  = fmt.Errorf("organization id not found in request context")

	// common
	ErrNotFound   = fmt.Errorf("record not found")
	ErrConflict   = fmt.Errorf("record already exists")
	ErrBadRequest = fmt.Errorf("bad request")
)

type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string { return e.Message }

func NewInvalidInputError(format string, args ...interface{}) error {
	return &InvalidInputError{Message: fmt.Sprintf(format, args...)}
}
