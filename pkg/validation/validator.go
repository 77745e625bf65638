package validation

import (
	"github.com/go-playground/validator/v10"

	apperrors "gear-tracker/pkg/errors"
)

type Validator struct {
	validate *validator.Validate
}

// New builds the echo validator with the null-type adapters and the
// custom rules registered.
func New() (*Validator, error) {
	v := validator.New()
	registerNullTypes(v)
	if err := registerRules(v); err != nil {
		return nil, err
	}
	return &Validator{validate: v}, nil
}

func (v *Validator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return apperrors.NewInvalidInputError("validation failed: %v", err)
	}
	return nil
}
