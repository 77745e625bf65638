package validation

import (
	"github.com/go-playground/validator/v10"
)

var conditionValues = map[string]bool{
	"EXCELLENT": true,
	"GOOD":      true,
	"FAIR":      true,
	"POOR":      true,
}

func registerRules(v *validator.Validate) error {
	if err := v.RegisterValidation("equipment_condition", isKnownCondition); err != nil {
		return err
	}
	return nil
}

func isKnownCondition(fl validator.FieldLevel) bool {
	return conditionValues[fl.Field().String()]
}
