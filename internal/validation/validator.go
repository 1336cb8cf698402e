package validation

import (
	"reflect"
	"strings"

	"finu/internal/models"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("goal_color", validateGoalColor)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Custom validation functions

// validateGoalColor accepts the client's chart palette slots
func validateGoalColor(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case models.GoalColorChart1,
		models.GoalColorChart2,
		models.GoalColorChart3,
		models.GoalColorChart4,
		models.GoalColorChart5:
		return true
	default:
		return false
	}
}
