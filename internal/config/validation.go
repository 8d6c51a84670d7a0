package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/yourusername/ev-calculator/internal/devig"
	"github.com/yourusername/ev-calculator/internal/stake"
)

// CustomValidator wraps the validator with calculator-specific rules
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a new validator with custom validation functions
func NewValidator() *CustomValidator {
	v := validator.New()

	_ = v.RegisterValidation("environment", validateEnvironment)
	_ = v.RegisterValidation("loglevel", validateLogLevel)
	_ = v.RegisterValidation("kellytype", validateKellyType)
	_ = v.RegisterValidation("devigmethod", validateDevigMethod)

	return &CustomValidator{validator: v}
}

// Validate validates the entire configuration
func Validate(cfg *Config) error {
	cv := NewValidator()
	return cv.Validate(cfg)
}

// Validate validates the configuration using registered validation rules
func (cv *CustomValidator) Validate(cfg *Config) error {
	err := cv.validator.Struct(cfg)
	if err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			return formatValidationErrors(validationErrors)
		}
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}

func validateEnvironment(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "development", "staging", "production":
		return true
	default:
		return false
	}
}

func validateLogLevel(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "debug", "info", "warn", "error":
		return true
	default:
		return false
	}
}

func validateKellyType(fl validator.FieldLevel) bool {
	_, err := stake.ParseKellyType(fl.Field().String())
	return err == nil
}

func validateDevigMethod(fl validator.FieldLevel) bool {
	_, err := devig.ParseMethod(fl.Field().String())
	return err == nil
}

func formatValidationErrors(errs validator.ValidationErrors) error {
	if len(errs) == 0 {
		return nil
	}
	first := errs[0]
	return fmt.Errorf("invalid configuration: field %q failed %q validation (value: %v)",
		first.Namespace(), first.Tag(), first.Value())
}
