package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Tag     string
	Value   interface{}
	Message string
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}

	switch e.Tag {
	case "required":
		return fmt.Sprintf("%s is required", e.Field)
	case "min":
		return fmt.Sprintf("%s is below the allowed minimum", e.Field)
	case "max":
		return fmt.Sprintf("%s is above the allowed maximum", e.Field)
	default:
		return fmt.Sprintf("%s failed validation", e.Field)
	}
}

// ValidationErrors represents multiple validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	var messages []string
	for _, err := range e {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(messages, "; "))
}

// Validator provides configuration validation.
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a new configuration validator.
func NewValidator() *Validator {
	return &Validator{validate: validator.New()}
}

// ValidateConfig validates a problem configuration: struct tags first, then
// the cross-field rules the tags cannot express.
func (v *Validator) ValidateConfig(config *ProblemConfig) error {
	if config == nil {
		return ValidationErrors{
			ValidationError{
				Field:   "config",
				Tag:     "required",
				Value:   nil,
				Message: "config is nil",
			},
		}
	}

	var validationErrors ValidationErrors

	if err := v.validate.Struct(config); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok {
			for _, e := range errs {
				validationErrors = append(validationErrors, ValidationError{
					Field:   e.Field(),
					Tag:     e.Tag(),
					Value:   e.Value(),
					Message: getValidationMessage(e),
				})
			}
		} else {
			validationErrors = append(validationErrors, ValidationError{
				Message: err.Error(),
			})
		}
	}

	validationErrors = append(validationErrors, v.validateCrossFieldRules(config)...)

	if len(validationErrors) > 0 {
		return validationErrors
	}
	return nil
}

// validateCrossFieldRules checks constraints spanning multiple fields.
func (v *Validator) validateCrossFieldRules(config *ProblemConfig) ValidationErrors {
	var errs ValidationErrors

	if config.Dimension <= config.ObjectiveCount {
		errs = append(errs, ValidationError{
			Field: "Dimension",
			Tag:   "gtfield",
			Value: config.Dimension,
			Message: fmt.Sprintf("dimension (%d) must be larger than objective_count (%d)",
				config.Dimension, config.ObjectiveCount),
		})
	}

	return errs
}

// getValidationMessage produces a field-specific human-readable message.
func getValidationMessage(e validator.FieldError) string {
	switch e.Field() {
	case "ProblemID":
		return fmt.Sprintf("problem_id must be in [1, 7], got %v", e.Value())
	case "Dimension":
		return fmt.Sprintf("dimension must be at least 3, got %v", e.Value())
	case "ObjectiveCount":
		return fmt.Sprintf("objective_count must be at least 2, got %v", e.Value())
	case "ShapeExponent":
		return fmt.Sprintf("shape_exponent must be a positive integer, got %v", e.Value())
	default:
		return ""
	}
}
