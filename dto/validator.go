package dto

import (
	"net/http"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/ascend-learning/ascend_api/shared"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("strong_password", validateStrongPassword)
}

func GetValidator() *validator.Validate {
	return validate
}

func validateStrongPassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()

	if len(password) < 8 {
		return false
	}

	var (
		hasUpper  = false
		hasLower  = false
		hasNumber = false
	)

	for _, char := range password {
		switch {
		case unicode.IsUpper(char):
			hasUpper = true
		case unicode.IsLower(char):
			hasLower = true
		case unicode.IsNumber(char):
			hasNumber = true
		}
	}

	return hasUpper && hasLower && hasNumber
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// NewValidationError wraps a validator failure in an AppError whose
// Data carries the field-level messages, so clients see which fields
// failed rather than a bare 400.
func NewValidationError(err error) *shared.AppError {
	return &shared.AppError{
		StatusCode: http.StatusBadRequest,
		Message:    "Validation failed",
		Data:       FormatValidationErrors(err),
		Err:        err,
	}
}

func FormatValidationErrors(err error) []ValidationError {
	var out []ValidationError

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, fieldError := range validationErrors {
			var message string

			switch fieldError.Tag() {
			case "required":
				message = fieldError.Field() + " is required"
			case "email":
				message = "Invalid email format"
			case "min":
				message = fieldError.Field() + " must be at least " + fieldError.Param() + " characters"
			case "max":
				message = fieldError.Field() + " must be at most " + fieldError.Param() + " characters"
			case "oneof":
				message = fieldError.Field() + " must be one of: " + fieldError.Param()
			case "strong_password":
				message = "Password must contain at least 8 characters with uppercase, lowercase and number"
			default:
				message = fieldError.Field() + " is invalid"
			}

			out = append(out, ValidationError{
				Field:   fieldError.Field(),
				Message: message,
			})
		}
	}

	return out
}
