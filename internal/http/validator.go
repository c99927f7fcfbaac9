package http

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"libraryapi/internal/lending"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	_ = validate.RegisterValidation("patron_id", validatePatronID)
	_ = validate.RegisterValidation("isbn13", validateISBN13)
}

func validatePatronID(fl validator.FieldLevel) bool {
	return lending.ValidatePatronID(fl.Field().String()) == nil
}

func validateISBN13(fl validator.FieldLevel) bool {
	return lending.ValidateISBN(fl.Field().String()) == nil
}

// ValidateStruct runs the shared validator and flattens the result into
// field/message pairs for the error envelope.
func ValidateStruct(s interface{}) []ErrorDetail {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var details []ErrorDetail
	for _, fieldErr := range err.(validator.ValidationErrors) {
		field := fieldErr.Field()
		param := fieldErr.Param()

		var message string
		switch fieldErr.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", field)
		case "max":
			message = fmt.Sprintf("%s must be at most %s characters", field, param)
		case "gt":
			message = fmt.Sprintf("%s must be greater than %s", field, param)
		case "patron_id":
			message = fmt.Sprintf("%s must be exactly 6 digits", field)
		case "isbn13":
			message = fmt.Sprintf("%s must be exactly 13 digits", field)
		default:
			message = fmt.Sprintf("%s is invalid", field)
		}

		fieldName := strings.ToLower(field[:1]) + field[1:]
		details = append(details, ErrorDetail{
			Field:   fieldName,
			Message: message,
		})
	}

	return details
}
