package httpx

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	validate.RegisterValidation("csvsafe", validateCSVSafe)
}

// validateCSVSafe rejects values that could not be written back as a single
// field of the catalog's delimited files.
func validateCSVSafe(fl validator.FieldLevel) bool {
	v := fl.Field().String()
	return !strings.ContainsAny(v, ",\r\n") && strings.TrimSpace(v) == v
}

// ValidateStruct returns one detail per failed field, or nil.
func ValidateStruct(s interface{}) []ErrorDetail {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []ErrorDetail{{Field: "", Message: err.Error()}}
	}

	var details []ErrorDetail
	for _, fe := range verrs {
		field := fe.Field()

		var message string
		switch fe.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", field)
		case "max":
			message = fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
		case "csvsafe":
			message = fmt.Sprintf("%s must not contain commas, line breaks or surrounding spaces", field)
		default:
			message = fmt.Sprintf("%s is invalid", field)
		}

		details = append(details, ErrorDetail{
			Field:   strings.ToLower(field[:1]) + field[1:],
			Message: message,
		})
	}
	return details
}
