package validation

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to user-friendly labels
var FieldLabels = map[string]string{
	"FirstName":         "first name",
	"LastName":          "last name",
	"Email":             "email",
	"PersonalNumber":    "personal identification number",
	"Username":          "username",
	"Password":          "password",
	"FromDate":          "availability start date",
	"ToDate":            "availability end date",
	"CompetenceID":      "competence",
	"YearsOfExperience": "years of experience",
}

// FormatValidationErrors converts validator.ValidationErrors to user-friendly messages
func FormatValidationErrors(err error) []string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}

	var messages []string
	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}
	return messages
}

func formatSingleError(e validator.FieldError) string {
	label, ok := FieldLabels[e.Field()]
	if !ok {
		label = e.Field()
	}

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", label)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", label)
	case "valid_name":
		return fmt.Sprintf("%s contains invalid characters", label)
	case "personal_number":
		return fmt.Sprintf("%s must have the format YYYYMMDD-XXXX", label)
	case "valid_username":
		return fmt.Sprintf("%s must be 3-30 letters, digits or underscores", label)
	case "strong_password":
		return fmt.Sprintf("%s must be at least 8 characters with upper case, lower case, a digit and a symbol", label)
	default:
		return fmt.Sprintf("%s is invalid", label)
	}
}
