package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to user-facing labels
var FieldLabels = map[string]string{
	"Email":       "Email",
	"Password":    "Password",
	"FullName":    "Full name",
	"CompanyName": "Company name",
	"Role":        "Role",
	"UserID":      "User ID",
	"Title":       "Title",
	"Description": "Description",
	"ImageURL":    "Image URL",
	"LinkURL":     "Link URL",
	"Phone":       "Phone",
	"Location":    "Location",
	"Headline":    "Headline",
	"Summary":     "Summary",
	"Company":     "Company",
	"Position":    "Position",
	"School":      "School",
	"Degree":      "Degree",
	"Field":       "Field of study",
	"Skills":      "Skills",
	"Experience":  "Experience",
	"Education":   "Education",
}

// FormatValidationErrors converts validator.ValidationErrors to readable messages
func FormatValidationErrors(err error) []string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}
	return messages
}

// Message joins FormatValidationErrors into one line for the error envelope.
func Message(err error) string {
	return strings.Join(FormatValidationErrors(err), "; ")
}

func formatSingleError(e validator.FieldError) string {
	label := getFieldLabel(e.Field())

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", label)
	case "required_if":
		return fmt.Sprintf("%s is required for this role", label)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", label)
	case "url":
		return fmt.Sprintf("%s must be a valid URL", label)
	case "uuid":
		return fmt.Sprintf("%s must be a valid UUID", label)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", label, e.Param())
	case "max":
		if e.Kind().String() == "slice" {
			return fmt.Sprintf("%s must have at most %s entries", label, e.Param())
		}
		return fmt.Sprintf("%s must be at most %s characters", label, e.Param())
	case "valid_name":
		return fmt.Sprintf("%s contains invalid characters", label)
	case "valid_phone":
		return fmt.Sprintf("%s must be a valid phone number", label)
	case "no_emoji":
		return fmt.Sprintf("%s must not contain emoji", label)
	case "valid_role":
		return fmt.Sprintf("%s must be one of: applicant, company", label)
	default:
		return fmt.Sprintf("%s is invalid", label)
	}
}

func getFieldLabel(field string) string {
	if label, ok := FieldLabels[field]; ok {
		return label
	}
	return field
}
