package validation

import (
	"fmt"

	"go-ats-backend/internal/domain"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to the labels used in error messages.
var FieldLabels = map[string]string{
	"Name":        "Name",
	"Role":        "Role",
	"Experience":  "Experience",
	"ResumeLink":  "Resume link",
	"Status":      "Status",
	"AppliedDate": "Applied date",
	"Notes":       "Notes",
	"Email":       "Email",
	"Phone":       "Phone number",
	"Location":    "Location",
	"Skills":      "Skill name",
	"Salary":      "Salary",
	"Source":      "Source",
}

// FormatValidationErrors converts validator.ValidationErrors to one
// human-readable message per violated field.
func FormatValidationErrors(err error) []string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		// Not a validation error, return generic message
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}
	return messages
}

func formatSingleError(e validator.FieldError) string {
	label := getFieldLabel(e.Field())

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", label)

	case "min":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s cannot be shorter than %s characters", label, e.Param())
		}
		return fmt.Sprintf("%s cannot be less than %s", label, e.Param())

	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s cannot be more than %s characters", label, e.Param())
		}
		return fmt.Sprintf("%s cannot be more than %s", label, e.Param())

	case "gte":
		if e.Param() == "0" {
			return fmt.Sprintf("%s cannot be negative", label)
		}
		return fmt.Sprintf("%s must be at least %s", label, e.Param())

	case "resume_link":
		return fmt.Sprintf("%s must be a valid URL", label)

	case "basic_email", "email":
		return "Please provide a valid email address"

	case "candidate_status", "oneof":
		return fmt.Sprintf("%s must be one of: %s", label, domain.StatusList())

	default:
		return fmt.Sprintf("%s is invalid (%s)", label, e.Tag())
	}
}

func getFieldLabel(field string) string {
	if label, ok := FieldLabels[field]; ok {
		return label
	}
	return field
}
