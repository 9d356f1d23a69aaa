package validation

import (
	"regexp"

	"go-ats-backend/internal/domain"

	"github.com/go-playground/validator/v10"
)

var (
	// The resume link only has to be an http(s) URL, matching what the
	// frontend form accepts.
	resumeLinkRegex = regexp.MustCompile(`^https?://.+`)
	// Intentionally loose email check: one @, no whitespace, a dot in the
	// domain part. Uniqueness is not enforced anywhere.
	basicEmailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// RegisterCandidateValidators installs the custom tags used by the candidate
// schema. It must be called on every validator instance that validates
// candidate input, including gin's binding engine.
func RegisterCandidateValidators(v *validator.Validate) error {
	if err := v.RegisterValidation("resume_link", validResumeLink); err != nil {
		return err
	}
	if err := v.RegisterValidation("basic_email", validBasicEmail); err != nil {
		return err
	}
	return v.RegisterValidation("candidate_status", validCandidateStatus)
}

func validResumeLink(fl validator.FieldLevel) bool {
	return resumeLinkRegex.MatchString(fl.Field().String())
}

func validBasicEmail(fl validator.FieldLevel) bool {
	return basicEmailRegex.MatchString(fl.Field().String())
}

func validCandidateStatus(fl validator.FieldLevel) bool {
	return domain.Status(fl.Field().String()).Valid()
}
