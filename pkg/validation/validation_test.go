package validation_test

import (
	"testing"

	"go-ats-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type linkOnly struct {
	ResumeLink string `validate:"resume_link"`
}

type emailOnly struct {
	Email string `validate:"basic_email"`
}

type statusOnly struct {
	Status string `validate:"candidate_status"`
}

func newValidator(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	require.NoError(t, validation.RegisterCandidateValidators(v))
	return v
}

func TestResumeLinkTag(t *testing.T) {
	v := newValidator(t)

	assert.NoError(t, v.Struct(linkOnly{"https://example.com/resume.pdf"}))
	assert.NoError(t, v.Struct(linkOnly{"http://drive.example.com/x"}))

	assert.Error(t, v.Struct(linkOnly{"ftp://example.com/resume.pdf"}))
	assert.Error(t, v.Struct(linkOnly{"example.com/resume.pdf"}))
	assert.Error(t, v.Struct(linkOnly{"https://"}))
	assert.Error(t, v.Struct(linkOnly{""}))
}

func TestBasicEmailTag(t *testing.T) {
	v := newValidator(t)

	assert.NoError(t, v.Struct(emailOnly{"ada@example.com"}))
	assert.NoError(t, v.Struct(emailOnly{"first.last@sub.example.co"}))

	assert.Error(t, v.Struct(emailOnly{"not-an-email"}))
	assert.Error(t, v.Struct(emailOnly{"two@@example.com"}))
	assert.Error(t, v.Struct(emailOnly{"spaces in@example.com"}))
	assert.Error(t, v.Struct(emailOnly{"nodot@example"}))
}

func TestCandidateStatusTag(t *testing.T) {
	v := newValidator(t)

	for _, status := range []string{"applied", "interview", "offer", "rejected"} {
		assert.NoError(t, v.Struct(statusOnly{status}), status)
	}

	assert.Error(t, v.Struct(statusOnly{"hired"}))
	assert.Error(t, v.Struct(statusOnly{"Applied"}))
	assert.Error(t, v.Struct(statusOnly{""}))
}

func TestFormatValidationErrors(t *testing.T) {
	v := newValidator(t)

	type form struct {
		Name       string `validate:"required,max=100"`
		Experience int    `validate:"min=0,max=50"`
		ResumeLink string `validate:"required,resume_link"`
		Email      string `validate:"omitempty,basic_email"`
	}

	err := v.Struct(form{Experience: -3, ResumeLink: "nope", Email: "bad"})
	require.Error(t, err)

	messages := validation.FormatValidationErrors(err)
	assert.Contains(t, messages, "Name is required")
	assert.Contains(t, messages, "Experience cannot be less than 0")
	assert.Contains(t, messages, "Resume link must be a valid URL")
	assert.Contains(t, messages, "Please provide a valid email address")
}

func TestFormatValidationErrorsNonValidatorError(t *testing.T) {
	messages := validation.FormatValidationErrors(assert.AnError)
	require.Len(t, messages, 1)
	assert.Equal(t, assert.AnError.Error(), messages[0])
}
