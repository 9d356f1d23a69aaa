package apperror

import "net/http"

type AppError struct {
	Code     int      `json:"code"`
	Message  string   `json:"message"`
	Messages []string `json:"messages,omitempty"`
	Err      error    `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func New(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func BadRequest(message string) *AppError {
	return New(http.StatusBadRequest, message, nil)
}

// Validation carries one human-readable message per violated field.
func Validation(messages []string) *AppError {
	return &AppError{
		Code:     http.StatusBadRequest,
		Message:  "Validation Error",
		Messages: messages,
	}
}

func NotFound(message string) *AppError {
	return New(http.StatusNotFound, message, nil)
}

func Internal(err error) *AppError {
	return New(http.StatusInternalServerError, "Internal Server Error", err)
}
