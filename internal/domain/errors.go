package domain

import (
	"errors"
	"strings"
)

var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrServiceNotFound = errors.New("service not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrReviewNotFound  = errors.New("review not found")
)

var (
	ErrAccessDenied      = errors.New("access denied")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrSignatureInvalid  = errors.New("invalid signature")
	ErrUpstream          = errors.New("upstream failure")
	ErrAlreadyReviewed   = errors.New("booking already reviewed")
	ErrAlreadyReported   = errors.New("review already reported by this user")
)

var (
	ErrValidation = errors.New("validation error")
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError несет ошибки по полям и сравнивается с ErrValidation.
type ValidationError struct {
	Fields []FieldError
}

func NewValidationError(fields ...FieldError) *ValidationError {
	return &ValidationError{Fields: fields}
}

func (e *ValidationError) Add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

func (e *ValidationError) Empty() bool {
	return len(e.Fields) == 0
}

// OrNil позволяет копить ошибки и вернуть nil, если их нет.
func (e *ValidationError) OrNil() error {
	if e.Empty() {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return ErrValidation.Error() + ": " + strings.Join(parts, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
