package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrQuestionNotFound = errors.New("question not found")
	ErrNoSelection      = errors.New("you didn't select a choice")
	ErrValidation       = errors.New("validation failed")
	ErrInternal         = errors.New("internal server error")
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError reports every field that failed validation on a write.
type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

func NewValidationError(fields ...FieldError) *ValidationError {
	return &ValidationError{Fields: fields}
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return fmt.Sprintf("%s: %s", ErrValidation, strings.Join(msgs, "; "))
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
