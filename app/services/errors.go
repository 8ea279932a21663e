package services

import (
	"errors"
	"log"
	"strings"
)

var ErrNotFound = errors.New("resource not found")

type FieldError struct {
	Message string `json:"message"`
	Field   string `json:"field"`
}

// ValidationError carries field-level problems found before any write.
type ValidationError struct {
	Details []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Details))
	for _, d := range e.Details {
		msgs = append(msgs, d.Field+": "+d.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Details: []FieldError{{Message: message, Field: field}}}
}

// ConflictError reports a write refused because dependents still exist.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// ReferenceError reports a foreign key pointing at a missing row.
type ReferenceError struct {
	Message string
}

func (e *ReferenceError) Error() string {
	return e.Message
}

// logUnexpected logs errors that are not part of the expected taxonomy.
func logUnexpected(where string, err error) {
	if err == nil {
		return
	}
	var (
		validationErr *ValidationError
		conflictErr   *ConflictError
		referenceErr  *ReferenceError
	)
	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrUnauthorized), errors.As(err, &validationErr), errors.As(err, &conflictErr), errors.As(err, &referenceErr):
		return
	}
	log.Printf("%s: %v", where, err)
}

var ErrUnauthorized = errors.New("unauthorized")
