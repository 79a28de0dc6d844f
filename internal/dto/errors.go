package dto

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrValidation  = errors.New("errValidation")
	ErrInvalidJSON = errors.New("errInvalidJSON")
)

// Reason описывает причину, по которой поле не прошло проверку.
type Reason string

const (
	ReasonMissing    Reason = "missing"
	ReasonUnexpected Reason = "unexpected"
	ReasonWrongType  Reason = "wrong_type"
	ReasonInvalid    Reason = "invalid"
	ReasonConstraint Reason = "constraint"
)

// FieldError описывает одно невалидное поле.
type FieldError struct {
	Field  string `json:"field"`
	Reason Reason `json:"reason"`
	Detail string `json:"detail,omitempty"`
}

func (e FieldError) String() string {
	switch e.Reason {
	case ReasonMissing:
		return fmt.Sprintf("required field '%s'", e.Field)
	case ReasonUnexpected:
		return fmt.Sprintf("unexpected field '%s'", e.Field)
	}

	if e.Detail == "" {
		return fmt.Sprintf("%s value in field '%s'", e.Reason, e.Field)
	}

	return fmt.Sprintf("%s value in field '%s': %s", e.Reason, e.Field, e.Detail)
}

// ValidationError собирает все ошибки полей, найденные при создании записи.
type ValidationError struct {
	Errors []FieldError `json:"errors"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		parts = append(parts, fe.String())
	}

	return fmt.Sprintf("validation failed: %s", strings.Join(parts, "; "))
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// Field returns the error recorded for name, if any.
func (e *ValidationError) Field(name string) (FieldError, bool) {
	for _, fe := range e.Errors {
		if fe.Field == name {
			return fe, true
		}
	}

	return FieldError{}, false
}

func (e *ValidationError) Add(field string, reason Reason, detail string) {
	e.Errors = append(e.Errors, FieldError{Field: field, Reason: reason, Detail: detail})
}

// Err returns nil when nothing was recorded.
func (e *ValidationError) Err() error {
	if e == nil || len(e.Errors) == 0 {
		return nil
	}

	return e
}
