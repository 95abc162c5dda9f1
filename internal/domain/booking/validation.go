package booking

import (
	"strings"

	"booking-engine/internal/pkg/errs"
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError lists every failing field of a request, not just the first.
type ValidationError struct {
	Fields []FieldError
	// Detail carries limits the caller ran into, e.g. max_occupancy.
	Detail map[string]any
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == errs.ErrValidation
}

func (e *ValidationError) Has(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

type Validator struct {
	fields []FieldError
}

func (v *Validator) Add(field, message string) {
	v.fields = append(v.fields, FieldError{Field: field, Message: message})
}

// Check records err under field when non-nil and reports whether it passed.
func (v *Validator) Check(field string, err error) bool {
	if err == nil {
		return true
	}
	v.Add(field, err.Error())
	return false
}

func (v *Validator) Err() error {
	if len(v.fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: v.fields}
}

func NewFieldError(field, message string) error {
	return &ValidationError{Fields: []FieldError{{Field: field, Message: message}}}
}

// NewLimitError reports a single field that exceeded a known limit.
func NewLimitError(field, message, limitKey string, limit int) error {
	return &ValidationError{
		Fields: []FieldError{{Field: field, Message: message}},
		Detail: map[string]any{limitKey: limit},
	}
}
