package domain

import (
	"fmt"
	"strings"
)

// FieldError describes a single rejected payload field, either from local
// form validation or from the order API's structured error detail.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries field-level detail so the caller can show the user
// which fields failed and why.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("field %q %s", f.Field, f.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
