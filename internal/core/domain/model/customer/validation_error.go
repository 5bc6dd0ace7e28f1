package customer

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"configurator/internal/pkg/errs"
)

// Field names reported by ValidationError.
const (
	FieldName   = "name"
	FieldEmail  = "email"
	FieldPhone  = "phone"
	FieldRUT    = "rut"
	FieldRegion = "region"
	FieldComuna = "comuna"
)

// ValidationError lists every contact field that failed validation, keyed by field name.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, field := range slices.Sorted(maps.Keys(e.Fields)) {
		parts = append(parts, fmt.Sprintf("%s: %s", field, e.Fields[field]))
	}
	return "customer info is invalid: " + strings.Join(parts, "; ")
}

// Unwrap lets errors.Is(err, errs.ErrValueIsInvalid) match.
func (e *ValidationError) Unwrap() error {
	return errs.ErrValueIsInvalid
}

func (e *ValidationError) add(field, msg string) {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	e.Fields[field] = msg
}
