package commands

import (
	"errors"

	"github.com/hay-kot/criterio"
)

// issue is one field-scoped problem in JSON output.
type issue struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// issuesOf flattens a validation error. Errors that are not field errors
// become a single issue without a field.
func issuesOf(err error) []issue {
	if err == nil {
		return nil
	}

	var fieldErrs criterio.FieldErrors
	if !errors.As(err, &fieldErrs) {
		return []issue{{Message: err.Error()}}
	}

	out := make([]issue, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, issue{Field: fe.Field, Message: fe.Err.Error()})
	}
	return out
}
