package schema

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformed is matched by every *MalformedError.
var ErrMalformed = errors.New("schema malformed")

// MalformedError reports a record or field that lacks a required key or
// carries an unusable value.
type MalformedError struct {
	// Index is the position of the record in the schema.
	Index int
	// Label is the record label, if it was present.
	Label string
	// Field is the position of the field in the record, or -1.
	Field int
	// Key is the offending schema key.
	Key string
	// Reason overrides the default "missing required key" explanation.
	Reason string
}

func (e *MalformedError) Error() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s: records[%d]", ErrMalformed, e.Index)

	if e.Label != "" {
		fmt.Fprintf(&sb, " (%s)", e.Label)
	}

	if e.Field >= 0 {
		fmt.Fprintf(&sb, ".fields[%d]", e.Field)
	}

	if e.Reason != "" {
		fmt.Fprintf(&sb, ": %s", e.Reason)
	} else {
		fmt.Fprintf(&sb, ": missing required key %q", e.Key)
	}

	return sb.String()
}

// Is makes errors.Is(err, ErrMalformed) hold.
func (e *MalformedError) Is(target error) bool {
	return target == ErrMalformed
}

func errMissingKey(index int, label string, field int, key string) error {
	return &MalformedError{Index: index, Label: label, Field: field, Key: key}
}

func errInvalidValue(index int, label string, field int, key, reason string) error {
	return &MalformedError{Index: index, Label: label, Field: field, Key: key, Reason: reason}
}
