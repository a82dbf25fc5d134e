package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"variant-generator/internal/common"
)

// Diagnostics collects the findings of one validation or conformance pass,
// split by severity. Each slice keeps insertion order.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Location identifies what a diagnostic refers to.
type Location struct {
	// Index is the record position in the schema file, or -1 for file scope.
	Index int
	// Record is the record label (if any).
	Record string
	// Field is the schema field name (if any).
	Field string
}

// FileScope is the location of diagnostics that concern the whole schema file.
var FileScope = Location{Index: -1}

// At returns the location of a record.
func At(index int, record string) Location {
	return Location{Index: index, Record: record}
}

// WithField returns a copy of l narrowed to a field.
func (l Location) WithField(field string) Location {
	l.Field = field
	return l
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	Severity DiagnosticSeverity
	Code     string // stable snake_case identifier, e.g. "duplicate_label"
	Message  string
	Location Location
}

// DiagnosticSeverity represents the severity level of a diagnostic.
type DiagnosticSeverity int

const (
	DiagnosticInfo DiagnosticSeverity = iota
	DiagnosticWarning
	DiagnosticError
)

// String returns a human-readable severity name.
func (s DiagnosticSeverity) String() string {
	switch s {
	case DiagnosticInfo:
		return "info"
	case DiagnosticWarning:
		return "warning"
	case DiagnosticError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// AddError records an error at loc.
func (d *Diagnostics) AddError(code, message string, loc Location) {
	d.Errors = append(d.Errors, newDiagnostic(DiagnosticError, code, message, loc))
}

// AddWarning records a warning at loc.
func (d *Diagnostics) AddWarning(code, message string, loc Location) {
	d.Warnings = append(d.Warnings, newDiagnostic(DiagnosticWarning, code, message, loc))
}

// AddInfo records an informational note at loc.
func (d *Diagnostics) AddInfo(code, message string, loc Location) {
	d.Infos = append(d.Infos, newDiagnostic(DiagnosticInfo, code, message, loc))
}

func newDiagnostic(sev DiagnosticSeverity, code, message string, loc Location) Diagnostic {
	return Diagnostic{Severity: sev, Code: code, Message: message, Location: loc}
}

// HasFileErrors reports whether any error concerns the whole file rather
// than a single record.
func (d *Diagnostics) HasFileErrors() bool {
	for _, e := range d.Errors {
		if e.Location.Index < 0 {
			return true
		}
	}

	return false
}

// RecordErrors returns the error diagnostics of the record at index.
func (d *Diagnostics) RecordErrors(index int) []Diagnostic {
	var res []Diagnostic

	for _, e := range d.Errors {
		if e.Location.Index == index {
			res = append(res, e)
		}
	}

	return res
}

// Codes returns the codes of all error diagnostics in order.
func (d *Diagnostics) Codes() []string {
	codes := make([]string, 0, len(d.Errors))
	for _, e := range d.Errors {
		codes = append(codes, e.Code)
	}

	return codes
}

// Merge appends the findings of other, severity by severity.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// IsValid reports whether no error was recorded. Warnings do not count.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// Error joins the error diagnostics into one error, nil when valid.
func (d *Diagnostics) Error() error {
	return Join(d.Errors)
}

// Join combines diagnostics into a single error, or nil if there are none.
func Join(diags []Diagnostic) error {
	if len(diags) == 0 {
		return nil
	}

	parts := make([]string, 0, len(diags))
	for _, e := range diags {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String formats d as "[Record] field: [code] message", dropping the parts
// that are empty. A record without a label is shown by index.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Location.Record != "" {
		prefix = append(prefix, "["+d.Location.Record+"]")
	} else if d.Location.Index >= 0 {
		prefix = append(prefix, fmt.Sprintf("[records[%d]]", d.Location.Index))
	}

	if d.Location.Field != "" {
		prefix = append(prefix, d.Location.Field)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
