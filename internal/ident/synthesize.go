package ident

import (
	"errors"
	"fmt"
	"go/token"
)

// Suffixes appended to a record label.
const (
	RecordSuffix        = "Data"
	DiscriminatorSuffix = "DataType"
)

// DiscriminatorField is the Go name of the discriminator field in every
// generated record.
const DiscriminatorField = "Type"

// ErrIdentifierSynthesis is matched by every *SynthesisError.
var ErrIdentifierSynthesis = errors.New("identifier synthesis failed")

// SynthesisError reports a label or field name that cannot be turned into a
// valid Go identifier.
type SynthesisError struct {
	// Label is the offending record label.
	Label string
	// Field is the offending schema field name when FieldLevel is set.
	Field string
	// FieldLevel is set when the failure concerns a field rather than the label.
	FieldLevel bool
	// Candidate is the identifier that was rejected.
	Candidate string
}

func (e *SynthesisError) Error() string {
	switch {
	case e.FieldLevel:
		return fmt.Sprintf("%s: record %q: field %q does not yield a valid Go identifier (got %q)",
			ErrIdentifierSynthesis, e.Label, e.Field, e.Candidate)
	case e.Label == "":
		return fmt.Sprintf("%s: empty record label", ErrIdentifierSynthesis)
	default:
		return fmt.Sprintf("%s: label %q does not yield a valid Go identifier (got %q)",
			ErrIdentifierSynthesis, e.Label, e.Candidate)
	}
}

// Is makes errors.Is(err, ErrIdentifierSynthesis) hold.
func (e *SynthesisError) Is(target error) bool {
	return target == ErrIdentifierSynthesis
}

// Names holds the two type names synthesized from a label.
type Names struct {
	// Record is the name of the record type (label + "Data").
	Record string
	// Discriminator is the name of the discriminator type (label + "DataType").
	Discriminator string
}

// Synthesize derives the record and discriminator type names from label.
func Synthesize(label string) (Names, error) {
	if label == "" {
		return Names{}, &SynthesisError{}
	}

	names := Names{
		Record:        label + RecordSuffix,
		Discriminator: label + DiscriminatorSuffix,
	}

	for _, candidate := range []string{names.Record, names.Discriminator} {
		if !token.IsIdentifier(candidate) {
			return Names{}, &SynthesisError{Label: label, Candidate: candidate}
		}
	}

	return names, nil
}

// WireMirrorPrefix starts the name of every wire mirror struct.
const WireMirrorPrefix = "wire"

// RecordMethods are the methods generated on every record type. No exported
// field of a record may take one of these names.
var RecordMethods = []string{"Equal", "MarshalJSON", "UnmarshalJSON"}

// WireMirrorName returns the name of the unexported struct used to encode a
// record on the wire. Distinct record names give distinct mirror names, but
// a record labeled "wireX" takes the name of X's mirror; validation reports
// that case.
func WireMirrorName(recordName string) string {
	return WireMirrorPrefix + recordName
}
