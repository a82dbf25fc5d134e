package tagged

import (
	"errors"
	"fmt"
)

var (
	// ErrTagMismatch is matched by every *TagMismatchError.
	ErrTagMismatch = errors.New("tag mismatch")
	// ErrMissingTag reports a record without a "type" value.
	ErrMissingTag = errors.New("missing field `type`")
)

// TagMismatchError is returned when a decoded discriminator string differs
// from the tag it is bound to.
type TagMismatchError struct {
	// Expected is the tag literal bound at generation time.
	Expected string
	// Actual is the string observed on the wire.
	Actual string
}

func (e *TagMismatchError) Error() string {
	return fmt.Sprintf("invalid type: string %q, expected %s", e.Actual, e.Expecting())
}

// Expecting describes what the discriminator accepts.
func (e *TagMismatchError) Expecting() string {
	return expecting(e.Expected)
}

// Is makes errors.Is(err, ErrTagMismatch) hold.
func (e *TagMismatchError) Is(target error) bool {
	return target == ErrTagMismatch
}

// WireTypeError is returned when the discriminator's wire value is not a
// string. Got describes the value that was found instead.
type WireTypeError struct {
	Expected string
	Got      string
}

func (e *WireTypeError) Error() string {
	return fmt.Sprintf("invalid type: %s, expected %s", e.Got, expecting(e.Expected))
}

// MissingTag returns the error a record decoder reports when "type" is absent.
func MissingTag(tag string) error {
	return fmt.Errorf("%w, expected %s", ErrMissingTag, expecting(tag))
}

func expecting(tag string) string {
	return "the `" + tag + "` string"
}
