package schema

// File represents the root of a variant schema file.
type File struct {
	// Version of the schema format (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Package is the Go package name of the generated code.
	// Empty means the generator's configured default.
	Package string `yaml:"package,omitempty"`

	// Imports lists packages referenced by qualified field types.
	Imports []Import `yaml:"imports,omitempty"`

	// Records is the ordered list of variants.
	Records []Record `yaml:"records"`
}

// Import is a package referenced by field type expressions.
type Import struct {
	// Path is the import path (e.g., "time" or "example.com/protocol/ids").
	Path string `yaml:"path" json:"path"`

	// Alias is the optional local package name.
	Alias string `yaml:"alias,omitempty" json:"alias,omitempty"`
}

// Record is one variant of the protocol.
type Record struct {
	// Label is the base of the generated type names: Label+"Data" and
	// Label+"DataType".
	Label string `yaml:"label"`

	// Tag is the literal discriminator value. It may be any string,
	// including the empty one.
	Tag string `yaml:"type"`

	// Fields in declaration order.
	Fields []Field `yaml:"fields"`
}

// Field is a single record field.
type Field struct {
	// Name is the wire name of the field.
	Name string `yaml:"name"`

	// Type is a Go type expression (e.g., "BlockID", "*int64", "[]ids.EntryID").
	Type string `yaml:"type"`

	// Visibility of the generated Go field.
	Visibility Visibility `yaml:"visibility,omitempty"`

	// Codec holds opaque per-field codec hints.
	Codec Attributes `yaml:"codec,omitempty"`
}

// Visibility is the visibility of a generated field.
//
//go:generate go tool stringer -type=Visibility -linecomment -output=visibility_string.go
type Visibility int

const (
	VisibilityPublic  Visibility = iota // public
	VisibilityPrivate                   // private
)

// IsValid returns true if the visibility is a recognized value.
func (v Visibility) IsValid() bool {
	return v == VisibilityPublic || v == VisibilityPrivate
}

// ParseVisibility parses a visibility marker. The empty string means public.
func ParseVisibility(s string) (Visibility, bool) {
	switch s {
	case "", "public", "pub":
		return VisibilityPublic, true
	case "private", "priv":
		return VisibilityPrivate, true
	default:
		return VisibilityPublic, false
	}
}

// Attribute is a single codec hint.
type Attribute struct {
	Key   string
	Value string
}

// Attributes is an ordered codec hint bag.
type Attributes []Attribute

// Labels returns the labels of all records in order.
func (f *File) Labels() []string {
	labels := make([]string, len(f.Records))
	for i, r := range f.Records {
		labels[i] = r.Label
	}

	return labels
}
