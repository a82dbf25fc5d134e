package compile

import (
	"variant-generator/internal/schema"
)

// Variant is the compiled form of one schema record.
type Variant struct {
	// Record is the generated record type.
	Record RecordDef
	// Discriminator is the generated zero-state discriminator type.
	Discriminator DiscriminatorDef
}

// RecordDef describes the generated record type.
type RecordDef struct {
	// Name is the record type name (label + "Data").
	Name string
	// Label is the schema label the names were synthesized from.
	Label string
	// WireMirror is the name of the unexported struct used for encoding.
	WireMirror string
	// Discriminator is the leading "type" field.
	Discriminator FieldDef
	// Fields are the schema fields in declaration order.
	Fields []FieldDef
}

// AllFields returns the discriminator followed by the schema fields.
func (r *RecordDef) AllFields() []FieldDef {
	all := make([]FieldDef, 0, len(r.Fields)+1)
	all = append(all, r.Discriminator)

	return append(all, r.Fields...)
}

// HasPrivateFields reports whether any field is unexported.
func (r *RecordDef) HasPrivateFields() bool {
	for i := range r.Fields {
		if !r.Fields[i].Exported() {
			return true
		}
	}

	return false
}

// FieldDef describes one field of a generated record.
type FieldDef struct {
	// GoName is the Go identifier of the field.
	GoName string
	// WireGoName is the exported identifier used in the wire mirror.
	WireGoName string
	// WireName is the key the field is encoded under.
	WireName string
	// Type is the Go type expression, forwarded verbatim.
	Type string
	// Visibility is the declared visibility.
	Visibility schema.Visibility
	// Codec holds the forwarded codec hints.
	Codec schema.Attributes
	// IsDiscriminator marks the leading "type" field.
	IsDiscriminator bool
}

// Exported reports whether the field is public on the record.
func (f *FieldDef) Exported() bool {
	return f.Visibility != schema.VisibilityPrivate
}

// DiscriminatorDef describes the generated discriminator type.
type DiscriminatorDef struct {
	// Name is the discriminator type name (label + "DataType").
	Name string
	// Tag is the literal it encodes as and accepts on decode.
	Tag string
}
