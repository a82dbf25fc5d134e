package compile

import (
	"slices"

	"variant-generator/internal/ident"
	"variant-generator/internal/schema"
)

// Compile builds the variant definitions of a single record.
// The only possible error is an *ident.SynthesisError.
func Compile(rec schema.Record) (*Variant, error) {
	names, err := ident.Synthesize(rec.Label)
	if err != nil {
		return nil, err
	}

	fields := make([]FieldDef, 0, len(rec.Fields))

	for _, f := range rec.Fields {
		def, err := compileField(rec.Label, f)
		if err != nil {
			return nil, err
		}

		fields = append(fields, def)
	}

	return &Variant{
		Record: RecordDef{
			Name:       names.Record,
			Label:      rec.Label,
			WireMirror: ident.WireMirrorName(names.Record),
			Discriminator: FieldDef{
				GoName:          ident.DiscriminatorField,
				WireGoName:      ident.DiscriminatorField,
				WireName:        schema.WireTypeKey,
				Type:            names.Discriminator,
				Visibility:      schema.VisibilityPublic,
				IsDiscriminator: true,
			},
			Fields: fields,
		},
		Discriminator: DiscriminatorDef{
			Name: names.Discriminator,
			Tag:  rec.Tag,
		},
	}, nil
}

func compileField(label string, f schema.Field) (FieldDef, error) {
	goName, err := ident.FieldName(label, f.Name, f.Visibility != schema.VisibilityPrivate)
	if err != nil {
		return FieldDef{}, err
	}

	wireGoName, err := ident.ExportedFieldName(label, f.Name)
	if err != nil {
		return FieldDef{}, err
	}

	return FieldDef{
		GoName:     goName,
		WireGoName: wireGoName,
		WireName:   f.Name,
		Type:       f.Type,
		Visibility: f.Visibility,
		Codec:      slices.Clone(f.Codec),
	}, nil
}
