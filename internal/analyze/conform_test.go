package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"variant-generator/internal/compile"
	"variant-generator/internal/schema"
)

func TestConform_CheckedInProtocol(t *testing.T) {
	res := Conform(loadProtocol(t), protocolVariants(t))

	assert.True(t, res.IsValid(), res.Error())
	assert.Empty(t, res.Warnings)
}

func TestConform_Drift(t *testing.T) {
	pkg := loadProtocol(t)

	tests := []struct {
		name   string
		mutate func(t *testing.T, variants []*compile.Variant) []*compile.Variant
		codes  []string
	}{
		{
			name: "tag changed in schema",
			mutate: func(_ *testing.T, vs []*compile.Variant) []*compile.Variant {
				vs[0].Discriminator.Tag = "blocks"
				return vs
			},
			codes: []string{"stale_tag"},
		},
		{
			name: "field added in schema",
			mutate: func(_ *testing.T, vs []*compile.Variant) []*compile.Variant {
				vs[0].Record.Fields = append(vs[0].Record.Fields,
					compile.FieldDef{GoName: "Size", WireGoName: "Size", WireName: "size", Type: "int"})
				return vs
			},
			codes: []string{"field_count"},
		},
		{
			name: "field renamed in schema",
			mutate: func(_ *testing.T, vs []*compile.Variant) []*compile.Variant {
				vs[0].Record.Fields[0].GoName = "BlockID"
				return vs
			},
			codes: []string{"field_mismatch"},
		},
		{
			name: "field type changed in schema",
			mutate: func(_ *testing.T, vs []*compile.Variant) []*compile.Variant {
				vs[1].Record.Fields[3].Type = "uint64"
				return vs
			},
			codes: []string{"field_type_mismatch"},
		},
		{
			name: "wire name changed in schema",
			mutate: func(_ *testing.T, vs []*compile.Variant) []*compile.Variant {
				vs[1].Record.Fields[0].WireName = "realm"
				return vs
			},
			codes: []string{"wire_name_mismatch"},
		},
		{
			name: "codec hint changed in schema",
			mutate: func(_ *testing.T, vs []*compile.Variant) []*compile.Variant {
				vs[0].Record.Fields[1].Codec = schema.Attributes{{Key: "msgpack", Value: "blk"}}
				return vs
			},
			codes: []string{"codec_hint_mismatch"},
		},
		{
			name: "new record not generated",
			mutate: func(t *testing.T, vs []*compile.Variant) []*compile.Variant {
				v, err := compile.Compile(schema.Record{Label: "Pong", Tag: "pong", Fields: []schema.Field{}})
				require.NoError(t, err)

				return append(vs, v)
			},
			codes: []string{"missing_type", "missing_type"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			variants := tt.mutate(t, protocolVariants(t))

			res := Conform(pkg, variants)
			assert.Equal(t, tt.codes, res.Codes(), res.Error())
		})
	}
}

func TestConform_MissingTypeSuggestion(t *testing.T) {
	v, err := compile.Compile(schema.Record{Label: "Pong", Tag: "pong", Fields: []schema.Field{}})
	require.NoError(t, err)

	res := Conform(loadProtocol(t), []*compile.Variant{v})
	require.Equal(t, []string{"missing_type", "missing_type"}, res.Codes())
	assert.Contains(t, res.Errors[0].Message, "did you mean PingData?")
	assert.Contains(t, res.Errors[1].Message, "did you mean PingDataType?")
}

func TestConform_OrphanVariant(t *testing.T) {
	variants := protocolVariants(t)

	res := Conform(loadProtocol(t), variants[:2])
	assert.True(t, res.IsValid(), res.Error())
	require.Len(t, res.Warnings, 2)
	assert.Equal(t, "orphan_variant", res.Warnings[0].Code)
	assert.Contains(t, res.Warnings[0].Message, "InviteDataType")
	assert.Contains(t, res.Warnings[1].Message, "PingDataType")
}

func TestConform_Synthetic(t *testing.T) {
	pkg := &PackageInfo{
		Path:   "example.com/p",
		Errors: []string{"p.go:3:2: undefined: BlockID"},
		Types: map[string]*TypeInfo{
			"XData":     {Name: "XData", Kind: TypeKindOther},
			"XDataType": {Name: "XDataType", Kind: TypeKindStruct, Fields: []FieldInfo{{Name: "n", Type: "int"}}},
		},
	}

	v, err := compile.Compile(schema.Record{Label: "X", Tag: "x", Fields: []schema.Field{}})
	require.NoError(t, err)

	res := Conform(pkg, []*compile.Variant{v})
	assert.Equal(t, []string{
		"package_error",
		"not_a_struct",
		"discriminator_not_empty",
		"missing_method", "missing_method", "missing_method", "missing_method", "missing_method",
	}, res.Codes())
}
