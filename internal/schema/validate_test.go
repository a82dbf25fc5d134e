package schema

import (
	"go/parser"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"variant-generator/internal/diagnostic"
)

func validFile() *File {
	return &File{
		Version: "1",
		Package: "protocol",
		Imports: []Import{{Path: "time"}, {Path: "example.com/protocol/ids", Alias: "pids"}},
		Records: []Record{
			{
				Label: "Block",
				Tag:   "block",
				Fields: []Field{
					{Name: "id", Type: "pids.BlockID"},
					{Name: "created_on", Type: "time.Time", Codec: Attributes{{Key: "format", Value: "rfc3339"}}},
					{Name: "checksum", Type: "[]byte", Visibility: VisibilityPrivate},
					{Name: "sizes", Type: "map[string]*int64"},
				},
			},
			{Label: "Ping", Tag: "ping", Fields: []Field{}},
		},
	}
}

func codesOf(diags []diagnostic.Diagnostic) []string {
	var codes []string
	for _, d := range diags {
		codes = append(codes, d.Code)
	}

	return codes
}

func TestValidate_Valid(t *testing.T) {
	res := Validate(validFile())
	require.True(t, res.IsValid(), res.Error())
	assert.Empty(t, res.Warnings)
	assert.Equal(t, []string{"empty_record"}, codesOf(res.Infos))
}

func TestValidate_Nil(t *testing.T) {
	res := Validate(nil)
	assert.Equal(t, []string{"schema_is_nil"}, res.Codes())
	assert.True(t, res.HasFileErrors())
}

func TestValidate_RecordErrors(t *testing.T) {
	tests := []struct {
		name   string
		record Record
		codes  []string
	}{
		{
			name:   "invalid label",
			record: Record{Label: "Bad-Label", Tag: "bad", Fields: []Field{}},
			codes:  []string{"invalid_label"},
		},
		{
			name: "duplicate field",
			record: Record{Label: "Dup", Tag: "dup", Fields: []Field{
				{Name: "id", Type: "int"}, {Name: "id", Type: "string"},
			}},
			codes: []string{"duplicate_field"},
		},
		{
			name:   "reserved wire name",
			record: Record{Label: "Res", Tag: "res", Fields: []Field{{Name: "type", Type: "string"}}},
			codes:  []string{"reserved_field"},
		},
		{
			name:   "reserved go name",
			record: Record{Label: "Res", Tag: "res", Fields: []Field{{Name: "Type", Type: "string"}}},
			codes:  []string{"reserved_field"},
		},
		{
			name: "record method names",
			record: Record{Label: "Cmp", Tag: "cmp", Fields: []Field{
				{Name: "equal", Type: "bool"},
				{Name: "marshal_json", Type: "string"},
				{Name: "unmarshal_json", Type: "string"},
			}},
			codes: []string{"reserved_field", "reserved_field", "reserved_field"},
		},
		{
			name:   "tag not utf-8",
			record: Record{Label: "Bin", Tag: "bl\xffck", Fields: []Field{}},
			codes:  []string{"invalid_tag"},
		},
		{
			name: "go name collision",
			record: Record{Label: "Col", Tag: "col", Fields: []Field{
				{Name: "block_id", Type: "int"},
				{Name: "blockID", Type: "int", Visibility: VisibilityPrivate},
			}},
			codes: []string{"field_name_collision"},
		},
		{
			name:   "invalid field name",
			record: Record{Label: "Bad", Tag: "bad", Fields: []Field{{Name: "2fa", Type: "bool"}}},
			codes:  []string{"invalid_field_name"},
		},
		{
			name:   "keyword private field",
			record: Record{Label: "Bad", Tag: "bad", Fields: []Field{{Name: "range", Type: "int", Visibility: VisibilityPrivate}}},
			codes:  []string{"invalid_field_name"},
		},
		{
			name: "invalid type refs",
			record: Record{Label: "Bad", Tag: "bad", Fields: []Field{
				{Name: "a", Type: "a + b"},
				{Name: "b", Type: ""},
				{Name: "c", Type: "[]"},
				{Name: "d", Type: `"str"`},
			}},
			codes: []string{"invalid_type_ref", "invalid_type_ref", "invalid_type_ref", "invalid_type_ref"},
		},
		{
			name: "codec hints",
			record: Record{Label: "Hint", Tag: "hint", Fields: []Field{
				{Name: "a", Type: "int", Codec: Attributes{{Key: "json", Value: "a,omitempty"}}},
				{Name: "b", Type: "int", Codec: Attributes{{Key: "bad key", Value: "x"}, {Key: "k:v", Value: "x"}}},
				{Name: "c", Type: "int", Codec: Attributes{{Key: "x", Value: "1"}, {Key: "x", Value: "2"}}},
			}},
			codes: []string{"reserved_hint_key", "invalid_hint_key", "invalid_hint_key", "duplicate_hint_key"},
		},
		{
			name:   "invalid visibility",
			record: Record{Label: "Vis", Tag: "vis", Fields: []Field{{Name: "a", Type: "int", Visibility: Visibility(7)}}},
			codes:  []string{"invalid_visibility"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validFile()
			f.Records = append(f.Records, tt.record)

			res := Validate(f)
			assert.Equal(t, tt.codes, res.Codes())
			assert.False(t, res.HasFileErrors())
			assert.Len(t, res.RecordErrors(2), len(tt.codes))
			assert.Empty(t, res.RecordErrors(0))
		})
	}
}

func TestValidate_DuplicateLabel(t *testing.T) {
	f := validFile()
	f.Records = append(f.Records, Record{Label: "Block", Tag: "blocks", Fields: []Field{}})

	res := Validate(f)
	require.Equal(t, []string{"duplicate_label"}, res.Codes())

	d := res.Errors[0]
	assert.Equal(t, 2, d.Location.Index)
	assert.Contains(t, d.Message, "records[0]")
	assert.Contains(t, d.Message, `"block"`)
	assert.Empty(t, res.RecordErrors(0), "first record with the label stays valid")
}

func TestValidate_PrivateFieldMayUseMethodName(t *testing.T) {
	f := validFile()
	f.Records = append(f.Records, Record{Label: "Cmp", Tag: "cmp", Fields: []Field{
		{Name: "equal", Type: "bool", Visibility: VisibilityPrivate},
	}})

	res := Validate(f)
	assert.True(t, res.IsValid(), res.Error())
}

func TestValidate_TypeNameCollision(t *testing.T) {
	tests := []struct {
		name   string
		labels []string
		index  int
	}{
		{name: "record takes an earlier mirror name", labels: []string{"Block", "wireBlock"}, index: 1},
		{name: "mirror takes an earlier record name", labels: []string{"wireBlock", "Block"}, index: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &File{Version: "1"}
			for _, l := range tt.labels {
				f.Records = append(f.Records, Record{Label: l, Tag: strings.ToLower(l), Fields: []Field{}})
			}

			res := Validate(f)
			require.Equal(t, []string{"type_name_collision"}, res.Codes())
			assert.Equal(t, tt.index, res.Errors[0].Location.Index)
			assert.Contains(t, res.Errors[0].Message, "wireBlockData")
			assert.Empty(t, res.RecordErrors(0))
		})
	}
}

func TestValidate_LabelsDifferingInCase(t *testing.T) {
	f := &File{Version: "1", Records: []Record{
		{Label: "Block", Tag: "block", Fields: []Field{}},
		{Label: "block", Tag: "block_lower", Fields: []Field{}},
	}}

	res := Validate(f)
	assert.True(t, res.IsValid(), res.Error())
}

func TestValidate_Warnings(t *testing.T) {
	f := validFile()
	f.Records = append(f.Records,
		Record{Label: "Ping2", Tag: "ping", Fields: []Field{}},
		Record{Label: "Blank", Tag: "", Fields: []Field{{Name: "at", Type: "clock.Time"}}},
	)

	res := Validate(f)
	require.True(t, res.IsValid(), res.Error())
	assert.Equal(t, []string{"duplicate_tag", "empty_tag", "unresolved_qualifier"}, codesOf(res.Warnings))
}

func TestValidate_FileErrors(t *testing.T) {
	tests := []struct {
		name    string
		pkg     string
		imports []Import
		codes   []string
	}{
		{name: "bad package", pkg: "my-pkg", codes: []string{"invalid_package"}},
		{name: "blank package", pkg: "_", codes: []string{"invalid_package"}},
		{name: "bad import path", imports: []Import{{Path: "bad path"}}, codes: []string{"invalid_import"}},
		{name: "duplicate import", imports: []Import{{Path: "time"}, {Path: "time"}}, codes: []string{"duplicate_import"}},
		{name: "reserved alias", imports: []Import{{Path: "example.com/x/tagged"}}, codes: []string{"import_alias_conflict"}},
		{
			name:    "alias conflict",
			imports: []Import{{Path: "example.com/a/ids"}, {Path: "example.com/b/ids"}},
			codes:   []string{"import_alias_conflict"},
		},
		{name: "bad alias", imports: []Import{{Path: "time", Alias: "1t"}}, codes: []string{"invalid_import"}},
		{name: "aliased reserved", imports: []Import{{Path: "reflect", Alias: "rf"}}, codes: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &File{Package: tt.pkg, Imports: tt.imports}

			res := Validate(f)
			if tt.codes == nil {
				assert.True(t, res.IsValid(), res.Error())
				return
			}

			assert.Equal(t, tt.codes, res.Codes())
			assert.True(t, res.HasFileErrors())
		})
	}
}

func TestQualifiers(t *testing.T) {
	expr, err := parser.ParseExpr("map[ids.Key][]*time.Time")
	require.NoError(t, err)
	assert.Equal(t, []string{"ids", "time"}, Qualifiers(expr))

	expr, err = parser.ParseExpr("[]byte")
	require.NoError(t, err)
	assert.Empty(t, Qualifiers(expr))
}

func TestVisibility(t *testing.T) {
	assert.Equal(t, "public", VisibilityPublic.String())
	assert.Equal(t, "private", VisibilityPrivate.String())
	assert.Equal(t, "Visibility(5)", Visibility(5).String())

	v, ok := ParseVisibility("pub")
	assert.True(t, ok)
	assert.Equal(t, VisibilityPublic, v)

	_, ok = ParseVisibility("protected")
	assert.False(t, ok)
}

func TestValidate_UnresolvedQualifierSuggestion(t *testing.T) {
	f := validFile()
	f.Records[0].Fields = append(f.Records[0].Fields,
		Field{Name: "expires_on", Type: "tme.Time"},
		Field{Name: "owner", Type: "users.ID"},
	)

	res := Validate(f)
	require.True(t, res.IsValid(), res.Error())
	require.Len(t, res.Warnings, 2)
	assert.Contains(t, res.Warnings[0].Message, `(did you mean "time"?)`)
	assert.NotContains(t, res.Warnings[1].Message, "did you mean")
}
