package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics_Scopes(t *testing.T) {
	t.Parallel()

	var d Diagnostics
	assert.True(t, d.IsValid())
	assert.NoError(t, d.Error())

	d.AddWarning("empty_tag", "tag is empty", At(0, "Ping"))
	assert.True(t, d.IsValid())

	d.AddError("duplicate_field", `duplicate field "id"`, At(1, "Block").WithField("id"))
	d.AddError("duplicate_label", `duplicate label "Block"`, At(3, "Block"))
	assert.False(t, d.HasFileErrors())

	require.Len(t, d.RecordErrors(1), 1)
	assert.Empty(t, d.RecordErrors(0))
	assert.Equal(t, []string{"duplicate_field", "duplicate_label"}, d.Codes())

	d.AddError("invalid_package", "bad package", FileScope)
	assert.True(t, d.HasFileErrors())
	assert.Empty(t, d.RecordErrors(-2))
}

func TestDiagnostic_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		diag Diagnostic
		want string
	}{
		{
			name: "file scope",
			diag: Diagnostic{Code: "invalid_import", Message: "bad path", Location: FileScope},
			want: "[invalid_import] bad path",
		},
		{
			name: "record and field",
			diag: Diagnostic{Code: "duplicate_field", Message: "dup", Location: At(2, "Block").WithField("id")},
			want: "[Block] id: [duplicate_field] dup",
		},
		{
			name: "unlabelled record",
			diag: Diagnostic{Code: "invalid_label", Message: "empty", Location: At(4, "")},
			want: "[records[4]]: [invalid_label] empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.diag.String())
		})
	}
}

func TestDiagnostics_Merge(t *testing.T) {
	t.Parallel()

	var a, b Diagnostics
	a.AddInfo("note", "n", FileScope)
	b.AddError("e", "boom", At(0, "X"))
	b.AddWarning("w", "careful", At(0, "X"))

	a.Merge(b)
	assert.Len(t, a.Errors, 1)
	assert.Len(t, a.Warnings, 1)
	assert.Len(t, a.Infos, 1)
	assert.EqualError(t, a.Error(), "[X]: [e] boom")
	assert.Equal(t, "warning", DiagnosticWarning.String())
	assert.Equal(t, "unknown", DiagnosticSeverity(42).String())
}
