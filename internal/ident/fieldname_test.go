package ident

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		exported string
		private  string
	}{
		{"id", "ID", "id"},
		{"block_id", "BlockID", "blockID"},
		{"created_on", "CreatedOn", "createdOn"},
		{"url_path", "URLPath", "urlPath"},
		{"author", "Author", "author"},
		{"blockId", "BlockId", "blockId"},
		{"_padded__name_", "PaddedName", "paddedName"},
		{"version2", "Version2", "version2"},
		{"äpfel", "Äpfel", "äpfel"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := FieldName("Block", tt.name, true)
			require.NoError(t, err)
			assert.Equal(t, tt.exported, got)

			got, err = FieldName("Block", tt.name, false)
			require.NoError(t, err)
			assert.Equal(t, tt.private, got)
		})
	}
}

func TestFieldName_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		exported bool
	}{
		{"", true},
		{"___", true},
		{"2fa", true},
		{"block-id", true},
		{"range", false},
		{"日本", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := FieldName("Block", tt.name, tt.exported)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrIdentifierSynthesis)

			var synthErr *SynthesisError
			require.ErrorAs(t, err, &synthErr)
			assert.True(t, synthErr.FieldLevel)
			assert.Equal(t, "Block", synthErr.Label)
			assert.Equal(t, tt.name, synthErr.Field)
		})
	}
}

func TestExportedFieldName(t *testing.T) {
	t.Parallel()

	got, err := ExportedFieldName("Block", "secret_key")
	require.NoError(t, err)
	assert.Equal(t, "SecretKey", got)
}
