package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPkgAlias(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"time", "time"},
		{"example.com/protocol/ids", "ids"},
		{"example.com/ids/v2", "ids"},
		{"gopkg.in/yaml.v3", "yaml"},
		{"example.com/block-ids", "block_ids"},
		{"variant-generator/tagged", "tagged"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, PkgAlias(tt.in), tt.in)
	}
}

func TestIndexBy(t *testing.T) {
	t.Parallel()

	got := IndexBy([]string{"a", "b", "a", "c", "a"}, func(s string) string { return s })
	assert.Equal(t, []int{0, 2, 4}, got["a"])
	assert.Equal(t, []int{1}, got["b"])
	assert.Equal(t, []int{3}, got["c"])
	assert.Empty(t, IndexBy([]string(nil), func(s string) string { return s }))
}
