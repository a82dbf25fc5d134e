package render

import (
	"strconv"
	"strings"

	"variant-generator/internal/match"
)

const fileSuffix = "_data.go"

// snakeCase converts a label to snake_case, keeping initialisms together:
// VlobCreate -> vlob_create, HTTPServer -> http_server.
func snakeCase(s string) string {
	return strings.Join(match.TokenizeIdent(s), "_")
}

// filename returns the output file name of a label. Separators never lead
// the name since the go tool ignores files starting with '_'.
func filename(label string) string {
	base := snakeCase(label)
	if base == "" {
		base = "record"
	}

	return base + fileSuffix
}

// uniqueFilename returns name, or name with a numeric suffix when a previous
// record already took it.
func uniqueFilename(name string, taken map[string]bool) string {
	candidate := name
	base := strings.TrimSuffix(name, fileSuffix)

	for n := 2; taken[candidate]; n++ {
		candidate = base + "_" + strconv.Itoa(n) + fileSuffix
	}

	taken[candidate] = true

	return candidate
}
