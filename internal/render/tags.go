package render

import (
	"strconv"
	"strings"

	"variant-generator/internal/schema"
)

// structTag builds the struct tag of a field: the json key first, then the
// codec hints in schema order.
func structTag(wire string, codec schema.Attributes) string {
	var b strings.Builder

	b.WriteString(schema.ReservedHintKey)
	b.WriteByte(':')
	b.WriteString(strconv.Quote(wire))

	for _, a := range codec {
		b.WriteByte(' ')
		b.WriteString(a.Key)
		b.WriteByte(':')
		b.WriteString(strconv.Quote(a.Value))
	}

	return tagLiteral(b.String())
}

// tagLiteral renders a tag as a raw string when possible.
func tagLiteral(tag string) string {
	if strconv.CanBackquote(tag) {
		return "`" + tag + "`"
	}

	return strconv.Quote(tag)
}
