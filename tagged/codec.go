package tagged

import (
	"bytes"
	"slices"

	json "github.com/goccy/go-json"
)

// Marshal encodes v as JSON.
func Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

// Unmarshal decodes JSON data into v.
// Struct fields match object keys case-insensitively; see UnmarshalFields.
func Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// UnmarshalFields decodes a JSON object into v, matching keys exactly.
// Entries whose key is not one of keys are dropped before the struct is
// decoded, so "TYPE" never stands in for "type".
func UnmarshalFields(data []byte, v any, keys ...string) error {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}

	for k := range obj {
		if !slices.Contains(keys, k) {
			delete(obj, k)
		}
	}

	filtered, err := json.Marshal(obj)
	if err != nil {
		return err
	}

	return json.Unmarshal(filtered, v)
}

// Match checks a decoded discriminator string against its tag.
func Match(actual, tag string) error {
	if actual != tag {
		return &TagMismatchError{Expected: tag, Actual: actual}
	}

	return nil
}

// EncodeJSON returns the JSON string literal of tag.
// Invalid UTF-8 in tag is written as U+FFFD, so such a tag never decodes
// back to itself; schema validation rejects it.
func EncodeJSON(tag string) ([]byte, error) {
	return json.Marshal(tag)
}

// DecodeJSON checks that data is a JSON string equal to tag.
func DecodeJSON(data []byte, tag string) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return &WireTypeError{Expected: tag, Got: "empty input"}
	}

	if data[0] != '"' {
		return &WireTypeError{Expected: tag, Got: describe(data)}
	}

	var actual string
	if err := json.Unmarshal(data, &actual); err != nil {
		return err
	}

	return Match(actual, tag)
}

// EncodeText returns tag as text.
func EncodeText(tag string) []byte {
	return []byte(tag)
}

// DecodeText checks that text equals tag.
func DecodeText(text []byte, tag string) error {
	return Match(string(text), tag)
}

// describe names a non-string JSON value the way serialization errors
// usually do: "null", "boolean `true`", "number `12`", "map", "sequence".
func describe(data []byte) string {
	switch data[0] {
	case 'n':
		return "null"
	case 't', 'f':
		return "boolean `" + string(data) + "`"
	case '{':
		return "map"
	case '[':
		return "sequence"
	default:
		return "number `" + string(data) + "`"
	}
}
