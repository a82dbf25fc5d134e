package schema

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// DefaultVersion is the schema version assumed when the file omits it.
const DefaultVersion = "1"

// LoadFile loads and parses a schema file from the given path.
// The format is chosen by extension (.json, .yaml, .yml) and sniffed otherwise.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file %s: %w", path, err)
	}

	var f *File

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		f, err = ParseJSON(data)
	case ".yaml", ".yml":
		f, err = ParseYAML(data)
	default:
		f, err = Parse(data)
	}

	if err != nil {
		return f, fmt.Errorf("%s: %w", path, err)
	}

	return f, nil
}

// Parse parses schema data as JSON when it is a valid JSON object or array
// and as YAML otherwise, so flow-style YAML such as `[{label: Ping}]` is
// read as YAML.
//
// When some records are malformed, Parse returns the file holding the
// well-formed records together with an error joining one *MalformedError per
// missing key. Syntax errors return a nil file.
func Parse(data []byte) (*File, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') && json.Valid(trimmed) {
		return ParseJSON(data)
	}

	return ParseYAML(data)
}

// ParseYAML parses YAML schema data.
func ParseYAML(data []byte) (*File, error) {
	var doc yaml.Node

	err := yaml.Unmarshal(data, &doc)
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema YAML: %w", err)
	}

	var raw rawFile

	if doc.Kind == yaml.DocumentNode && len(doc.Content) > 0 {
		root := doc.Content[0]

		switch root.Kind {
		case yaml.SequenceNode:
			err = root.Decode(&raw.Records)
		case yaml.MappingNode:
			err = root.Decode(&raw)
		default:
			err = fmt.Errorf("line %d: expected a mapping or a list of records", root.Line)
		}

		if err != nil {
			return nil, fmt.Errorf("failed to parse schema YAML: %w", err)
		}
	}

	return build(&raw)
}

// ParseJSON parses JSON schema data.
func ParseJSON(data []byte) (*File, error) {
	var (
		raw rawFile
		err error
	)

	trimmed := bytes.TrimSpace(data)

	switch {
	case len(trimmed) == 0:
		err = errors.New("empty input")
	case trimmed[0] == '[':
		err = json.Unmarshal(trimmed, &raw.Records)
	default:
		err = json.Unmarshal(trimmed, &raw)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to parse schema JSON: %w", err)
	}

	return build(&raw)
}

// build converts the raw decoded form into a File, dropping malformed records.
func build(raw *rawFile) (*File, error) {
	f := &File{
		Version: raw.Version,
		Package: raw.Package,
		Imports: raw.Imports,
		Records: make([]Record, 0, len(raw.Records)),
	}

	var errs []error

	for i := range raw.Records {
		rec, err := raw.Records[i].record(i)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		f.Records = append(f.Records, rec)
	}

	applyDefaults(f)

	return f, errors.Join(errs...)
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = DefaultVersion
	}

	for i := range f.Records {
		if f.Records[i].Fields == nil {
			f.Records[i].Fields = []Field{}
		}
	}
}

// Marshal serializes a File to YAML.
func Marshal(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}

// WriteFile writes a File to the given path as YAML.
func WriteFile(f *File, path string) error {
	data, err := Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to marshal schema: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write schema file %s: %w", path, err)
	}

	return nil
}
