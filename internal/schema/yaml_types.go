package schema

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"variant-generator/tagged"
)

// rawFile mirrors File with presence-aware record entries.
type rawFile struct {
	Version string      `yaml:"version" json:"version"`
	Package string      `yaml:"package" json:"package"`
	Imports []Import    `yaml:"imports" json:"imports"`
	Records []rawRecord `yaml:"records" json:"records"`
}

type rawRecord struct {
	Label       *string     `yaml:"label" json:"label"`
	Tag         *string     `yaml:"type" json:"type"`
	Fields      *[]rawField `yaml:"fields" json:"fields"`
	OtherFields *[]rawField `yaml:"other_fields" json:"other_fields"`
}

type rawField struct {
	Name       *string    `yaml:"name" json:"name"`
	Type       *string    `yaml:"type" json:"type"`
	Visibility *string    `yaml:"visibility" json:"visibility"`
	Codec      Attributes `yaml:"codec" json:"codec"`
}

// UnmarshalJSON matches keys exactly. The JSON decoder folds key case when
// filling structs, and "Label" must be as absent in JSON as it is in YAML.
// rawRecord and rawField decode the same way.
func (r *rawFile) UnmarshalJSON(data []byte) error {
	type plain rawFile
	return tagged.UnmarshalFields(data, (*plain)(r), "version", "package", "imports", "records")
}

func (r *rawRecord) UnmarshalJSON(data []byte) error {
	type plain rawRecord
	return tagged.UnmarshalFields(data, (*plain)(r), "label", "type", "fields", "other_fields")
}

func (r *rawField) UnmarshalJSON(data []byte) error {
	type plain rawField
	return tagged.UnmarshalFields(data, (*plain)(r), "name", "type", "visibility", "codec")
}

// record converts a raw entry into a Record, reporting every missing key.
func (r *rawRecord) record(index int) (Record, error) {
	var (
		rec  Record
		errs []error
	)

	if r.Label != nil {
		rec.Label = *r.Label
	} else {
		errs = append(errs, errMissingKey(index, "", -1, "label"))
	}

	if r.Tag != nil {
		rec.Tag = *r.Tag
	} else {
		errs = append(errs, errMissingKey(index, rec.Label, -1, "type"))
	}

	fields := r.Fields

	switch {
	case r.Fields != nil && r.OtherFields != nil:
		errs = append(errs, errInvalidValue(index, rec.Label, -1, "fields",
			`both "fields" and "other_fields" given`))
	case fields == nil:
		fields = r.OtherFields
	}

	if fields == nil {
		errs = append(errs, errMissingKey(index, rec.Label, -1, "fields"))
	}

	if fields != nil {
		rec.Fields = make([]Field, 0, len(*fields))

		for j, rf := range *fields {
			f, err := rf.field(index, rec.Label, j)
			if err != nil {
				errs = append(errs, err)
				continue
			}

			rec.Fields = append(rec.Fields, f)
		}
	}

	return rec, errors.Join(errs...)
}

func (r *rawField) field(index int, label string, pos int) (Field, error) {
	var (
		f    Field
		errs []error
	)

	if r.Name != nil {
		f.Name = *r.Name
	} else {
		errs = append(errs, errMissingKey(index, label, pos, "name"))
	}

	if r.Type != nil {
		f.Type = *r.Type
	} else {
		errs = append(errs, errMissingKey(index, label, pos, "type"))
	}

	if r.Visibility != nil {
		vis, ok := ParseVisibility(*r.Visibility)
		if !ok {
			errs = append(errs, errInvalidValue(index, label, pos, "visibility",
				fmt.Sprintf("invalid visibility %q (want public or private)", *r.Visibility)))
		}

		f.Visibility = vis
	}

	f.Codec = r.Codec

	return f, errors.Join(errs...)
}

// --- Visibility YAML methods ---

// MarshalYAML implements yaml.Marshaler.
func (v Visibility) MarshalYAML() (any, error) {
	return v.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (v *Visibility) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}

	vis, ok := ParseVisibility(s)
	if !ok {
		return fmt.Errorf("invalid visibility %q", s)
	}

	*v = vis

	return nil
}

// --- Import YAML/JSON methods ---

// UnmarshalYAML accepts either a bare import path or a {path, alias} mapping.
func (i *Import) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		*i = Import{Path: node.Value}
		return nil
	}

	type plain Import

	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}

	*i = Import(p)

	return nil
}

// UnmarshalJSON accepts either a bare import path or a {path, alias} object.
func (i *Import) UnmarshalJSON(data []byte) error {
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '"' {
		var path string
		if err := json.Unmarshal(trimmed, &path); err != nil {
			return err
		}

		*i = Import{Path: path}

		return nil
	}

	type plain Import

	var p plain
	if err := tagged.UnmarshalFields(data, &p, "path", "alias"); err != nil {
		return err
	}

	*i = Import(p)

	return nil
}

// --- Attributes YAML/JSON methods ---

// UnmarshalYAML decodes a mapping of scalars, keeping key order.
func (a *Attributes) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode && node.Tag == "!!null" {
		*a = nil
		return nil
	}

	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: codec hints must be a mapping", node.Line)
	}

	attrs := make(Attributes, 0, len(node.Content)/2)

	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i], node.Content[i+1]
		if val.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: codec hint %q must be a scalar", val.Line, key.Value)
		}

		value := val.Value
		if val.Tag == "!!null" {
			value = ""
		}

		attrs = append(attrs, Attribute{Key: key.Value, Value: value})
	}

	*a = attrs

	return nil
}

// MarshalYAML encodes the attributes as an ordered mapping.
func (a Attributes) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, attr := range a {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: attr.Key},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: attr.Value},
		)
	}

	return node, nil
}

// UnmarshalJSON decodes an object of scalars, keeping key order.
func (a *Attributes) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}

	if tok == nil {
		*a = nil
		return nil
	}

	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return errors.New("codec hints must be an object")
	}

	var attrs Attributes

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}

		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("unexpected codec hint key %v", keyTok)
		}

		valTok, err := dec.Token()
		if err != nil {
			return err
		}

		value, err := scalarString(valTok)
		if err != nil {
			return fmt.Errorf("codec hint %q: %w", key, err)
		}

		attrs = append(attrs, Attribute{Key: key, Value: value})
	}

	if _, err := dec.Token(); err != nil {
		return err
	}

	*a = attrs

	return nil
}

func scalarString(tok any) (string, error) {
	switch v := tok.(type) {
	case string:
		return v, nil
	case json.Number:
		return v.String(), nil
	case bool:
		return strconv.FormatBool(v), nil
	case nil:
		return "", nil
	default:
		return "", errors.New("must be a scalar")
	}
}
