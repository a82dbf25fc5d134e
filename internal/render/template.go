package render

import (
	"text/template"
)

// templateData holds everything the variant template needs.
type templateData struct {
	PackageName      string
	Filename         string
	Imports          []importSpec
	GenerateComments bool
	Record           recordData
	Discriminator    discriminatorData
}

// importSpec is one line of the import block.
type importSpec struct {
	Alias string
	Path  string
}

type recordData struct {
	Name       string
	WireMirror string
	// TypeTag is the struct tag of the discriminator field.
	TypeTag string
	// WireKeys lists every wire name as Go string literals, comma separated.
	WireKeys string
	Fields   []fieldData
}

type fieldData struct {
	GoName     string
	WireGoName string
	Type       string
	// Tag is empty for private fields; they are only encoded via the mirror.
	Tag     string
	WireTag string
}

type discriminatorData struct {
	Name string
	// Literal is the tag as a Go string literal.
	Literal string
}

var variantTemplate = template.Must(template.New("variant").Parse(`// Code generated by variant-generator. DO NOT EDIT.

package {{.PackageName}}

import (
{{range .Imports}}	{{if .Alias}}{{.Alias}} {{end}}"{{.Path}}"
{{end}})
{{with .Record}}
{{if $.GenerateComments}}// {{.Name}} is the {{$.Discriminator.Literal}} variant.
{{end}}type {{.Name}} struct {
	Type {{$.Discriminator.Name}} {{.TypeTag}}
{{range .Fields}}	{{.GoName}} {{.Type}}{{with .Tag}} {{.}}{{end}}
{{end}}}

{{if $.GenerateComments}}// Equal reports whether d and o hold equal values in every field,
// the discriminator included.
{{end}}func (d {{.Name}}) Equal(o {{.Name}}) bool {
	return reflect.DeepEqual(d, o)
}

type {{.WireMirror}} struct {
	Type *{{$.Discriminator.Name}} {{.TypeTag}}
{{range .Fields}}	{{.WireGoName}} {{.Type}} {{.WireTag}}
{{end}}}

{{if $.GenerateComments}}// MarshalJSON encodes d as an object led by its "type" key.
{{end}}func (d {{.Name}}) MarshalJSON() ([]byte, error) {
	return tagged.Marshal({{.WireMirror}}{
		Type: &d.Type,
{{range .Fields}}		{{.WireGoName}}: d.{{.GoName}},
{{end}}	})
}

{{if $.GenerateComments}}// UnmarshalJSON decodes d, rejecting a missing or mismatched "type".
{{end}}func (d *{{.Name}}) UnmarshalJSON(data []byte) error {
	var w {{.WireMirror}}
	if err := tagged.UnmarshalFields(data, &w, {{.WireKeys}}); err != nil {
		return err
	}

	if w.Type == nil {
		return tagged.MissingTag({{$.Discriminator.Name}}{}.Tag())
	}

	*d = {{.Name}}{
		Type: *w.Type,
{{range .Fields}}		{{.GoName}}: w.{{.WireGoName}},
{{end}}	}

	return nil
}
{{end}}{{with .Discriminator}}
{{if $.GenerateComments}}// {{.Name}} is the discriminator of {{$.Record.Name}}.
// It always encodes as {{.Literal}} and decodes nothing else.
{{end}}type {{.Name}} struct{}

{{if $.GenerateComments}}// Tag returns the literal {{.Name}} encodes as.
{{end}}func ({{.Name}}) Tag() string {
	return {{.Literal}}
}

func (t {{.Name}}) MarshalJSON() ([]byte, error) {
	return tagged.EncodeJSON(t.Tag())
}

func (*{{.Name}}) UnmarshalJSON(data []byte) error {
	return tagged.DecodeJSON(data, {{.Name}}{}.Tag())
}

func (t {{.Name}}) MarshalText() ([]byte, error) {
	return tagged.EncodeText(t.Tag()), nil
}

func (*{{.Name}}) UnmarshalText(text []byte) error {
	return tagged.DecodeText(text, {{.Name}}{}.Tag())
}
{{end}}`))
