package analyze

import (
	"reflect"
	"slices"
	"strings"

	"variant-generator/internal/common"
)

// TypeKind represents the kind of a named type.
type TypeKind int

const (
	TypeKindUnknown TypeKind = iota
	TypeKindStruct           // struct type
	TypeKindBasic            // named type over a basic type, e.g. type BlockID string
	TypeKindOther            // any other underlying type
)

// String returns a human-readable representation of the TypeKind.
func (k TypeKind) String() string {
	switch k {
	case TypeKindStruct:
		return "struct"
	case TypeKindBasic:
		return "basic"
	case TypeKindOther:
		return "other"
	default:
		return common.UnknownStr
	}
}

// TypeInfo describes a named type of a loaded package.
type TypeInfo struct {
	Name    string      // Type name
	Kind    TypeKind    // Kind of the underlying type
	Fields  []FieldInfo // For structs, fields in declaration order
	Methods []string    // Method set of *T, sorted
	// TagLiteral is the string a `Tag() string { return "..." }` method
	// returns, when the type has one of that shape.
	TagLiteral    string
	HasTagLiteral bool
}

// HasMethod reports whether name is in the method set of *T.
func (t *TypeInfo) HasMethod(name string) bool {
	_, found := slices.BinarySearch(t.Methods, name)
	return found
}

// FieldInfo describes a struct field.
type FieldInfo struct {
	Name  string            // Go field name
	Type  string            // Type expression as written, normalized
	Tag   reflect.StructTag // Raw struct tag
	Index int               // Field index in the struct
}

// JSONName returns the JSON tag name if present, otherwise the field name.
func (f *FieldInfo) JSONName() string {
	tag := f.Tag.Get("json")
	if tag == "" || tag == "-" {
		return f.Name
	}

	name, _, _ := strings.Cut(tag, ",")

	return name
}

// PackageInfo holds the named types of one loaded package.
type PackageInfo struct {
	Path   string               // Import path
	Name   string               // Package name
	Errors []string             // Load and type-check errors
	Types  map[string]*TypeInfo // Named types by name
}

// TypeNames returns the names of all types, sorted.
func (p *PackageInfo) TypeNames() []string {
	names := make([]string, 0, len(p.Types))
	for name := range p.Types {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}
