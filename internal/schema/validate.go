package schema

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"maps"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/mod/module"

	"variant-generator/internal/common"
	"variant-generator/internal/diagnostic"
	"variant-generator/internal/ident"
	"variant-generator/internal/match"
)

// WireTypeKey is the wire name of the discriminator field.
const WireTypeKey = "type"

// ReservedHintKey is the struct tag key owned by the generator.
const ReservedHintKey = "json"

// reservedAliases are package names the generated code already uses.
var reservedAliases = map[string]bool{
	"reflect": true,
	"tagged":  true,
}

// Validate checks a schema file for problems that would make the generated
// code invalid or ambiguous. Load-time presence checks are done by Parse;
// Validate assumes a structurally complete file.
func Validate(f *File) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError("schema_is_nil", "schema file is nil", diagnostic.FileScope)
		return res
	}

	if f.Package != "" && (!token.IsIdentifier(f.Package) || f.Package == "_") {
		res.AddError("invalid_package",
			fmt.Sprintf("package %q is not a valid Go package name", f.Package), diagnostic.FileScope)
	}

	aliases := validateImports(res, f.Imports)

	byLabel := common.IndexBy(f.Records, func(r Record) string { return r.Label })
	byTag := common.IndexBy(f.Records, func(r Record) string { return r.Tag })

	for i := range f.Records {
		rec := &f.Records[i]
		loc := diagnostic.At(i, rec.Label)

		if _, err := ident.Synthesize(rec.Label); err != nil {
			res.AddError("invalid_label", err.Error(), loc)
		}

		if j := byLabel[rec.Label][0]; j != i {
			res.AddError("duplicate_label",
				fmt.Sprintf("label %q already used by records[%d] (tag %q)", rec.Label, j, f.Records[j].Tag), loc)
		}

		if rec.Tag == "" {
			res.AddWarning("empty_tag", "record has an empty type tag", loc)
		}

		if !utf8.ValidString(rec.Tag) {
			res.AddError("invalid_tag", fmt.Sprintf("tag %q is not valid UTF-8", rec.Tag), loc)
		}

		if j := byTag[rec.Tag][0]; j != i {
			res.AddWarning("duplicate_tag",
				fmt.Sprintf("tag %q already used by records[%d] (%s)", rec.Tag, j, f.Records[j].Label), loc)
		}

		if len(rec.Fields) == 0 {
			res.AddInfo("empty_record", "record has no fields besides the discriminator", loc)
		}

		validateFields(res, loc, rec, aliases)
	}

	validateTypeNames(res, f.Records, byLabel)

	return res
}

// validateTypeNames reports a record whose generated types take a name
// already declared for an earlier record. Invalid and duplicate labels are
// reported on their own and skipped here.
func validateTypeNames(res *diagnostic.Diagnostics, records []Record, byLabel map[string][]int) {
	type owner struct {
		index int
		kind  string
	}

	declared := map[string]owner{}

	for i, rec := range records {
		names, err := ident.Synthesize(rec.Label)
		if err != nil || byLabel[rec.Label][0] != i {
			continue
		}

		generated := []struct{ name, kind string }{
			{names.Record, "record"},
			{names.Discriminator, "discriminator"},
			{ident.WireMirrorName(names.Record), "wire mirror"},
		}

		for _, g := range generated {
			if o, ok := declared[g.name]; ok {
				res.AddError("type_name_collision",
					fmt.Sprintf("%s type %s is already the %s type of records[%d] (%s)",
						g.kind, g.name, o.kind, o.index, records[o.index].Label),
					diagnostic.At(i, rec.Label))

				continue
			}

			declared[g.name] = owner{index: i, kind: g.kind}
		}
	}
}

// validateImports checks import paths and aliases and returns the set of
// package names the imports make available.
func validateImports(res *diagnostic.Diagnostics, imports []Import) map[string]bool {
	aliases := map[string]bool{}
	seenPaths := map[string]bool{}

	for _, imp := range imports {
		if err := module.CheckImportPath(imp.Path); err != nil {
			res.AddError("invalid_import", err.Error(), diagnostic.FileScope)
			continue
		}

		if seenPaths[imp.Path] {
			res.AddError("duplicate_import", fmt.Sprintf("import %q listed twice", imp.Path), diagnostic.FileScope)
			continue
		}

		seenPaths[imp.Path] = true

		name := imp.Alias
		if name == "" {
			name = common.PkgAlias(imp.Path)
		}

		switch {
		case !token.IsIdentifier(name) || name == "_":
			res.AddError("invalid_import",
				fmt.Sprintf("import %q: %q is not a usable package name", imp.Path, name), diagnostic.FileScope)
		case reservedAliases[name]:
			res.AddError("import_alias_conflict",
				fmt.Sprintf("import %q: package name %q is used by generated code; set an alias", imp.Path, name),
				diagnostic.FileScope)
		case aliases[name]:
			res.AddError("import_alias_conflict",
				fmt.Sprintf("import %q: package name %q already imported", imp.Path, name), diagnostic.FileScope)
		default:
			aliases[name] = true
		}
	}

	return aliases
}

func validateFields(res *diagnostic.Diagnostics, loc diagnostic.Location, rec *Record, aliases map[string]bool) {
	seenNames := map[string]bool{}
	seenGoNames := map[string]string{}

	for _, fld := range rec.Fields {
		floc := loc.WithField(fld.Name)

		if seenNames[fld.Name] {
			res.AddError("duplicate_field", fmt.Sprintf("field %q declared more than once", fld.Name), floc)
			continue
		}

		seenNames[fld.Name] = true

		if fld.Name == WireTypeKey {
			res.AddError("reserved_field",
				fmt.Sprintf("wire name %q is reserved for the discriminator", WireTypeKey), floc)
		}

		if _, err := ident.FieldName(rec.Label, fld.Name, fld.Visibility == VisibilityPublic); err != nil {
			res.AddError("invalid_field_name", err.Error(), floc)
		} else if goName, err := ident.ExportedFieldName(rec.Label, fld.Name); err == nil {
			// Private fields are exported in the wire mirror, so compare exported forms.
			switch other, ok := seenGoNames[goName]; {
			case goName == ident.DiscriminatorField && fld.Name != WireTypeKey:
				res.AddError("reserved_field",
					fmt.Sprintf("field maps to Go name %q, reserved for the discriminator", goName), floc)
			case fld.Visibility == VisibilityPublic && slices.Contains(ident.RecordMethods, goName):
				res.AddError("reserved_field",
					fmt.Sprintf("field maps to Go name %q, a method of every record", goName), floc)
			case ok:
				res.AddError("field_name_collision",
					fmt.Sprintf("fields %q and %q both map to Go name %q", other, fld.Name, goName), floc)
			default:
				seenGoNames[goName] = fld.Name
			}
		}

		if !fld.Visibility.IsValid() {
			res.AddError("invalid_visibility", fmt.Sprintf("invalid visibility %d", fld.Visibility), floc)
		}

		validateTypeRef(res, floc, fld.Type, aliases)
		validateCodec(res, floc, fld.Codec)
	}
}

func validateTypeRef(res *diagnostic.Diagnostics, loc diagnostic.Location, typeRef string, aliases map[string]bool) {
	expr, err := parser.ParseExpr(typeRef)
	if err != nil || !isTypeExpr(expr) {
		res.AddError("invalid_type_ref", fmt.Sprintf("%q is not a Go type expression", typeRef), loc)
		return
	}

	for _, q := range Qualifiers(expr) {
		if aliases[q] {
			continue
		}

		msg := fmt.Sprintf("type %q references package %q which is not imported", typeRef, q)
		if alt, ok := match.Suggest(q, slices.Sorted(maps.Keys(aliases))); ok {
			msg += fmt.Sprintf(" (did you mean %q?)", alt)
		}

		res.AddWarning("unresolved_qualifier", msg, loc)
	}
}

func validateCodec(res *diagnostic.Diagnostics, loc diagnostic.Location, codec Attributes) {
	seen := map[string]bool{}

	for _, attr := range codec {
		switch {
		case !isTagKey(attr.Key):
			res.AddError("invalid_hint_key", fmt.Sprintf("codec hint key %q is not a valid struct tag key", attr.Key), loc)
		case attr.Key == ReservedHintKey:
			res.AddError("reserved_hint_key",
				fmt.Sprintf("codec hint key %q is owned by the generator", ReservedHintKey), loc)
		case seen[attr.Key]:
			res.AddError("duplicate_hint_key", fmt.Sprintf("codec hint key %q given twice", attr.Key), loc)
		}

		seen[attr.Key] = true
	}
}

// isTypeExpr reports whether expr has the shape of a type expression.
func isTypeExpr(expr ast.Expr) bool {
	switch e := expr.(type) {
	case *ast.Ident:
		return true
	case *ast.SelectorExpr:
		_, ok := e.X.(*ast.Ident)
		return ok
	case *ast.StarExpr:
		return isTypeExpr(e.X)
	case *ast.ParenExpr:
		return isTypeExpr(e.X)
	case *ast.ArrayType:
		return isTypeExpr(e.Elt)
	case *ast.MapType:
		return isTypeExpr(e.Key) && isTypeExpr(e.Value)
	case *ast.ChanType:
		return isTypeExpr(e.Value)
	case *ast.IndexExpr:
		return isTypeExpr(e.X) && isTypeExpr(e.Index)
	case *ast.IndexListExpr:
		for _, idx := range e.Indices {
			if !isTypeExpr(idx) {
				return false
			}
		}

		return isTypeExpr(e.X)
	case *ast.FuncType, *ast.InterfaceType, *ast.StructType:
		return true
	default:
		return false
	}
}

// Qualifiers returns the package names referenced by a type expression, in
// order of first appearance.
func Qualifiers(expr ast.Expr) []string {
	var res []string

	seen := map[string]bool{}

	ast.Inspect(expr, func(n ast.Node) bool {
		sel, ok := n.(*ast.SelectorExpr)
		if !ok {
			return true
		}

		if x, ok := sel.X.(*ast.Ident); ok && !seen[x.Name] {
			seen[x.Name] = true
			res = append(res, x.Name)
		}

		return false
	})

	return res
}

// isTagKey follows reflect.StructTag: a non-empty run of non-control
// characters other than space, quote and colon.
func isTagKey(key string) bool {
	if key == "" {
		return false
	}

	return !strings.ContainsFunc(key, func(r rune) bool {
		return r <= ' ' || r == ':' || r == '"' || r == 0x7f || unicode.IsControl(r)
	})
}
