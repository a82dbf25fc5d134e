package analyze

import (
	"fmt"
	"go/parser"
	"go/types"
	"strings"

	"variant-generator/internal/compile"
	"variant-generator/internal/diagnostic"
	"variant-generator/internal/ident"
	"variant-generator/internal/match"
)

var (
	recordMethods        = ident.RecordMethods
	discriminatorMethods = []string{"MarshalJSON", "MarshalText", "Tag", "UnmarshalJSON", "UnmarshalText"}
)

// Conform checks that pkg declares every variant the way the generator
// would. Diagnostics are located at the variant's position in variants.
func Conform(pkg *PackageInfo, variants []*compile.Variant) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}

	for _, e := range pkg.Errors {
		res.AddError("package_error", e, diagnostic.FileScope)
	}

	known := map[string]bool{}

	for i, v := range variants {
		loc := diagnostic.At(i, v.Record.Label)
		known[v.Discriminator.Name] = true

		if rec := lookup(res, pkg, loc, v.Record.Name); rec != nil {
			conformRecord(res, loc, rec, &v.Record)
		}

		if disc := lookup(res, pkg, loc, v.Discriminator.Name); disc != nil {
			conformDiscriminator(res, loc, disc, &v.Discriminator)
		}
	}

	for _, name := range pkg.TypeNames() {
		t := pkg.Types[name]
		if known[name] || !strings.HasSuffix(name, ident.DiscriminatorSuffix) || !t.HasTagLiteral {
			continue
		}

		res.AddWarning("orphan_variant",
			fmt.Sprintf("%s (tag %q) has no record in the schema", name, t.TagLiteral), diagnostic.FileScope)
	}

	return res
}

func lookup(res *diagnostic.Diagnostics, pkg *PackageInfo, loc diagnostic.Location, name string) *TypeInfo {
	t, ok := pkg.Types[name]
	if !ok {
		msg := fmt.Sprintf("type %s is not declared in %s", name, pkg.Path)
		if alt, ok := match.Suggest(name, pkg.TypeNames()); ok {
			msg += fmt.Sprintf(" (did you mean %s?)", alt)
		}

		res.AddError("missing_type", msg, loc)

		return nil
	}

	if t.Kind != TypeKindStruct {
		res.AddError("not_a_struct", fmt.Sprintf("%s is a %s type, want struct", name, t.Kind), loc)
		return nil
	}

	return t
}

func conformRecord(res *diagnostic.Diagnostics, loc diagnostic.Location, t *TypeInfo, def *compile.RecordDef) {
	want := def.AllFields()
	if len(t.Fields) != len(want) {
		res.AddError("field_count",
			fmt.Sprintf("%s has %d fields, want %d", t.Name, len(t.Fields), len(want)), loc)
	}

	for i := range min(len(t.Fields), len(want)) {
		got, fd := t.Fields[i], want[i]
		floc := loc.WithField(fd.WireName)

		if got.Name != fd.GoName {
			res.AddError("field_mismatch",
				fmt.Sprintf("%s field %d is %s, want %s", t.Name, i, got.Name, fd.GoName), floc)

			continue
		}

		if wantType := normalizeType(fd.Type); got.Type != wantType {
			res.AddError("field_type_mismatch",
				fmt.Sprintf("%s.%s has type %s, want %s", t.Name, got.Name, got.Type, wantType), floc)
		}

		// Private fields carry no tag on the record; the wire mirror does.
		if !fd.Exported() {
			continue
		}

		if got.JSONName() != fd.WireName {
			res.AddError("wire_name_mismatch",
				fmt.Sprintf("%s.%s is encoded as %q, want %q", t.Name, got.Name, got.JSONName(), fd.WireName), floc)
		}

		for _, attr := range fd.Codec {
			if v, ok := got.Tag.Lookup(attr.Key); !ok || v != attr.Value {
				res.AddError("codec_hint_mismatch",
					fmt.Sprintf("%s.%s has %s:%q, want %q", t.Name, got.Name, attr.Key, v, attr.Value), floc)
			}
		}
	}

	checkMethods(res, loc, t, recordMethods)
}

func conformDiscriminator(res *diagnostic.Diagnostics, loc diagnostic.Location, t *TypeInfo, def *compile.DiscriminatorDef) {
	if len(t.Fields) > 0 {
		res.AddError("discriminator_not_empty",
			fmt.Sprintf("%s has %d fields, want none", t.Name, len(t.Fields)), loc)
	}

	checkMethods(res, loc, t, discriminatorMethods)

	if t.HasTagLiteral && t.TagLiteral != def.Tag {
		res.AddError("stale_tag",
			fmt.Sprintf("%s encodes as %q, want %q", t.Name, t.TagLiteral, def.Tag), loc)
	}
}

func checkMethods(res *diagnostic.Diagnostics, loc diagnostic.Location, t *TypeInfo, want []string) {
	for _, m := range want {
		if !t.HasMethod(m) {
			res.AddError("missing_method", fmt.Sprintf("%s has no %s method", t.Name, m), loc)
		}
	}
}

// normalizeType formats a schema type expression the way struct fields are
// read back, so that spacing differences do not count.
func normalizeType(expr string) string {
	parsed, err := parser.ParseExpr(expr)
	if err != nil {
		return expr
	}

	return types.ExprString(parsed)
}
