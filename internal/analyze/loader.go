package analyze

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"reflect"
	"slices"
	"strconv"

	"golang.org/x/tools/go/packages"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes

// ErrPackageCount is returned when a pattern does not match exactly one package.
var ErrPackageCount = errors.New("pattern must match exactly one package")

// LoadPackage loads the single package matched by pattern, resolved from dir.
// Type-check errors do not fail the load; they are kept in PackageInfo.Errors
// since a stale generated package often fails to compile.
func LoadPackage(ctx context.Context, dir, pattern string) (*PackageInfo, error) {
	cfg := &packages.Config{
		Context: ctx,
		Mode:    LoadMode,
		Dir:     dir,
	}

	pkgs, err := packages.Load(cfg, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	if len(pkgs) != 1 {
		return nil, fmt.Errorf("%w: %q matched %d packages", ErrPackageCount, pattern, len(pkgs))
	}

	return processPackage(pkgs[0]), nil
}

// processPackage extracts the named types of a loaded package.
func processPackage(pkg *packages.Package) *PackageInfo {
	info := &PackageInfo{
		Path:  pkg.PkgPath,
		Name:  pkg.Name,
		Types: make(map[string]*TypeInfo),
	}

	for _, e := range pkg.Errors {
		info.Errors = append(info.Errors, e.Error())
	}

	for _, file := range pkg.Syntax {
		for _, decl := range file.Decls {
			switch d := decl.(type) {
			case *ast.GenDecl:
				processTypeSpecs(info, d)
			case *ast.FuncDecl:
				processTagMethod(info, d)
			}
		}
	}

	if pkg.Types != nil {
		for name, t := range info.Types {
			t.Methods = methodNames(pkg.Types.Scope().Lookup(name))
		}
	}

	return info
}

func processTypeSpecs(info *PackageInfo, d *ast.GenDecl) {
	if d.Tok != token.TYPE {
		return
	}

	for _, spec := range d.Specs {
		ts := spec.(*ast.TypeSpec)
		t := typeInfo(info, ts.Name.Name)

		switch u := ts.Type.(type) {
		case *ast.StructType:
			t.Kind = TypeKindStruct
			t.Fields = structFields(u)
		case *ast.Ident:
			if types.Universe.Lookup(u.Name) != nil {
				t.Kind = TypeKindBasic
			} else {
				t.Kind = TypeKindOther
			}
		default:
			t.Kind = TypeKindOther
		}
	}
}

func structFields(st *ast.StructType) []FieldInfo {
	var fields []FieldInfo

	for _, f := range st.Fields.List {
		var tag reflect.StructTag

		if f.Tag != nil {
			if raw, err := strconv.Unquote(f.Tag.Value); err == nil {
				tag = reflect.StructTag(raw)
			}
		}

		typ := types.ExprString(f.Type)

		if len(f.Names) == 0 {
			fields = append(fields, FieldInfo{Name: typ, Type: typ, Tag: tag, Index: len(fields)})
			continue
		}

		for _, n := range f.Names {
			fields = append(fields, FieldInfo{Name: n.Name, Type: typ, Tag: tag, Index: len(fields)})
		}
	}

	return fields
}

// processTagMethod records the literal of `func (T) Tag() string { return "x" }`.
func processTagMethod(info *PackageInfo, d *ast.FuncDecl) {
	if d.Recv == nil || len(d.Recv.List) != 1 || d.Name.Name != "Tag" || d.Body == nil || len(d.Body.List) != 1 {
		return
	}

	recv := d.Recv.List[0].Type
	if star, ok := recv.(*ast.StarExpr); ok {
		recv = star.X
	}

	name, ok := recv.(*ast.Ident)
	if !ok {
		return
	}

	ret, ok := d.Body.List[0].(*ast.ReturnStmt)
	if !ok || len(ret.Results) != 1 {
		return
	}

	lit, ok := ret.Results[0].(*ast.BasicLit)
	if !ok || lit.Kind != token.STRING {
		return
	}

	value, err := strconv.Unquote(lit.Value)
	if err != nil {
		return
	}

	t := typeInfo(info, name.Name)
	t.TagLiteral, t.HasTagLiteral = value, true
}

func typeInfo(info *PackageInfo, name string) *TypeInfo {
	t, ok := info.Types[name]
	if !ok {
		t = &TypeInfo{Name: name}
		info.Types[name] = t
	}

	return t
}

func methodNames(obj types.Object) []string {
	tn, ok := obj.(*types.TypeName)
	if !ok {
		return nil
	}

	mset := types.NewMethodSet(types.NewPointer(tn.Type()))
	names := make([]string, 0, mset.Len())

	for i := range mset.Len() {
		names = append(names, mset.At(i).Obj().Name())
	}

	slices.Sort(names)

	return names
}
