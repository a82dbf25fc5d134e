package render

import (
	"bytes"
	"cmp"
	"context"
	"errors"
	"fmt"
	"go/parser"
	"slices"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"go.uber.org/zap"
	"golang.org/x/tools/imports"

	"variant-generator/internal/common"
	"variant-generator/internal/compile"
	"variant-generator/internal/diagnostic"
	"variant-generator/internal/schema"
)

// Generator renders schema files into Go source.
type Generator struct {
	config GeneratorConfig
	logger *zap.Logger
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig, opts ...Option) *Generator {
	if config.RuntimeImport == "" {
		config.RuntimeImport = DefaultRuntimeImport
	}

	g := &Generator{config: config, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "vlob_create_data.go").
	Filename string
	// Label is the label of the record the file was generated from.
	Label string
	// Content is the formatted Go source code.
	Content []byte
}

// Generate validates f, compiles its records and renders one file per record.
//
// File-level problems abort generation. Record-level problems skip only the
// offending record: the returned files cover every other record and the
// returned error joins the per-record failures.
func (g *Generator) Generate(ctx context.Context, f *schema.File) ([]GeneratedFile, error) {
	diags := schema.Validate(f)
	for _, w := range diags.Warnings {
		g.logger.Warn("schema warning", zap.String("code", w.Code), zap.String("detail", w.String()))
	}

	if diags.HasFileErrors() {
		return nil, fmt.Errorf("validating schema: %w", diags.Error())
	}

	var (
		errs    []error
		records []schema.Record
		indexes []int
	)

	for i, rec := range f.Records {
		if recErrs := diags.RecordErrors(i); len(recErrs) > 0 {
			errs = append(errs, fmt.Errorf("records[%d]: %w", i, diagnostic.Join(recErrs)))
			continue
		}

		records = append(records, rec)
		indexes = append(indexes, i)
	}

	results := compile.All(ctx, records, compile.WithWorkers(g.config.Workers))
	taken := make(map[string]bool, len(results))

	var files []GeneratedFile

	for _, r := range results {
		index := indexes[r.Index]
		if r.Err != nil {
			errs = append(errs, fmt.Errorf("records[%d]: %w", index, r.Err))
			continue
		}

		if ce := g.logger.Check(zap.DebugLevel, "compiled variant"); ce != nil {
			ce.Write(zap.Int("index", index),
				zap.Bool("private_fields", r.Variant.Record.HasPrivateFields()),
				zap.String("variant", spew.Sdump(r.Variant)))
		}

		file, err := g.RenderVariant(f, r.Variant)
		if err != nil {
			errs = append(errs, fmt.Errorf("records[%d]: rendering %s: %w", index, r.Variant.Record.Name, err))
			continue
		}

		file.Filename = uniqueFilename(file.Filename, taken)
		files = append(files, *file)

		g.logger.Debug("rendered variant",
			zap.String("label", file.Label), zap.String("file", file.Filename))
	}

	return files, errors.Join(errs...)
}

// RenderVariant renders a single compiled variant. Package name and imports
// come from f. On a formatting failure the unformatted source is returned
// along with the error.
func (g *Generator) RenderVariant(f *schema.File, v *compile.Variant) (*GeneratedFile, error) {
	data := g.buildTemplateData(f, v)

	var buf bytes.Buffer
	if err := variantTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := imports.Process(data.Filename, buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		if g.config.OutputDir != "" {
			_ = writeDebugUnformatted(g.config.OutputDir, data.Filename, buf.Bytes())
		}

		return &GeneratedFile{
			Filename: data.Filename,
			Label:    v.Record.Label,
			Content:  buf.Bytes(),
		}, fmt.Errorf("formatting code: %w", err)
	}

	return &GeneratedFile{
		Filename: data.Filename,
		Label:    v.Record.Label,
		Content:  formatted,
	}, nil
}

func (g *Generator) buildTemplateData(f *schema.File, v *compile.Variant) *templateData {
	data := &templateData{
		PackageName:      cmp.Or(f.Package, g.config.PackageName),
		Filename:         filename(v.Record.Label),
		GenerateComments: g.config.GenerateComments,
		Imports:          g.collectImports(f.Imports, v),
		Record: recordData{
			Name:       v.Record.Name,
			WireMirror: v.Record.WireMirror,
			TypeTag:    structTag(v.Record.Discriminator.WireName, v.Record.Discriminator.Codec),
		},
		Discriminator: discriminatorData{
			Name:    v.Discriminator.Name,
			Literal: strconv.Quote(v.Discriminator.Tag),
		},
	}

	keys := []string{strconv.Quote(v.Record.Discriminator.WireName)}

	for _, fd := range v.Record.Fields {
		keys = append(keys, strconv.Quote(fd.WireName))

		field := fieldData{
			GoName:     fd.GoName,
			WireGoName: fd.WireGoName,
			Type:       fd.Type,
			WireTag:    structTag(fd.WireName, fd.Codec),
		}

		if fd.Exported() {
			field.Tag = field.WireTag
		}

		data.Record.Fields = append(data.Record.Fields, field)
	}

	data.Record.WireKeys = strings.Join(keys, ", ")

	return data
}

// collectImports returns the imports a variant needs: reflect, the runtime
// package, and every schema import a field type refers to.
func (g *Generator) collectImports(declared []schema.Import, v *compile.Variant) []importSpec {
	specs := []importSpec{{Path: "reflect"}}

	runtime := importSpec{Path: g.config.RuntimeImport}
	if common.PkgAlias(runtime.Path) != "tagged" {
		runtime.Alias = "tagged"
	}

	specs = append(specs, runtime)

	byName := make(map[string]schema.Import, len(declared))
	for _, imp := range declared {
		byName[cmp.Or(imp.Alias, common.PkgAlias(imp.Path))] = imp
	}

	used := map[string]bool{}

	for _, fd := range v.Record.Fields {
		expr, err := parser.ParseExpr(fd.Type)
		if err != nil {
			continue
		}

		for _, q := range schema.Qualifiers(expr) {
			imp, ok := byName[q]
			if !ok || used[imp.Path] {
				continue
			}

			used[imp.Path] = true
			specs = append(specs, importSpec{Alias: imp.Alias, Path: imp.Path})
		}
	}

	slices.SortFunc(specs, func(a, b importSpec) int {
		return cmp.Compare(a.Path, b.Path)
	})

	return specs
}
