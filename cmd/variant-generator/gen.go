package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"variant-generator/internal/render"
	"variant-generator/internal/schema"
)

type genOptions struct {
	schemaPath    string
	outDir        string
	packageName   string
	runtimeImport string
	workers       int
	noComments    bool
	keepGoing     bool
	diff          bool
	watch         bool
}

var errOutOfDate = errors.New("generated files are out of date")

func newGenCmd(a *app) *cobra.Command {
	opts := &genOptions{}
	defaults := render.DefaultGeneratorConfig()

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate Go files from a schema",
		Long: `Generate one Go file per schema record.

Without --keep-going nothing is written when any record fails. With it, files
for every valid record are written and the failures are reported afterwards.

--diff writes nothing and prints a unified diff against the files on disk,
failing when they differ. --watch regenerates whenever the schema changes.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.watch {
				return a.watchGen(cmd, opts)
			}

			return a.runGen(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.schemaPath, "schema", "s", "", "Schema file (YAML or JSON)")
	cmd.Flags().StringVarP(&opts.outDir, "out", "o", defaults.OutputDir, "Output directory")
	cmd.Flags().StringVarP(&opts.packageName, "package", "p", "", "Package name (overrides the schema)")
	cmd.Flags().StringVar(&opts.runtimeImport, "runtime-import", defaults.RuntimeImport,
		"Import path of the tagged runtime package")
	cmd.Flags().IntVar(&opts.workers, "workers", 0, "Concurrent record compilations (0 = GOMAXPROCS)")
	cmd.Flags().BoolVar(&opts.noComments, "no-comments", false, "Omit doc comments from generated code")
	cmd.Flags().BoolVar(&opts.keepGoing, "keep-going", false, "Write valid records even if others fail")
	cmd.Flags().BoolVar(&opts.diff, "diff", false, "Print a diff against existing files instead of writing")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "Regenerate when the schema file changes")
	_ = cmd.MarkFlagRequired("schema")
	cmd.MarkFlagsMutuallyExclusive("diff", "watch")

	return cmd
}

func (a *app) runGen(cmd *cobra.Command, opts *genOptions) error {
	a.logger.Debug("Loading schema", zap.String("path", opts.schemaPath))

	f, loadErr := schema.LoadFile(opts.schemaPath)
	if f == nil || (loadErr != nil && !opts.keepGoing) {
		return loadErr
	}

	a.logger.Debug("Loaded schema", zap.String("package", f.Package), zap.Strings("labels", f.Labels()))

	if opts.packageName != "" {
		f.Package = opts.packageName
	}

	cfg := render.DefaultGeneratorConfig()
	cfg.OutputDir = opts.outDir
	cfg.RuntimeImport = opts.runtimeImport
	cfg.Workers = opts.workers
	cfg.GenerateComments = !opts.noComments

	files, genErr := render.NewGenerator(cfg, render.WithLogger(a.logger)).Generate(cmd.Context(), f)
	if genErr != nil && (!opts.keepGoing || len(files) == 0) {
		return genErr
	}

	if opts.diff {
		return a.printDiff(cmd, files, opts.outDir, errors.Join(loadErr, genErr))
	}

	if err := render.WriteFiles(files, opts.outDir); err != nil {
		return err
	}

	for _, file := range files {
		a.logger.Info("Wrote file", zap.String("label", file.Label), zap.String("file", file.Filename))
	}

	fmt.Fprintf(cmd.OutOrStdout(), "generated %d file(s) in %s\n", len(files), opts.outDir)

	return errors.Join(loadErr, genErr)
}

func (a *app) printDiff(cmd *cobra.Command, files []render.GeneratedFile, outDir string, genErr error) error {
	diff, err := render.Diff(files, outDir)
	if err != nil {
		return errors.Join(genErr, err)
	}

	if diff == "" {
		fmt.Fprintf(cmd.OutOrStdout(), "%d file(s) in %s are up to date\n", len(files), outDir)
		return genErr
	}

	fmt.Fprint(cmd.OutOrStdout(), diff)

	return errors.Join(genErr, errOutOfDate)
}
