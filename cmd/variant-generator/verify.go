package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"variant-generator/internal/analyze"
	"variant-generator/internal/compile"
	"variant-generator/internal/schema"
)

func newVerifyCmd(a *app) *cobra.Command {
	var schemaPath, dir string

	cmd := &cobra.Command{
		Use:   "verify [package]",
		Short: "Check that a generated package still matches its schema",
		Long: `Load a generated Go package and compare it with the schema: record and
discriminator types, field order, field types, wire names, methods and tag
literals. The package defaults to the one in --dir.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pattern := "."
			if len(args) == 1 {
				pattern = args[0]
			}

			f, err := schema.LoadFile(schemaPath)
			if err != nil {
				return err
			}

			variants, err := compile.Variants(compile.All(cmd.Context(), f.Records))
			if err != nil {
				return fmt.Errorf("compiling schema: %w", err)
			}

			a.logger.Debug("Loading package", zap.String("dir", dir), zap.String("pattern", pattern))

			pkg, err := analyze.LoadPackage(cmd.Context(), dir, pattern)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			diags := schema.Validate(f)
			diags.Merge(*analyze.Conform(pkg, variants))
			if n := printDiagnostics(out, diags, a.verbose); n > 0 {
				return fmt.Errorf("%w: %d error(s)", errCheckFailed, n)
			}

			fmt.Fprintf(out, "ok: %s matches %d record(s)\n", pkg.Path, len(variants))

			return nil
		},
	}

	cmd.Flags().StringVarP(&schemaPath, "schema", "s", "", "Schema file (YAML or JSON)")
	cmd.Flags().StringVar(&dir, "dir", ".", "Directory the package pattern is resolved from")
	_ = cmd.MarkFlagRequired("schema")

	return cmd
}
