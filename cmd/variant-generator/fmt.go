package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"variant-generator/internal/schema"
)

func newFmtCmd(a *app) *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:   "fmt <schema>",
		Short: "Print a schema in canonical YAML form",
		Long: `Load a schema, fill in defaults and print it as YAML.
With --write the file is rewritten in place instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := schema.LoadFile(args[0])
			if err != nil {
				return err
			}

			if write {
				a.logger.Info("Rewriting schema", zap.String("path", args[0]))
				return schema.WriteFile(f, args[0])
			}

			data, err := schema.Marshal(f)
			if err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write(data)

			return err
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "Rewrite the file in place")

	return cmd
}
