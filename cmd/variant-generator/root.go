package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app holds state shared by all commands.
type app struct {
	verbose bool
	logger  *zap.Logger
}

// newRootCmd builds the command tree. A non-nil logger is used as is;
// otherwise a production logger is built before the command runs.
func newRootCmd(logger *zap.Logger) *cobra.Command {
	a := &app{logger: logger}

	root := &cobra.Command{
		Use:   "variant-generator",
		Short: "Generate tagged-record Go types from a schema",
		Long: `variant-generator turns a YAML or JSON schema of tagged records into Go code.

Each record yields a <Label>Data struct whose first field is a <Label>DataType
discriminator. The discriminator encodes as the record's "type" literal and
rejects any other value on decode.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.logger != nil {
				return nil
			}

			config := zap.NewProductionConfig()
			if a.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}

			var err error

			a.logger, err = config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose logging")

	root.AddCommand(newGenCmd(a), newCheckCmd(a), newFmtCmd(a), newVerifyCmd(a))

	return root
}
