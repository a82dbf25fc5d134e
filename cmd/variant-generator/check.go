package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"variant-generator/internal/diagnostic"
	"variant-generator/internal/schema"
)

var errCheckFailed = errors.New("schema check failed")

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check <schema>",
		Short: "Validate a schema and print diagnostics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCheck(cmd, args[0])
		},
	}
}

func (a *app) runCheck(cmd *cobra.Command, path string) error {
	out := cmd.OutOrStdout()

	f, loadErr := schema.LoadFile(path)
	if f == nil {
		return loadErr
	}

	failed := 0

	if loadErr != nil {
		inner := errors.Unwrap(loadErr)
		if inner == nil {
			inner = loadErr
		}

		for _, err := range unjoin(inner) {
			fmt.Fprintf(out, "error: %v\n", err)
			failed++
		}
	}

	diags := schema.Validate(f)

	failed += printDiagnostics(out, diags, a.verbose)
	if failed > 0 {
		return fmt.Errorf("%w: %d error(s)", errCheckFailed, failed)
	}

	fmt.Fprintf(out, "ok: %d record(s), %d warning(s)\n", len(f.Records), len(diags.Warnings))

	return nil
}

// printDiagnostics writes one line per diagnostic and returns the number of
// errors. Infos are only shown when verbose.
func printDiagnostics(out io.Writer, diags *diagnostic.Diagnostics, verbose bool) int {
	for _, d := range diags.Errors {
		fmt.Fprintf(out, "error: %s\n", d)
	}

	for _, d := range diags.Warnings {
		fmt.Fprintf(out, "warning: %s\n", d)
	}

	if verbose {
		for _, d := range diags.Infos {
			fmt.Fprintf(out, "info: %s\n", d)
		}
	}

	return len(diags.Errors)
}

// unjoin flattens errors.Join trees into their leaves.
func unjoin(err error) []error {
	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		return []error{err}
	}

	var res []error
	for _, e := range joined.Unwrap() {
		res = append(res, unjoin(e)...)
	}

	return res
}
