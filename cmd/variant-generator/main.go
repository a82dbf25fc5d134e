// Package main provides the CLI entrypoint for variant-generator.
//
// variant-generator reads a schema of tagged records and emits, per record,
// a Go struct with a leading "type" discriminator plus a zero-state
// discriminator type that only ever encodes and decodes its literal tag.
//
// Commands:
//   - gen: generate Go files from a schema
//   - check: validate a schema and print diagnostics
//   - fmt: rewrite a schema in canonical YAML form
//   - verify: check a generated package against its schema
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(nil).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
