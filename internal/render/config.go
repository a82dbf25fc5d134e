package render

import (
	"go.uber.org/zap"
)

// DefaultRuntimeImport is the import path of the runtime package generated
// code depends on.
const DefaultRuntimeImport = "variant-generator/tagged"

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// PackageName is the generated package name, used when the schema
	// does not declare one.
	PackageName string
	// OutputDir is where WriteFiles and debug sidecars put files.
	OutputDir string
	// RuntimeImport is the import path of the tagged runtime package.
	RuntimeImport string
	// GenerateComments enables doc comments on generated declarations.
	GenerateComments bool
	// Workers bounds concurrent record compilation. Zero means GOMAXPROCS.
	Workers int
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		PackageName:      "variants",
		OutputDir:        "./generated",
		RuntimeImport:    DefaultRuntimeImport,
		GenerateComments: true,
	}
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger. The default logger discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(g *Generator) {
		if logger != nil {
			g.logger = logger
		}
	}
}
