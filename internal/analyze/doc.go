// Package analyze loads generated packages and checks them against a schema.
//
// It uses golang.org/x/tools/go/packages with AST and go/types to build a
// small model of every named type in a package: struct fields with their
// type expressions and tags, method sets, and the literal returned by a
// discriminator's Tag method. Conform compares that model with compiled
// variants and reports drift as diagnostics, e.g. a schema edited without
// regenerating, or generated files edited by hand.
//
// Key types:
//   - PackageInfo: import path, name, type-check errors and types by name
//   - TypeInfo: kind, fields, methods and Tag literal of one named type
//   - FieldInfo: field name, type expression and struct tag
package analyze
