// Package match provides identifier tokenizing and fuzzy name matching.
//
// TokenizeIdent drives output file naming; Suggest backs the "did you mean"
// hints in schema diagnostics and conformance reports.
package match
