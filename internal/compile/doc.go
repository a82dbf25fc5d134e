// Package compile turns schema records into abstract variant definitions.
//
// This is the language-neutral half of generation: Compile builds a Variant
// (a record definition plus its discriminator definition) from one
// schema.Record and never produces source text. Rendering lives in package
// render.
//
// Compile is total over well-formed records, empty field lists included. It
// fails only when an identifier cannot be synthesized from the label or a
// field name. It does not check field-name uniqueness; schema.Validate does.
//
// All compiles many records concurrently. Records are independent: a failure
// is reported in that record's Result and never affects the others. When two
// records share a label the first one wins and later ones fail with a
// *DuplicateLabelError.
package compile
