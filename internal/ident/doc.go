// Package ident synthesizes the Go identifiers of generated variant types.
//
// A record labelled "Block" produces the record type "BlockData" and the
// discriminator type "BlockDataType". Schema field names are snake_case wire
// names and are converted to Go field names with the usual initialisms
// ("block_id" becomes "BlockID", or "blockID" for a private field).
//
// A label or field name that cannot produce a valid identifier is a schema
// authoring defect; it is reported as a *SynthesisError and aborts generation
// of that record only.
package ident
