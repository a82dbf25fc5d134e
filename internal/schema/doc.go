// Package schema provides the variant schema definitions, YAML/JSON loading,
// and structural validation.
//
// A schema file describes the record variants of a tagged wire protocol.
// Each record has a label (used to synthesize Go type names), a literal type
// tag (written to and checked against the wire "type" key) and an ordered
// list of fields.
//
// # Schema Overview
//
//	version: "1"
//	package: protocol
//	imports:
//	  - time
//	  - path: example.com/protocol/ids
//	    alias: ids
//	records:
//	  - label: Block
//	    type: block
//	    fields:
//	      - name: id
//	        type: ids.BlockID
//	      - name: checksum
//	        type: "[]byte"
//	        visibility: private
//	      - name: created_on
//	        type: time.Time
//	        codec:
//	          format: rfc3339
//
// The top level may also be a bare list of records. JSON input uses the same
// keys; "other_fields" is accepted in place of "fields".
//
// # Required keys
//
// A record must have "label", "type" and "fields"; a field must have "name"
// and "type". An explicitly empty value (type: "" or fields: []) counts as
// present. Missing keys fail loading with a *MalformedError; everything else
// is checked later by Validate.
//
// # Codec hints
//
// The "codec" mapping is an opaque, ordered attribute bag. It is forwarded
// to the generated field as extra struct tag entries and never interpreted.
package schema
