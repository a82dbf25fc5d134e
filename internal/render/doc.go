// Package render turns compiled variants into Go source files.
//
// Generation uses text/template and golang.org/x/tools/imports for
// formatting. Each schema record produces one file holding:
//   - the record struct (discriminator first, then fields in schema order)
//   - an Equal method comparing every field, the discriminator included
//   - an unexported wire mirror struct used by MarshalJSON/UnmarshalJSON
//   - the zero-state discriminator type and its JSON and text codecs
//
// Generated files import the tagged runtime package for the discriminator
// contract and reflect for Equal. WriteFiles puts them on disk; Diff shows
// how they differ from what is already there.
package render
