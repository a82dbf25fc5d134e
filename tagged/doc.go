// Package tagged is the runtime support package imported by generated code.
//
// Every generated record carries a zero-state discriminator type bound to one
// literal tag. Encoding a discriminator always writes exactly that tag.
// Decoding succeeds only when the wire string equals the tag byte for byte,
// and otherwise fails with a *TagMismatchError naming both values:
//
//	invalid type: string "blocks", expected the `block` string
//
// A wire value that is not a string at all fails with a *WireTypeError. A
// record whose "type" key is absent or null fails with ErrMissingTag.
//
// JSON goes through github.com/goccy/go-json; Marshal and Unmarshal are the
// entry points generated record methods use.
package tagged
