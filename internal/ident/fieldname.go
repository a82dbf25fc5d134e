package ident

import (
	"go/token"
	"strings"
	"unicode"
	"unicode/utf8"
)

// commonInitialisms is the golint list of initialisms kept upper-case in Go
// identifiers.
var commonInitialisms = map[string]bool{
	"ACL": true, "API": true, "ASCII": true, "CPU": true, "CSS": true, "DNS": true,
	"EOF": true, "GUID": true, "HTML": true, "HTTP": true, "HTTPS": true, "ID": true,
	"IP": true, "JSON": true, "LHS": true, "QPS": true, "RAM": true, "RHS": true,
	"RPC": true, "SLA": true, "SMTP": true, "SQL": true, "SSH": true, "TCP": true,
	"TLS": true, "TTL": true, "UDP": true, "UI": true, "UID": true, "UUID": true,
	"URI": true, "URL": true, "UTF8": true, "VM": true, "XML": true, "XMPP": true,
	"XSRF": true, "XSS": true,
}

// FieldName converts a schema field name into a Go field identifier.
// Exported names are used for public fields, lower-first names for private
// ones. The label only feeds the error.
func FieldName(label, name string, exported bool) (string, error) {
	parts := strings.FieldsFunc(name, func(r rune) bool { return r == '_' })
	if len(parts) == 0 {
		return "", &SynthesisError{Label: label, Field: name, FieldLevel: true, Candidate: name}
	}

	var sb strings.Builder

	leadingInitialism := false

	for i, part := range parts {
		upper := strings.ToUpper(part)
		if commonInitialisms[upper] {
			sb.WriteString(upper)

			if i == 0 {
				leadingInitialism = true
			}

			continue
		}

		sb.WriteString(upperFirst(part))
	}

	goName := sb.String()

	if !exported {
		if leadingInitialism {
			first := strings.ToUpper(parts[0])
			goName = strings.ToLower(first) + goName[len(first):]
		} else {
			goName = lowerFirst(goName)
		}
	}

	if !token.IsIdentifier(goName) || token.IsExported(goName) != exported {
		return "", &SynthesisError{Label: label, Field: name, FieldLevel: true, Candidate: goName}
	}

	return goName, nil
}

// ExportedFieldName is FieldName for exported identifiers.
func ExportedFieldName(label, name string) (string, error) {
	return FieldName(label, name, true)
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}

	return string(unicode.ToUpper(r)) + s[size:]
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}

	return string(unicode.ToLower(r)) + s[size:]
}
