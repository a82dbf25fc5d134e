package match

import (
	"strings"
	"unicode"
)

// TokenizeIdent splits an identifier into lowercase words. CamelCase
// boundaries and the separators '_', '-' and ' ' both split; a run of
// capitals stays one word until the capital that starts the next one:
//
//	VlobCreate -> [vlob create]
//	HTTPServer -> [http server]
//	block_ID   -> [block id]
func TokenizeIdent(s string) []string {
	words := splitWords(s)
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}

	return words
}

// NormalizeIdent folds an identifier to a separator-free lowercase form so
// that blockId, block_id and BlockID compare equal.
func NormalizeIdent(s string) string {
	return strings.Join(TokenizeIdent(s), "")
}

func splitWords(s string) []string {
	var (
		words []string
		cur   []rune
	)

	runes := []rune(s)

	flush := func() {
		if len(cur) > 0 {
			words = append(words, string(cur))
			cur = cur[:0]
		}
	}

	for i, r := range runes {
		if isSeparator(r) {
			flush()
			continue
		}

		if i > 0 && startsWord(runes, i) {
			flush()
		}

		cur = append(cur, r)
	}

	flush()

	return words
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' '
}

// startsWord reports whether runes[i] begins a new word: a capital after a
// non-capital, or the last capital of an acronym followed by lowercase.
func startsWord(runes []rune, i int) bool {
	r, prev := runes[i], runes[i-1]
	if !unicode.IsUpper(r) || isSeparator(prev) {
		return false
	}

	if !unicode.IsUpper(prev) {
		return true
	}

	return i+1 < len(runes) && unicode.IsLower(runes[i+1])
}
