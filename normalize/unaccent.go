package normalize

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// unaccentChain decomposes, drops nonspacing marks, and recomposes.
// The chain is stateful, so each call builds its own.
func unaccentChain() transform.Transformer {
	return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
}

// Unaccent removes diacritical marks from s: "décimo" becomes "decimo",
// "drieëntwintig" becomes "drieentwintig". ASCII input is returned as is.
// Letters that are not base+mark sequences (ß, ø) are kept.
func Unaccent(s string) string {
	if isASCII(s) {
		return s
	}
	out, _, err := transform.String(unaccentChain(), s)
	if err != nil {
		return s
	}
	return out
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
