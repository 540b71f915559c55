// Package textcase provides the case folding and Unicode composition used
// when matching numeral words against a lexicon.
//
// Folding is language-neutral: none of the supported languages needs the
// Turkic dotted/dotless I mapping, and German ß is already lowercase.
//
// All functions are safe for concurrent use.
package textcase

import (
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// A cases.Caser keeps transformation state, so each goroutine takes its own.
var lowerPool = sync.Pool{
	New: func() any {
		c := cases.Lower(language.Und)
		return &c
	},
}

// Lower returns the lowercase form of r.
func Lower(r rune) rune {
	return unicode.ToLower(r)
}

// ToLower returns s folded to lowercase.
// ASCII input is handled without allocation when already lowercase.
func ToLower(s string) string {
	ascii, upper := scanASCII(s)
	if ascii {
		if !upper {
			return s
		}
		return strings.ToLower(s)
	}
	c := lowerPool.Get().(*cases.Caser)
	out := c.String(s)
	lowerPool.Put(c)
	return out
}

// HasUpper reports whether s contains at least one uppercase rune.
func HasUpper(s string) bool {
	for _, r := range s {
		if unicode.IsUpper(r) {
			return true
		}
	}
	return false
}

// scanASCII reports whether s is pure ASCII and whether it holds any A-Z.
func scanASCII(s string) (ascii, upper bool) {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= utf8.RuneSelf {
			return false, false
		}
		if c >= 'A' && c <= 'Z' {
			upper = true
		}
	}
	return true, upper
}
