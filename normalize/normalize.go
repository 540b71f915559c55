// Package normalize folds words into the canonical form used for numeral
// lexicon lookup.
//
// Three functions are provided:
//
//   - Word composes to NFC, lowercases, and unifies apostrophes and hyphens.
//   - Unaccent removes combining marks so that "dieciseis" can match
//     "dieciséis" and "drieentwintig" can match "drieëntwintig".
//   - SplitHyphens breaks "quatre-vingt-dix" into its parts.
//
// All functions are safe for concurrent use by multiple goroutines.
//
// Known limitations:
//
//   - Unaccent also removes marks that are distinctive in some languages
//     (Portuguese "três" and a hypothetical "tres" become equal). Callers
//     use it only as a fallback when the accented form is unknown.
//   - Ligatures and compatibility characters (e.g. "ﬁ") are not decomposed;
//     NFKC is deliberately not applied because it rewrites superscript
//     ordinal indicators such as "º".
package normalize

import (
	"strings"

	"github.com/az-ai-labs/text2num/internal/textcase"
)

// maxWordBytes is the maximum byte length of a word that is folded.
// Longer inputs are returned unchanged; no numeral word comes close.
const maxWordBytes = 256

// maxHyphenParts is the maximum number of segments a hyphenated word may have.
// "quatre-vingt-dix-sept-mille" has five; anything much longer is not a numeral.
const maxHyphenParts = 8

// joiners maps typographic apostrophes onto U+0027 and the Unicode
// hyphen onto U+002D.
var joiners = strings.NewReplacer(
	"’", "'", // right single quotation mark
	"ʼ", "'", // modifier letter apostrophe
	"‘", "'", // left single quotation mark
	"‐", "-", // hyphen
)

// Word returns the lookup form of a single word: NFC, lowercase, ASCII
// apostrophes and hyphens. Empty and oversized words are returned unchanged.
func Word(word string) string {
	if word == "" || len(word) > maxWordBytes {
		return word
	}
	word = textcase.ComposeNFC(word)
	word = textcase.ToLower(word)
	if strings.ContainsAny(word, "’ʼ‘‐") {
		word = joiners.Replace(word)
	}
	return word
}

// SplitHyphens splits a hyphenated word into its non-empty parts.
// Returns nil when the word has no inner hyphen, has an empty part
// ("vingt--un"), or has more than maxHyphenParts segments.
func SplitHyphens(word string) []string {
	idx := strings.IndexByte(word, '-')
	if idx <= 0 || idx >= len(word)-1 {
		return nil
	}
	parts := strings.Split(word, "-")
	if len(parts) > maxHyphenParts {
		return nil
	}
	for _, p := range parts {
		if p == "" {
			return nil
		}
	}
	return parts
}
