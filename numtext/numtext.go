// Package numtext finds numbers written in words and converts them to digits.
//
// The package works on top of a lang.Language and provides:
//
//   - Parse reads a whole string as exactly one number.
//   - Replace rewrites the numbers inside free text.
//   - Find lists the numbers Replace would rewrite, with byte spans.
//   - Transform does the same over a lazy sequence of caller tokens.
//   - Spell writes an integer out in words.
//
// Cardinals ("two hundred and five" -> 205), ordinals ("twenty-first" ->
// 21st, "vingtième" -> 20ème) and decimals read digit by digit ("three point
// one four" -> 3.14) are recognized. Leading zeros are kept: "zero five" ->
// 05.
//
// Replace leaves an isolated one-word number below the threshold in words
// ("I have two cats" stays as is with threshold 10), unless it belongs to a
// list of numbers separated by commas or list words such as "and", "or".
// Multi-word numbers, decimals and lists are always replaced.
//
// All functions are safe for concurrent use by multiple goroutines.
//
// Known limitations:
//
//   - Values are limited to ±10^18; longer runs end where they would overflow.
//   - Fractions ("three quarters") and ranges are not recognized.
//   - Part-of-speech is not considered, so English "one" used as a pronoun
//     next to another number is read as a number.
//   - Spell covers |n| < 10^15 in the built-in languages only.
package numtext

import (
	"errors"
	"fmt"
	"strings"

	"github.com/az-ai-labs/text2num/lang"
	"github.com/az-ai-labs/text2num/tokenizer"
)

// maxInputBytes is the largest input Parse, Replace and Find will scan.
// Larger inputs are returned unchanged.
const maxInputBytes = 1 << 20

// ErrNotANumber is returned by Parse when the input is not exactly one number.
var ErrNotANumber = errors.New("numtext: not a number")

// Parse reads s as exactly one number in language l. Surrounding
// whitespace is ignored; anything else that is not part of the number
// fails. The returned error wraps ErrNotANumber.
//
//	Parse("ochenta y cinco", lang.Spanish())               // 85
//	Parse("three point one four one five", lang.English()) // 3.1415
//	Parse("twelve apples", lang.English())                 // ErrNotANumber
func Parse(s string, l *lang.Language) (Match, error) {
	if l == nil {
		return Match{}, errors.New("numtext: nil language")
	}
	if len(s) > maxInputBytes {
		return Match{}, fmt.Errorf("numtext: input of %d bytes exceeds %d: %w", len(s), maxInputBytes, ErrNotANumber)
	}
	return parse(s, l)
}

// Replace returns s with the selected numbers written as digits. All other
// text, whitespace and punctuation is kept byte for byte. Replace never
// fails: a nil language, an empty input or an input over 1 MiB is
// returned unchanged.
func Replace(s string, l *lang.Language, threshold float64) string {
	if s == "" || l == nil || len(s) > maxInputBytes {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	scanText(s, l, threshold, func(toks []tokenizer.Token, it item) {
		if it.run && it.replace {
			b.WriteString(it.m.Text)
			return
		}
		for _, t := range toks {
			b.WriteString(t.Text)
		}
	})
	return b.String()
}

// Find returns the numbers Replace would rewrite, in order, with byte
// offsets into s.
func Find(s string, l *lang.Language, threshold float64) []Match {
	if s == "" || l == nil || len(s) > maxInputBytes {
		return nil
	}

	var found []Match
	scanText(s, l, threshold, func(toks []tokenizer.Token, it item) {
		if it.run && it.replace {
			m := it.m
			m.Start, m.End = toks[0].Start, toks[len(toks)-1].End
			found = append(found, m)
		}
	})
	return found
}

// scanText tokenizes s and calls fn with every output item and its tokens.
func scanText(s string, l *lang.Language, threshold float64, fn func([]tokenizer.Token, item)) {
	tokens := tokenizer.Tokens(s)
	process(sliceWindow(tokens), l, threshold, func(w *window[tokenizer.Token], it item) bool {
		fn(w.slice(it.start, it.end), it)
		return true
	})
}

// sliceWindow serves tokens from a slice.
func sliceWindow(tokens []tokenizer.Token) *window[tokenizer.Token] {
	i := 0
	return &window[tokenizer.Token]{
		next: func() (tokenizer.Token, bool) {
			if i == len(tokens) {
				return tokenizer.Token{}, false
			}
			i++
			return tokens[i-1], true
		},
		unitOf: func(t tokenizer.Token) unit { return newUnit(t.Text) },
	}
}
