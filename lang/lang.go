// Package lang describes how each supported language writes numbers.
//
// A Language bundles a lexicon (normalized word to numeral atoms), the
// magnitude ladder, the decimal separator, the ordinal suffix rule, the
// linking words that keep a list of numbers together, and a set of
// composition rules that the shared accumulator in package numtext branches on.
//
// Built-in languages:
//
//   - English, French, Spanish, Portuguese, Italian, German, Dutch
//   - FrenchBelgium and FrenchSwitzerland (septante, huitante, nonante)
//   - BrazilianPortuguese (Brazilian spellings, short-scale "bilhão")
//
// ForTag resolves a BCP 47 tag such as "fr-CH" or "pt-BR" to one of them.
// New builds a Language from a Spec and Load reads a Spec from YAML.
//
// Language values are immutable once built.
// All functions are safe for concurrent use by multiple goroutines.
//
// Known limitations:
//
//   - Lexicon words must be single orthographic words or space-separated
//     phrases; hyphenated forms are split by the caller.
//   - Compound segmentation considers words up to 128 bytes.
//   - Magnitudes above 10^12 are not in any built-in ladder.
package lang

import (
	"slices"
	"strings"

	"github.com/az-ai-labs/text2num/normalize"
)

// Language is an immutable numeral grammar for one written language.
type Language struct {
	code        string
	name        string
	ladder      []int64
	decimalSep  string
	ordinalRule OrdinalRule
	rules       Rule
	vigesimal   [10]bool
	tensBlocked [10]bool
	listWords   map[string]struct{}
	words       map[string][]Atom // single words
	phrases     map[string][]Atom // space-separated multi-word entries
	unaccented  map[string][]Atom // accent-free keys that map to exactly one entry
	maxPhrase   int               // words in the longest phrase
	maxWord     int               // bytes in the longest single word
	spec        Spec
}

// Code returns the language tag, e.g. "en" or "fr-CH".
func (l *Language) Code() string { return l.code }

// Name returns the human-readable language name.
func (l *Language) Name() string { return l.name }

// String returns the language code.
func (l *Language) String() string { return l.code }

// Ladder returns a copy of the magnitude ladder, smallest first.
func (l *Language) Ladder() []int64 { return slices.Clone(l.ladder) }

// DecimalSeparator returns the separator written between the integer and
// fractional digits: "." for English, "," elsewhere.
func (l *Language) DecimalSeparator() string { return l.decimalSep }

// OrdinalRule returns how ordinal suffixes are rendered.
func (l *Language) OrdinalRule() OrdinalRule { return l.ordinalRule }

// Rules returns the composition rules of the language.
func (l *Language) Rules() Rule { return l.rules }

// Has reports whether every rule in r applies to the language.
func (l *Language) Has(r Rule) bool { return l.rules&r == r }

// Vigesimal reports whether the unit multiplies a directly following
// "twenty" (French "quatre-vingts").
func (l *Language) Vigesimal(unit int64) bool {
	return unit >= 1 && unit <= 9 && l.vigesimal[unit]
}

// TensBlocks reports whether the unit needs a conjunction to follow a
// tens word (French "vingt et un", Portuguese "vinte e dois").
func (l *Language) TensBlocks(unit int64) bool {
	return unit >= 1 && unit <= 9 && l.tensBlocked[unit]
}

// IsListWord reports whether the normalized word may sit between two
// numbers of one list ("and", "or", "to", "puis").
func (l *Language) IsListWord(word string) bool {
	_, ok := l.listWords[word]
	return ok
}

// Lookup returns the atoms of a normalized single word. When the exact
// word is unknown, an accent-free spelling that matches one entry is
// accepted ("dieciseis" for "dieciséis").
func (l *Language) Lookup(word string) ([]Atom, bool) {
	if atoms, ok := l.words[word]; ok {
		return slices.Clone(atoms), true
	}
	if len(l.unaccented) == 0 {
		return nil, false
	}
	if atoms, ok := l.unaccented[normalize.Unaccent(word)]; ok {
		return slices.Clone(atoms), true
	}
	return nil, false
}

// MaxPhraseWords returns the word count of the longest phrase entry,
// or zero when the lexicon has none.
func (l *Language) MaxPhraseWords() int { return l.maxPhrase }

// Phrase returns the atoms of the longest phrase entry that is a prefix of
// words, and the number of words it covers. The words must be normalized.
func (l *Language) Phrase(words []string) ([]Atom, int) {
	for n := min(len(words), l.maxPhrase); n >= 2; n-- {
		if atoms, ok := l.phrases[strings.Join(words[:n], " ")]; ok {
			return slices.Clone(atoms), n
		}
	}
	return nil, 0
}

// OrdinalSuffix returns the suffix written after the digits of an ordinal
// with the given value. fromWord is the suffix carried by the final ordinal
// atom and is used as is unless the language derives suffixes from digits.
func (l *Language) OrdinalSuffix(value int64, fromWord string) string {
	if l.ordinalRule != EnglishSuffix {
		return fromWord
	}
	if value < 0 {
		value = -value
	}
	switch value % 100 {
	case 11, 12, 13:
		return "th"
	}
	switch value % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	}
	return "th"
}

// Spec returns a copy of the configuration the language was built from.
func (l *Language) Spec() Spec { return cloneSpec(l.spec) }
