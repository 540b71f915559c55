package numtext

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/az-ai-labs/text2num/lang"
	"github.com/az-ai-labs/text2num/normalize"
)

// unit is a source token as the scanner sees it.
type unit struct {
	norm       string // normalized word; empty unless word is set
	space      bool   // whitespace only
	word       bool   // contains a letter
	punct      bool   // punctuation or symbols only
	terminator bool   // punctuation that ends a sentence
	separated  bool   // the producer marked a boundary before this token
	digits     bool   // starts with a digit ("100", "80th", "3,5")
}

// newUnit classifies the text of one token.
func newUnit(text string) unit {
	var u unit
	if text == "" {
		return u
	}
	first, _ := utf8.DecodeRuneInString(text)
	u.digits = unicode.IsDigit(first)
	letters, spaces, others := false, true, false
	for _, r := range text {
		switch {
		case unicode.IsLetter(r) || unicode.Is(unicode.Mn, r):
			letters = true
			spaces = false
		case unicode.IsSpace(r):
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			spaces = false
		default:
			spaces = false
			others = true
		}
	}
	switch {
	case letters:
		u.word = true
		u.norm = normalize.Word(text)
	case spaces:
		u.space = true
	case !others:
		u.punct = true
		u.terminator = strings.ContainsAny(text, ".!?…")
	}
	return u
}

// linking reports whether the token may sit between two runs of one list.
func (u unit) linking(l *lang.Language) bool {
	switch {
	case u.space:
		return true
	case u.punct:
		return !u.terminator
	case u.word:
		return l.IsListWord(u.norm)
	}
	return false
}

// classifyWord returns the atoms of a single normalized word: an exact or
// accent-free lexicon entry, the parts of a hyphenated word, or a compound
// segmentation. Atoms that only exist inside compounds are rejected
// unless they come from a segmentation.
func classifyWord(l *lang.Language, word string) ([]lang.Atom, bool) {
	if atoms, ok := l.Lookup(word); ok {
		if compoundOnly(atoms) {
			return nil, false
		}
		return atoms, true
	}
	if parts := normalize.SplitHyphens(word); parts != nil {
		var atoms []lang.Atom
		for _, p := range parts {
			pa, ok := classifyWord(l, p)
			if !ok {
				return nil, false
			}
			atoms = append(atoms, pa...)
		}
		return atoms, true
	}
	return l.Segment(word)
}

func compoundOnly(atoms []lang.Atom) bool {
	for _, at := range atoms {
		if at.Has(lang.CompoundOnly) {
			return true
		}
	}
	return false
}
