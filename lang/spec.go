package lang

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/az-ai-labs/text2num/normalize"
)

// Spec is the declarative description of a language. It is what Load reads
// from YAML and what the built-in constructors assemble in code.
type Spec struct {
	Code             string      `yaml:"code"`
	Name             string      `yaml:"name"`
	Ladder           []int64     `yaml:"ladder"`
	DecimalSeparator string      `yaml:"decimal_separator"`
	OrdinalRule      OrdinalRule `yaml:"ordinal_rule"`
	Rules            Rule        `yaml:"rules,omitempty"`
	Vigesimal        []int64     `yaml:"vigesimal,omitempty"`          // units that multiply a following "twenty"
	TensBlockedUnits []int64     `yaml:"tens_blocked_units,omitempty"` // units that need a conjunction after a tens word
	ListWords        []string    `yaml:"list_words,omitempty"`
	Words            []Entry     `yaml:"words"`
}

// Entry maps a normalized word, or a space-separated phrase of normalized
// words, to the atoms it expands to.
type Entry struct {
	Word  string `yaml:"word"`
	Atoms []Atom `yaml:"atoms"`
}

// maxCompoundBytes bounds the words Segment will try to split.
const maxCompoundBytes = 128

// New validates spec and builds an immutable Language.
// All problems found are reported together, joined with errors.Join.
func New(spec Spec) (*Language, error) {
	if err := validate(spec); err != nil {
		return nil, err
	}

	l := &Language{
		code:        spec.Code,
		name:        spec.Name,
		ladder:      slices.Clone(spec.Ladder),
		decimalSep:  spec.DecimalSeparator,
		ordinalRule: spec.OrdinalRule,
		rules:       spec.Rules,
		listWords:   make(map[string]struct{}, len(spec.ListWords)),
		words:       make(map[string][]Atom, len(spec.Words)),
		phrases:     make(map[string][]Atom),
		unaccented:  make(map[string][]Atom),
		spec:        cloneSpec(spec),
	}
	if l.name == "" {
		l.name = l.code
	}
	for _, v := range spec.Vigesimal {
		l.vigesimal[v] = true
	}
	for _, v := range spec.TensBlockedUnits {
		l.tensBlocked[v] = true
	}
	for _, w := range spec.ListWords {
		l.listWords[w] = struct{}{}
	}

	for _, e := range spec.Words {
		atoms := slices.Clip(slices.Clone(e.Atoms))
		if n := strings.Count(e.Word, " ") + 1; n > 1 {
			l.phrases[e.Word] = atoms
			l.maxPhrase = max(l.maxPhrase, n)
			continue
		}
		l.words[e.Word] = atoms
		l.maxWord = max(l.maxWord, len(e.Word))
	}
	l.buildUnaccented()

	return l, nil
}

// buildUnaccented indexes the accent-free form of every single word whose
// accent-free form is unambiguous. Conjunctions are left out: their accented
// and plain spellings are different words ("e" and "é").
func (l *Language) buildUnaccented() {
	ambiguous := make(map[string]bool)
	for w, atoms := range l.words {
		if atoms[len(atoms)-1].Category == Conjunction {
			continue
		}
		key := normalize.Unaccent(w)
		if key == w {
			continue
		}
		if prev, ok := l.unaccented[key]; ok && !slices.Equal(prev, atoms) {
			ambiguous[key] = true
			continue
		}
		l.unaccented[key] = atoms
	}
	for key := range ambiguous {
		delete(l.unaccented, key)
	}
	for key := range l.unaccented {
		if _, exact := l.words[key]; exact {
			delete(l.unaccented, key)
		}
	}
}

func validate(spec Spec) error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("lang: %s: "+format, append([]any{truncate(spec.Code)}, args...)...))
	}

	if spec.Code == "" {
		errs = append(errs, errors.New("lang: empty language code"))
	}
	if utf8.RuneCountInString(spec.DecimalSeparator) != 1 {
		add("decimal separator %q must be a single character", truncate(spec.DecimalSeparator))
	}
	if spec.OrdinalRule > EnglishSuffix {
		add("unknown ordinal rule %d", spec.OrdinalRule)
	}

	validateLadder(spec.Ladder, add)

	for _, v := range spec.Vigesimal {
		if v < 1 || v > 9 {
			add("vigesimal multiplier %d outside 1-9", v)
		}
	}
	for _, v := range spec.TensBlockedUnits {
		if v < 1 || v > 9 {
			add("tens-blocked unit %d outside 1-9", v)
		}
	}
	for _, w := range spec.ListWords {
		if w == "" || w != normalize.Word(w) || strings.ContainsRune(w, ' ') {
			add("list word %q is not a normalized word", truncate(w))
		}
	}

	if len(spec.Words) == 0 {
		add("no words")
	}
	seen := make(map[string]bool, len(spec.Words))
	for _, e := range spec.Words {
		if !isNormalizedPhrase(e.Word) {
			add("word %q is not normalized", truncate(e.Word))
			continue
		}
		if seen[e.Word] {
			add("duplicate word %q", truncate(e.Word))
			continue
		}
		seen[e.Word] = true
		validateAtoms(spec, e, add)
	}

	return errors.Join(errs...)
}

func validateLadder(ladder []int64, add func(string, ...any)) {
	if len(ladder) == 0 || ladder[0] != 100 {
		add("ladder must start at 100")
		return
	}
	for i, v := range ladder {
		if !isPowerOfTen(v) {
			add("ladder value %d is not a power of ten", v)
		}
		if i > 0 && v <= ladder[i-1] {
			add("ladder is not strictly increasing at %d", v)
		}
	}
}

func validateAtoms(spec Spec, e Entry, add func(string, ...any)) {
	if len(e.Atoms) == 0 {
		add("word %q has no atoms", truncate(e.Word))
		return
	}
	for i, a := range e.Atoms {
		last := i == len(e.Atoms)-1
		switch a.Category {
		case Digit:
			if a.Value < 0 || a.Value > 9 {
				add("word %q: digit value %d outside 0-9", truncate(e.Word), a.Value)
			}
		case Teen:
			if a.Value < 10 || a.Value > 19 {
				add("word %q: teen value %d outside 10-19", truncate(e.Word), a.Value)
			}
		case Tens:
			if a.Value < 20 || a.Value > 90 || a.Value%10 != 0 {
				add("word %q: tens value %d is not one of 20, 30, ... 90", truncate(e.Word), a.Value)
			}
		case Scale:
			if !slices.Contains(spec.Ladder, a.Value) {
				add("word %q: scale %d is not on the ladder", truncate(e.Word), a.Value)
			}
		case Conjunction, DecimalMarker, Sign:
			if a.Value != 0 {
				add("word %q: %s carries a value", truncate(e.Word), a.Category)
			}
			if a.Ordinal {
				add("word %q: %s cannot be ordinal", truncate(e.Word), a.Category)
			}
			if !last && a.Category != Conjunction {
				add("word %q: %s must be the last atom", truncate(e.Word), a.Category)
			}
			if last && len(e.Atoms) > 1 {
				add("word %q: %s must not end a compound entry", truncate(e.Word), a.Category)
			}
		default:
			add("word %q: invalid category %s", truncate(e.Word), a.Category)
		}
		if a.Ordinal && a.Suffix == "" && spec.OrdinalRule == SuffixFromWord {
			add("word %q: ordinal atom without a suffix", truncate(e.Word))
		}
	}
}

// isNormalizedPhrase reports whether s is one or more normalized words
// separated by single spaces.
func isNormalizedPhrase(s string) bool {
	if s == "" {
		return false
	}
	for part := range strings.SplitSeq(s, " ") {
		if part == "" || part != normalize.Word(part) {
			return false
		}
	}
	return true
}

func isPowerOfTen(v int64) bool {
	if v < 10 {
		return false
	}
	for v%10 == 0 {
		v /= 10
	}
	return v == 1
}

func cloneSpec(s Spec) Spec {
	out := s
	out.Ladder = slices.Clone(s.Ladder)
	out.Vigesimal = slices.Clone(s.Vigesimal)
	out.TensBlockedUnits = slices.Clone(s.TensBlockedUnits)
	out.ListWords = slices.Clone(s.ListWords)
	out.Words = make([]Entry, len(s.Words))
	for i, e := range s.Words {
		out.Words[i] = Entry{Word: e.Word, Atoms: slices.Clone(e.Atoms)}
	}
	return out
}
