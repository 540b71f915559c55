package lang

import (
	"fmt"
	"sync"
)

// table collects the entries of a built-in lexicon in insertion order.
// Adding a word twice replaces the earlier atoms.
type table struct {
	entries []Entry
	index   map[string]int
}

func newTable() *table {
	return &table{index: make(map[string]int)}
}

func (t *table) add(word string, atoms ...Atom) {
	if i, ok := t.index[word]; ok {
		t.entries[i].Atoms = atoms
		return
	}
	t.index[word] = len(t.entries)
	t.entries = append(t.entries, Entry{Word: word, Atoms: atoms})
}

// series adds words with consecutive values first, first+step, ...
func (t *table) series(cat Category, first, step int64, words ...string) {
	for i, w := range words {
		t.add(w, Atom{Category: cat, Value: first + int64(i)*step})
	}
}

// each adds every word with the same atoms.
func (t *table) each(atoms []Atom, words ...string) {
	for _, w := range words {
		t.add(w, atoms...)
	}
}

// inflect adds stem+ending for every ending, marking each atom as an
// ordinal with the ending's suffix.
func (t *table) inflect(stem string, endings []ending, atoms ...Atom) {
	for _, e := range endings {
		out := make([]Atom, len(atoms))
		copy(out, atoms)
		for i := range out {
			out[i] = out[i].ord(e.suffix)
		}
		t.add(stem+e.text, out...)
	}
}

// stem is the part of an ordinal word before its inflected ending.
type stem struct {
	text  string
	value int64
}

// inflectEach inflects every stem as a single atom of category cat.
func (t *table) inflectEach(cat Category, endings []ending, stems ...stem) {
	for _, s := range stems {
		t.inflect(s.text, endings, Atom{Category: cat, Value: s.value})
	}
}

// ending pairs a written word ending with the ordinal suffix it implies.
type ending struct {
	text   string
	suffix string
}

func digit(v int64) Atom { return Atom{Category: Digit, Value: v} }
func teen(v int64) Atom  { return Atom{Category: Teen, Value: v} }
func tens(v int64) Atom  { return Atom{Category: Tens, Value: v} }
func scale(v int64) Atom { return Atom{Category: Scale, Value: v} }

func conj() Atom   { return Atom{Category: Conjunction} }
func marker() Atom { return Atom{Category: DecimalMarker} }
func sign() Atom   { return Atom{Category: Sign} }

func (a Atom) ord(suffix string) Atom {
	a.Ordinal = true
	a.Suffix = suffix
	return a
}

func (a Atom) with(f Flag) Atom {
	a.Flags |= f
	return a
}

func expand(a ...Atom) []Atom { return a }

// builtin builds a language from an embedded table once.
func builtin(spec func() Spec) func() *Language {
	return sync.OnceValue(func() *Language {
		l, err := New(spec())
		if err != nil {
			panic(fmt.Sprintf("lang: built-in table is inconsistent: %v", err))
		}
		return l
	})
}

const (
	million  = 1_000_000
	billion  = 1_000_000_000
	trillion = 1_000_000_000_000
)

var (
	english             = builtin(englishSpec)
	french              = builtin(func() Spec { return frenchSpec("fr", "French") })
	frenchBelgium       = builtin(func() Spec { return frenchSpec("fr-BE", "French (Belgium)") })
	frenchSwitzerland   = builtin(func() Spec { return frenchSpec("fr-CH", "French (Switzerland)") })
	spanish             = builtin(spanishSpec)
	portuguese          = builtin(func() Spec { return portugueseSpec(false) })
	brazilianPortuguese = builtin(func() Spec { return portugueseSpec(true) })
	italian             = builtin(italianSpec)
	german              = builtin(germanSpec)
	dutch               = builtin(dutchSpec)
)

// English returns the English language: additive composition, "and" as
// conjunction, "point" as decimal marker, st/nd/rd/th ordinal suffixes.
func English() *Language { return english() }

// French returns the French language with both the vigesimal
// ("quatre-vingt-dix") and the regional ("septante", "nonante") tens.
func French() *Language { return french() }

// FrenchBelgium returns Belgian French. It parses like French and spells
// 70 and 90 as "septante" and "nonante".
func FrenchBelgium() *Language { return frenchBelgium() }

// FrenchSwitzerland returns Swiss French. It parses like French and spells
// 70, 80 and 90 as "septante", "huitante" and "nonante".
func FrenchSwitzerland() *Language { return frenchSwitzerland() }

// Spanish returns the Spanish language.
func Spanish() *Language { return spanish() }

// Portuguese returns European Portuguese. Brazilian spellings are accepted
// too; "bilhão" is 10^9 and "bilião" is 10^12.
func Portuguese() *Language { return portuguese() }

// BrazilianPortuguese returns Brazilian Portuguese: only Brazilian
// spellings ("dezesseis", "dezenove"), with "bilhão" as 10^9 and
// "trilhão" as 10^12.
func BrazilianPortuguese() *Language { return brazilianPortuguese() }

// Italian returns the Italian language with compounding and elision
// ("duemilaventitré", "ventuno").
func Italian() *Language { return italian() }

// German returns the German language with compounding
// ("zweihundertdreiundvierzig").
func German() *Language { return german() }

// Dutch returns the Dutch language with compounding ("tweeëntwintig").
func Dutch() *Language { return dutch() }

// Builtins returns every built-in language, in a stable order.
func Builtins() []*Language {
	return []*Language{
		English(), French(), FrenchBelgium(), FrenchSwitzerland(),
		Spanish(), Portuguese(), BrazilianPortuguese(),
		Italian(), German(), Dutch(),
	}
}
