package lang

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// Category classifies a logical numeral token.
type Category uint8

const (
	NotNumeral    Category = iota // Not part of any numeral
	Digit                         // 0–9
	Teen                          // 10–19
	Tens                          // 20, 30, … 90
	Scale                         // 100, 1000, 10^6, … (a rung of the magnitude ladder)
	Conjunction                   // "and", "et", "y", "und", "en"
	DecimalMarker                 // "point", "virgule", "komma"
	Sign                          // "minus", "moins"
)

var categoryNames = [...]string{
	NotNumeral:    "not_numeral",
	Digit:         "digit",
	Teen:          "teen",
	Tens:          "tens",
	Scale:         "scale",
	Conjunction:   "conjunction",
	DecimalMarker: "decimal_marker",
	Sign:          "sign",
}

var categoryFromName = map[string]Category{
	"not_numeral":    NotNumeral,
	"digit":          Digit,
	"teen":           Teen,
	"tens":           Tens,
	"scale":          Scale,
	"conjunction":    Conjunction,
	"decimal_marker": DecimalMarker,
	"sign":           Sign,
}

// String returns the snake_case name of the category.
func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// Numeric reports whether the category carries a value.
func (c Category) Numeric() bool {
	return c == Digit || c == Teen || c == Tens || c == Scale
}

// MarshalText encodes the category name; used by both JSON and YAML.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText decodes a category name such as "tens".
func (c *Category) UnmarshalText(text []byte) error {
	v, ok := categoryFromName[strings.ToLower(string(text))]
	if !ok {
		return fmt.Errorf("lang: unknown category %q", truncate(string(text)))
	}
	*c = v
	return nil
}

// Flag is a set of grammar constraints attached to a single atom.
type Flag uint16

const (
	// StartOnly atoms must open a run ("premier", "primo").
	StartOnly Flag = 1 << iota
	// NotInitial atoms cannot open a run ("unième", "segundo").
	NotInitial
	// CompoundOnly atoms exist only inside a single-word compound
	// (Italian "vent" in "ventuno").
	CompoundOnly
	// Elided atoms lost their final vowel and need a vowel-initial successor.
	Elided
	// Bare hundreds ("cem", "cien") accept only a scale of 1000 or more after them.
	Bare
	// NoScaleAfter hundreds ("cento" in Portuguese) accept no scale after them.
	NoScaleAfter
	// NoExplicitOne scales reject a multiplier of exactly one ("un cent").
	NoExplicitOne
	// PluralOnly scales need a multiplier of at least two ("mila", "milioni").
	PluralOnly
	// SingularOnly scales need a multiplier of at most one ("mille", "milione").
	SingularOnly
	// NotAlone atoms never form a run by themselves (English "o" is zero
	// only in "o eight").
	NotAlone
	// NoTensAfter units cannot join a following tens word, with or without
	// a conjunction (German "eins", "eine").
	NoTensAfter
)

var flagNames = []struct {
	flag Flag
	name string
}{
	{StartOnly, "start_only"},
	{NotInitial, "not_initial"},
	{CompoundOnly, "compound_only"},
	{Elided, "elided"},
	{Bare, "bare"},
	{NoScaleAfter, "no_scale_after"},
	{NoExplicitOne, "no_explicit_one"},
	{PluralOnly, "plural_only"},
	{SingularOnly, "singular_only"},
	{NotAlone, "not_alone"},
	{NoTensAfter, "no_tens_after"},
}

// Names returns the names of the flags set in f, in declaration order.
func (f Flag) Names() []string {
	var names []string
	for _, fn := range flagNames {
		if f&fn.flag != 0 {
			names = append(names, fn.name)
		}
	}
	return names
}

// String returns the flag names joined with "|", or "none".
func (f Flag) String() string {
	names := f.Names()
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, "|")
}

// MarshalYAML encodes the flag set as a list of names.
func (f Flag) MarshalYAML() (any, error) {
	return f.Names(), nil
}

// UnmarshalYAML decodes a list of flag names.
func (f *Flag) UnmarshalYAML(node *yaml.Node) error {
	var names []string
	if err := node.Decode(&names); err != nil {
		return fmt.Errorf("lang: flags: %w", err)
	}
	var out Flag
	for _, name := range names {
		v, ok := flagByName(name)
		if !ok {
			return fmt.Errorf("lang: unknown flag %q", truncate(name))
		}
		out |= v
	}
	*f = out
	return nil
}

// MarshalJSON encodes the flag set as a list of names.
func (f Flag) MarshalJSON() ([]byte, error) {
	names := f.Names()
	if names == nil {
		names = []string{}
	}
	return json.Marshal(names)
}

func flagByName(name string) (Flag, bool) {
	for _, fn := range flagNames {
		if fn.name == name {
			return fn.flag, true
		}
	}
	return 0, false
}

// Atom is one logical numeral token. A lexicon entry expands to one or more
// atoms; "veintiuno" expands to Tens(20) Digit(1).
type Atom struct {
	Category Category `yaml:"category" json:"category"`
	Value    int64    `yaml:"value,omitempty" json:"value,omitempty"`
	Ordinal  bool     `yaml:"ordinal,omitempty" json:"ordinal,omitempty"`
	Suffix   string   `yaml:"suffix,omitempty" json:"suffix,omitempty"` // Ordinal suffix rendered after the digits
	Flags    Flag     `yaml:"flags,omitempty" json:"flags,omitempty"`
}

// Has reports whether every flag in f is set on the atom.
func (a Atom) Has(f Flag) bool {
	return a.Flags&f == f
}

// String returns a debug representation, e.g. Tens(20) or Digit(1,ord:st).
func (a Atom) String() string {
	var b strings.Builder
	b.WriteString(a.Category.String())
	b.WriteByte('(')
	fmt.Fprintf(&b, "%d", a.Value)
	if a.Ordinal {
		b.WriteString(",ord:")
		b.WriteString(a.Suffix)
	}
	if a.Flags != 0 {
		b.WriteByte(',')
		b.WriteString(a.Flags.String())
	}
	b.WriteByte(')')
	return b.String()
}

// Rule is a set of language-wide composition rules the shared accumulator
// branches on.
type Rule uint16

const (
	// TenCompound lets "dix" take the units 7–9 and lets 60/80 take teens
	// (French "dix-sept", "soixante-dix", "quatre-vingt-onze").
	TenCompound Rule = 1 << iota
	// UnitsBeforeTens puts the unit first, joined by a conjunction
	// (German "einundzwanzig", Dutch "eenentwintig").
	UnitsBeforeTens
	// HundredsNeedConj requires a conjunction between hundreds and what
	// follows (Portuguese "cento e um").
	HundredsNeedConj
	// CenturyForm allows a teen or tens multiplier for "hundred"
	// ("nineteen hundred", "neunzehnhundert").
	CenturyForm
	// MultiplicativeScales lets a larger scale multiply everything folded
	// before it ("mil millones", "mille milliards").
	MultiplicativeScales
	// OrdinalSequence builds ordinals from ordinal words only ("vigésimo
	// cuarto"); without it an ordinal word ends the run.
	OrdinalSequence
	// Compounding segments unlisted words over the lexicon
	// ("zweihundertdreiundvierzig").
	Compounding
	// Elision applies the Italian vowel rules inside compounds.
	Elision
	// ConjAfterScale allows a conjunction only after a scale word
	// ("one hundred and five") or, with UnitsBeforeTens, after a unit.
	ConjAfterScale
	// TeenCenturies limits CenturyForm multipliers to teens ("dix-neuf
	// cent", "neunzehnhundert" but not "sechzighundert").
	TeenCenturies
)

var ruleNames = []struct {
	rule Rule
	name string
}{
	{TenCompound, "ten_compound"},
	{UnitsBeforeTens, "units_before_tens"},
	{HundredsNeedConj, "hundreds_need_conj"},
	{CenturyForm, "century_form"},
	{MultiplicativeScales, "multiplicative_scales"},
	{OrdinalSequence, "ordinal_sequence"},
	{Compounding, "compounding"},
	{Elision, "elision"},
	{ConjAfterScale, "conj_after_scale"},
	{TeenCenturies, "teen_centuries"},
}

// Names returns the names of the rules set in r, in declaration order.
func (r Rule) Names() []string {
	var names []string
	for _, rn := range ruleNames {
		if r&rn.rule != 0 {
			names = append(names, rn.name)
		}
	}
	return names
}

// String returns the rule names joined with "|", or "none".
func (r Rule) String() string {
	names := r.Names()
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, "|")
}

// MarshalYAML encodes the rule set as a list of names.
func (r Rule) MarshalYAML() (any, error) {
	return r.Names(), nil
}

// UnmarshalYAML decodes a list of rule names.
func (r *Rule) UnmarshalYAML(node *yaml.Node) error {
	var names []string
	if err := node.Decode(&names); err != nil {
		return fmt.Errorf("lang: rules: %w", err)
	}
	var out Rule
	for _, name := range names {
		found := false
		for _, rn := range ruleNames {
			if rn.name == name {
				out |= rn.rule
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("lang: unknown rule %q", truncate(name))
		}
	}
	*r = out
	return nil
}

// OrdinalRule selects how the ordinal suffix is rendered.
type OrdinalRule uint8

const (
	// SuffixFromWord renders the suffix carried by the final ordinal atom
	// ("1er", "2ème", "4º", "3.", "8e").
	SuffixFromWord OrdinalRule = iota
	// EnglishSuffix derives st/nd/rd/th from the trailing digits.
	EnglishSuffix
)

var ordinalRuleNames = [...]string{
	SuffixFromWord: "suffix",
	EnglishSuffix:  "english",
}

// String returns the rule name used in lexicon files.
func (o OrdinalRule) String() string {
	if int(o) < len(ordinalRuleNames) {
		return ordinalRuleNames[o]
	}
	return fmt.Sprintf("OrdinalRule(%d)", int(o))
}

// MarshalText encodes the rule name.
func (o OrdinalRule) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText decodes "suffix" or "english"; empty means "suffix".
func (o *OrdinalRule) UnmarshalText(text []byte) error {
	switch string(text) {
	case "", "suffix":
		*o = SuffixFromWord
	case "english":
		*o = EnglishSuffix
	default:
		return fmt.Errorf("lang: unknown ordinal rule %q", truncate(string(text)))
	}
	return nil
}

// truncate shortens user-supplied names echoed in error messages.
func truncate(s string) string {
	const maxErrLen = 50
	if len(s) <= maxErrLen {
		return s
	}
	n := maxErrLen
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "..."
}
