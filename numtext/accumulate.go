// Accumulation of numeral atoms into a value, one atom at a time.
package numtext

import "github.com/az-ai-labs/text2num/lang"

const (
	hundred          int64 = 100
	maxDecimalDigits       = 32
	maxFolds               = 18 // powers of ten from 10^2 to 10^18 plus one
)

// fold records the total right after a scale word was folded into it.
type fold struct {
	scale int64
	total int64
}

// state is everything the accumulator knows about the current run.
// It holds no pointers, so a plain assignment is a complete snapshot.
type state struct {
	zeros     int   // leading zero words
	group     int64 // value since the last folded scale, below 1000 except for centuries
	total     int64 // folded scales
	lastScale int64 // smallest scale folded so far; 0 before any
	folds     [maxFolds]fold
	nFolds    int
	hundred   bool // group already holds a hundred
	century   bool // "nineteen hundred": no further scale may follow
	negative  bool
	numeric   int       // numeric atoms applied
	lone      bool      // only a NotAlone atom so far
	last      lang.Atom // last numeric atom
	afterConj bool
	conjTens  bool // "ein und": only a tens word may follow
	vigesimal bool // the last tens word multiplied a unit ("quatre-vingt")
	kind      Kind
	suffix    string
	frozen    bool
	decimal   bool // after the decimal marker
	digits    [maxDecimalDigits]byte
	nDigits   int
}

func (s *state) value() int64 { return s.total + s.group }

// committable reports whether the run may end here.
func (s *state) committable() bool {
	return s.numeric > 0 && !s.lone && !s.afterConj && !s.conjTens && (!s.decimal || s.nDigits > 0)
}

// accumulator applies atoms to a state under the rules of one language.
// Every method returns false, leaving the state partially updated, when the
// atom cannot extend the run; the caller restores its snapshot.
type accumulator struct {
	l         *lang.Language
	allowSign bool
	st        state
}

// applyAll applies the atoms of one source token.
func (a *accumulator) applyAll(atoms []lang.Atom) bool {
	for _, at := range atoms {
		if !a.apply(at) {
			return false
		}
	}
	return true
}

func (a *accumulator) apply(at lang.Atom) bool {
	s := &a.st
	if s.frozen {
		return false
	}
	if s.numeric > 0 {
		s.lone = false
	}
	if s.decimal {
		return a.decimalDigit(at)
	}

	switch at.Category {
	case lang.Conjunction:
		return a.conjunction()
	case lang.DecimalMarker:
		return a.marker()
	case lang.Sign:
		return a.sign()
	case lang.Digit, lang.Teen, lang.Tens, lang.Scale:
	default:
		return false
	}

	if at.Has(lang.StartOnly) && s.numeric > 0 {
		return false
	}
	if at.Has(lang.NotInitial) && s.numeric == 0 {
		return false
	}
	if at.Ordinal && s.negative {
		return false
	}
	if s.conjTens && at.Category != lang.Tens {
		return false
	}
	if s.numeric > 0 && a.l.Has(lang.OrdinalSequence) && at.Ordinal != (s.kind == Ordinal) {
		return false
	}

	var ok bool
	switch at.Category {
	case lang.Digit:
		ok = a.digit(at)
	case lang.Teen:
		ok = a.teen(at)
	case lang.Tens:
		ok = a.tens(at)
	case lang.Scale:
		ok = a.scale(at)
	}
	if !ok {
		return false
	}

	if at.Category != lang.Tens {
		s.vigesimal = false
	}
	if s.numeric == 0 {
		s.lone = at.Has(lang.NotAlone)
	}
	s.numeric++
	s.last = at
	s.afterConj = false
	s.conjTens = false
	if at.Ordinal {
		s.kind = Ordinal
		s.suffix = at.Suffix
		if !a.l.Has(lang.OrdinalSequence) {
			s.frozen = true
		}
	}
	return true
}

// afterHundred reports whether a unit, teen or tens word may follow the
// last atom when that atom is a hundred.
func (a *accumulator) afterHundred(at lang.Atom) bool {
	s := &a.st
	if s.last.Category != lang.Scale || s.last.Value != hundred {
		return true
	}
	if s.last.Has(lang.Bare) {
		return false
	}
	if a.l.Has(lang.HundredsNeedConj) && !s.afterConj && !at.Ordinal {
		return false
	}
	return true
}

func (a *accumulator) digit(at lang.Atom) bool {
	s := &a.st
	d := at.Value

	// Zeros only lead: "zero zero five".
	if d == 0 {
		if s.group != 0 || s.total != 0 || s.lastScale != 0 || s.afterConj {
			return false
		}
		s.zeros++
		return true
	}

	r := s.group % 100
	switch {
	case r == 0:
		if !a.afterHundred(at) {
			return false
		}
	case r >= 20 && r%10 == 0 && s.last.Category == lang.Tens:
		if a.l.Has(lang.UnitsBeforeTens) {
			return false
		}
		if a.l.TensBlocks(d) && !at.Ordinal && !s.afterConj && !s.vigesimal && !s.last.Has(lang.Elided) {
			return false
		}
	case s.last.Category == lang.Teen && s.last.Value == 10 && (r == 10 || r == 70 || r == 90):
		switch {
		case a.l.Has(lang.TenCompound) && d >= 7 && !s.afterConj: // dix-sept
		case a.l.Has(lang.OrdinalSequence) && at.Ordinal && r == 10: // décimo primero
		default:
			return false
		}
	default:
		return false
	}
	s.group += d
	return true
}

func (a *accumulator) teen(at lang.Atom) bool {
	s := &a.st
	r := s.group % 100
	switch {
	case r == 0:
		if !a.afterHundred(at) {
			return false
		}
	case (r == 60 || r == 80) && s.last.Category == lang.Tens && a.l.Has(lang.TenCompound):
		// soixante-dix, quatre-vingt-onze
	default:
		return false
	}
	s.group += at.Value
	return true
}

func (a *accumulator) tens(at lang.Atom) bool {
	s := &a.st
	r := s.group % 100
	switch {
	case r == 0:
		if !a.afterHundred(at) {
			return false
		}
		s.group += at.Value
		s.vigesimal = false
	case r < 10 && s.last.Category == lang.Digit:
		if s.last.Has(lang.NoTensAfter) {
			return false
		}
		switch {
		case at.Value == 20 && !s.afterConj && a.l.Vigesimal(r):
			s.group += 20*r - r
			s.vigesimal = true
		case s.afterConj && a.l.Has(lang.UnitsBeforeTens):
			s.group += at.Value
			s.vigesimal = false
		default:
			return false
		}
	default:
		return false
	}
	return true
}

func (a *accumulator) scale(at lang.Atom) bool {
	s := &a.st
	if s.last.Category == lang.Scale && s.last.Has(lang.NoScaleAfter) {
		return false
	}
	// After a conjunction only a fresh group may start: "mil e cem".
	if s.afterConj && s.group != 0 {
		return false
	}
	if at.Value == hundred {
		return a.hundred(at)
	}
	if s.century {
		return false
	}

	m := at.Value
	switch {
	case s.lastScale == 0 || m < s.lastScale:
		v := s.group
		if v == 0 {
			v = 1
		} else if v == 1 && at.Has(lang.NoExplicitOne) {
			return false
		}
		if !multiplierFits(at, v) || v > maxAbs/m {
			return false
		}
		p := v * m
		if s.total > maxAbs-p {
			return false
		}
		s.total += p
	case m > s.lastScale && a.l.Has(lang.MultiplicativeScales):
		// "mil millones": the value since the last larger scale multiplies m.
		n := s.nFolds
		for n > 0 && s.folds[n-1].scale < m {
			n--
		}
		var high int64
		if n > 0 {
			if s.folds[n-1].scale == m {
				return false
			}
			high = s.folds[n-1].total
		}
		low := s.total + s.group - high
		if low <= 0 || low >= m || !multiplierFits(at, low) || low > (maxAbs-high)/m {
			return false
		}
		s.total = high + low*m
		s.nFolds = n
	default:
		return false
	}

	if s.nFolds == maxFolds {
		return false
	}
	s.folds[s.nFolds] = fold{scale: m, total: s.total}
	s.nFolds++
	s.lastScale = m
	s.group = 0
	s.hundred = false
	return true
}

// multiplierFits checks the singular and plural forms of a scale word.
func multiplierFits(at lang.Atom, v int64) bool {
	if at.Has(lang.PluralOnly) && v < 2 {
		return false
	}
	if at.Has(lang.SingularOnly) && v > 1 {
		return false
	}
	return true
}

func (a *accumulator) hundred(at lang.Atom) bool {
	s := &a.st
	if s.hundred || s.century {
		return false
	}
	if s.last.Category == lang.Scale && s.last.Has(lang.Bare) {
		return false
	}
	switch g := s.group; {
	case g == 0:
		if at.Has(lang.PluralOnly) {
			return false
		}
		s.group = hundred
	case g <= 9:
		if g == 1 && at.Has(lang.NoExplicitOne) {
			return false
		}
		if at.Has(lang.PluralOnly) && g < 2 {
			return false
		}
		s.group = g * hundred
	default:
		// "nineteen hundred", "neunzehnhundert"
		if !a.l.Has(lang.CenturyForm) || g > 99 || s.total != 0 || s.lastScale != 0 {
			return false
		}
		if a.l.Has(lang.TeenCenturies) && g > 19 {
			return false
		}
		s.group = g * hundred
		s.century = true
	}
	s.hundred = true
	return true
}

func (a *accumulator) conjunction() bool {
	s := &a.st
	if s.numeric == 0 || s.afterConj || s.kind == Ordinal {
		return false
	}
	r := s.group % 100
	switch {
	case a.l.Has(lang.UnitsBeforeTens) && s.last.Category == lang.Digit && r >= 1 && r <= 9 && !s.last.Has(lang.NoTensAfter):
		// "vier und zwanzig", "vier en twintig"
		s.conjTens = true
	case a.l.Has(lang.ConjAfterScale) && s.last.Category != lang.Scale:
		return false
	case s.value() < 10:
		return false
	}
	s.afterConj = true
	return true
}

func (a *accumulator) marker() bool {
	s := &a.st
	if s.numeric == 0 || s.afterConj || s.conjTens || s.kind == Ordinal {
		return false
	}
	s.decimal = true
	s.kind = Decimal
	return true
}

func (a *accumulator) decimalDigit(at lang.Atom) bool {
	s := &a.st
	if at.Category != lang.Digit || at.Ordinal || s.nDigits == maxDecimalDigits {
		return false
	}
	s.digits[s.nDigits] = byte('0' + at.Value)
	s.nDigits++
	s.numeric++
	return true
}

func (a *accumulator) sign() bool {
	s := &a.st
	if !a.allowSign || s.numeric > 0 || s.negative {
		return false
	}
	s.negative = true
	return true
}
