package numtext

import (
	"slices"

	"github.com/az-ai-labs/text2num/lang"
)

// window buffers source tokens pulled on demand. Tokens are addressed by
// their absolute position in the source; release drops the ones the
// scanner and the selector no longer need.
type window[T any] struct {
	next   func() (T, bool)
	unitOf func(T) unit
	toks   []T
	units  []unit
	base   int // position of toks[0]
	done   bool
}

// at returns the unit at position i, pulling tokens as needed.
func (w *window[T]) at(i int) (unit, bool) {
	for i-w.base >= len(w.toks) {
		if w.done {
			return unit{}, false
		}
		t, ok := w.next()
		if !ok {
			w.done = true
			return unit{}, false
		}
		w.toks = append(w.toks, t)
		w.units = append(w.units, w.unitOf(t))
	}
	return w.units[i-w.base], true
}

// slice returns the buffered tokens in [start, end).
func (w *window[T]) slice(start, end int) []T {
	return w.toks[start-w.base : end-w.base]
}

// release drops every token before position i.
func (w *window[T]) release(i int) {
	n := i - w.base
	if n <= 0 {
		return
	}
	w.toks = slices.Delete(w.toks, 0, n)
	w.units = slices.Delete(w.units, 0, n)
	w.base = i
}

// event is one scanner output: a single token passed through, or a run of
// tokens read as a number.
type event struct {
	start, end int // positions [start, end)
	run        bool
	st         state
	words      int
}

// scanner finds numeral runs leftmost-longest.
type scanner[T any] struct {
	l        *lang.Language
	w        *window[T]
	pos      int
	afterRun bool // the last non-space token ended a run or was a number in digits
	glued    bool // the previous token was digits, with no space since
}

// next returns the next event, or false at the end of the source.
func (sc *scanner[T]) next() (event, bool) {
	i := sc.pos
	u, ok := sc.w.at(i)
	if !ok {
		return event{}, false
	}
	if u.word {
		if ev, ok := sc.accumulate(i); ok {
			sc.pos = ev.end
			sc.afterRun = true
			sc.glued = false
			return ev, true
		}
	}
	sc.pos++
	if u.space {
		sc.glued = false
	} else {
		// A number in digits, with any suffix glued to it ("80th", "20ème"),
		// binds a following sign word like a run does.
		sc.afterRun = u.digits || (u.word && sc.glued)
		sc.glued = u.digits
	}
	return event{start: i, end: i + 1}, true
}

// accumulate reads the longest run starting at position start. Whitespace
// inside a run is skipped; any other token that does not extend the run
// ends it at the last commit point.
func (sc *scanner[T]) accumulate(start int) (event, bool) {
	acc := accumulator{l: sc.l, allowSign: !sc.afterRun}
	var (
		committed state
		end       = -1
		words     int
		endWords  int
	)
	for i := start; ; {
		u, ok := sc.w.at(i)
		if !ok || (i > start && u.separated) {
			break
		}
		if u.space {
			i++
			continue
		}
		if !u.word {
			break
		}
		atoms, next, n, ok := sc.classify(i)
		if !ok {
			break
		}
		snap := acc.st
		if !acc.applyAll(atoms) {
			acc.st = snap
			break
		}
		i = next
		words += n
		if acc.st.committable() {
			committed, end, endWords = acc.st, i, words
		}
	}
	if end < 0 {
		return event{}, false
	}
	return event{start: start, end: end, run: true, st: committed, words: endWords}, true
}

// classify returns the atoms of the word at position i, the position after
// the consumed tokens and the number of words consumed. A phrase entry
// ("a hundred") wins over the single word.
func (sc *scanner[T]) classify(i int) ([]lang.Atom, int, int, bool) {
	u, _ := sc.w.at(i)
	if maxWords := sc.l.MaxPhraseWords(); maxWords >= 2 {
		words := []string{u.norm}
		ends := []int{i + 1}
		for j := i + 1; len(words) < maxWords; {
			v, ok := sc.w.at(j)
			if !ok || v.separated {
				break
			}
			if v.space {
				j++
				continue
			}
			if !v.word {
				break
			}
			j++
			words = append(words, v.norm)
			ends = append(ends, j)
		}
		if atoms, n := sc.l.Phrase(words); n >= 2 && !compoundOnly(atoms) {
			return atoms, ends[n-1], n, true
		}
	}
	atoms, ok := classifyWord(sc.l, u.norm)
	return atoms, i + 1, 1, ok
}
