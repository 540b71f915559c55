package numtext

import "github.com/az-ai-labs/text2num/lang"

// item is one output decision: a passed-through token or a run, with the
// positions of the source tokens it covers.
type item struct {
	start, end int
	run        bool
	replace    bool
	m          Match
}

// selector decides which runs are written as digits. A run that would stay
// in words is held back until the next token shows whether it starts a list.
type selector struct {
	threshold   float64
	emit        func(item) bool
	held        *item
	pending     []item // tokens after the held run
	chained     bool   // only linking tokens since the last run
	hasLast     bool
	lastOrdinal bool
	stopped     bool
}

func (s *selector) out(it item) {
	if !s.stopped && !s.emit(it) {
		s.stopped = true
	}
}

// token handles a passed-through token.
func (s *selector) token(it item, linking bool) {
	if linking && s.chained {
		if s.held != nil {
			s.pending = append(s.pending, it)
			return
		}
		s.out(it)
		return
	}
	s.chained = false
	s.flush()
	s.out(it)
}

// run handles a recognized run.
func (s *selector) run(it item) {
	ordinal := it.m.Kind == Ordinal
	it.run = true
	if s.hasLast && s.chained && ordinal == s.lastOrdinal {
		if s.held != nil {
			h := *s.held
			h.replace = true
			s.held = nil
			s.out(h)
			s.flushPending()
		}
		it.replace = true
		s.out(it)
	} else {
		s.flush()
		if it.m.Tokens > 1 || it.m.Value >= s.threshold {
			it.replace = true
			s.out(it)
		} else {
			s.held = &it
		}
	}
	s.hasLast, s.chained, s.lastOrdinal = true, true, ordinal
}

// flush writes the held run in words, then the tokens after it.
func (s *selector) flush() {
	if s.held != nil {
		s.out(*s.held)
		s.held = nil
	}
	s.flushPending()
}

func (s *selector) flushPending() {
	for _, it := range s.pending {
		s.out(it)
	}
	clear(s.pending)
	s.pending = s.pending[:0]
}

// keep returns the first position the selector still needs, or -1.
func (s *selector) keep() int {
	if s.held != nil {
		return s.held.start
	}
	return -1
}

// process runs the scanner and the selector over a token source and calls
// emit for every output item in source order until emit returns false.
// Items refer to tokens by position; emit reads them from the window, which
// keeps every token an undecided item still covers.
func process[T any](w *window[T], l *lang.Language, threshold float64, emit func(*window[T], item) bool) {
	sc := scanner[T]{l: l, w: w}
	sel := selector{threshold: threshold}
	sel.emit = func(it item) bool { return emit(w, it) }

	for !sel.stopped {
		ev, ok := sc.next()
		if !ok {
			break
		}
		if ev.run {
			m := format(&ev.st, l)
			m.Start, m.End, m.Tokens = ev.start, ev.end, ev.words
			sel.run(item{start: ev.start, end: ev.end, m: m})
		} else {
			u, _ := w.at(ev.start)
			sel.token(item{start: ev.start, end: ev.end}, u.linking(l))
		}

		keep := sc.pos
		if k := sel.keep(); k >= 0 {
			keep = min(keep, k)
		}
		w.release(keep)
	}
	if !sel.stopped {
		sel.flush()
	}
}
