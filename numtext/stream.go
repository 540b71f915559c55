package numtext

import (
	"iter"

	"github.com/az-ai-labs/text2num/lang"
)

// Token is a pre-tokenized unit of text, e.g. a word from a speech
// recognizer. Tokens carry no whitespace between them unless the producer
// emits whitespace tokens itself.
//
// A token type may also implement
//
//	SeparatedFrom(prev T) bool
//
// to report a boundary (such as a long pause) between prev and itself.
// A run never spans such a boundary.
type Token interface {
	Text() string
}

// Transform returns a sequence that yields the tokens of src with numeral
// runs selected for replacement collapsed into one token built by join.
// join receives the match and the source tokens of the run, including any
// whitespace tokens inside it. Every other token is yielded unchanged and
// in order.
//
// Match positions passed to join count tokens of src, not bytes.
// The source is pulled lazily; only the tokens of an undecided run and the
// tokens after it are buffered. Pulling stops when the consumer stops.
// A nil language yields src unchanged.
func Transform[T Token](src iter.Seq[T], l *lang.Language, threshold float64, join func(Match, []T) T) iter.Seq[T] {
	return func(yield func(T) bool) {
		if l == nil || join == nil {
			for t := range src {
				if !yield(t) {
					return
				}
			}
			return
		}

		next, stop := iter.Pull(src)
		defer stop()

		var prev T
		hasPrev := false
		w := &window[T]{
			next: next,
			unitOf: func(t T) unit {
				u := newUnit(t.Text())
				if sep, ok := any(t).(interface{ SeparatedFrom(T) bool }); ok && hasPrev {
					u.separated = sep.SeparatedFrom(prev)
				}
				prev, hasPrev = t, true
				return u
			},
		}

		process(w, l, threshold, func(w *window[T], it item) bool {
			toks := w.slice(it.start, it.end)
			if it.run && it.replace {
				return yield(join(it.m, append([]T(nil), toks...)))
			}
			for _, t := range toks {
				if !yield(t) {
					return false
				}
			}
			return true
		})
	}
}
