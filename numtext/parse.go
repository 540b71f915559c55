// Strict parsing of a string that holds exactly one number.
package numtext

import (
	"fmt"

	"github.com/az-ai-labs/text2num/lang"
	"github.com/az-ai-labs/text2num/tokenizer"
)

// parse reads s as one run. The run must cover every token that is not
// whitespace.
func parse(s string, l *lang.Language) (Match, error) {
	tokens := tokenizer.Tokens(s)

	first, last := -1, -1
	for i, t := range tokens {
		if t.Type != tokenizer.Space {
			if first < 0 {
				first = i
			}
			last = i
		}
	}
	if first < 0 {
		return Match{}, fmt.Errorf("numtext: parse %q: empty input: %w", truncate(s), ErrNotANumber)
	}

	body := tokens[first : last+1]
	sc := scanner[tokenizer.Token]{l: l, w: sliceWindow(body)}
	ev, ok := sc.next()
	if !ok || !ev.run {
		return Match{}, fmt.Errorf("numtext: parse %q: %w", truncate(s), ErrNotANumber)
	}
	if ev.end != len(body) {
		next := ev.end
		for body[next].Type == tokenizer.Space {
			next++
		}
		return Match{}, fmt.Errorf("numtext: parse %q: unexpected %q: %w",
			truncate(s), truncate(body[next].Text), ErrNotANumber)
	}

	m := format(&ev.st, l)
	m.Start, m.End, m.Tokens = body[0].Start, body[len(body)-1].End, ev.words
	return m, nil
}
