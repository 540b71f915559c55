package lang

import (
	"math"
	"strings"
	"unicode/utf8"
)

// segState is what the previous segment of a compound demands of the next.
type segState uint8

const (
	segFree   segState = iota // no constraint
	segElided                 // elided stem: next segment must start with a vowel
	segTens                   // full tens word: next segment must not start with a vowel
	segStates
)

// nSegStates is the row width of the segmentation tables.
const nSegStates = int(segStates)

// Segment splits a single word that is not in the lexicon into two or more
// lexicon words ("zweihundertdreiundvierzig", "ventitré", "tweeëntwintig")
// and returns their concatenated atoms. Among all valid splits it returns
// the one with the fewest segments, preferring longer leading segments.
// Segment returns false for languages without compounding.
func (l *Language) Segment(word string) ([]Atom, bool) {
	if !l.Has(Compounding) || len(word) < 2 || len(word) > maxCompoundBytes {
		return nil, false
	}
	n := len(word)

	// cost[i*nSegStates+s] is the fewest segments covering word[i:] when the
	// segment before i left state s; next holds the chosen segment end.
	const inf = math.MaxInt32
	cost := make([]int32, (n+1)*nSegStates)
	next := make([]int32, (n+1)*nSegStates)
	for i := range cost {
		cost[i] = inf
	}
	for s := range segStates {
		if s != segElided {
			cost[n*nSegStates+int(s)] = 0
		}
	}

	for i := n - 1; i >= 0; i-- {
		if !utf8.RuneStart(word[i]) {
			continue
		}
		for s := range segStates {
			best := int32(inf)
			bestEnd := int32(-1)
			for j := min(n, i+l.maxWord); j > i; j-- {
				if j < n && !utf8.RuneStart(word[j]) {
					continue
				}
				key := word[i:j]
				atoms, ok := l.words[key]
				if !ok || !l.segmentFollows(segState(s), key) {
					continue
				}
				c := cost[j*nSegStates+int(l.segmentState(atoms))]
				if c == inf {
					continue
				}
				if c+1 < best {
					best = c + 1
					bestEnd = int32(j)
				}
			}
			cost[i*nSegStates+int(s)] = best
			next[i*nSegStates+int(s)] = bestEnd
		}
	}

	if cost[segFree] == inf || cost[segFree] < 2 {
		return nil, false
	}

	var out []Atom
	state := segFree
	for i := 0; i < n; {
		j := int(next[i*nSegStates+int(state)])
		atoms := l.words[word[i:j]]
		out = append(out, atoms...)
		state = l.segmentState(atoms)
		i = j
	}
	return out, true
}

// segmentFollows reports whether key may follow a segment that left state s.
func (l *Language) segmentFollows(s segState, key string) bool {
	switch s {
	case segElided:
		return startsWithVowel(key)
	case segTens:
		return !startsWithVowel(key)
	}
	return true
}

// segmentState returns the constraint a segment places on its successor.
// Only languages with elision constrain anything.
func (l *Language) segmentState(atoms []Atom) segState {
	if !l.Has(Elision) || len(atoms) == 0 {
		return segFree
	}
	last := atoms[len(atoms)-1]
	switch {
	case last.Has(Elided):
		return segElided
	case last.Category == Tens && !last.Ordinal:
		return segTens
	}
	return segFree
}

func startsWithVowel(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return strings.ContainsRune("aeiouàáèéìíòóùú", r)
}
