package numtext

import (
	"errors"
	"slices"
	"strings"
	"sync"
	"testing"
	"unicode/utf8"

	"github.com/az-ai-labs/text2num/lang"
)

// TestConcurrentSafety verifies all functions are safe for concurrent use.
func TestConcurrentSafety(t *testing.T) {
	var wg sync.WaitGroup

	const goroutines = 100

	en, fr, de := lang.English(), lang.French(), lang.German()

	for range goroutines {
		wg.Go(func() {
			defer func() {
				if r := recover(); r != nil {
					t.Errorf("panic in concurrent call: %v", r)
				}
			}()

			Parse("one hundred and five", en)
			Parse("quatre-vingt-dix-sept", fr)
			Parse("zweihundertdreiundvierzig", de)
			Replace(scenario, en, 10)
			Find("il en reste soixante et onze", fr, 10)
			Spell(123_456_789, de)
			_ = slices.Collect(Transform(slices.Values(words("twenty", "one")), en, 10, joinWord))
		})
	}

	wg.Wait()
}

// TestOversizedInput verifies inputs over the size limit are not scanned.
func TestOversizedInput(t *testing.T) {
	input := strings.Repeat("one ", maxInputBytes/4+1)

	if got := Replace(input, lang.English(), 0); got != input {
		t.Error("Replace on oversized input: want input unchanged")
	}
	if got := Find(input, lang.English(), 0); got != nil {
		t.Errorf("Find on oversized input = %d matches, want none", len(got))
	}
	if _, err := Parse(input, lang.English()); !errors.Is(err, ErrNotANumber) {
		t.Errorf("Parse on oversized input error = %v, want ErrNotANumber", err)
	}
}

// TestLongRuns verifies long inputs made only of numerals are handled.
func TestLongRuns(t *testing.T) {
	input := strings.Repeat("twenty ", 10_000)
	want := strings.Repeat("20 ", 10_000)
	if got := Replace(input, lang.English(), 10); got != want {
		t.Errorf("Replace(repeated twenty) returned %d bytes, want %d", len(got), len(want))
	}

	digits := "one point" + strings.Repeat(" one", 100)
	if _, err := Parse(digits, lang.English()); err == nil {
		t.Error("Parse with 100 decimal digits: want error")
	}
}

// TestOverflow verifies values past the limit end the run instead of
// wrapping.
func TestOverflow(t *testing.T) {
	cases := []struct {
		lang  *lang.Language
		input string
	}{
		{lang.English(), "one billion billion"},
		{lang.English(), "nine hundred ninety nine trillion trillion"},
		{lang.French(), "mille milliards de milliards"},
		{lang.Spanish(), "un billón de billones"},
		{lang.German(), "tausend Billionen Billionen"},
	}

	for _, tt := range cases {
		t.Run(tt.input, func(t *testing.T) {
			defer func() {
				if r := recover(); r != nil {
					t.Errorf("Parse(%q) panicked: %v", tt.input, r)
				}
			}()
			if m, err := Parse(tt.input, tt.lang); err == nil {
				t.Errorf("Parse(%q) = %v, want error", tt.input, m)
			}
			for _, m := range Find(tt.input, tt.lang, 0) {
				if m.Value > 1e18 || m.Value < -1e18 {
					t.Errorf("Find(%q) value %v out of range", tt.input, m.Value)
				}
			}
		})
	}
}

// TestMalformed verifies Parse and Replace handle malformed input gracefully.
func TestMalformed(t *testing.T) {
	malformed := []string{
		"",
		" ",
		"\t\n",
		"\xff\xfe",
		string([]byte{0x00}),
		"minus minus one",
		"hundred hundred",
		"and and and",
		"point point",
		"twenty-",
		"-twenty",
		"one--two",
		"first-first",
		strings.Repeat("a", 200),
		strings.Repeat("zwei", 100),
		strings.Repeat("undundund", 20),
	}

	for _, l := range lang.Builtins() {
		for _, input := range malformed {
			t.Run(l.Code(), func(t *testing.T) {
				defer func() {
					if r := recover(); r != nil {
						t.Errorf("%s: panic on %q: %v", l.Code(), input, r)
					}
				}()
				_, _ = Parse(input, l)
				_ = Replace(input, l, 0)
				_ = Find(input, l, 0)
			})
		}
	}
}

// TestTruncateKeepsRunes verifies error messages never cut a rune in half.
func TestTruncateKeepsRunes(t *testing.T) {
	t.Parallel()

	inputs := []string{
		strings.Repeat("é", 40),
		"a" + strings.Repeat("º", 40),
		strings.Repeat("ü", 10),
		strings.Repeat("a", 100),
	}
	for _, s := range inputs {
		got := truncate(s)
		if !utf8.ValidString(got) {
			t.Errorf("truncate(%q) = %q, not valid UTF-8", s, got)
		}
		if !strings.HasPrefix(s, strings.TrimSuffix(got, "...")) {
			t.Errorf("truncate(%q) = %q, not a prefix", s, got)
		}
	}

	_, err := Parse(strings.Repeat("ü", 40)+" apples", lang.German())
	if err == nil || !utf8.ValidString(err.Error()) {
		t.Errorf("Parse error = %v, want a valid UTF-8 message", err)
	}
}
