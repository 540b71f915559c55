package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSegment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		lang   *Language
		word   string
		want   string
		wantOK bool
	}{
		{"german hundreds", German(), "zweihundertdreiundvierzig",
			"digit(2) scale(100) digit(3) conjunction(0) tens(40)", true},
		{"german century", German(), "neunzehnhundertneunundneunzig",
			"teen(19) scale(100) digit(9) conjunction(0) tens(90)", true},
		{"german ordinal", German(), "einundzwanzigste",
			"digit(1) conjunction(0) tens(20,ord:.)", true},
		{"dutch diaeresis", Dutch(), "twee\u00ebntwintig",
			"digit(2) conjunction(0) tens(20)", true},
		{"dutch thousands", Dutch(), "tweeduizendvierentwintig",
			"digit(2) scale(1000) digit(4) conjunction(0) tens(20)", true},
		{"italian elided tens", Italian(), "ventuno",
			"tens(20,compound_only|elided) digit(1)", true},
		{"italian accented tail", Italian(), "ventitré",
			"tens(20) digit(3,compound_only)", true},
		{"italian elided hundred", Italian(), "centottanta",
			"scale(100,compound_only|elided|no_explicit_one) tens(80)", true},
		{"italian thousands", Italian(), "duemilaventiquattro",
			"digit(2) scale(1000,plural_only) tens(20) digit(4)", true},
		{"italian ordinal tail", Italian(), "trentunesimo",
			"tens(30,compound_only|elided) digit(1,ord:º,compound_only)", true},

		{"italian full tens before vowel", Italian(), "ventiuno", "", false},
		{"italian elided stem at end", Italian(), "vent", "", false},
		{"italian elided before consonant", Italian(), "ventdue", "", false},
		{"single lexicon word", Dutch(), "tien", "", false},
		{"not a numeral", German(), "zweig", "", false},
		{"no compounding", English(), "twentyone", "", false},
		{"empty", German(), "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			atoms, ok := tt.lang.Segment(tt.word)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, atomString(atoms))
			}
		})
	}
}

func FuzzSegment(f *testing.F) {
	f.Add("zweihundertdreiundvierzig")
	f.Add("ventitré")
	f.Add("twee\u00ebntwintig")
	f.Add("centocentocento")
	f.Add("\xff\xfe")

	f.Fuzz(func(t *testing.T, s string) {
		for _, l := range []*Language{German(), Dutch(), Italian()} {
			atoms, ok := l.Segment(s)
			if ok && len(atoms) < 2 {
				t.Errorf("%s: Segment(%q) = %v, want at least two atoms", l.Code(), s, atoms)
			}
		}
	})
}

func BenchmarkSegment(b *testing.B) {
	l := German()
	for b.Loop() {
		l.Segment("neunzehnhundertneunundneunzig")
	}
}
