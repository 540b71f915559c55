package lang

import (
	"strings"
	"sync"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func atomString(atoms []Atom) string {
	parts := make([]string, len(atoms))
	for i, a := range atoms {
		parts[i] = a.String()
	}
	return strings.Join(parts, " ")
}

func TestBuiltins(t *testing.T) {
	t.Parallel()

	want := []string{"en", "fr", "fr-BE", "fr-CH", "es", "pt", "pt-BR", "it", "de", "nl"}
	langs := Builtins()
	require.Len(t, langs, len(want))
	for i, l := range langs {
		require.NotNil(t, l)
		assert.Equal(t, want[i], l.Code())
		assert.NotEmpty(t, l.Name())
		assert.Equal(t, int64(100), l.Ladder()[0])
	}
	assert.Same(t, English(), English(), "built-ins are built once")
}

func TestLookup(t *testing.T) {
	t.Parallel()

	tests := []struct {
		lang *Language
		word string
		want string
	}{
		{English(), "seven", "digit(7)"},
		{English(), "fifteen", "teen(15)"},
		{English(), "ninety", "tens(90)"},
		{English(), "thousand", "scale(1000)"},
		{English(), "third", "digit(3,ord:)"},
		{English(), "and", "conjunction(0)"},
		{English(), "point", "decimal_marker(0)"},
		{English(), "minus", "sign(0)"},
		{English(), "o", "digit(0,not_alone)"},
		{English(), "fourty", "tens(40)"},
		{English(), "thousands", "scale(1000,plural_only)"},
		{French(), "quatre", "digit(4)"},
		{French(), "septante", "tens(70)"},
		{French(), "cents", "scale(100,plural_only)"},
		{French(), "million", "scale(1000000)"},
		{French(), "premier", "digit(1,ord:er,start_only)"},
		{French(), "unième", "digit(1,ord:ème,not_initial)"},
		{French(), "vingtièmes", "tens(20,ord:èmes)"},
		{Spanish(), "veintitrés", "tens(20) digit(3)"},
		{Spanish(), "quinientas", "digit(5) scale(100)"},
		{Spanish(), "cien", "scale(100,bare)"},
		{Spanish(), "ducentésima", "digit(2,ord:ª) scale(100,ord:ª)"},
		{Spanish(), "segundo", "digit(2,ord:º,not_initial)"},
		{Spanish(), "primer", "digit(1,ord:ᵉʳ)"},
		{Portuguese(), "cento", "scale(100,no_scale_after|no_explicit_one)"},
		{Portuguese(), "dezasseis", "teen(16)"},
		{Portuguese(), "bilião", "scale(1000000000000,singular_only)"},
		{Portuguese(), "bilhões", "scale(1000000000,plural_only)"},
		{BrazilianPortuguese(), "dezesseis", "teen(16)"},
		{BrazilianPortuguese(), "trilhão", "scale(1000000000000,singular_only)"},
		{Italian(), "mila", "scale(1000,plural_only)"},
		{Italian(), "trentesima", "tens(30,ord:ª)"},
		{German(), "dritten", "digit(3,ord:.)"},
		{German(), "dreissig", "tens(30)"},
		{German(), "eins", "digit(1,no_tens_after)"},
		{German(), "ein", "digit(1)"},
		{Dutch(), "één", "digit(1)"},
		{Dutch(), "twaalfde", "teen(12,ord:e)"},
		{Dutch(), "min", "sign(0)"},
	}

	for _, tt := range tests {
		t.Run(tt.lang.Code()+"/"+tt.word, func(t *testing.T) {
			t.Parallel()
			atoms, ok := tt.lang.Lookup(tt.word)
			require.True(t, ok, "Lookup(%q) not found", tt.word)
			assert.Equal(t, tt.want, atomString(atoms))
		})
	}
}

func TestLookupMissing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		lang *Language
		word string
	}{
		{English(), "apples"},
		{English(), ""},
		{English(), "Seven"}, // callers normalize first
		{BrazilianPortuguese(), "dezasseis"},
		{BrazilianPortuguese(), "bilião"},
		{Portuguese(), "trilhão"},
		{Portuguese(), "é"}, // "é" is not the conjunction "e"
		{Italian(), "ventuno"},   // compounds are segmented, not listed
		{German(), "einundzwanzig"},
	}

	for _, tt := range tests {
		_, ok := tt.lang.Lookup(tt.word)
		assert.False(t, ok, "%s: Lookup(%q) found", tt.lang.Code(), tt.word)
	}
}

func TestLookupUnaccented(t *testing.T) {
	t.Parallel()

	tests := []struct {
		lang *Language
		word string
		want string
	}{
		{Spanish(), "dieciseis", "teen(16)"},
		{Spanish(), "veintitres", "tens(20) digit(3)"},
		{Spanish(), "vigesimo", "tens(20,ord:º)"},
		{Portuguese(), "tres", "digit(3)"},
		{German(), "funf", "digit(5)"},
		{French(), "zero", "digit(0)"},
	}

	for _, tt := range tests {
		atoms, ok := tt.lang.Lookup(tt.word)
		if assert.True(t, ok, "%s: Lookup(%q)", tt.lang.Code(), tt.word) {
			assert.Equal(t, tt.want, atomString(atoms))
		}
	}
}

func TestLookupReturnsCopy(t *testing.T) {
	t.Parallel()

	atoms, ok := Spanish().Lookup("veintidós")
	require.True(t, ok)
	atoms[0].Value = 99

	again, _ := Spanish().Lookup("veintidós")
	assert.Equal(t, int64(20), again[0].Value)
}

func TestLadderCopy(t *testing.T) {
	t.Parallel()

	ladder := English().Ladder()
	ladder[0] = 7
	assert.Equal(t, []int64{100, 1000, 1_000_000, 1_000_000_000, 1_000_000_000_000}, English().Ladder())
}

func TestPhrase(t *testing.T) {
	t.Parallel()

	atoms, n := English().Phrase([]string{"a", "hundred", "and", "one"})
	assert.Equal(t, 2, n)
	assert.Equal(t, "scale(100)", atomString(atoms))

	_, n = English().Phrase([]string{"a", "dog"})
	assert.Zero(t, n)

	_, n = English().Phrase([]string{"a"})
	assert.Zero(t, n)

	assert.Equal(t, 2, English().MaxPhraseWords())
	assert.Zero(t, German().MaxPhraseWords())
}

func TestIsListWord(t *testing.T) {
	t.Parallel()

	assert.True(t, English().IsListWord("and"))
	assert.True(t, English().IsListWord("to"))
	assert.False(t, English().IsListWord("apples"))
	assert.True(t, French().IsListWord("puis"))
	assert.True(t, Dutch().IsListWord("nog"))
	assert.True(t, German().IsListWord("und"))
	assert.False(t, Spanish().IsListWord("and"))
}

func TestRules(t *testing.T) {
	t.Parallel()

	assert.True(t, French().Vigesimal(4))
	assert.False(t, French().Vigesimal(3))
	assert.False(t, English().Vigesimal(4))
	assert.True(t, French().TensBlocks(1))
	assert.False(t, French().TensBlocks(2))
	assert.True(t, Italian().TensBlocks(8))
	assert.True(t, Portuguese().TensBlocks(5))
	assert.False(t, Portuguese().TensBlocks(0))
	assert.True(t, German().Has(UnitsBeforeTens|Compounding))
	assert.False(t, English().Has(Compounding))
	assert.True(t, Spanish().Has(OrdinalSequence))
	assert.True(t, French().Has(CenturyForm|TeenCenturies))
	assert.True(t, German().Has(CenturyForm|TeenCenturies))
	assert.False(t, English().Has(TeenCenturies))
	assert.Equal(t, ".", English().DecimalSeparator())
	assert.Equal(t, ",", German().DecimalSeparator())
}

func TestOrdinalSuffix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value int64
		want  string
	}{
		{0, "th"},
		{1, "st"},
		{2, "nd"},
		{3, "rd"},
		{4, "th"},
		{11, "th"},
		{12, "th"},
		{13, "th"},
		{21, "st"},
		{102, "nd"},
		{111, "th"},
		{1003, "rd"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, English().OrdinalSuffix(tt.value, ""), "value %d", tt.value)
	}
	assert.Equal(t, "ème", French().OrdinalSuffix(2, "ème"))
}

func TestCategoryString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "decimal_marker", DecimalMarker.String())
	assert.Equal(t, "Category(42)", Category(42).String())
	assert.True(t, Scale.Numeric())
	assert.False(t, Sign.Numeric())

	var c Category
	require.NoError(t, c.UnmarshalText([]byte("tens")))
	assert.Equal(t, Tens, c)
	assert.Error(t, c.UnmarshalText([]byte("dozen")))
}

func TestFlagString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "none", Flag(0).String())
	assert.Equal(t, "start_only|bare", (Bare | StartOnly).String())
	assert.Equal(t, "units_before_tens|compounding", (Compounding | UnitsBeforeTens).String())
	assert.True(t, scale(100).with(Bare|NoExplicitOne).Has(Bare))
	assert.False(t, scale(100).Has(Bare))
}

func TestConcurrentBuiltins(t *testing.T) {
	t.Parallel()

	var wg sync.WaitGroup
	for range 100 {
		wg.Go(func() {
			for _, l := range Builtins() {
				if _, ok := l.Lookup("zero"); !ok && l.Code() != "de" && l.Code() != "nl" && l.Code() != "es" {
					t.Errorf("%s: zero not found", l.Code())
				}
			}
		})
	}
	wg.Wait()
}

func BenchmarkLookup(b *testing.B) {
	l := Spanish()
	for b.Loop() {
		l.Lookup("veintitrés")
		l.Lookup("dieciseis")
		l.Lookup("apples")
	}
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "roman", truncate("roman"))

	got := truncate(strings.Repeat("º", 40))
	assert.True(t, utf8.ValidString(got), "truncate cut a rune: %q", got)
	assert.Equal(t, strings.Repeat("º", 25)+"...", got)
}
