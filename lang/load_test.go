package lang

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const shortLexicon = `
code: en-x-short
name: Short English
ladder: [100, 1000]
decimal_separator: "."
ordinal_rule: english
rules: [century_form]
list_words: [and, or]
words:
  - word: one
    atoms: [{category: digit, value: 1}]
  - word: twenty
    atoms: [{category: tens, value: 20}]
  - word: twentyone
    atoms:
      - {category: tens, value: 20}
      - {category: digit, value: 1}
  - word: hundred
    atoms: [{category: scale, value: 100, flags: [no_explicit_one]}]
  - word: first
    atoms: [{category: digit, value: 1, ordinal: true}]
  - word: and
    atoms: [{category: conjunction}]
`

func TestLoad(t *testing.T) {
	t.Parallel()

	l, err := Load(strings.NewReader(shortLexicon))
	require.NoError(t, err)
	assert.Equal(t, "en-x-short", l.Code())
	assert.Equal(t, "Short English", l.Name())
	assert.True(t, l.Has(CenturyForm))
	assert.True(t, l.IsListWord("or"))
	assert.Equal(t, EnglishSuffix, l.OrdinalRule())

	atoms, ok := l.Lookup("twentyone")
	require.True(t, ok)
	assert.Equal(t, "tens(20) digit(1)", atomString(atoms))

	atoms, ok = l.Lookup("hundred")
	require.True(t, ok)
	assert.True(t, atoms[0].Has(NoExplicitOne))
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", "empty lexicon"},
		{"not yaml", "code: [", "decode lexicon"},
		{"unknown field", shortLexicon + "extra: 1\n", "field extra not found"},
		{"unknown category", strings.Replace(shortLexicon, "category: digit", "category: dozen", 1), "unknown category"},
		{"unknown flag", strings.Replace(shortLexicon, "no_explicit_one", "no_such_flag", 1), "unknown flag"},
		{"unknown rule", strings.Replace(shortLexicon, "century_form", "roman", 1), "unknown rule"},
		{"unknown ordinal rule", strings.Replace(shortLexicon, "ordinal_rule: english", "ordinal_rule: roman", 1), "unknown ordinal rule"},
		{"invalid spec", strings.Replace(shortLexicon, "value: 20}]", "value: 25}]", 1), "tens value 25"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Load(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadTooLarge(t *testing.T) {
	t.Parallel()

	input := shortLexicon + "# " + strings.Repeat("x", maxLexiconBytes) + "\n"
	_, err := Load(strings.NewReader(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds")
}

func TestMarshalRoundTrip(t *testing.T) {
	t.Parallel()

	for _, l := range Builtins() {
		t.Run(l.Code(), func(t *testing.T) {
			t.Parallel()

			data, err := l.Marshal()
			require.NoError(t, err)

			loaded, err := Load(bytes.NewReader(data))
			require.NoError(t, err)

			assert.Equal(t, l.Code(), loaded.Code())
			assert.Equal(t, l.Rules(), loaded.Rules())
			assert.Equal(t, l.Ladder(), loaded.Ladder())
			assert.Equal(t, l.DecimalSeparator(), loaded.DecimalSeparator())
			assert.Equal(t, l.OrdinalRule(), loaded.OrdinalRule())
			assert.Equal(t, l.Spec(), loaded.Spec())
		})
	}
}
