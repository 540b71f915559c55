package app

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/az-ai-labs/text2num/internal/config"
	"github.com/az-ai-labs/text2num/lang"
	"github.com/az-ai-labs/text2num/numtext"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestRunner(t *testing.T, mode, tag string, threshold float64) *Runner {
	t.Helper()
	cfg := &config.Config{Lang: tag, Mode: mode, Threshold: threshold, Workers: 4}
	l, err := Language(cfg)
	require.NoError(t, err)
	return NewRunner(cfg, l, discardLogger())
}

func run(t *testing.T, r *Runner, input string) (string, Stats) {
	t.Helper()
	var out bytes.Buffer
	stats, err := r.Run(context.Background(), strings.NewReader(input), &out)
	require.NoError(t, err)
	return out.String(), stats
}

func TestRunner_Replace(t *testing.T) {
	t.Parallel()

	r := newTestRunner(t, config.ModeReplace, "en", 10)
	out, stats := run(t, r, "I have twenty one apples\none, two, three\nno numbers here\n")

	assert.Equal(t, "I have 21 apples\n1, 2, 3\nno numbers here\n", out)
	assert.Equal(t, 3, stats.Lines)
	assert.Equal(t, 4, stats.Numbers)
	assert.Zero(t, stats.Failed)
}

func TestRunner_ReplaceMatchesLibrary(t *testing.T) {
	t.Parallel()

	lines := []string{
		"dus twee en drie plus vijf, uh zes",
		"Een twaalfde",
		"dertien duizend nul negentig",
	}
	r := newTestRunner(t, config.ModeReplace, "nl", 10)
	out, _ := run(t, r, strings.Join(lines, "\n"))

	want := make([]string, len(lines))
	for i, s := range lines {
		want[i] = numtext.Replace(s, lang.Dutch(), 10)
	}
	assert.Equal(t, strings.Join(want, "\n")+"\n", out)
}

func TestRunner_KeepsOrder(t *testing.T) {
	t.Parallel()

	var in strings.Builder
	var want strings.Builder
	for i := range 3*batchLines + 7 {
		s, err := numtext.Spell(int64(i), lang.German())
		require.NoError(t, err)
		in.WriteString(s + "\n")
		want.WriteString(numtext.Replace(s, lang.German(), 0) + "\n")
	}

	r := newTestRunner(t, config.ModeReplace, "de", 0)
	out, stats := run(t, r, in.String())

	assert.Equal(t, want.String(), out)
	assert.Equal(t, 3*batchLines+7, stats.Lines)
}

func TestRunner_Parse(t *testing.T) {
	t.Parallel()

	r := newTestRunner(t, config.ModeParse, "es", 10)
	out, stats := run(t, r, "ochenta y cinco\ndoce manzanas\n  mil millones  \n")

	assert.Equal(t, "85\n\n1000000000\n", out)
	assert.Equal(t, 2, stats.Numbers)
	assert.Equal(t, 1, stats.Failed)
}

func TestRunner_Find(t *testing.T) {
	t.Parallel()

	r := newTestRunner(t, config.ModeFind, "en", 10)
	out, stats := run(t, r, "I have twenty one apples\nnothing\nthree point one four\n")

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 2)

	var m numtext.Match
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &m))
	assert.Equal(t, "21", m.Text)
	assert.Equal(t, numtext.Cardinal, m.Kind)
	assert.Equal(t, 7, m.Start)
	assert.Equal(t, 17, m.End)

	require.NoError(t, json.Unmarshal([]byte(lines[1]), &m))
	assert.Equal(t, "3.14", m.Text)
	assert.Equal(t, numtext.Decimal, m.Kind)

	assert.Equal(t, 2, stats.Numbers)
}

func TestRunner_Spell(t *testing.T) {
	t.Parallel()

	r := newTestRunner(t, config.ModeSpell, "fr-BE", 10)
	out, stats := run(t, r, "97\n71\nabc\n1000000000000000\n")

	assert.Equal(t, "nonante-sept\nseptante et un\n\n\n", out)
	assert.Equal(t, 2, stats.Numbers)
	assert.Equal(t, 2, stats.Failed)
}

func TestRunner_Canceled(t *testing.T) {
	t.Parallel()

	r := newTestRunner(t, config.ModeReplace, "en", 10)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Run(ctx, strings.NewReader("one\ntwo\n"), io.Discard)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunner_EmptyInput(t *testing.T) {
	t.Parallel()

	r := newTestRunner(t, config.ModeReplace, "en", 10)
	out, stats := run(t, r, "")

	assert.Empty(t, out)
	assert.Zero(t, stats.Lines)
}

func TestLanguage(t *testing.T) {
	t.Parallel()

	l, err := Language(&config.Config{Lang: "pt-BR"})
	require.NoError(t, err)
	assert.Equal(t, "pt-BR", l.Code())

	_, err = Language(&config.Config{Lang: "ja"})
	assert.Error(t, err)
}

const tinyLexicon = `
code: en-x-tiny
ladder: [100]
decimal_separator: "."
ordinal_rule: english
words:
  - word: one
    atoms: [{category: digit, value: 1}]
  - word: two
    atoms: [{category: digit, value: 2}]
`

func TestLanguage_Lexicon(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "tiny.yaml")
	require.NoError(t, os.WriteFile(path, []byte(tinyLexicon), 0o644))

	cfg := &config.Config{LexiconPath: path, Mode: config.ModeReplace, Threshold: 0, Workers: 1}
	l, err := Language(cfg)
	require.NoError(t, err)
	assert.Equal(t, "en-x-tiny", l.Code())

	out, _ := run(t, NewRunner(cfg, l, discardLogger()), "one and two\n")
	assert.Equal(t, "1 and 2\n", out)

	_, err = Language(&config.Config{LexiconPath: filepath.Join(t.TempDir(), "missing.yaml")})
	assert.Error(t, err)
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	short := "zwei Äpfel"
	assert.Equal(t, short, truncate(short))

	long := strings.Repeat("ü", maxLogLen)
	got := truncate(long)
	assert.True(t, utf8.ValidString(got), "truncate cut a rune: %q", got)
	assert.True(t, strings.HasSuffix(got, "..."))
	assert.LessOrEqual(t, len(got), maxLogLen+len("..."))
	assert.True(t, strings.HasPrefix(long, strings.TrimSuffix(got, "...")))
}
