package app

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"github.com/az-ai-labs/text2num/internal/config"
	"github.com/az-ai-labs/text2num/lang"
	"github.com/az-ai-labs/text2num/numtext"
)

const (
	// batchLines is the number of lines processed concurrently before
	// their results are written.
	batchLines = 512
	// maxLineBytes bounds a single input line.
	maxLineBytes = 1 << 20
)

// Stats summarizes a run.
type Stats struct {
	Lines   int           // input lines read
	Numbers int           // numbers found or written
	Failed  int           // lines that could not be parsed or spelled
	Elapsed time.Duration // wall time of the run
}

// Add accumulates o into s.
func (s *Stats) Add(o Stats) {
	s.Lines += o.Lines
	s.Numbers += o.Numbers
	s.Failed += o.Failed
	s.Elapsed += o.Elapsed
}

// Runner processes text line by line in one of the config modes.
type Runner struct {
	lang      *lang.Language
	mode      string
	threshold float64
	workers   int
	logger    *slog.Logger
}

// NewRunner returns a Runner for cfg and language l.
func NewRunner(cfg *config.Config, l *lang.Language, logger *slog.Logger) *Runner {
	return &Runner{
		lang:      l,
		mode:      cfg.Mode,
		threshold: cfg.Threshold,
		workers:   cfg.Workers,
		logger:    logger,
	}
}

// result is the output of one line.
type result struct {
	out     []string // output lines, written in order
	numbers int
	failed  bool
}

// Run reads lines from in and writes one result per line to out, in
// input order. Lines are processed concurrently in batches. Find mode
// writes one JSON object per match and nothing for lines without one.
func (r *Runner) Run(ctx context.Context, in io.Reader, out io.Writer) (Stats, error) {
	start := time.Now()
	var stats Stats

	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	w := bufio.NewWriter(out)

	batch := make([]string, 0, batchLines)
	flush := func() error {
		results, err := r.process(ctx, batch)
		if err != nil {
			return err
		}
		for _, res := range results {
			stats.Numbers += res.numbers
			if res.failed {
				stats.Failed++
			}
			for _, line := range res.out {
				if _, err := w.WriteString(line); err != nil {
					return fmt.Errorf("app: write: %w", err)
				}
				if err := w.WriteByte('\n'); err != nil {
					return fmt.Errorf("app: write: %w", err)
				}
			}
		}
		batch = batch[:0]
		return nil
	}

	for sc.Scan() {
		stats.Lines++
		batch = append(batch, sc.Text())
		if len(batch) == batchLines {
			if err := flush(); err != nil {
				return stats, err
			}
		}
	}
	if err := sc.Err(); err != nil {
		return stats, fmt.Errorf("app: read: %w", err)
	}
	if err := flush(); err != nil {
		return stats, err
	}
	if err := w.Flush(); err != nil {
		return stats, fmt.Errorf("app: write: %w", err)
	}

	stats.Elapsed = time.Since(start)
	return stats, nil
}

// process runs a batch on up to r.workers goroutines.
func (r *Runner) process(ctx context.Context, lines []string) ([]result, error) {
	results := make([]result, len(lines))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)
	for i, line := range lines {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := r.line(line)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	// A canceled parent context leaves no error in the group when every
	// goroutine had already returned.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// line processes one input line.
func (r *Runner) line(s string) (result, error) {
	switch r.mode {
	case config.ModeReplace:
		found := numtext.Find(s, r.lang, r.threshold)
		return result{out: []string{splice(s, found)}, numbers: len(found)}, nil

	case config.ModeFind:
		found := numtext.Find(s, r.lang, r.threshold)
		out := make([]string, 0, len(found))
		for _, m := range found {
			data, err := json.Marshal(m)
			if err != nil {
				return result{}, fmt.Errorf("app: encode match: %w", err)
			}
			out = append(out, string(data))
		}
		return result{out: out, numbers: len(found)}, nil

	case config.ModeParse:
		m, err := numtext.Parse(s, r.lang)
		if err != nil {
			if !errors.Is(err, numtext.ErrNotANumber) {
				return result{}, err
			}
			r.logger.Debug("not a number", slog.String("line", truncate(s)))
			return result{out: []string{""}, failed: true}, nil
		}
		return result{out: []string{m.Text}, numbers: 1}, nil

	case config.ModeSpell:
		n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		if err != nil {
			r.logger.Debug("not an integer", slog.String("line", truncate(s)))
			return result{out: []string{""}, failed: true}, nil
		}
		words, err := numtext.Spell(n, r.lang)
		if err != nil {
			r.logger.Debug("spell failed", slog.Int64("n", n), slog.String("error", err.Error()))
			return result{out: []string{""}, failed: true}, nil
		}
		return result{out: []string{words}, numbers: 1}, nil
	}
	return result{}, fmt.Errorf("app: unknown mode %q", r.mode)
}

// splice writes the matches into s in place of their spans.
func splice(s string, found []numtext.Match) string {
	if len(found) == 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	pos := 0
	for _, m := range found {
		b.WriteString(s[pos:m.Start])
		b.WriteString(m.Text)
		pos = m.End
	}
	b.WriteString(s[pos:])
	return b.String()
}

const maxLogLen = 80

func truncate(s string) string {
	if len(s) <= maxLogLen {
		return s
	}
	n := maxLogLen
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "..."
}
