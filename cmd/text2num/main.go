// Command text2num converts numbers written in words to digits.
//
// It reads the files named on the command line, or stdin when there are
// none, and writes one result per input line to stdout:
//
//	replace  the line with its numbers written as digits (default)
//	parse    the number the whole line spells, or an empty line
//	find     one JSON object per number found
//	spell    the words for the integer on the line
//
// Configuration comes from a YAML file (-config or TEXT2NUM_CONFIG),
// environment variables and flags, flags taking precedence.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/az-ai-labs/text2num/internal/app"
	"github.com/az-ai-labs/text2num/internal/config"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config (default $TEXT2NUM_CONFIG)")
	langTag := flag.String("lang", "", "BCP 47 language tag, e.g. en, fr-CH, pt-BR")
	threshold := flag.Float64("threshold", 0, "smallest isolated one-word number to replace")
	mode := flag.String("mode", "", "replace, parse, find or spell")
	lexicon := flag.String("lexicon", "", "path to a YAML lexicon used instead of -lang")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] [files...]\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "lang":
			cfg.Lang = *langTag
		case "threshold":
			cfg.Threshold = *threshold
		case "mode":
			cfg.Mode = *mode
		case "lexicon":
			cfg.LexiconPath = *lexicon
		}
	})
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid flags", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg.Log)

	l, err := app.Language(cfg)
	if err != nil {
		logger.Error("select language", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner := app.NewRunner(cfg, l, logger)
	stats, err := runAll(ctx, runner, flag.Args())
	if err != nil {
		logger.Error("run failed", slog.String("error", err.Error()))
		stop()
		os.Exit(1)
	}

	logger.Info("done",
		slog.String("lang", l.Code()),
		slog.String("mode", cfg.Mode),
		slog.Int("lines", stats.Lines),
		slog.Int("numbers", stats.Numbers),
		slog.Int("failed", stats.Failed),
		slog.Duration("elapsed", stats.Elapsed),
	)
}

// runAll runs r over each named file in turn, or over stdin.
func runAll(ctx context.Context, r *app.Runner, paths []string) (app.Stats, error) {
	if len(paths) == 0 {
		return r.Run(ctx, os.Stdin, os.Stdout)
	}

	var total app.Stats
	for _, path := range paths {
		f, err := os.Open(filepath.Clean(path))
		if err != nil {
			return total, fmt.Errorf("open %s: %w", path, err)
		}
		stats, err := r.Run(ctx, f, os.Stdout)
		_ = f.Close()
		total.Add(stats)
		if err != nil {
			return total, fmt.Errorf("%s: %w", path, err)
		}
		slog.Debug("file done", slog.String("path", path), slog.Int("lines", stats.Lines))
	}
	return total, nil
}
