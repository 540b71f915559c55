package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/az-ai-labs/text2num/internal/config"
	"github.com/az-ai-labs/text2num/lang"
)

// Language returns the language the configuration selects: the YAML
// lexicon at LexiconPath when set, else the built-in language for Lang.
func Language(cfg *config.Config) (*lang.Language, error) {
	if cfg.LexiconPath == "" {
		l, err := lang.ForTag(cfg.Lang)
		if err != nil {
			return nil, fmt.Errorf("app: %w", err)
		}
		return l, nil
	}

	f, err := os.Open(filepath.Clean(cfg.LexiconPath))
	if err != nil {
		return nil, fmt.Errorf("app: open lexicon: %w", err)
	}
	defer func() { _ = f.Close() }()

	l, err := lang.Load(f)
	if err != nil {
		return nil, fmt.Errorf("app: load lexicon %s: %w", cfg.LexiconPath, err)
	}
	return l, nil
}
