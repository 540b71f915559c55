package config

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/az-ai-labs/text2num/lang"
)

// maxWorkers bounds Config.Workers.
const maxWorkers = 256

// Validate checks the loaded configuration. Load calls it automatically;
// call it again after overriding fields.
func (c *Config) Validate() error {
	var errs []error

	if !slices.Contains(Modes, c.Mode) {
		errs = append(errs, fmt.Errorf("mode must be one of %s (got %q)", strings.Join(Modes, ", "), c.Mode))
	}
	if math.IsNaN(c.Threshold) || math.IsInf(c.Threshold, 0) || c.Threshold < 0 {
		errs = append(errs, fmt.Errorf("threshold must be a finite number >= 0 (got %v)", c.Threshold))
	}
	if c.Workers < 1 || c.Workers > maxWorkers {
		errs = append(errs, fmt.Errorf("workers must be in 1..%d (got %d)", maxWorkers, c.Workers))
	}
	if c.LexiconPath == "" {
		if _, err := lang.ForTag(c.Lang); err != nil {
			errs = append(errs, fmt.Errorf("lang: %w", err))
		}
	}
	if err := c.Log.validate(); err != nil {
		errs = append(errs, fmt.Errorf("log: %w", err))
	}

	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	switch strings.ToLower(l.Format) {
	case "text", "json":
		return nil
	default:
		return fmt.Errorf("format must be text or json (got %q)", l.Format)
	}
}
