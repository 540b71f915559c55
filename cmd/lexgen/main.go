// Command lexgen writes the built-in languages as YAML lexicons, the
// starting point for a custom lexicon loaded with lang.Load or
// text2num -lexicon.
//
//	go run ./cmd/lexgen -output data/lexicons
//	go run ./cmd/lexgen -lang fr-CH -output /tmp
//
// Output: one <code>.yaml per language.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/az-ai-labs/text2num/lang"
)

const (
	defaultOutput = "data/lexicons"
	fileMode      = 0o644
	dirMode       = 0o755
)

func main() {
	outputDir := flag.String("output", defaultOutput, "directory to write <code>.yaml files to")
	tags := flag.String("lang", "", "comma-separated language tags (default: all built-in languages)")
	flag.Parse()

	langs, err := selectLanguages(*tags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lexgen: %v\n", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(*outputDir, dirMode); err != nil {
		fmt.Fprintf(os.Stderr, "lexgen: create output dir: %v\n", err)
		os.Exit(1)
	}

	for _, l := range langs {
		path, err := writeLexicon(*outputDir, l)
		if err != nil {
			fmt.Fprintf(os.Stderr, "lexgen: %v\n", err)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Wrote %d words to %s\n", len(l.Spec().Words), path)
	}
}

// selectLanguages resolves a comma-separated tag list. An empty list
// selects every built-in language.
func selectLanguages(tags string) ([]*lang.Language, error) {
	if strings.TrimSpace(tags) == "" {
		return lang.Builtins(), nil
	}

	var langs []*lang.Language
	for tag := range strings.SplitSeq(tags, ",") {
		l, err := lang.ForTag(strings.TrimSpace(tag))
		if err != nil {
			return nil, err
		}
		if !slices.ContainsFunc(langs, func(o *lang.Language) bool { return o.Code() == l.Code() }) {
			langs = append(langs, l)
		}
	}
	return langs, nil
}

// writeLexicon writes l to dir/<code>.yaml and returns the path.
func writeLexicon(dir string, l *lang.Language) (string, error) {
	data, err := l.Marshal()
	if err != nil {
		return "", fmt.Errorf("%s: %w", l.Code(), err)
	}

	header := fmt.Sprintf("# %s lexicon generated by lexgen from the built-in tables.\n", l.Name())
	path := filepath.Join(dir, l.Code()+".yaml")
	if err := os.WriteFile(path, append([]byte(header), data...), fileMode); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
