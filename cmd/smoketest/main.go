// Command smoketest runs numtext over a directory of .txt files and checks
// invariants that must hold on any text:
//
//   - Replace equals the input with every Find match written over its span;
//   - Replace is idempotent;
//   - Parse of a match's source span gives the match text back.
//
// Usage:
//
//	go run ./cmd/smoketest -lang fr,de <directory>
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/az-ai-labs/text2num/lang"
	"github.com/az-ai-labs/text2num/numtext"
)

const (
	chunkSize      = 1 << 20 // 1 MB per read chunk, the numtext input limit
	maxWorkers     = 4
	expectedArgs   = 1
	bytesToKBShift = 10
	threshold      = 10
)

type fileDensity struct {
	path    string
	lang    string
	matches int
	bytes   int64
	density float64 // matches per KB
}

type Stats struct {
	mu              sync.Mutex
	filesScanned    int
	totalBytes      int64
	spliceOK        int
	spliceFail      int
	idempotentOK    int
	idempotentFail  int
	reparseFail     int
	densityOutliers int
	kindCounts      map[numtext.Kind]int
	densities       []fileDensity
}

type fileState struct {
	path          string
	lang          *lang.Language
	totalBytes    int64
	matches       int
	kindCounts    map[numtext.Kind]int
	spliceFailed  bool
	spliceLogged  bool
	notIdempotent bool
	idemLogged    bool
	reparseFail   int
}

func main() {
	tags := flag.String("lang", "en", "comma-separated language tags")
	flag.Parse()

	if flag.NArg() != expectedArgs {
		fmt.Fprintf(os.Stderr, "Usage: %s [-lang tags] <directory>\n", filepath.Base(os.Args[0]))
		os.Exit(1)
	}

	var langs []*lang.Language
	for tag := range strings.SplitSeq(*tags, ",") {
		l, err := lang.ForTag(strings.TrimSpace(tag))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		langs = append(langs, l)
	}

	dirPath := flag.Arg(0)
	stats := &Stats{
		kindCounts: make(map[numtext.Kind]int),
	}

	var filePaths []string
	err := filepath.WalkDir(dirPath, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".txt") {
			return nil
		}
		filePaths = append(filePaths, path)
		return nil
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error walking directory: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "Found %d files to process in %d languages\n", len(filePaths), len(langs))
	start := time.Now()

	semaphore := make(chan struct{}, maxWorkers)
	var wg sync.WaitGroup

	for _, path := range filePaths {
		for _, l := range langs {
			wg.Add(1)
			semaphore <- struct{}{}
			go func(p string, l *lang.Language) {
				defer wg.Done()
				defer func() { <-semaphore }()
				processFile(p, l, stats)
			}(path, l)
		}
	}

	wg.Wait()

	flagDensityOutliers(stats)

	fmt.Fprintf(os.Stderr, "\nCompleted in %s\n\n", time.Since(start).Round(time.Millisecond))
	printStats(stats)
}

func processFile(path string, l *lang.Language, stats *Stats) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening %s: %v\n", path, err)
		return
	}
	defer func() { _ = f.Close() }()

	fmt.Fprintf(os.Stderr, "START %s [%s]\n", path, l.Code())
	fileStart := time.Now()

	state := &fileState{
		path:       path,
		lang:       l,
		kindCounts: make(map[numtext.Kind]int),
	}

	buf := make([]byte, chunkSize)
	var leftover []byte

	for {
		n, err := f.Read(buf)
		if n > 0 {
			leftover = append(leftover, buf[:n]...)
			chunk := leftover

			if err == nil {
				if idx := bytes.LastIndexByte(chunk, '\n'); idx > 0 {
					leftover = make([]byte, len(chunk)-idx-1)
					copy(leftover, chunk[idx+1:])
					chunk = chunk[:idx+1]
				} else if len(chunk) < chunkSize {
					leftover = chunk
					continue
				} else {
					leftover = nil
				}
			} else {
				leftover = nil
			}

			state.processChunk(chunk)
		}

		if err != nil {
			break
		}
	}

	if len(leftover) > 0 {
		state.processChunk(leftover)
	}

	fmt.Fprintf(os.Stderr, "DONE  %s [%s] in %s (%d matches)\n",
		filepath.Base(path), l.Code(), time.Since(fileStart).Round(time.Millisecond), state.matches)

	mergeFileState(state, stats)
}

func (fs *fileState) processChunk(chunk []byte) {
	// Chunks end at a line break, so no number spans two of them.
	for text := range strings.Lines(string(chunk)) {
		fs.processText(text)
	}
}

func (fs *fileState) processText(text string) {
	fs.totalBytes += int64(len(text))

	found := numtext.Find(text, fs.lang, threshold)
	replaced := numtext.Replace(text, fs.lang, threshold)

	var sb strings.Builder
	sb.Grow(len(text))
	pos := 0
	for _, m := range found {
		fs.matches++
		fs.kindCounts[m.Kind]++
		sb.WriteString(text[pos:m.Start])
		sb.WriteString(m.Text)
		pos = m.End

		span := text[m.Start:m.End]
		if p, err := numtext.Parse(span, fs.lang); err != nil || p.Text != m.Text {
			fs.reparseFail++
			fmt.Fprintf(os.Stderr, "REPARSE_FAIL: %s [%s]: %q found as %q\n", fs.path, fs.lang.Code(), span, m.Text)
		}
	}
	sb.WriteString(text[pos:])

	if !fs.spliceFailed && sb.String() != replaced {
		fs.spliceFailed = true
		if !fs.spliceLogged {
			logDivergence("SPLICE_FAIL", fs.path, replaced, sb.String())
			fs.spliceLogged = true
		}
	}

	if !fs.notIdempotent {
		if again := numtext.Replace(replaced, fs.lang, threshold); again != replaced {
			fs.notIdempotent = true
			if !fs.idemLogged {
				logDivergence("IDEMPOTENCE_FAIL", fs.path, replaced, again)
				fs.idemLogged = true
			}
		}
	}
}

func mergeFileState(fs *fileState, stats *Stats) {
	stats.mu.Lock()
	defer stats.mu.Unlock()

	stats.filesScanned++
	stats.totalBytes += fs.totalBytes
	stats.reparseFail += fs.reparseFail

	if fs.spliceFailed {
		stats.spliceFail++
	} else {
		stats.spliceOK++
	}
	if fs.notIdempotent {
		stats.idempotentFail++
	} else {
		stats.idempotentOK++
	}

	for kind, count := range fs.kindCounts {
		stats.kindCounts[kind] += count
	}

	kb := float64(fs.totalBytes) / (1 << bytesToKBShift)
	density := 0.0
	if kb > 0 {
		density = float64(fs.matches) / kb
	}
	stats.densities = append(stats.densities, fileDensity{
		path:    fs.path,
		lang:    fs.lang.Code(),
		matches: fs.matches,
		bytes:   fs.totalBytes,
		density: density,
	})
}

func logDivergence(label, path, want, got string) {
	pos, g, w := firstDivergence(want, got)
	fmt.Fprintf(os.Stderr, "%s: %s: first divergence at byte %d (got 0x%02x, want 0x%02x)\n",
		label, path, pos, g, w)
}

// flagDensityOutliers computes the median match density per language and
// flags any file whose density exceeds 3x the median: usually a lexicon
// word that is common in running text.
func flagDensityOutliers(stats *Stats) {
	byLang := make(map[string][]float64)
	for _, fd := range stats.densities {
		byLang[fd.lang] = append(byLang[fd.lang], fd.density)
	}
	medians := make(map[string]float64, len(byLang))
	for code, values := range byLang {
		medians[code] = computeMedian(values)
	}

	for _, fd := range stats.densities {
		med := medians[fd.lang]
		if med > 0 && fd.density > 3*med {
			stats.densityOutliers++
			fmt.Fprintf(os.Stderr, "DENSITY_OUTLIER: %s [%s]: %d matches in %d bytes (%.2f/KB, median %.2f)\n",
				fd.path, fd.lang, fd.matches, fd.bytes, fd.density, med)
		}
	}
}

// firstDivergence finds the byte position where two strings first differ.
// Returns the position and the differing bytes from each string.
func firstDivergence(want, got string) (pos int, g, w byte) {
	n := min(len(want), len(got))
	for i := range n {
		if want[i] != got[i] {
			return i, got[i], want[i]
		}
	}
	pos = n
	if pos < len(got) {
		g = got[pos]
	}
	if pos < len(want) {
		w = want[pos]
	}
	return pos, g, w
}

func computeMedian(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2 //nolint:mnd // arithmetic mean of two middle values
	}
	return sorted[mid]
}

func printStats(stats *Stats) {
	fmt.Printf("Files scanned:           %d\n", stats.filesScanned)
	fmt.Printf("Total bytes:             %d\n", stats.totalBytes)
	fmt.Printf("Splice OK:               %d\n", stats.spliceOK)
	fmt.Printf("Splice FAIL:             %d\n", stats.spliceFail)
	fmt.Printf("Idempotent OK:           %d\n", stats.idempotentOK)
	fmt.Printf("Idempotent FAIL:         %d\n", stats.idempotentFail)
	fmt.Printf("Reparse FAIL:            %d\n", stats.reparseFail)
	fmt.Printf("Density outliers:        %d\n", stats.densityOutliers)
	fmt.Println()

	total := 0
	for _, count := range stats.kindCounts {
		total += count
	}

	fmt.Println("Match kind distribution:")
	for _, kind := range []numtext.Kind{numtext.Cardinal, numtext.Ordinal, numtext.Decimal} {
		printKindStats(kind, stats.kindCounts, total)
	}
}

func printKindStats(kind numtext.Kind, counts map[numtext.Kind]int, total int) {
	count := counts[kind]
	percentage := 0.0
	if total > 0 {
		percentage = float64(count) / float64(total) * 100
	}
	fmt.Printf("  %-15s %d  (%.1f%%)\n", kind.String()+":", count, percentage)
}
