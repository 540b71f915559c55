package numtext

import (
	"encoding/json"
	"flag"
	"os"
	"testing"

	"github.com/az-ai-labs/text2num/lang"
)

var updateGolden = flag.Bool("update", false, "regenerate golden test files")

// goldenCase is one Replace call. Lang is a BCP 47 tag.
type goldenCase struct {
	Name      string  `json:"name"`
	Lang      string  `json:"lang"`
	Threshold float64 `json:"threshold"`
	Input     string  `json:"input"`
	Want      string  `json:"want"`
}

const goldenPath = "../data/golden/numtext.json"

func TestGolden(t *testing.T) {
	cases := readGolden(t)
	if *updateGolden {
		writeGolden(t, cases)
		return
	}

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			t.Parallel()
			if got := Replace(tc.Input, goldenLang(t, tc.Lang), tc.Threshold); got != tc.Want {
				t.Errorf("Replace(%q, %g)\n got %q\nwant %q", tc.Input, tc.Threshold, got, tc.Want)
			}
		})
	}
}

func goldenLang(t *testing.T, tag string) *lang.Language {
	t.Helper()
	l, err := lang.ForTag(tag)
	if err != nil {
		t.Fatalf("ForTag(%q): %v", tag, err)
	}
	return l
}

func readGolden(t *testing.T) []goldenCase {
	t.Helper()

	data, err := os.ReadFile(goldenPath)
	if os.IsNotExist(err) && !*updateGolden {
		t.Skip("numtext.json not found")
	}
	if err != nil {
		t.Fatalf("reading golden file: %v", err)
	}
	var cases []goldenCase
	if err := json.Unmarshal(data, &cases); err != nil {
		t.Fatalf("parsing golden file: %v", err)
	}
	return cases
}

// writeGolden stores the current Replace output as each case's expectation.
func writeGolden(t *testing.T, cases []goldenCase) {
	t.Helper()

	for i := range cases {
		cases[i].Want = Replace(cases[i].Input, goldenLang(t, cases[i].Lang), cases[i].Threshold)
	}
	out, err := json.MarshalIndent(cases, "", "  ")
	if err != nil {
		t.Fatalf("marshaling golden data: %v", err)
	}
	if err := os.WriteFile(goldenPath, append(out, '\n'), 0o644); err != nil {
		t.Fatalf("writing golden file: %v", err)
	}
	t.Logf("rewrote %s, review the diff before committing", goldenPath)
}
