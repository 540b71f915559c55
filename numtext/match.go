package numtext

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// Kind is the grammatical kind of a recognized number.
type Kind int

const (
	Cardinal Kind = iota // "forty-two" -> 42
	Ordinal              // "forty-second" -> 42nd
	Decimal              // "three point one four" -> 3.14
)

var kindNames = [...]string{
	Cardinal: "Cardinal",
	Ordinal:  "Ordinal",
	Decimal:  "Decimal",
}

var kindFromName = map[string]Kind{
	"Cardinal": Cardinal,
	"Ordinal":  Ordinal,
	"Decimal":  Decimal,
}

// String returns the name of the kind.
func (k Kind) String() string {
	if int(k) >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// MarshalJSON encodes the kind as a JSON string (e.g. "Ordinal").
func (k Kind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// UnmarshalJSON decodes a JSON string (e.g. "Ordinal") into a Kind.
func (k *Kind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	kk, ok := kindFromName[s]
	if !ok {
		return fmt.Errorf("numtext: unknown kind: %q", truncate(s))
	}
	*k = kk
	return nil
}

// Match is one recognized number.
//
// Start and End are byte offsets into the input for Parse, Replace and Find,
// and token positions in the source sequence for Transform. Tokens counts
// the source words the number was read from; whitespace is not counted.
type Match struct {
	Text   string  `json:"text"`  // digit form, e.g. "-12", "005", "21st", "3,14"
	Value  float64 `json:"value"` // numeric value; exact for integers up to 2^53
	Kind   Kind    `json:"kind"`
	Start  int     `json:"start"`
	End    int     `json:"end"`
	Tokens int     `json:"tokens"`
}

// String returns a debug representation, e.g. Ordinal("21st")[4:17].
func (m Match) String() string {
	return fmt.Sprintf("%s(%q)[%d:%d]", m.Kind, m.Text, m.Start, m.End)
}

// Decimal returns the exact value of the match. Unlike Value it keeps every
// decimal digit that was spoken and every integer up to 10^18.
func (m Match) Decimal() decimal.Decimal {
	s := strings.TrimRightFunc(m.Text, func(r rune) bool { return !unicode.IsDigit(r) })
	s = strings.Replace(s, ",", ".", 1)
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.NewFromFloat(m.Value)
	}
	return d
}

// truncate shortens s for inclusion in error messages.
func truncate(s string) string {
	const maxErrLen = 50
	if len(s) <= maxErrLen {
		return s
	}
	n := maxErrLen
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "..."
}
