// Package tokenizer splits text into words, numbers, punctuation, and
// whitespace with byte offsets, as input to numeral recognition.
//
// The invariant s[t.Start:t.End] == t.Text holds for every token, and
// concatenating all token texts reconstructs the original string. Replacing
// a span of tokens therefore never disturbs the surrounding text.
//
// Words keep their inner hyphens and apostrophes ("quatre-vingt-dix",
// "twenty-one", "c'est") so that a hyphenated numeral stays one source token.
// Combining marks are part of the word they follow, which keeps NFD input
// ("séptimo") in one piece.
//
// All functions are safe for concurrent use by multiple goroutines.
//
// Known limitations:
//
//   - Scripts without word separators (CJK, Thai) are emitted one Symbol
//     per rune; none of the supported languages need them.
//   - Bare domains without a protocol or "www." prefix are not URLs.
package tokenizer

import (
	"encoding/json"
	"fmt"
)

// wordsPerTokenEstimate is the estimated ratio of total tokens to word tokens,
// used to pre-allocate the words slice in the Words convenience function.
const wordsPerTokenEstimate = 2

// TokenType classifies a token.
type TokenType int

const (
	Word        TokenType = iota // Letters (any script) with inner hyphens and apostrophes
	Number                       // Digits, with inner '.' or ',' between digit groups
	Punctuation                  // Punctuation marks: . , ! ? : ; ( ) etc.
	Space                        // Contiguous whitespace (spaces, tabs, newlines)
	Symbol                       // Everything else: emoji, CJK, math symbols, invalid bytes
	URL                          // http://, https:// or www. prefixed sequences
	Email                        // user@domain.tld sequences
)

var typeNames = [...]string{
	Word:        "Word",
	Number:      "Number",
	Punctuation: "Punctuation",
	Space:       "Space",
	Symbol:      "Symbol",
	URL:         "URL",
	Email:       "Email",
}

var typeFromName = map[string]TokenType{
	"Word":        Word,
	"Number":      Number,
	"Punctuation": Punctuation,
	"Space":       Space,
	"Symbol":      Symbol,
	"URL":         URL,
	"Email":       Email,
}

// String returns the name of the token type.
func (t TokenType) String() string {
	if int(t) >= 0 && int(t) < len(typeNames) {
		return typeNames[t]
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

// MarshalJSON encodes the type as a JSON string (e.g. "Word").
func (t TokenType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON decodes a JSON string (e.g. "Word") into a TokenType.
func (t *TokenType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	tt, ok := typeFromName[s]
	if !ok {
		const maxErrLen = 50
		if len(s) > maxErrLen {
			s = s[:maxErrLen] + "..."
		}
		return fmt.Errorf("tokenizer: unknown token type: %q", s)
	}
	*t = tt
	return nil
}

// Token represents a unit of text with its position and classification.
type Token struct {
	Text  string    `json:"text"`
	Start int       `json:"start"` // Byte offset in the original string (inclusive)
	End   int       `json:"end"`   // Byte offset in the original string (exclusive)
	Type  TokenType `json:"type"`
}

// String returns a debug representation, e.g. Word("vingt")[0:5].
func (t Token) String() string {
	return fmt.Sprintf("%s(%q)[%d:%d]", t.Type, t.Text, t.Start, t.End)
}

// Tokens splits text into all tokens with metadata.
// The byte offset invariant s[t.Start:t.End] == t.Text holds for every token.
// Concatenating all token texts reconstructs the original string.
func Tokens(s string) []Token {
	if s == "" {
		return nil
	}
	return scan(s)
}

// Words returns only Word-type token texts from the text.
// For full control, use Tokens and filter by Type.
func Words(s string) []string {
	if s == "" {
		return nil
	}
	tokens := scan(s)
	words := make([]string, 0, len(tokens)/wordsPerTokenEstimate)
	for _, t := range tokens {
		if t.Type == Word {
			words = append(words, t.Text)
		}
	}
	return words
}
