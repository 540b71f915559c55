package tokenizer

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"testing"
)

// verifyInvariants checks two invariants that must hold for every tokenization:
//   - Byte offset invariant: input[t.Start:t.End] == t.Text for every token.
//   - Reconstruction invariant: concatenating all token texts reproduces the input.
func verifyInvariants(t *testing.T, input string, tokens []Token) {
	t.Helper()
	for i, tok := range tokens {
		if got := input[tok.Start:tok.End]; got != tok.Text {
			t.Errorf("token %d offset invariant broken: input[%d:%d]=%q, Text=%q",
				i, tok.Start, tok.End, got, tok.Text)
		}
	}
	var buf strings.Builder
	for _, tok := range tokens {
		buf.WriteString(tok.Text)
	}
	if buf.String() != input {
		t.Errorf("reconstruction invariant broken:\ngot:  %q\nwant: %q", buf.String(), input)
	}
}

// ---------------------------------------------------------------------------
// Tokens: table-driven tests
// ---------------------------------------------------------------------------

func TestTokens(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Token
	}{
		// -- Words --

		{"simple word", "one", []Token{
			{Text: "one", Start: 0, End: 3, Type: Word},
		}},
		{"two words", "two things", []Token{
			{Text: "two", Start: 0, End: 3, Type: Word},
			{Text: " ", Start: 3, End: 4, Type: Space},
			{Text: "things", Start: 4, End: 10, Type: Word},
		}},
		{"accented word", "d\u00e9cimo", []Token{
			{Text: "d\u00e9cimo", Start: 0, End: 7, Type: Word},
		}},
		{"combining mark stays in word", "se\u0301ptimo", []Token{
			{Text: "se\u0301ptimo", Start: 0, End: 9, Type: Word},
		}},

		// -- Hyphens and apostrophes --

		{"hyphenated numeral", "twenty-one", []Token{
			{Text: "twenty-one", Start: 0, End: 10, Type: Word},
		}},
		{"french vigesimal", "quatre-vingt-dix-sept", []Token{
			{Text: "quatre-vingt-dix-sept", Start: 0, End: 21, Type: Word},
		}},
		{"double hyphen splits", "vingt--un", []Token{
			{Text: "vingt", Start: 0, End: 5, Type: Word},
			{Text: "--", Start: 5, End: 7, Type: Punctuation},
			{Text: "un", Start: 7, End: 9, Type: Word},
		}},
		{"trailing hyphen", "vingt-", []Token{
			{Text: "vingt", Start: 0, End: 5, Type: Word},
			{Text: "-", Start: 5, End: 6, Type: Punctuation},
		}},
		{"apostrophe joins", "c'est", []Token{
			{Text: "c'est", Start: 0, End: 5, Type: Word},
		}},
		{"typographic apostrophe joins", "c’est", []Token{
			{Text: "c’est", Start: 0, End: 7, Type: Word},
		}},

		// -- Numbers --

		{"plain digits", "42", []Token{
			{Text: "42", Start: 0, End: 2, Type: Number},
		}},
		{"decimal point", "3.14", []Token{
			{Text: "3.14", Start: 0, End: 4, Type: Number},
		}},
		{"grouped thousands", "2.500,75", []Token{
			{Text: "2.500,75", Start: 0, End: 8, Type: Number},
		}},
		{"trailing comma not part of number", "3,", []Token{
			{Text: "3", Start: 0, End: 1, Type: Number},
			{Text: ",", Start: 1, End: 2, Type: Punctuation},
		}},
		{"ordinal digits", "21st", []Token{
			{Text: "21", Start: 0, End: 2, Type: Number},
			{Text: "st", Start: 2, End: 4, Type: Word},
		}},

		// -- Punctuation and spaces --

		{"comma list", "one, two", []Token{
			{Text: "one", Start: 0, End: 3, Type: Word},
			{Text: ",", Start: 3, End: 4, Type: Punctuation},
			{Text: " ", Start: 4, End: 5, Type: Space},
			{Text: "two", Start: 5, End: 8, Type: Word},
		}},
		{"ellipsis is one token", "one...", []Token{
			{Text: "one", Start: 0, End: 3, Type: Word},
			{Text: "...", Start: 3, End: 6, Type: Punctuation},
		}},
		{"mixed whitespace merged", "a \t\n b", []Token{
			{Text: "a", Start: 0, End: 1, Type: Word},
			{Text: " \t\n ", Start: 1, End: 5, Type: Space},
			{Text: "b", Start: 5, End: 6, Type: Word},
		}},

		// -- URL and email --

		{"https url", "see https://example.com/1.", []Token{
			{Text: "see", Start: 0, End: 3, Type: Word},
			{Text: " ", Start: 3, End: 4, Type: Space},
			{Text: "https://example.com/1", Start: 4, End: 25, Type: URL},
			{Text: ".", Start: 25, End: 26, Type: Punctuation},
		}},
		{"www url", "www.one.com", []Token{
			{Text: "www.one.com", Start: 0, End: 11, Type: URL},
		}},
		{"email", "one@two.org", []Token{
			{Text: "one@two.org", Start: 0, End: 11, Type: Email},
		}},
		{"at sign without domain", "one@two", []Token{
			{Text: "one", Start: 0, End: 3, Type: Word},
			{Text: "@", Start: 3, End: 4, Type: Punctuation},
			{Text: "two", Start: 4, End: 7, Type: Word},
		}},

		// -- Symbols --

		{"emoji", "one 👍", []Token{
			{Text: "one", Start: 0, End: 3, Type: Word},
			{Text: " ", Start: 3, End: 4, Type: Space},
			{Text: "👍", Start: 4, End: 8, Type: Symbol},
		}},
		{"invalid utf8 byte", "a\xffb", []Token{
			{Text: "a", Start: 0, End: 1, Type: Word},
			{Text: "\xff", Start: 1, End: 2, Type: Symbol},
			{Text: "b", Start: 2, End: 3, Type: Word},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Tokens(tt.input)
			verifyInvariants(t, tt.input, got)
			if len(got) != len(tt.want) {
				t.Fatalf("Tokens(%q) = %v, want %v", tt.input, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("token %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestTokensEmpty(t *testing.T) {
	t.Parallel()
	if got := Tokens(""); got != nil {
		t.Errorf("Tokens(\"\") = %v, want nil", got)
	}
}

func TestTokensLargeInput(t *testing.T) {
	t.Parallel()
	input := strings.Repeat("vingt-et-un, ", 10000)
	tokens := Tokens(input)
	verifyInvariants(t, input, tokens)
	if len(tokens) != 30000 {
		t.Errorf("got %d tokens, want 30000", len(tokens))
	}
}

func TestWords(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  []string
	}{
		{"", nil},
		{"one, two, three.", []string{"one", "two", "three"}},
		{"twenty-one 42 apples", []string{"twenty-one", "apples"}},
		{"mail one@two.org now", []string{"mail", "now"}},
	}

	for _, tt := range tests {
		got := Words(tt.input)
		if fmt.Sprint(got) != fmt.Sprint(tt.want) {
			t.Errorf("Words(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestTokenTypeString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		typ  TokenType
		want string
	}{
		{Word, "Word"},
		{Number, "Number"},
		{Punctuation, "Punctuation"},
		{Space, "Space"},
		{Symbol, "Symbol"},
		{URL, "URL"},
		{Email, "Email"},
		{TokenType(99), "TokenType(99)"},
	}

	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("TokenType(%d).String() = %q, want %q", int(tt.typ), got, tt.want)
		}
	}
}

func TestTokenTypeJSON(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(Token{Text: "one", Start: 0, End: 3, Type: Word})
	if err != nil {
		t.Fatal(err)
	}
	want := `{"text":"one","start":0,"end":3,"type":"Word"}`
	if string(data) != want {
		t.Errorf("Marshal = %s, want %s", data, want)
	}

	var tok Token
	if err := json.Unmarshal(data, &tok); err != nil {
		t.Fatal(err)
	}
	if tok.Type != Word {
		t.Errorf("Unmarshal type = %v, want Word", tok.Type)
	}

	var bad TokenType
	if err := json.Unmarshal([]byte(`"Sentence"`), &bad); err == nil {
		t.Error("expected error for unknown type name")
	}
}

func TestTokenString(t *testing.T) {
	t.Parallel()
	tok := Token{Text: "vingt", Start: 0, End: 5, Type: Word}
	if got, want := tok.String(), `Word("vingt")[0:5]`; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func BenchmarkTokens(b *testing.B) {
	s := strings.Repeat("Let me show you two things: first, one, two, three. ", 20)
	for b.Loop() {
		Tokens(s)
	}
}

func BenchmarkWords(b *testing.B) {
	s := strings.Repeat("quatre-vingt-dix-sept mille deux cent trente et un ", 20)
	for b.Loop() {
		Words(s)
	}
}

func ExampleTokens() {
	for _, tok := range Tokens("twenty-one, ok") {
		fmt.Println(tok)
	}
	// Output:
	// Word("twenty-one")[0:10]
	// Punctuation(",")[10:11]
	// Space(" ")[11:12]
	// Word("ok")[12:14]
}

func ExampleWords() {
	fmt.Println(Words("vingt et un, trente-deux."))
	// Output: [vingt et un trente-deux]
}

func FuzzTokens(f *testing.F) {
	f.Add("one, two, three")
	f.Add("quatre-vingt-dix-sept")
	f.Add("séptimo")
	f.Add("https://example.com one@two.org")
	f.Add("3.14 2.500,75")
	f.Add("")
	f.Add("\xff\xfe")
	f.Add("--'-'")

	f.Fuzz(func(t *testing.T, s string) {
		verifyInvariants(t, s, Tokens(s))
	})
}

func TestConcurrentSafety(t *testing.T) {
	t.Parallel()

	input := "vingt et un, trente-deux, quatre-vingt-dix-neuf"
	want := Tokens(input)

	var wg sync.WaitGroup
	for range 100 {
		wg.Go(func() {
			got := Tokens(input)
			if len(got) != len(want) {
				t.Errorf("concurrent Tokens: got %d tokens, want %d", len(got), len(want))
			}
		})
	}
	wg.Wait()
}
