package tokenizer

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// scan splits s into tokens using a rune-by-rune state machine.
// The caller guarantees s is non-empty.
//
// Rule priority (highest first):
//   - URL detection (http://, https://, www.)
//   - Email detection (backtrack from @)
//   - Whitespace runs
//   - Number grouping ('.' or ',' between digit groups)
//   - Words, with hyphen joining (U+002D, U+2010) and apostrophe joining
//     (U+0027, U+2019, U+02BC) between letters
//   - Default unicode classification
func scan(s string) []Token {
	tokens := make([]Token, 0, len(s)/4+1)

	i := 0
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])

		if r == 'h' || r == 'H' || r == 'w' || r == 'W' {
			if end, ok := scanURL(s, i); ok {
				tokens = append(tokens, Token{Text: s[i:end], Start: i, End: end, Type: URL})
				i = end
				continue
			}
		}

		if r == '@' {
			if start, end, ok := scanEmail(s, i); ok {
				// Words already emitted for the local part are folded into the email.
				tokens = trimTokensForEmail(tokens, start)
				tokens = append(tokens, Token{Text: s[start:end], Start: start, End: end, Type: Email})
				i = end
				continue
			}
		}

		switch {
		case unicode.IsSpace(r):
			end := i + size
			for end < len(s) {
				nr, ns := utf8.DecodeRuneInString(s[end:])
				if !unicode.IsSpace(nr) {
					break
				}
				end += ns
			}
			tokens = append(tokens, Token{Text: s[i:end], Start: i, End: end, Type: Space})
			i = end

		case isDigitByte(s[i]):
			tok := scanNumber(s, i)
			tokens = append(tokens, tok)
			i = tok.End

		case unicode.IsLetter(r):
			tok := scanWord(s, i)
			tokens = append(tokens, tok)
			i = tok.End

		case unicode.IsPunct(r):
			end := i + size
			// Runs of the same dash or dot ("--", "...") stay one token.
			if r == '-' || r == '.' {
				for end < len(s) && rune(s[end]) == r {
					end++
				}
			}
			tokens = append(tokens, Token{Text: s[i:end], Start: i, End: end, Type: Punctuation})
			i = end

		default:
			tokens = append(tokens, Token{Text: s[i : i+size], Start: i, End: i + size, Type: Symbol})
			i += size
		}
	}

	return tokens
}

// scanURL checks if s[pos:] starts with http://, https:// or www. and
// consumes until whitespace or end of string. Strips a single trailing
// punctuation mark (. , ! ? ; :) from the URL text.
func scanURL(s string, pos int) (end int, ok bool) {
	rest := s[pos:]
	prefixLen := 0
	switch {
	case hasPrefixFold(rest, "https://"):
		prefixLen = len("https://")
	case hasPrefixFold(rest, "http://"):
		prefixLen = len("http://")
	case hasPrefixFold(rest, "www."):
		prefixLen = len("www.")
	default:
		return 0, false
	}

	end = len(s)
	for j := pos + prefixLen; j < len(s); {
		r, size := utf8.DecodeRuneInString(s[j:])
		if unicode.IsSpace(r) {
			end = j
			break
		}
		j += size
	}

	if end > pos+prefixLen {
		last, lastSize := utf8.DecodeLastRuneInString(s[pos:end])
		if strings.ContainsRune(".,!?;:", last) {
			end -= lastSize
		}
	}

	if end <= pos+prefixLen {
		return 0, false
	}
	return end, true
}

// hasPrefixFold reports whether s starts with the ASCII lowercase prefix,
// ignoring ASCII case.
func hasPrefixFold(s, prefix string) bool {
	if len(s) < len(prefix) {
		return false
	}
	for i := 0; i < len(prefix); i++ {
		c := s[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		if c != prefix[i] {
			return false
		}
	}
	return true
}

// scanEmail detects an email around the @ at position atPos.
// It backtracks to find the local part and scans forward for the domain.
func scanEmail(s string, atPos int) (start, end int, ok bool) {
	start = atPos
	for start > 0 && isEmailLocalChar(s[start-1]) {
		start--
	}
	// RFC 5321 disallows dots as the first character.
	for start < atPos && s[start] == '.' {
		start++
	}
	if start == atPos {
		return 0, 0, false
	}

	end = atPos + 1
	for end < len(s) && isEmailDomainChar(s[end]) {
		end++
	}
	for end > atPos+1 && s[end-1] == '.' {
		end--
	}

	domain := s[atPos+1 : end]
	lastDot := strings.LastIndexByte(domain, '.')
	if lastDot < 1 {
		return 0, 0, false
	}
	tld := domain[lastDot+1:]
	if len(tld) < 2 || !isAllAlpha(tld) {
		return 0, 0, false
	}

	return start, end, true
}

// scanNumber reads a number token starting at position pos.
// A single '.' or ',' joins two digit groups ("3.14", "1,000", "2.500,75");
// a trailing separator is left for the punctuation rule.
func scanNumber(s string, pos int) Token {
	i := pos
	for i < len(s) && isDigitByte(s[i]) {
		i++
	}
	for i+1 < len(s) && (s[i] == '.' || s[i] == ',') && isDigitByte(s[i+1]) {
		i++
		for i < len(s) && isDigitByte(s[i]) {
			i++
		}
	}
	return Token{Text: s[pos:i], Start: pos, End: i, Type: Number}
}

// scanWord reads a word token starting at position pos.
// A word begins with a letter and may contain digits and combining marks.
// A single hyphen joins two letter/digit runs; an apostrophe joins two
// letter runs.
func scanWord(s string, pos int) Token {
	i := consumeWordRun(s, pos)

	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		next := i + size
		if next >= len(s) {
			break
		}
		nr, _ := utf8.DecodeRuneInString(s[next:])

		if isHyphen(r) && (unicode.IsLetter(nr) || unicode.IsDigit(nr)) {
			i = consumeWordRun(s, next)
			continue
		}

		if isApostrophe(r) && unicode.IsLetter(nr) {
			pr, _ := utf8.DecodeLastRuneInString(s[pos:i])
			if unicode.IsLetter(pr) || unicode.Is(unicode.Mn, pr) {
				i = consumeWordRun(s, next)
				continue
			}
		}

		break
	}

	return Token{Text: s[pos:i], Start: pos, End: i, Type: Word}
}

// trimTokensForEmail removes any tokens that overlap with the email local part
// starting at emailStart. This handles the case where we already emitted Word
// tokens for the local part before encountering the @ sign.
func trimTokensForEmail(tokens []Token, emailStart int) []Token {
	for len(tokens) > 0 {
		last := tokens[len(tokens)-1]
		if last.Start >= emailStart {
			tokens = tokens[:len(tokens)-1]
			continue
		}
		if last.End > emailStart {
			tokens[len(tokens)-1] = Token{
				Text:  last.Text[:emailStart-last.Start],
				Start: last.Start,
				End:   emailStart,
				Type:  last.Type,
			}
		}
		break
	}
	return tokens
}

// consumeWordRun consumes letters, digits, and combining marks.
func consumeWordRun(s string, pos int) int {
	for pos < len(s) {
		r, size := utf8.DecodeRuneInString(s[pos:])
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && !unicode.Is(unicode.Mn, r) {
			break
		}
		pos += size
	}
	return pos
}

func isHyphen(r rune) bool {
	return r == '-' || r == '‐'
}

func isApostrophe(r rune) bool {
	return r == '\'' || r == '’' || r == 'ʼ'
}

// isEmailLocalChar returns true for bytes valid in the local part of an email.
func isEmailLocalChar(c byte) bool {
	return isASCIIAlnum(c) || c == '.' || c == '_' || c == '%' || c == '+' || c == '-'
}

// isEmailDomainChar returns true for bytes valid in the domain part of an email.
func isEmailDomainChar(c byte) bool {
	return isASCIIAlnum(c) || c == '.' || c == '-'
}

func isASCIIAlnum(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || isDigitByte(c)
}

// isAllAlpha returns true if every byte in s is an ASCII letter.
func isAllAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !((c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')) {
			return false
		}
	}
	return true
}

// isDigitByte returns true for ASCII digit bytes.
func isDigitByte(b byte) bool {
	return b >= '0' && b <= '9'
}
