package numtext

import (
	"strconv"
	"strings"

	"github.com/az-ai-labs/text2num/lang"
)

// format renders a committed state as digits.
//
//	cardinal  -12, 005
//	ordinal   21st, 3ème, 4º, 7.
//	decimal   3.1415, 0,05
func format(s *state, l *lang.Language) Match {
	v := s.value()

	var b strings.Builder
	b.Grow(s.zeros + s.nDigits + 24)
	if s.negative {
		b.WriteByte('-')
	}
	for range s.zeros {
		b.WriteByte('0')
	}
	if v != 0 || s.zeros == 0 {
		b.WriteString(strconv.FormatInt(v, 10))
	}

	value := float64(v)
	switch s.kind {
	case Ordinal:
		b.WriteString(l.OrdinalSuffix(v, s.suffix))
	case Decimal:
		digits := string(s.digits[:s.nDigits])
		b.WriteString(l.DecimalSeparator())
		b.WriteString(digits)
		if f, err := strconv.ParseFloat(strconv.FormatInt(v, 10)+"."+digits, 64); err == nil {
			value = f
		}
	}
	if s.negative {
		value = -value
	}

	return Match{Text: b.String(), Value: value, Kind: s.kind}
}
