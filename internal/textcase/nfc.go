package textcase

import "golang.org/x/text/unicode/norm"

// ComposeNFC returns s in Unicode Normalization Form C.
// Speech-to-text engines and some keyboards emit decomposed accents
// ("e" + U+0301), which would otherwise miss lexicon entries such as "séptimo".
func ComposeNFC(s string) string {
	if norm.NFC.IsNormalString(s) {
		return s
	}
	return norm.NFC.String(s)
}
