package lang

import (
	"bytes"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// maxLexiconBytes caps the size of a YAML lexicon read by Load.
const maxLexiconBytes = 4 << 20

// Load reads a YAML lexicon and builds a Language from it. Unknown keys are
// rejected. The document has the shape of Spec:
//
//	code: en-x-short
//	ladder: [100, 1000]
//	decimal_separator: "."
//	ordinal_rule: english
//	rules: [century_form]
//	list_words: [and]
//	words:
//	  - word: one
//	    atoms: [{category: digit, value: 1}]
func Load(r io.Reader) (*Language, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxLexiconBytes+1))
	if err != nil {
		return nil, fmt.Errorf("lang: read lexicon: %w", err)
	}
	if len(data) > maxLexiconBytes {
		return nil, fmt.Errorf("lang: lexicon exceeds %d bytes", maxLexiconBytes)
	}

	var spec Spec
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&spec); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("lang: empty lexicon")
		}
		return nil, fmt.Errorf("lang: decode lexicon: %w", err)
	}
	return New(spec)
}

// Marshal encodes the language's configuration as a YAML lexicon that Load
// reads back into an equivalent Language.
func (l *Language) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(l.Spec())
	if err != nil {
		return nil, fmt.Errorf("lang: encode lexicon: %w", err)
	}
	return data, nil
}
