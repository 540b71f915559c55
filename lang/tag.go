package lang

import (
	"fmt"

	"golang.org/x/text/language"
)

// supported lists the built-in languages in matcher order. The first entry
// is the matcher's fallback and is never returned for a non-matching tag.
var supported = []struct {
	tag  language.Tag
	lang func() *Language
}{
	{language.English, English},
	{language.French, French},
	{language.MustParse("fr-BE"), FrenchBelgium},
	{language.MustParse("fr-CH"), FrenchSwitzerland},
	{language.Spanish, Spanish},
	{language.EuropeanPortuguese, Portuguese},
	{language.BrazilianPortuguese, BrazilianPortuguese},
	{language.Italian, Italian},
	{language.German, German},
	{language.Dutch, Dutch},
}

var matcher = func() language.Matcher {
	tags := make([]language.Tag, len(supported))
	for i, s := range supported {
		tags[i] = s.tag
	}
	return language.NewMatcher(tags)
}()

// ForTag returns the built-in language that best matches a BCP 47 tag.
// Regional tags resolve to their variant ("fr-CH", "pt-BR") or to the
// base language ("es-MX", "de-AT"); plain "pt" resolves to Portuguese.
func ForTag(tag string) (*Language, error) {
	if tag == "" {
		return nil, fmt.Errorf("lang: empty language tag")
	}
	t, err := language.Parse(tag)
	if err != nil {
		return nil, fmt.Errorf("lang: parse tag %q: %w", truncate(tag), err)
	}
	if base, _ := t.Base(); base.String() == "pt" {
		if region, conf := t.Region(); conf == language.Exact && region.String() == "BR" {
			return BrazilianPortuguese(), nil
		}
		return Portuguese(), nil
	}
	_, idx, conf := matcher.Match(t)
	if conf == language.No {
		return nil, fmt.Errorf("lang: unsupported language %q", truncate(tag))
	}
	return supported[idx].lang(), nil
}
