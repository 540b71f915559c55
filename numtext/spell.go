// Spelling integers out in words, the inverse of Parse.
package numtext

import (
	"errors"
	"fmt"
	"strings"

	"github.com/az-ai-labs/text2num/lang"
)

// speller spells non-negative integers below maxSpell in one language.
type speller struct {
	minus string
	spell func(n int64) string
}

var spellers = map[string]speller{
	"en":    {"minus", spellEnglish},
	"fr":    {"moins", frenchSpeller{}.spell},
	"fr-BE": {"moins", frenchSpeller{septante: true, nonante: true}.spell},
	"fr-CH": {"moins", frenchSpeller{septante: true, huitante: true, nonante: true}.spell},
	"es":    {"menos", spellSpanish},
	"pt":    {"menos", portugueseSpeller{}.spell},
	"pt-BR": {"menos", portugueseSpeller{brazil: true}.spell},
	"it":    {"meno", spellItalian},
	"de":    {"minus", spellGerman},
	"nl":    {"min", spellDutch},
}

// Spell returns the canonical words for n in language l, e.g.
// "quatre-vingt-dix-sept" for 97 in French and "nonante-sept" in
// Belgian French. Parse reads the result back to n.
//
// Spell supports the built-in languages (matched by code) and
// |n| < 10^15.
func Spell(n int64, l *lang.Language) (string, error) {
	if l == nil {
		return "", errors.New("numtext: nil language")
	}
	sp, ok := spellers[l.Code()]
	if !ok {
		return "", fmt.Errorf("numtext: spell: no spelling rules for language %q", truncate(l.Code()))
	}
	if n <= -maxSpell || n >= maxSpell {
		return "", fmt.Errorf("numtext: spell: %d is out of range", n)
	}
	if n < 0 {
		return sp.minus + " " + sp.spell(-n), nil
	}
	return sp.spell(n), nil
}

func spellEnglish(n int64) string {
	if n == 0 {
		return englishSmall[0]
	}
	parts := make([]string, 0, 2*len(englishScales)+1)
	for _, sc := range englishScales {
		if c := n / sc.value; c > 0 {
			parts = append(parts, englishGroup(c), sc.singular)
			n %= sc.value
		}
	}
	if n > 0 {
		parts = append(parts, englishGroup(n))
	}
	return strings.Join(parts, " ")
}

// englishGroup spells n in [1, 999].
func englishGroup(n int64) string {
	var parts []string
	if h := n / 100; h > 0 {
		parts = append(parts, englishSmall[h], "hundred")
	}
	switch r := n % 100; {
	case r == 0:
	case r < 20:
		parts = append(parts, englishSmall[r])
	case r%10 == 0:
		parts = append(parts, englishTens[r/10])
	default:
		parts = append(parts, englishTens[r/10]+"-"+englishSmall[r%10])
	}
	return strings.Join(parts, " ")
}

// frenchSpeller spells French. The flags select the regional tens;
// without them 70, 80 and 90 are vigesimal.
type frenchSpeller struct {
	septante, huitante, nonante bool
}

func (f frenchSpeller) spell(n int64) string {
	if n == 0 {
		return frenchSmall[0]
	}
	var parts []string
	for _, sc := range frenchScales {
		if c := n / sc.value; c > 0 {
			word := sc.singular
			if c > 1 {
				word = sc.plural
			}
			parts = append(parts, f.group(c, true), word)
			n %= sc.value
		}
	}
	if c := n / thousand; c > 0 {
		// "mille" is invariable and never takes "un".
		if c > 1 {
			parts = append(parts, f.group(c, false))
		}
		parts = append(parts, "mille")
		n %= thousand
	}
	if n > 0 {
		parts = append(parts, f.group(n, true))
	}
	return strings.Join(parts, " ")
}

// group spells n in [1, 999]. final marks a group that is not followed by
// "mille"; only then do "cents" and "quatre-vingts" take the plural.
func (f frenchSpeller) group(n int64, final bool) string {
	h, r := n/100, n%100
	var parts []string
	switch {
	case h == 1:
		parts = append(parts, "cent")
	case h > 1 && r == 0 && final:
		parts = append(parts, frenchSmall[h], "cents")
	case h > 1:
		parts = append(parts, frenchSmall[h], "cent")
	}
	if r > 0 {
		parts = append(parts, f.below100(r, final))
	}
	return strings.Join(parts, " ")
}

func (f frenchSpeller) below100(n int64, final bool) string {
	switch {
	case n < 17:
		return frenchSmall[n]
	case n < 20:
		return "dix-" + frenchSmall[n-10]
	}
	t, u := n/10, n%10
	switch {
	case t == 7 && !f.septante:
		if u == 1 {
			return "soixante et onze"
		}
		return "soixante-" + f.below100(10+u, final)
	case t == 8 && !f.huitante:
		if u > 0 {
			return "quatre-vingt-" + frenchSmall[u]
		}
		if final {
			return "quatre-vingts"
		}
		return "quatre-vingt"
	case t == 9 && !f.nonante:
		return "quatre-vingt-" + f.below100(10+u, final)
	}
	switch u {
	case 0:
		return frenchTens[t]
	case 1:
		return frenchTens[t] + " et un"
	}
	return frenchTens[t] + "-" + frenchSmall[u]
}

func spellSpanish(n int64) string {
	if n == 0 {
		return spanishSmall[0]
	}
	var parts []string
	if c := n / trillion; c > 0 {
		if c == 1 {
			parts = append(parts, "un", "billón")
		} else {
			parts = append(parts, spanishBelowMillion(c, true), "billones")
		}
		n %= trillion
	}
	// Millions take a multiplier up to 999 999: "mil millones".
	if c := n / million; c > 0 {
		if c == 1 {
			parts = append(parts, "un", "millón")
		} else {
			parts = append(parts, spanishBelowMillion(c, true), "millones")
		}
		n %= million
	}
	if n > 0 {
		parts = append(parts, spanishBelowMillion(n, false))
	}
	return strings.Join(parts, " ")
}

// spanishBelowMillion spells n in [1, 999999]. apocope shortens a final
// "uno" to "un" before a noun: "veintiún millones".
func spanishBelowMillion(n int64, apocope bool) string {
	var parts []string
	if c := n / thousand; c > 0 {
		if c > 1 {
			parts = append(parts, spanishGroup(c, true))
		}
		parts = append(parts, "mil")
	}
	if r := n % thousand; r > 0 {
		parts = append(parts, spanishGroup(r, apocope))
	}
	return strings.Join(parts, " ")
}

// spanishGroup spells n in [1, 999].
func spanishGroup(n int64, apocope bool) string {
	h, r := n/100, n%100
	var parts []string
	switch {
	case h == 1 && r == 0:
		parts = append(parts, "cien")
	case h == 1:
		parts = append(parts, "ciento")
	case h > 1:
		parts = append(parts, spanishHundreds[h])
	}
	switch {
	case r == 0:
	case r == 1 && apocope:
		parts = append(parts, "un")
	case r == 21 && apocope:
		parts = append(parts, "veintiún")
	case r < 30:
		parts = append(parts, spanishSmall[r])
	default:
		parts = append(parts, spanishTens[r/10])
		if u := r % 10; u == 1 && apocope {
			parts = append(parts, "y", "un")
		} else if u > 0 {
			parts = append(parts, "y", spanishSmall[u])
		}
	}
	return strings.Join(parts, " ")
}

// portugueseSpeller spells European or Brazilian Portuguese. Europe uses
// the long scale ("mil milhões", "bilião"); Brazil the short scale.
type portugueseSpeller struct {
	brazil bool
}

var (
	europeanScales = []scaleWord{
		{trillion, "bilião", "biliões"},
		{million, "milhão", "milhões"},
	}
	brazilianScales = []scaleWord{
		{trillion, "trilhão", "trilhões"},
		{billion, "bilhão", "bilhões"},
		{million, "milhão", "milhões"},
	}
)

// portuguesePart is one scale group with the multiplier it was built from.
type portuguesePart struct {
	words string
	mult  int64
}

func (p portugueseSpeller) spell(n int64) string {
	if n == 0 {
		return portugueseSmall[0]
	}
	scales := europeanScales
	if p.brazil {
		scales = brazilianScales
	}
	var parts []portuguesePart
	for _, sc := range scales {
		if c := n / sc.value; c > 0 {
			if c == 1 {
				parts = append(parts, portuguesePart{"um " + sc.singular, c})
			} else {
				parts = append(parts, portuguesePart{p.belowMillion(c) + " " + sc.plural, c})
			}
			n %= sc.value
		}
	}
	if n > 0 {
		parts = append(parts, p.belowMillionParts(n)...)
	}
	return joinPortuguese(parts)
}

func (p portugueseSpeller) belowMillion(n int64) string {
	return joinPortuguese(p.belowMillionParts(n))
}

func (p portugueseSpeller) belowMillionParts(n int64) []portuguesePart {
	var parts []portuguesePart
	if c := n / thousand; c > 0 {
		if c == 1 {
			parts = append(parts, portuguesePart{"mil", c})
		} else {
			parts = append(parts, portuguesePart{p.group(c) + " mil", c})
		}
	}
	if r := n % thousand; r > 0 {
		parts = append(parts, portuguesePart{p.group(r), r})
	}
	return parts
}

// joinPortuguese puts "e" before the last group when that group is a
// round hundred or below one hundred: "mil e cem", "dois mil e cinco",
// but "mil duzentos e trinta".
func joinPortuguese(parts []portuguesePart) string {
	var b strings.Builder
	for i, pt := range parts {
		if i > 0 {
			if i == len(parts)-1 && (pt.mult < 100 || pt.mult%100 == 0) {
				b.WriteString(" e ")
			} else {
				b.WriteByte(' ')
			}
		}
		b.WriteString(pt.words)
	}
	return b.String()
}

// group spells n in [1, 999].
func (p portugueseSpeller) group(n int64) string {
	h, r := n/100, n%100
	var parts []string
	switch {
	case h == 1 && r == 0:
		parts = append(parts, "cem")
	case h == 1:
		parts = append(parts, "cento")
	case h > 1:
		parts = append(parts, portugueseHundreds[h])
	}
	if r > 0 {
		parts = append(parts, p.below100(r))
	}
	return strings.Join(parts, " e ")
}

func (p portugueseSpeller) below100(n int64) string {
	if n < 20 {
		if w, ok := brazilianSmall[n]; ok && p.brazil {
			return w
		}
		return portugueseSmall[n]
	}
	w := portugueseTens[n/10]
	if u := n % 10; u > 0 {
		w += " e " + portugueseSmall[u]
	}
	return w
}

func spellItalian(n int64) string {
	if n == 0 {
		return italianSmall[0]
	}
	var parts []string
	for _, sc := range italianScales {
		if c := n / sc.value; c > 0 {
			if c == 1 {
				parts = append(parts, "un", sc.singular)
			} else {
				parts = append(parts, accentTre(italianGroup(c)), sc.plural)
			}
			n %= sc.value
		}
	}
	if n > 0 {
		// Everything below a million is one word: "duemilatrecentoventi".
		var w string
		switch c := n / thousand; {
		case c == 1:
			w = "mille"
		case c > 1:
			w = italianGroup(c) + "mila"
		}
		parts = append(parts, accentTre(w+italianGroup(n%thousand)))
	}
	return strings.Join(parts, " ")
}

// italianGroup spells n in [0, 999] as one word; zero is empty.
func italianGroup(n int64) string {
	h, r := n/100, n%100
	var w string
	if h > 0 {
		if h > 1 {
			w = italianSmall[h]
		}
		w += "cento"
		// centotto, centottanta
		if r == 8 || r/10 == 8 {
			w = strings.TrimSuffix(w, "o")
		}
	}
	switch {
	case r == 0:
		return w
	case r < 20:
		return w + italianSmall[r]
	}
	tens := italianTens[r/10]
	u := r % 10
	// ventuno, ventotto
	if u == 1 || u == 8 {
		tens = tens[:len(tens)-1]
	}
	if u == 0 {
		return w + tens
	}
	return w + tens + italianSmall[u]
}

// accentTre writes a final "tre" of a compound as "tré": "ventitré".
func accentTre(w string) string {
	if w != "tre" && strings.HasSuffix(w, "tre") {
		return strings.TrimSuffix(w, "tre") + "tré"
	}
	return w
}

func spellGerman(n int64) string {
	if n == 0 {
		return germanSmall[0]
	}
	var parts []string
	for _, sc := range germanScales {
		if c := n / sc.value; c > 0 {
			if c == 1 {
				parts = append(parts, "eine", sc.singular)
			} else {
				parts = append(parts, germanGroup(c, true), sc.plural)
			}
			n %= sc.value
		}
	}
	if n > 0 {
		// Everything below a million is one word: "zweitausenddreihundert".
		var w string
		if c := n / thousand; c > 0 {
			w = germanGroup(c, true) + "tausend"
		}
		if r := n % thousand; r > 0 {
			w += germanGroup(r, false)
		}
		parts = append(parts, w)
	}
	return strings.Join(parts, " ")
}

// germanGroup spells n in [1, 999] as one word. A final one is "eins"
// unless a scale word follows.
func germanGroup(n int64, beforeScale bool) string {
	h, r := n/100, n%100
	var w string
	if h > 0 {
		w = germanUnit(h) + "hundert"
	}
	switch {
	case r == 0:
	case r == 1 && beforeScale:
		w += "ein"
	case r < 20:
		w += germanSmall[r]
	default:
		if u := r % 10; u > 0 {
			w += germanUnit(u) + "und"
		}
		w += germanTens[r/10]
	}
	return w
}

// germanUnit is the unit as written before "und", "hundert" or "tausend".
func germanUnit(u int64) string {
	if u == 1 {
		return "ein"
	}
	return germanSmall[u]
}

func spellDutch(n int64) string {
	if n == 0 {
		return dutchSmall[0]
	}
	var parts []string
	for _, sc := range dutchScales {
		if c := n / sc.value; c > 0 {
			parts = append(parts, dutchGroup(c), sc.singular)
			n %= sc.value
		}
	}
	if n > 0 {
		// Everything below a million is one word: "tweeduizenddriehonderd".
		var w string
		if c := n / thousand; c > 0 {
			if c > 1 {
				w = dutchGroup(c)
			}
			w += "duizend"
		}
		parts = append(parts, w+dutchGroup(n%thousand))
	}
	return strings.Join(parts, " ")
}

// dutchGroup spells n in [0, 999] as one word; zero is empty.
func dutchGroup(n int64) string {
	h, r := n/100, n%100
	var w string
	if h > 0 {
		if h > 1 {
			w = dutchSmall[h]
		}
		w += "honderd"
	}
	switch {
	case r == 0:
	case r < 20:
		w += dutchSmall[r]
	default:
		if u := r % 10; u > 0 {
			unit := dutchSmall[u]
			// tweeëntwintig, but vierentwintig
			if strings.HasSuffix(unit, "e") {
				w += unit + "ën"
			} else {
				w += unit + "en"
			}
		}
		w += dutchTens[r/10]
	}
	return w
}
