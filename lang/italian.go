package lang

// Word tables for Italian. Compound numerals are not listed; they are
// segmented over these words. Elided stems ("vent", "cent") and ordinal
// tails ("unesimo") exist only inside compounds.

var italianListWords = []string{
	"e", "o", "a", "fino", "poi", "più", "meno", "per", "ehm", "eh", "ah",
	"ok", "sì", "allora", "dunque", "cioè", "è",
}

var italianOrdinalEndings = []ending{
	{"o", "º"}, {"a", "ª"}, {"i", "º"}, {"e", "ª"},
}

func italianSpec() Spec {
	t := newTable()

	t.series(Digit, 0, 1, "zero", "uno", "due", "tre", "quattro", "cinque", "sei", "sette", "otto", "nove")
	t.add("un", digit(1))
	t.add("una", digit(1))
	t.add("tré", digit(3).with(CompoundOnly))
	t.series(Teen, 10, 1, "dieci", "undici", "dodici", "tredici", "quattordici", "quindici",
		"sedici", "diciassette", "diciotto", "diciannove")
	t.series(Tens, 20, 10, "venti", "trenta", "quaranta", "cinquanta", "sessanta", "settanta", "ottanta", "novanta")
	for i, s := range []string{"vent", "trent", "quarant", "cinquant", "sessant", "settant", "ottant", "novant"} {
		t.add(s, tens(int64(i+2)*10).with(Elided|CompoundOnly))
	}

	t.add("cento", scale(100).with(NoExplicitOne))
	t.add("cent", scale(100).with(NoExplicitOne|Elided|CompoundOnly))
	t.add("mille", scale(1000).with(NoExplicitOne|SingularOnly))
	t.add("mila", scale(1000).with(PluralOnly))
	t.add("milione", scale(million).with(SingularOnly))
	t.add("milioni", scale(million).with(PluralOnly))
	t.add("miliardo", scale(billion).with(SingularOnly))
	t.add("miliardi", scale(billion).with(PluralOnly))
	t.add("bilione", scale(trillion).with(SingularOnly))
	t.add("bilioni", scale(trillion).with(PluralOnly))

	t.add("e", conj())
	t.add("virgola", marker())
	t.add("punto", marker())
	t.add("meno", sign())

	t.inflect("prim", italianOrdinalEndings, digit(1).with(StartOnly))
	t.inflectEach(Digit, italianOrdinalEndings,
		stem{"second", 2}, stem{"terz", 3}, stem{"quart", 4}, stem{"quint", 5},
		stem{"sest", 6}, stem{"settim", 7}, stem{"ottav", 8}, stem{"non", 9})
	t.inflectEach(Teen, italianOrdinalEndings,
		stem{"decim", 10}, stem{"undicesim", 11}, stem{"dodicesim", 12}, stem{"tredicesim", 13},
		stem{"quattordicesim", 14}, stem{"quindicesim", 15}, stem{"sedicesim", 16},
		stem{"diciassettesim", 17}, stem{"diciottesim", 18}, stem{"diciannovesim", 19})
	t.inflectEach(Tens, italianOrdinalEndings,
		stem{"ventesim", 20}, stem{"trentesim", 30}, stem{"quarantesim", 40},
		stem{"cinquantesim", 50}, stem{"sessantesim", 60}, stem{"settantesim", 70},
		stem{"ottantesim", 80}, stem{"novantesim", 90})
	t.inflect("centesim", italianOrdinalEndings, scale(100))
	t.inflect("millesim", italianOrdinalEndings, scale(1000))
	t.inflect("milionesim", italianOrdinalEndings, scale(million))
	t.inflect("miliardesim", italianOrdinalEndings, scale(billion))

	// Tails of compound ordinals: ventunesimo, trentatreesimo.
	for i, s := range []string{"unesim", "duesim", "treesim", "quattresim", "cinquesim",
		"seiesim", "settesim", "ottesim", "novesim"} {
		t.inflect(s, italianOrdinalEndings, digit(int64(i)+1).with(CompoundOnly))
	}

	return Spec{
		Code:             "it",
		Name:             "Italian",
		Ladder:           []int64{100, 1000, million, billion, trillion},
		DecimalSeparator: ",",
		OrdinalRule:      SuffixFromWord,
		Rules:            MultiplicativeScales | Compounding | Elision,
		TensBlockedUnits: []int64{1, 8},
		ListWords:        italianListWords,
		Words:            t.entries,
	}
}
