package lang

// Word tables for French, including the Belgian and Swiss tens.

var frenchListWords = []string{
	"alors", "bien", "c'est", "encore", "ensuite", "et", "ou", "à",
	"euh", "heu", "ha", "ah", "hu", "hum", "moins", "ok", "oui",
	"plus", "puis", "voilà", "fois",
}

var frenchOrdinalEndings = []ending{{"ième", "ème"}, {"ièmes", "èmes"}}

func frenchSpec(code, name string) Spec {
	t := newTable()

	t.series(Digit, 0, 1, "zéro", "un", "deux", "trois", "quatre", "cinq", "six", "sept", "huit", "neuf")
	t.add("une", digit(1))
	t.series(Teen, 10, 1, "dix", "onze", "douze", "treize", "quatorze", "quinze", "seize")
	t.series(Tens, 20, 10, "vingt", "trente", "quarante", "cinquante", "soixante")
	t.add("vingts", tens(20))
	t.add("septante", tens(70))
	t.add("huitante", tens(80))
	t.add("octante", tens(80))
	t.add("nonante", tens(90))

	t.add("cent", scale(100).with(NoExplicitOne))
	t.add("cents", scale(100).with(PluralOnly))
	t.add("mille", scale(1000).with(NoExplicitOne))
	t.add("mil", scale(1000).with(NoExplicitOne))
	t.add("million", scale(million))
	t.add("millions", scale(million).with(PluralOnly))
	t.add("milliard", scale(billion))
	t.add("milliards", scale(billion).with(PluralOnly))
	t.add("billion", scale(trillion))
	t.add("billions", scale(trillion).with(PluralOnly))

	t.add("et", conj())
	t.add("virgule", marker())
	t.add("moins", sign())

	t.add("premier", digit(1).ord("er").with(StartOnly))
	t.add("première", digit(1).ord("ère").with(StartOnly))
	t.add("premiers", digit(1).ord("ers").with(StartOnly))
	t.add("premières", digit(1).ord("ères").with(StartOnly))
	t.add("second", digit(2).ord("nd").with(StartOnly))
	t.add("seconde", digit(2).ord("nde").with(StartOnly))

	t.inflect("un", frenchOrdinalEndings, digit(1).with(NotInitial))
	t.inflectEach(Digit, frenchOrdinalEndings,
		stem{"deux", 2}, stem{"trois", 3}, stem{"quatr", 4}, stem{"cinqu", 5},
		stem{"six", 6}, stem{"sept", 7}, stem{"huit", 8}, stem{"neuv", 9})
	t.inflectEach(Teen, frenchOrdinalEndings,
		stem{"dix", 10}, stem{"onz", 11}, stem{"douz", 12}, stem{"treiz", 13},
		stem{"quatorz", 14}, stem{"quinz", 15}, stem{"seiz", 16})
	t.inflectEach(Tens, frenchOrdinalEndings,
		stem{"vingt", 20}, stem{"trent", 30}, stem{"quarant", 40}, stem{"cinquant", 50},
		stem{"soixant", 60}, stem{"septant", 70}, stem{"huitant", 80}, stem{"octant", 80},
		stem{"nonant", 90})
	t.inflect("cent", frenchOrdinalEndings, scale(100))
	t.inflect("mill", frenchOrdinalEndings, scale(1000))
	t.inflect("million", frenchOrdinalEndings, scale(million))
	t.inflect("milliard", frenchOrdinalEndings, scale(billion))

	return Spec{
		Code:             code,
		Name:             name,
		Ladder:           []int64{100, 1000, million, billion, trillion},
		DecimalSeparator: ",",
		OrdinalRule:      SuffixFromWord,
		Rules:            TenCompound | MultiplicativeScales | CenturyForm | TeenCenturies,
		Vigesimal:        []int64{4},
		TensBlockedUnits: []int64{1},
		ListWords:        frenchListWords,
		Words:            t.entries,
	}
}
