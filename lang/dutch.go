package lang

// Word tables for Dutch. Compounds such as "tweeëntwintig" and
// "negentienhonderd" are segmented over these words.

var dutchListWords = []string{
	"en", "of", "tot", "plus", "min", "keer", "uh", "eh", "ehm", "dan",
	"dat", "is", "nog", "eens", "ja", "nee", "ok", "dus", "zo", "nou",
}

var dutchOrdinalEndings = []ending{{"", "e"}}

func dutchSpec() Spec {
	t := newTable()

	t.series(Digit, 0, 1, "nul", "een", "twee", "drie", "vier", "vijf", "zes", "zeven", "acht", "negen")
	t.add("één", digit(1))
	t.series(Teen, 10, 1, "tien", "elf", "twaalf", "dertien", "veertien", "vijftien",
		"zestien", "zeventien", "achttien", "negentien")
	t.series(Tens, 20, 10, "twintig", "dertig", "veertig", "vijftig", "zestig", "zeventig", "tachtig", "negentig")

	t.add("honderd", scale(100))
	t.add("duizend", scale(1000))
	t.add("miljoen", scale(million))
	t.add("miljard", scale(billion))
	t.add("biljoen", scale(trillion))

	t.add("en", conj())
	t.add("ën", conj())
	t.add("komma", marker())
	t.add("min", sign())
	t.add("minus", sign())

	t.inflectEach(Digit, dutchOrdinalEndings,
		stem{"eerste", 1}, stem{"tweede", 2}, stem{"derde", 3}, stem{"vierde", 4},
		stem{"vijfde", 5}, stem{"zesde", 6}, stem{"zevende", 7}, stem{"achtste", 8},
		stem{"negende", 9})
	t.inflectEach(Teen, dutchOrdinalEndings,
		stem{"tiende", 10}, stem{"elfde", 11}, stem{"twaalfde", 12}, stem{"dertiende", 13},
		stem{"veertiende", 14}, stem{"vijftiende", 15}, stem{"zestiende", 16},
		stem{"zeventiende", 17}, stem{"achttiende", 18}, stem{"negentiende", 19})
	t.inflectEach(Tens, dutchOrdinalEndings,
		stem{"twintigste", 20}, stem{"dertigste", 30}, stem{"veertigste", 40},
		stem{"vijftigste", 50}, stem{"zestigste", 60}, stem{"zeventigste", 70},
		stem{"tachtigste", 80}, stem{"negentigste", 90})
	t.inflect("honderdste", dutchOrdinalEndings, scale(100))
	t.inflect("duizendste", dutchOrdinalEndings, scale(1000))
	t.inflect("miljoenste", dutchOrdinalEndings, scale(million))
	t.inflect("miljardste", dutchOrdinalEndings, scale(billion))

	return Spec{
		Code:             "nl",
		Name:             "Dutch",
		Ladder:           []int64{100, 1000, million, billion, trillion},
		DecimalSeparator: ",",
		OrdinalRule:      SuffixFromWord,
		Rules:            UnitsBeforeTens | CenturyForm | Compounding | ConjAfterScale,
		ListWords:        dutchListWords,
		Words:            t.entries,
	}
}
