package lang

// Word tables for German. Compounds such as "zweihundertdreiundvierzig"
// are segmented over these words.

var germanListWords = []string{
	"aber", "ah", "äh", "ähm", "also", "auch", "bis", "dann", "denn", "doch",
	"dort", "eben", "eh", "genau", "gut", "halt", "ja", "mal", "minus", "naja",
	"noch", "nun", "ok", "oder", "plus", "schon", "sehen", "so", "und",
}

// Adjective endings of German ordinals: "dritte", "dritter", "drittes",
// "dritten", "drittem". Every form is written "3." in digits.
var germanOrdinalEndings = []ending{
	{"e", "."}, {"er", "."}, {"es", "."}, {"en", "."}, {"em", "."},
}

func germanSpec() Spec {
	t := newTable()

	t.series(Digit, 0, 1, "null", "eins", "zwei", "drei", "vier", "fünf", "sechs", "sieben", "acht", "neun")
	// Only "ein" joins a tens word: "einundzwanzig", never "eins und zwanzig".
	t.add("eins", digit(1).with(NoTensAfter))
	t.add("ein", digit(1))
	t.add("eine", digit(1).with(NoTensAfter))
	t.add("zwo", digit(2))
	t.series(Teen, 10, 1, "zehn", "elf", "zwölf", "dreizehn", "vierzehn", "fünfzehn",
		"sechzehn", "siebzehn", "achtzehn", "neunzehn")
	t.series(Tens, 20, 10, "zwanzig", "dreißig", "vierzig", "fünfzig", "sechzig", "siebzig", "achtzig", "neunzig")
	t.add("dreissig", tens(30))

	t.add("hundert", scale(100))
	t.add("tausend", scale(1000))
	t.add("million", scale(million).with(SingularOnly))
	t.add("millionen", scale(million).with(PluralOnly))
	t.add("milliarde", scale(billion).with(SingularOnly))
	t.add("milliarden", scale(billion).with(PluralOnly))
	t.add("billion", scale(trillion).with(SingularOnly))
	t.add("billionen", scale(trillion).with(PluralOnly))

	t.add("und", conj())
	t.add("komma", marker())
	t.add("minus", sign())

	t.inflectEach(Digit, germanOrdinalEndings,
		stem{"erst", 1}, stem{"zweit", 2}, stem{"dritt", 3}, stem{"viert", 4},
		stem{"fünft", 5}, stem{"sechst", 6}, stem{"siebt", 7}, stem{"siebent", 7},
		stem{"acht", 8}, stem{"neunt", 9})
	t.inflectEach(Teen, germanOrdinalEndings,
		stem{"zehnt", 10}, stem{"elft", 11}, stem{"zwölft", 12}, stem{"dreizehnt", 13},
		stem{"vierzehnt", 14}, stem{"fünfzehnt", 15}, stem{"sechzehnt", 16},
		stem{"siebzehnt", 17}, stem{"achtzehnt", 18}, stem{"neunzehnt", 19})
	t.inflectEach(Tens, germanOrdinalEndings,
		stem{"zwanzigst", 20}, stem{"dreißigst", 30}, stem{"dreissigst", 30},
		stem{"vierzigst", 40}, stem{"fünfzigst", 50}, stem{"sechzigst", 60},
		stem{"siebzigst", 70}, stem{"achtzigst", 80}, stem{"neunzigst", 90})
	t.inflect("hundertst", germanOrdinalEndings, scale(100))
	t.inflect("tausendst", germanOrdinalEndings, scale(1000))
	t.inflect("millionst", germanOrdinalEndings, scale(million))

	return Spec{
		Code:             "de",
		Name:             "German",
		Ladder:           []int64{100, 1000, million, billion, trillion},
		DecimalSeparator: ",",
		OrdinalRule:      SuffixFromWord,
		Rules:            UnitsBeforeTens | CenturyForm | TeenCenturies | Compounding | ConjAfterScale,
		ListWords:        germanListWords,
		Words:            t.entries,
	}
}
