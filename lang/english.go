package lang

// Word tables for English.

var englishListWords = []string{
	"and", "or", "to", "then", "plus", "minus", "times",
	"uh", "um", "ah", "hum", "ok", "okay", "so", "well",
	"yes", "yeah", "is", "that's", "by",
}

func englishSpec() Spec {
	t := newTable()

	t.series(Digit, 0, 1, "zero", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine")
	t.add("nought", digit(0))
	t.add("naught", digit(0))
	t.add("o", digit(0).with(NotAlone))
	t.series(Teen, 10, 1, "ten", "eleven", "twelve", "thirteen", "fourteen",
		"fifteen", "sixteen", "seventeen", "eighteen", "nineteen")
	t.series(Tens, 20, 10, "twenty", "thirty", "forty", "fifty", "sixty", "seventy", "eighty", "ninety")
	t.add("fourty", tens(40))

	t.add("hundred", scale(100))
	t.add("thousand", scale(1000))
	t.add("million", scale(million))
	t.add("billion", scale(billion))
	t.add("trillion", scale(trillion))
	t.add("hundreds", scale(100).with(PluralOnly))
	t.add("thousands", scale(1000).with(PluralOnly))
	t.add("millions", scale(million).with(PluralOnly))
	t.add("billions", scale(billion).with(PluralOnly))
	t.add("trillions", scale(trillion).with(PluralOnly))

	// "a hundred", "a thousand" ...
	t.add("a hundred", scale(100))
	t.add("a thousand", scale(1000))
	t.add("a million", scale(million))
	t.add("a billion", scale(billion))

	t.add("and", conj())
	t.add("point", marker())
	t.add("minus", sign())
	t.add("negative", sign())

	// Suffixes come from the digits, so the atoms carry none.
	ordinals := []struct {
		word string
		atom Atom
	}{
		{"zeroth", digit(0)},
		{"first", digit(1)},
		{"second", digit(2)},
		{"third", digit(3)},
		{"fourth", digit(4)},
		{"fifth", digit(5)},
		{"sixth", digit(6)},
		{"seventh", digit(7)},
		{"eighth", digit(8)},
		{"ninth", digit(9)},
		{"tenth", teen(10)},
		{"eleventh", teen(11)},
		{"twelfth", teen(12)},
		{"thirteenth", teen(13)},
		{"fourteenth", teen(14)},
		{"fifteenth", teen(15)},
		{"sixteenth", teen(16)},
		{"seventeenth", teen(17)},
		{"eighteenth", teen(18)},
		{"nineteenth", teen(19)},
		{"twentieth", tens(20)},
		{"thirtieth", tens(30)},
		{"fortieth", tens(40)},
		{"fourtieth", tens(40)},
		{"fiftieth", tens(50)},
		{"sixtieth", tens(60)},
		{"seventieth", tens(70)},
		{"eightieth", tens(80)},
		{"ninetieth", tens(90)},
		{"hundredth", scale(100)},
		{"thousandth", scale(1000)},
		{"millionth", scale(million)},
		{"billionth", scale(billion)},
		{"trillionth", scale(trillion)},
	}
	for _, o := range ordinals {
		a := o.atom
		a.Ordinal = true
		t.add(o.word, a)
	}

	return Spec{
		Code:             "en",
		Name:             "English",
		Ladder:           []int64{100, 1000, million, billion, trillion},
		DecimalSeparator: ".",
		OrdinalRule:      EnglishSuffix,
		Rules:            CenturyForm | ConjAfterScale,
		ListWords:        englishListWords,
		Words:            t.entries,
	}
}
