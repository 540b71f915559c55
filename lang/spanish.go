package lang

// Word tables for Spanish.

var spanishListWords = []string{
	"y", "e", "o", "u", "a", "hasta", "entonces", "luego", "más", "menos",
	"por", "eh", "ah", "em", "este", "pues", "bueno", "sí", "vale", "es",
}

// Gender and number endings of Spanish and Portuguese ordinals.
var iberianOrdinalEndings = []ending{
	{"o", "º"}, {"a", "ª"}, {"os", "ᵒˢ"}, {"as", "ᵃˢ"},
}

func spanishSpec() Spec {
	t := newTable()

	t.series(Digit, 0, 1, "cero", "uno", "dos", "tres", "cuatro", "cinco", "seis", "siete", "ocho", "nueve")
	t.add("un", digit(1))
	t.add("una", digit(1))
	t.series(Teen, 10, 1, "diez", "once", "doce", "trece", "catorce", "quince",
		"dieciséis", "diecisiete", "dieciocho", "diecinueve")
	t.series(Tens, 20, 10, "veinte", "treinta", "cuarenta", "cincuenta", "sesenta", "setenta", "ochenta", "noventa")

	// veintiuno ... veintinueve are written as one word.
	for i, w := range []string{"veintiuno", "veintidós", "veintitrés", "veinticuatro", "veinticinco",
		"veintiséis", "veintisiete", "veintiocho", "veintinueve"} {
		t.add(w, tens(20), digit(int64(i)+1))
	}
	t.add("veintiún", tens(20), digit(1))
	t.add("veintiuna", tens(20), digit(1))

	t.add("cien", scale(100).with(Bare))
	t.add("ciento", scale(100).with(NoExplicitOne))
	t.add("cientos", scale(100).with(PluralOnly))
	for i, stem := range []string{"dosc", "tresc", "cuatroc", "quin", "seisc", "setec", "ochoc", "novec"} {
		d := []int64{2, 3, 4, 5, 6, 7, 8, 9}[i]
		t.add(stem+"ientos", digit(d), scale(100))
		t.add(stem+"ientas", digit(d), scale(100))
	}
	t.add("mil", scale(1000))
	t.add("millón", scale(million).with(SingularOnly))
	t.add("millones", scale(million).with(PluralOnly))
	t.add("billón", scale(trillion).with(SingularOnly))
	t.add("billones", scale(trillion).with(PluralOnly))

	t.add("y", conj())
	t.add("coma", marker())
	t.add("punto", marker())
	t.add("menos", sign())

	t.inflect("primer", iberianOrdinalEndings, digit(1))
	t.add("primer", digit(1).ord("ᵉʳ"))
	t.inflect("segund", iberianOrdinalEndings, digit(2).with(NotInitial))
	t.inflect("tercer", iberianOrdinalEndings, digit(3))
	t.add("tercer", digit(3).ord("ᵉʳ"))
	t.inflectEach(Digit, iberianOrdinalEndings,
		stem{"cuart", 4}, stem{"quint", 5}, stem{"sext", 6}, stem{"séptim", 7},
		stem{"sétim", 7}, stem{"octav", 8}, stem{"noven", 9}, stem{"non", 9})
	t.inflectEach(Teen, iberianOrdinalEndings,
		stem{"décim", 10}, stem{"undécim", 11}, stem{"duodécim", 12},
		stem{"decimoprimer", 11}, stem{"decimosegund", 12}, stem{"decimotercer", 13},
		stem{"decimocuart", 14}, stem{"decimoquint", 15}, stem{"decimosext", 16},
		stem{"decimoséptim", 17}, stem{"decimoctav", 18}, stem{"decimonoven", 19})
	t.inflectEach(Tens, iberianOrdinalEndings,
		stem{"vigésim", 20}, stem{"trigésim", 30}, stem{"cuadragésim", 40},
		stem{"quincuagésim", 50}, stem{"sexagésim", 60}, stem{"septuagésim", 70},
		stem{"octogésim", 80}, stem{"nonagésim", 90})
	t.inflect("centésim", iberianOrdinalEndings, scale(100))
	for i, s := range []string{"ducentésim", "tricentésim", "cuadringentésim", "quingentésim",
		"sexcentésim", "septingentésim", "octingentésim", "noningentésim"} {
		t.inflect(s, iberianOrdinalEndings, digit(int64(i)+2), scale(100))
	}
	t.inflect("milésim", iberianOrdinalEndings, scale(1000))
	t.inflect("millonésim", iberianOrdinalEndings, scale(million))

	return Spec{
		Code:             "es",
		Name:             "Spanish",
		Ladder:           []int64{100, 1000, million, trillion},
		DecimalSeparator: ",",
		OrdinalRule:      SuffixFromWord,
		Rules:            MultiplicativeScales | OrdinalSequence,
		ListWords:        spanishListWords,
		Words:            t.entries,
	}
}
