package lang

// Word tables for European and Brazilian Portuguese.

var portugueseListWords = []string{
	"e", "ou", "a", "até", "menos", "mais", "vezes", "então", "depois",
	"bem", "isso", "é", "uh", "ah", "hum", "ok", "sim", "pois",
}

func portugueseSpec(brazil bool) Spec {
	t := newTable()

	t.series(Digit, 0, 1, "zero", "um", "dois", "três", "quatro", "cinco", "seis", "sete", "oito", "nove")
	t.add("uma", digit(1))
	t.add("duas", digit(2))
	t.series(Teen, 10, 1, "dez", "onze", "doze", "treze", "catorze", "quinze",
		"dezesseis", "dezessete", "dezoito", "dezenove")
	t.add("quatorze", teen(14))
	if !brazil {
		t.add("dezasseis", teen(16))
		t.add("dezassete", teen(17))
		t.add("dezanove", teen(19))
	}
	t.series(Tens, 20, 10, "vinte", "trinta", "quarenta", "cinquenta", "sessenta", "setenta", "oitenta", "noventa")
	t.add("cinqüenta", tens(50))

	t.add("cem", scale(100).with(Bare))
	t.add("cento", scale(100).with(NoScaleAfter|NoExplicitOne))
	for i, s := range []string{"duzent", "trezent", "quatrocent", "quinhent", "seiscent", "setecent", "oitocent", "novecent"} {
		d := int64(i) + 2
		t.add(s+"os", digit(d), scale(100))
		t.add(s+"as", digit(d), scale(100))
	}
	t.add("mil", scale(1000))
	t.add("milhão", scale(million).with(SingularOnly))
	t.add("milhões", scale(million).with(PluralOnly))
	t.add("bilhão", scale(billion).with(SingularOnly))
	t.add("bilhões", scale(billion).with(PluralOnly))
	if brazil {
		t.add("trilhão", scale(trillion).with(SingularOnly))
		t.add("trilhões", scale(trillion).with(PluralOnly))
	} else {
		t.add("bilião", scale(trillion).with(SingularOnly))
		t.add("biliões", scale(trillion).with(PluralOnly))
	}

	t.add("e", conj())
	t.add("vírgula", marker())
	t.add("ponto", marker())
	t.add("menos", sign())

	t.inflect("primeir", iberianOrdinalEndings, digit(1))
	t.inflect("segund", iberianOrdinalEndings, digit(2).with(NotInitial))
	t.inflectEach(Digit, iberianOrdinalEndings,
		stem{"terceir", 3}, stem{"quart", 4}, stem{"quint", 5}, stem{"sext", 6},
		stem{"sétim", 7}, stem{"oitav", 8}, stem{"non", 9})
	t.inflectEach(Teen, iberianOrdinalEndings,
		stem{"décim", 10}, stem{"undécim", 11}, stem{"duodécim", 12})
	t.inflectEach(Tens, iberianOrdinalEndings,
		stem{"vigésim", 20}, stem{"trigésim", 30}, stem{"quadragésim", 40},
		stem{"quinquagésim", 50}, stem{"sexagésim", 60}, stem{"septuagésim", 70},
		stem{"setuagésim", 70}, stem{"octogésim", 80}, stem{"nonagésim", 90})
	t.inflect("centésim", iberianOrdinalEndings, scale(100))
	for i, s := range []string{"ducentésim", "trecentésim", "quadringentésim", "quingentésim",
		"sexcentésim", "septingentésim", "octingentésim", "nongentésim"} {
		t.inflect(s, iberianOrdinalEndings, digit(int64(i)+2), scale(100))
	}
	t.inflect("seiscentésim", iberianOrdinalEndings, digit(6), scale(100))
	t.inflect("noningentésim", iberianOrdinalEndings, digit(9), scale(100))
	t.inflect("milésim", iberianOrdinalEndings, scale(1000))
	t.inflect("milionésim", iberianOrdinalEndings, scale(million))

	code, name := "pt", "Portuguese"
	if brazil {
		code, name = "pt-BR", "Portuguese (Brazil)"
	}
	return Spec{
		Code:             code,
		Name:             name,
		Ladder:           []int64{100, 1000, million, billion, trillion},
		DecimalSeparator: ",",
		OrdinalRule:      SuffixFromWord,
		Rules:            HundredsNeedConj | MultiplicativeScales | OrdinalSequence,
		TensBlockedUnits: []int64{1, 2, 3, 4, 5, 6, 7, 8, 9},
		ListWords:        portugueseListWords,
		Words:            t.entries,
	}
}
