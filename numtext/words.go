// Word tables for spelling numbers out.
package numtext

const (
	maxAbs   int64 = 1_000_000_000_000_000_000
	maxSpell int64 = 1_000_000_000_000_000

	thousand int64 = 1_000
	million  int64 = 1_000_000
	billion  int64 = 1_000_000_000
	trillion int64 = 1_000_000_000_000
)

// scaleWord is a named power of ten with its singular and plural forms.
type scaleWord struct {
	value            int64
	singular, plural string
}

var englishSmall = [20]string{
	"zero", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine",
	"ten", "eleven", "twelve", "thirteen", "fourteen", "fifteen", "sixteen",
	"seventeen", "eighteen", "nineteen",
}

// Tens tables are indexed by tens digit (2–9); indexes 0 and 1 are unused.
var englishTens = [10]string{
	"", "", "twenty", "thirty", "forty", "fifty", "sixty", "seventy", "eighty", "ninety",
}

var englishScales = []scaleWord{
	{trillion, "trillion", "trillion"},
	{billion, "billion", "billion"},
	{million, "million", "million"},
	{thousand, "thousand", "thousand"},
}

var frenchSmall = [17]string{
	"zéro", "un", "deux", "trois", "quatre", "cinq", "six", "sept", "huit", "neuf",
	"dix", "onze", "douze", "treize", "quatorze", "quinze", "seize",
}

var frenchTens = [10]string{
	"", "", "vingt", "trente", "quarante", "cinquante", "soixante", "septante", "huitante", "nonante",
}

var frenchScales = []scaleWord{
	{trillion, "billion", "billions"},
	{billion, "milliard", "milliards"},
	{million, "million", "millions"},
}

var spanishSmall = [30]string{
	"cero", "uno", "dos", "tres", "cuatro", "cinco", "seis", "siete", "ocho", "nueve",
	"diez", "once", "doce", "trece", "catorce", "quince", "dieciséis", "diecisiete",
	"dieciocho", "diecinueve", "veinte", "veintiuno", "veintidós", "veintitrés",
	"veinticuatro", "veinticinco", "veintiséis", "veintisiete", "veintiocho", "veintinueve",
}

var spanishTens = [10]string{
	"", "", "veinte", "treinta", "cuarenta", "cincuenta", "sesenta", "setenta", "ochenta", "noventa",
}

// Hundreds tables are indexed by hundreds digit (2–9).
var spanishHundreds = [10]string{
	"", "", "doscientos", "trescientos", "cuatrocientos", "quinientos",
	"seiscientos", "setecientos", "ochocientos", "novecientos",
}

var portugueseSmall = [20]string{
	"zero", "um", "dois", "três", "quatro", "cinco", "seis", "sete", "oito", "nove",
	"dez", "onze", "doze", "treze", "catorze", "quinze", "dezasseis", "dezassete",
	"dezoito", "dezanove",
}

// brazilianSmall overrides the European teens.
var brazilianSmall = map[int64]string{
	14: "quatorze", 16: "dezesseis", 17: "dezessete", 19: "dezenove",
}

var portugueseTens = [10]string{
	"", "", "vinte", "trinta", "quarenta", "cinquenta", "sessenta", "setenta", "oitenta", "noventa",
}

var portugueseHundreds = [10]string{
	"", "", "duzentos", "trezentos", "quatrocentos", "quinhentos",
	"seiscentos", "setecentos", "oitocentos", "novecentos",
}

var italianSmall = [20]string{
	"zero", "uno", "due", "tre", "quattro", "cinque", "sei", "sette", "otto", "nove",
	"dieci", "undici", "dodici", "tredici", "quattordici", "quindici", "sedici",
	"diciassette", "diciotto", "diciannove",
}

var italianTens = [10]string{
	"", "", "venti", "trenta", "quaranta", "cinquanta", "sessanta", "settanta", "ottanta", "novanta",
}

var italianScales = []scaleWord{
	{trillion, "bilione", "bilioni"},
	{billion, "miliardo", "miliardi"},
	{million, "milione", "milioni"},
}

var germanSmall = [20]string{
	"null", "eins", "zwei", "drei", "vier", "fünf", "sechs", "sieben", "acht", "neun",
	"zehn", "elf", "zwölf", "dreizehn", "vierzehn", "fünfzehn", "sechzehn",
	"siebzehn", "achtzehn", "neunzehn",
}

var germanTens = [10]string{
	"", "", "zwanzig", "dreißig", "vierzig", "fünfzig", "sechzig", "siebzig", "achtzig", "neunzig",
}

var germanScales = []scaleWord{
	{trillion, "Billion", "Billionen"},
	{billion, "Milliarde", "Milliarden"},
	{million, "Million", "Millionen"},
}

var dutchSmall = [20]string{
	"nul", "een", "twee", "drie", "vier", "vijf", "zes", "zeven", "acht", "negen",
	"tien", "elf", "twaalf", "dertien", "veertien", "vijftien", "zestien",
	"zeventien", "achttien", "negentien",
}

var dutchTens = [10]string{
	"", "", "twintig", "dertig", "veertig", "vijftig", "zestig", "zeventig", "tachtig", "negentig",
}

var dutchScales = []scaleWord{
	{trillion, "biljoen", "biljoen"},
	{billion, "miljard", "miljard"},
	{million, "miljoen", "miljoen"},
}
