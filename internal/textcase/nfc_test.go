package textcase

import "testing"

func TestComposeNFC(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"already NFC", "séptimo", "séptimo"},
		{"empty", "", ""},
		{"ascii only", "twenty one", "twenty one"},
		{"e acute", "se\u0301ptimo", "s\u00e9ptimo"},
		{"e grave", "troisie\u0300me", "troisi\u00e8me"},
		{"e diaeresis", "drie\u0308ntwintig", "dri\u00ebntwintig"},
		{"u diaeresis upper", "fU\u0308nf", "f\u00dcnf"},
		{"a tilde", "milho\u0303es", "milh\u00f5es"},
		{"c cedilla", "c\u0327a", "\u00e7a"},
		{"mixed NFC and NFD", "tre\u0301s d\u00e9cimo", "tr\u00e9s d\u00e9cimo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ComposeNFC(tt.input); got != tt.want {
				t.Errorf("ComposeNFC(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func BenchmarkComposeNFC_AlreadyNFC(b *testing.B) {
	s := "vingt et un, trente-deux, quatre-vingt-dix-neuf"
	for b.Loop() {
		ComposeNFC(s)
	}
}

func BenchmarkComposeNFC_HasCombiners(b *testing.B) {
	s := "se\u0301ptimo drie\u0308ntwintig"
	for b.Loop() {
		ComposeNFC(s)
	}
}
