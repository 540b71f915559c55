package lang

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForTag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		tag  string
		want string
	}{
		{"en", "en"},
		{"en-GB", "en"},
		{"EN-us", "en"},
		{"fr", "fr"},
		{"fr-FR", "fr"},
		{"fr-BE", "fr-BE"},
		{"fr-CH", "fr-CH"},
		{"es", "es"},
		{"es-ES", "es"},
		{"pt", "pt"},
		{"pt-PT", "pt"},
		{"pt-AO", "pt"},
		{"pt-BR", "pt-BR"},
		{"it", "it"},
		{"de", "de"},
		{"de-AT", "de"},
		{"nl", "nl"},
		{"nl-BE", "nl"},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			t.Parallel()
			l, err := ForTag(tt.tag)
			require.NoError(t, err)
			assert.Equal(t, tt.want, l.Code())
		})
	}
}

func TestForTagErrors(t *testing.T) {
	t.Parallel()

	for _, tag := range []string{"", "not a tag!", "ja", "zh-Hant"} {
		_, err := ForTag(tag)
		assert.Error(t, err, "ForTag(%q)", tag)
	}
}

func ExampleForTag() {
	l, err := ForTag("fr-CH")
	if err != nil {
		panic(err)
	}
	fmt.Println(l.Code(), l.Name())
	// Output: fr-CH French (Switzerland)
}

func ExampleLanguage_Lookup() {
	atoms, ok := Spanish().Lookup("veintitrés")
	fmt.Println(ok, atoms)
	// Output: true [tens(20) digit(3)]
}
