package distribution

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"Santé", "sante"},
		{"SANTE", "sante"},
		{"sante", "sante"},
		{"  Beauté & Cosmétiques!! ", "beaute cosmetiques"},
		{"Bien-Être", "bien etre"},
		{"Prêt-à-porter", "pret a porter"},
		{"Électro   ménager", "electro menager"},
		{"Téléphones/Tablettes", "telephones tablettes"},
		{"iPhone 15 Pro", "iphone 15 pro"},
		{"---", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	inputs := []string{
		"", "Santé & Bien-être", "  MODE  femme ", "Çà et là", "ÀÉÎÕÜ", "beauty_care",
		"Maison/Déco", "électronique 2024!", "Œuvre d'art", "straße", "日本語 text", "\t\n",
	}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "input %q", in)
	}
}

func TestNormalizeAccentAndCaseInvariance(t *testing.T) {
	assert.Equal(t, Normalize("sante"), Normalize("Santé"))
	assert.Equal(t, Normalize("SANTE"), Normalize("Santé"))
	assert.Equal(t, Normalize("beaute"), Normalize("BEAUTÉ"))
}

func TestKeywordsDropsShortWords(t *testing.T) {
	assert.Equal(t, []string{"sante", "bien", "etre"}, keywords("sante et bien etre"))
	assert.Empty(t, keywords("a de"))
}

func TestContainsWord(t *testing.T) {
	assert.True(t, containsWord("mobile", "mobile"))
	assert.True(t, containsWord("accessoires mobile", "mobile"))
	assert.True(t, containsWord("soins beaute visage", "soins beaute"))
	assert.False(t, containsWord("automobile", "mobile"))
	assert.False(t, containsWord("mobiles", "mobile"))
	assert.False(t, containsWord("", "mobile"))
	assert.False(t, containsWord("mobile", ""))
}
