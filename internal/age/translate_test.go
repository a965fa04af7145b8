package age

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestTranslate_Russian(t *testing.T) {
	ru := NewLocalizer(language.Russian)

	tests := []struct {
		input string
		want  string
	}{
		{"3-6m", "3-6 мес."},
		{"3 - 6", "3-6 мес."},
		{"6m", "6 мес."},
		{"9м", "9 мес."},
		{"1Y", "1 год"},
		{"2Y", "2 года"},
		{"5г", "5 лет"},
		{"21y", "21 год"},
		{"3", "3 года"},
		{"18", "18 мес."},
		{"0", "0 мес."},
		{"2 года", "2 года"},
		{"1 год", "1 год"},
		{"5 лет", "5 лет"},
		{"abc", "abc"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, Translate(tt.input, ru))
		})
	}
}

func TestTranslate_Kazakh(t *testing.T) {
	kk := NewLocalizer(language.Kazakh)

	assert.Equal(t, "3-6 ай", Translate("3-6m", kk))
	assert.Equal(t, "2 жас", Translate("2Y", kk))
	assert.Equal(t, "5 жас", Translate("5 лет", kk))
}

func TestTranslate_English(t *testing.T) {
	en := NewLocalizer(language.English)

	assert.Equal(t, "1 yr", Translate("1Y", en))
	assert.Equal(t, "4 yrs", Translate("4", en))
	assert.Equal(t, "6 mo.", Translate("6m", en))
}

func TestMatchLanguage(t *testing.T) {
	assert.Equal(t, language.Kazakh, MatchLanguage("kk"))
	assert.Equal(t, language.English, MatchLanguage("en-US,en;q=0.9"))
	assert.Equal(t, language.Russian, MatchLanguage("ru-KZ"))
	assert.Equal(t, language.Russian, MatchLanguage())
}
