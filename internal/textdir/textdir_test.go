package textdir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestOf(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Direction
	}{
		{"hebrew", "מסעדה גמא", RTL},
		{"arabic", "مطعم", RTL},
		{"english", "Gamma restaurant", LTR},
		{"leading digits then hebrew", "15 שנים", RTL},
		{"empty", "", LTR},
		{"only punctuation", "!!! 123", LTR},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Of(tt.in))
		})
	}
}

func TestFirst(t *testing.T) {
	assert.Equal(t, RTL, First("", "123", "שלום"))
	assert.Equal(t, LTR, First("hello", "שלום"))
	assert.Equal(t, LTR, First())
}

func TestLang(t *testing.T) {
	assert.Equal(t, "he", Lang("he", language.English))
	assert.Equal(t, "en", Lang("not a tag!", language.English))
}
