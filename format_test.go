package autoticks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestLabelFormatterEnglish(t *testing.T) {
	format := NewLabelFormatter(language.English)
	for _, tt := range []struct {
		value float64
		want  string
	}{
		{0, "0"},
		{5, "5"},
		{-5, "-5"},
		{100, "100"},
		{1000000, "1,000,000"},
		{-2000, "-2,000"},
		{0.5, "0.5"},
		{-0.5, "-0.5"},
		{2.5, "2.5"},
		{999.25, "999.25"},
		{1234.6, "1,235"},
		{0.1234567891234, "0.1234567891"},
		{0.30000000000000004, "0.3"},
		{-0.00000000001, "0"},
	} {
		assert.Equal(t, tt.want, format(tt.value), "format(%v)", tt.value)
	}
}

func TestLabelFormatterLocale(t *testing.T) {
	format := NewLabelFormatter(language.German)
	assert.Equal(t, "1.000.000", format(1000000))
	assert.Equal(t, "0,5", format(0.5))
	assert.Equal(t, "0", format(-0.00000000001))
}
