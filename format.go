package autoticks

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// A LabelFormatter renders a tick position as its axis label.
type LabelFormatter func(value float64) string

var defaultFormat = NewLabelFormatter(language.English)

// NewLabelFormatter returns a formatter that renders tick labels with the
// digit grouping and decimal separator of the given locale. Whole numbers
// and magnitudes beyond 1000 come out grouped with no decimals; anything
// else is rounded to 10 decimal places, shedding the floating point noise
// of the spacing arithmetic, and written with the fewest digits that
// represent it. A bare "-0" is normalized to "0".
func NewLabelFormatter(tag language.Tag) LabelFormatter {
	p := message.NewPrinter(tag)
	return func(value float64) string {
		var s string
		if value == math.Trunc(value) || math.Abs(value) > 1000 {
			s = p.Sprint(number.Decimal(value, number.MaxFractionDigits(0)))
		} else {
			rounded := math.Round(value*1e10) / 1e10
			s = p.Sprint(number.Decimal(rounded, number.MaxFractionDigits(10)))
		}
		if s == "-0" {
			s = "0"
		}
		return s
	}
}
