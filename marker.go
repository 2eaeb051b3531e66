package autoticks

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

const (
	defaultMarkerLength           = 6 * vg.Inch
	defaultFontName               = "Helvetica"
	defaultFontSize     vg.Length = 10
)

// A Marker is a plot.Ticker that lays ticks out with a Generator sized for
// the axis length the plot is drawn at.
type Marker struct {
	// Length is the drawn axis length. Zero means 6 inches.
	Length vg.Length

	// Vertical lays the ticks out for a vertical axis.
	Vertical bool

	// NMinor is the number of minor intervals per major interval. Zero
	// means 5.
	NMinor int

	// Font measures the tick labels. The zero Font means Helvetica at
	// 10pt; if no font can be loaded, labels are assumed to fit the
	// generator's default footprint.
	Font vg.Font

	// Format renders the labels. Nil means English formatting.
	Format LabelFormatter
}

// Ticks implements plot.Ticker. Unlabeled ticks are minor ticks, following
// the gonum/plot convention.
func (m Marker) Ticks(min, max float64) []plot.Tick {
	length := m.Length
	if length == 0 {
		length = defaultMarkerLength
	}

	g := Generator{
		NMinor:   m.NMinor,
		Vertical: m.Vertical,
		Measurer: m.measurer(),
		Format:   m.Format,
	}
	ticks, err := g.Generate(min, max, float64(length))
	if err != nil {
		return nil
	}

	out := make([]plot.Tick, len(ticks))
	for i, t := range ticks {
		out[i] = plot.Tick{Value: t.Value, Label: t.Label}
	}
	return out
}

func (m Marker) measurer() Measurer {
	font := m.Font
	if font.Name() == "" {
		var err error
		font, err = vg.MakeFont(defaultFontName, defaultFontSize)
		if err != nil {
			return nil
		}
	}
	return FontMeasurer{Font: font}
}
