package autoticks

import "gonum.org/v1/plot/vg"

// A Measurer reports the pixel footprint of the visually largest label in a
// set, letting the generator keep the tick density below the point where
// neighboring labels meet. An empty set measures (0, 0).
type Measurer interface {
	MeasureLargest(labels []string) (width, height float64)
}

// MeasurerFunc adapts a function to the Measurer interface.
type MeasurerFunc func(labels []string) (width, height float64)

func (f MeasurerFunc) MeasureLargest(labels []string) (width, height float64) {
	return f(labels)
}

// A FontMeasurer measures labels with a vg font, in points. The height is
// the font's line height and is shared by every label.
type FontMeasurer struct {
	Font vg.Font
}

func (m FontMeasurer) MeasureLargest(labels []string) (width, height float64) {
	if len(labels) == 0 {
		return 0, 0
	}
	var widest vg.Length
	for _, label := range labels {
		if w := m.Font.Width(label); w > widest {
			widest = w
		}
	}
	return float64(widest), float64(m.Font.Extents().Height)
}
