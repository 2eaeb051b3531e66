package autoticks

import (
	"log"
	"math"
	"os"
)

// Warning receives diagnostics about tick layouts that converge slowly or
// not at all. Replace it to redirect or silence them.
var Warning = log.New(os.Stderr, "autoticks: ", 0)

const (
	defaultLabelPx  = 12
	defaultNMinor   = 5
	defaultRadix    = 10
	defaultMaxDepth = 8
)

// A Tick is a single mark on an axis. Major ticks carry a label, minor
// ticks are bare subdivision marks between them.
type Tick struct {
	Value float64
	Label string
}

// Major returns a labeled tick.
func Major(value float64, label string) Tick {
	return Tick{Value: value, Label: label}
}

// Minor returns an unlabeled subdivision tick.
func Minor(value float64) Tick {
	return Tick{Value: value}
}

// IsMinor reports whether the tick is an unlabeled minor tick.
func (t Tick) IsMinor() bool {
	return t.Label == ""
}

// A Generator computes the tick marks for one axis. The zero value lays out
// decimal ticks for a horizontal axis with four minor ticks per major
// interval, assuming every label fits a 12x12 pixel footprint.
type Generator struct {
	// NMinor is the number of minor intervals between consecutive major
	// ticks. Zero means 5.
	NMinor int

	// Radix is the base of the spacing search. Zero means 10, and 10 is
	// the only supported value.
	Radix int

	// Vertical lays the ticks out for a vertical axis, where label
	// heights rather than widths limit the density.
	Vertical bool

	// MaxDepth caps the number of layout passes. Zero means 8.
	MaxDepth int

	// Measurer reports the rendered footprint of candidate labels. A nil
	// Measurer leaves the default footprint in charge.
	Measurer Measurer

	// Format renders tick labels. Nil means English formatting.
	Format LabelFormatter
}

// Generate computes the ticks for the data range [min, max] on an axis that
// is edge pixels long. Major ticks come first, ascending and inside
// [min, max], followed by the ascending minor ticks, strictly inside the
// range. Degenerate ranges and edge sizes yield a reduced but valid tick
// set; the only error is an unsupported radix.
func (g Generator) Generate(min, max, edge float64) ([]Tick, error) {
	radix := g.Radix
	if radix == 0 {
		radix = defaultRadix
	}
	divisors, err := radixDivisors(radix)
	if err != nil {
		return nil, err
	}

	format := g.Format
	if format == nil {
		format = defaultFormat
	}
	maxDepth := g.MaxDepth
	if maxDepth <= 0 {
		maxDepth = defaultMaxDepth
	}

	// Lay ticks out against a predicted label footprint, measure what the
	// labels actually need, and rerun with the grown prediction until it
	// covers them. The prediction never shrinks, so each pass either
	// converges or spreads the ticks out further.
	predW, predH := float64(defaultLabelPx), float64(defaultLabelPx)
	var (
		positions []float64
		labels    []string
	)
	for depth := 0; ; depth++ {
		if depth > 3 {
			Warning.Printf("layout pass %d for [%v, %v]: labels keep outgrowing the prediction", depth, min, max)
		}
		limit := predW
		if g.Vertical {
			limit = predH
		}
		positions = majorPositions(min, max, edge, limit, divisors)
		labels = make([]string, len(positions))
		for i, p := range positions {
			labels[i] = format(p)
		}
		if g.Measurer == nil {
			break
		}
		w, h := g.Measurer.MeasureLargest(labels)
		grownW := math.Max(predW, w)
		grownH := math.Max(predH, h)
		if grownW*grownH <= predW*predH {
			break
		}
		if depth+1 >= maxDepth {
			Warning.Printf("layout gave up after %d passes for [%v, %v]", maxDepth, min, max)
			break
		}
		predW, predH = grownW, grownH
	}

	ticks := make([]Tick, 0, len(positions))
	prev := math.Inf(-1)
	for i, p := range positions {
		if p < min || p > max || p <= prev {
			continue
		}
		ticks = append(ticks, Major(p, labels[i]))
		prev = p
	}
	if len(ticks) == 0 {
		// Pathological spacing can park every candidate outside the range.
		ticks = append(ticks, Major(min, format(min)))
	}

	nMinor := g.NMinor
	if nMinor == 0 {
		nMinor = defaultNMinor
	}
	for _, p := range minorPositions(positions, nMinor, min, max) {
		ticks = append(ticks, Minor(p))
	}
	return ticks, nil
}
