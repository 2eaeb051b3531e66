package autoticks

import "math"

const (
	tickDensity   = 1.0
	maxMajorTicks = 1000
)

// majorPositions lays out candidate major tick positions for [min, max] on
// an axis edge pixels long, assuming no label needs more than limit pixels
// along the axis. Positions are ascending multiples of a nice spacing
// anchored at zero. When the spacing exceeds the span the returned pair may
// reach outside [min, max] so that minor subdivision still has an interval;
// callers wanting only in-range positions filter for themselves.
func majorPositions(min, max, edge, limit float64, divisors []float64) []float64 {
	span := max - min
	if !(span > 0) || math.IsInf(span, 1) {
		return []float64{min}
	}

	target := math.Floor(edge / limit * tickDensity)
	// Clamping the target to the tick cap keeps huge or NaN edge sizes
	// from overflowing the int conversion; a target past the cap could
	// only pick a finer spacing whose extra candidates the count clamp
	// below truncates.
	if !(target > 0) {
		target = 0
	} else if target > maxMajorTicks {
		target = maxMajorTicks
	}
	spacing := idealSpacing(min, max, int(target), divisors)
	if !(spacing > 0) || math.IsInf(spacing, 1) {
		return []float64{min, max}
	}

	offset := math.Mod(min, spacing)
	count := math.Floor(span/spacing) + 2
	if count < 1 {
		count = 1
	} else if count > maxMajorTicks {
		count = maxMajorTicks
	}
	anchor := min - offset
	inside := make([]float64, 0, int(count))
	for i := 0; i < int(count); i++ {
		p := anchor + spacing*float64(i)
		if p >= min && p <= max {
			inside = append(inside, p)
		}
	}
	if len(inside) >= 2 {
		return inside
	}

	// Spacing wider than the span.
	first := anchor
	if len(inside) == 1 {
		first = inside[0]
	}
	return []float64{first, anchor + spacing}
}
