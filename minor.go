package autoticks

// minorPositions subdivides the gaps between consecutive major ticks into n
// minor intervals, keeping only subdivision points strictly inside
// (lower, upper). One extra interval below the first major is included so
// the leading stretch of the axis gets minors too. Fewer than two majors,
// fewer than two intervals, or a non-positive major spacing produce none.
func minorPositions(majors []float64, n int, lower, upper float64) []float64 {
	if len(majors) < 2 || n < 2 {
		return nil
	}
	spacing := majors[1] - majors[0]
	if !(spacing > 0) {
		return nil
	}
	minor := spacing / float64(n)

	anchors := make([]float64, 0, len(majors)+1)
	anchors = append(anchors, majors[0]-spacing)
	anchors = append(anchors, majors...)

	out := make([]float64, 0, len(anchors)*(n-1))
	for _, anchor := range anchors {
		for k := 1; k < n; k++ {
			p := anchor + minor*float64(k)
			if p > lower && p < upper {
				out = append(out, p)
			}
		}
	}
	return out
}
