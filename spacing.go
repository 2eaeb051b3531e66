package autoticks

import (
	"errors"
	"fmt"
	"math"
)

// ErrRadix is returned for tick radixes the spacing search has no divisor
// cycle for.
var ErrRadix = errors.New("autoticks: unsupported tick radix")

// Divisor cycles per radix, applied repeatedly to walk a spacing down
// through the round numbers of the base.
var (
	decimalDivisors = []float64{2, 2, 2.5}  // 100, 50, 25, 10, ...
	hexDivisors     = []float64{2, 2, 2, 2} // 16, 8, 4, 2, ...; rejected by radixDivisors until an axis needs it
)

// radixDivisors resolves the divisor cycle for a radix. Only decimal axes
// are supported.
func radixDivisors(radix int) ([]float64, error) {
	if radix != 10 {
		return nil, fmt.Errorf("%w: %d", ErrRadix, radix)
	}
	return decimalDivisors, nil
}

// idealSpacing returns a nice major tick spacing for [low, high], aiming at
// no more than maxTicks ticks. Starting from the largest power of ten within
// the span, candidate spacings shrink through the divisor cycle until the
// tick count meets the target; the spacing three steps before that point is
// returned, keeping the layout comfortably clear of the densest fit. A
// maxTicks of zero or less stops the search at the seeded spacing.
func idealSpacing(low, high float64, maxTicks int, divisors []float64) float64 {
	span := high - low
	initial := math.Pow(10, math.Floor(math.Log10(span)))

	// The tick count stays in floating point: a spacing that underflows
	// to zero turns it into +Inf, which ends the search like any other
	// satisfied target.
	seq := []float64{initial, initial, initial}
	count := 0.0
	for count < float64(maxTicks) && len(seq) < 1000 {
		next := seq[len(seq)-1] / divisors[(len(seq)-3)%len(divisors)]
		seq = append(seq, next)
		count = math.Floor(span / next)
	}
	return seq[len(seq)-3]
}
