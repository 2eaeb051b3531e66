package autoticks

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRadixDivisors(t *testing.T) {
	divisors, err := radixDivisors(10)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 2, 2.5}, divisors)

	for _, radix := range []int{16, 2, 0, -1, 60} {
		_, err := radixDivisors(radix)
		require.Error(t, err, "radix %d", radix)
		assert.True(t, errors.Is(err, ErrRadix), "radix %d: %v", radix, err)
	}
}

func TestIdealSpacing(t *testing.T) {
	for _, tt := range []struct {
		name      string
		low, high float64
		maxTicks  int
		want      float64
	}{
		{"no target", 0, 100, 0, 100},
		{"negative target", 0, 100, -3, 100},
		{"tiny target", 0, 100, 2, 100},
		{"loose target", 0, 100, 10, 50},
		{"medium target", 0, 100, 16, 25},
		{"tight target", 0, 100, 41, 5},
		{"unit span", 0, 1, 10, 0.5},
		{"five span", 2.5, 7.5, 10, 1},
		{"offset range", 30, 130, 16, 25},
		{"negative range", -100, 0, 16, 25},
	} {
		t.Run(tt.name, func(t *testing.T) {
			got := idealSpacing(tt.low, tt.high, tt.maxTicks, decimalDivisors)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIdealSpacingMonotonic(t *testing.T) {
	for _, span := range [][2]float64{{0, 100}, {0, 137}, {-3, 17}, {0.2, 0.9}} {
		prev := math.Inf(1)
		for n := 0; n <= 200; n++ {
			got := idealSpacing(span[0], span[1], n, decimalDivisors)
			assert.True(t, got <= prev, "[%v, %v] target %d: %v > %v", span[0], span[1], n, got, prev)
			prev = got
		}
	}
}

func TestIdealSpacingHugeTargetTerminates(t *testing.T) {
	got := idealSpacing(0, 1e-300, 1<<30, decimalDivisors)
	assert.True(t, got >= 0, "spacing %v", got)
}
