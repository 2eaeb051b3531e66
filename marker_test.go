package autoticks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"
)

func TestMarkerTicks(t *testing.T) {
	ticks := Marker{Length: 500}.Ticks(0, 100)
	require.NotEmpty(t, ticks)

	prev := 0.0
	seenMajor := false
	for _, tick := range ticks {
		if tick.Label == "" {
			assert.True(t, tick.Value > 0 && tick.Value < 100, "minor %v outside (0, 100)", tick.Value)
			continue
		}
		assert.True(t, tick.Value >= 0 && tick.Value <= 100, "major %v outside [0, 100]", tick.Value)
		if seenMajor {
			assert.True(t, tick.Value > prev, "majors not ascending at %v", tick.Value)
		}
		prev = tick.Value
		seenMajor = true
	}
	assert.True(t, seenMajor)
}

func TestMarkerVertical(t *testing.T) {
	ticks := Marker{Length: 4 * vg.Inch, Vertical: true, NMinor: 2}.Ticks(0, 1)
	assert.NotEmpty(t, ticks)
}

func TestMarkerZeroValue(t *testing.T) {
	ticks := Marker{}.Ticks(-10, 10)
	assert.NotEmpty(t, ticks)
}
