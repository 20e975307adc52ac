package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBarWidth(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		max      float64
		square   bool
		oneChart bool
		want     float64
	}{
		{"square one chart half", 50, 100, true, true, 259},
		{"square two charts full", 100, 100, true, false, 238},
		{"wide one chart full", 100, 100, false, true, 525},
		{"wide two charts full", 100, 100, false, false, 240},
		{"wide two charts quarter", 25, 100, false, false, 60},
		{"zero value", 0, 100, true, true, 0},
		{"fractional", 1, 3, false, false, 80},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BarWidth(tt.value, tt.max, tt.square, tt.oneChart)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestBarWidth_NotClamped(t *testing.T) {
	got, err := BarWidth(200, 100, false, false)
	require.NoError(t, err)
	assert.Equal(t, 480.0, got)
}

func TestBarWidth_InvalidMax(t *testing.T) {
	for _, max := range []float64{0, math.NaN()} {
		_, err := BarWidth(10, max, true, true)
		assert.ErrorIs(t, err, ErrInvalidMax)
	}
}

func TestMaxBarPixels(t *testing.T) {
	assert.Equal(t, 518.0, MaxBarPixels(true, true))
	assert.Equal(t, 238.0, MaxBarPixels(true, false))
	assert.Equal(t, 525.0, MaxBarPixels(false, true))
	assert.Equal(t, 240.0, MaxBarPixels(false, false))
}
