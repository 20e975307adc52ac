package stats

import (
	"fmt"
	"math"
)

// MaxBarPixels is the width of a bar at the axis maximum. Square cards and
// cards with two charts side by side leave less room per bar.
func MaxBarPixels(square, oneChart bool) float64 {
	switch {
	case square && oneChart:
		return 518
	case square:
		return 238
	case oneChart:
		return 525
	}
	return 240
}

// BarWidth returns the width in pixels of a bar for value on an axis ending
// at max. The result is fractional and is not clamped, so max should be the
// largest value on the chart.
func BarWidth(value, max float64, square, oneChart bool) (float64, error) {
	if max == 0 || math.IsNaN(max) {
		return 0, fmt.Errorf("bar width for %v: %w", value, ErrInvalidMax)
	}
	return (value / max) * MaxBarPixels(square, oneChart), nil
}
