// Package interp provides the small interpolation helpers used by the tide
// model and the pixel renderer.
package interp

import "math"

// Lerp maps t in [0,1] onto the integer range [min,max], rounding to the
// nearest value. t is clamped before interpolating, so out-of-range inputs
// saturate at the endpoints.
func Lerp(t float64, min, max int) int {
	t01 := Clamp(t, 0, 1)
	r := float64(max - min)

	return int(math.Round(t01*r + float64(min)))
}

// InverseLerp returns the fraction of v between min and max, clamped to
// [0,1]. min must be <= max; violating that is a programmer error, not a
// data condition, since both bounds derive from the same sample set.
func InverseLerp(v, min, max float64) float64 {
	if min > max {
		panic("interp: InverseLerp called with min > max")
	}
	if min == max {
		return 0
	}

	clamped := Clamp(v, min, max)

	return (clamped - min) / (max - min)
}

// Clamp limits v to the range [min,max].
func Clamp(v, min, max float64) float64 {
	if min > max {
		panic("interp: Clamp called with min > max")
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
