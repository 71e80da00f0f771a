package series

import "math"

type Series []float64

// IsValid reports whether every sample is finite.
func (s Series) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Max returns the largest value, ignoring NaN samples. It returns NaN when
// the series is empty or holds only NaN.
func (s Series) Max() float64 {
	max := math.NaN()
	for _, v := range s {
		if math.IsNaN(v) {
			continue
		}
		if math.IsNaN(max) || v > max {
			max = v
		}
	}
	return max
}

// Min mirrors Max.
func (s Series) Min() float64 {
	min := math.NaN()
	for _, v := range s {
		if math.IsNaN(v) {
			continue
		}
		if math.IsNaN(min) || v < min {
			min = v
		}
	}
	return min
}
