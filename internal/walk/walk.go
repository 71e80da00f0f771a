// Package walk generates Gaussian random-walk series.
package walk

import (
	"math/rand"
	"time"

	"github.com/san-kum/tsplot/internal/series"
)

func NewSource(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// ResolveSeed returns seed, or a seed taken from the wall clock when seed is 0.
func ResolveSeed(seed int64) int64 {
	if seed == 0 {
		return time.Now().UnixNano()
	}
	return seed
}

// Generate returns a series of the given length starting at init, where each
// following sample is the previous one plus a standard normal increment drawn
// from r.
func Generate(r *rand.Rand, length int, init float64) (series.Series, error) {
	if length < 1 {
		return nil, series.ErrInvalidLength
	}

	s := make(series.Series, length)
	s[0] = init
	for i := 1; i < length; i++ {
		s[i] = s[i-1] + r.NormFloat64()
	}
	return s, nil
}
