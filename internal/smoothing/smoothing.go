// Package smoothing implements single exponential smoothing.
package smoothing

import "github.com/san-kum/tsplot/internal/series"

// DefaultAlpha is the N-period smoothing factor 2/(n+1).
func DefaultAlpha(n int) float64 {
	return 2.0 / (float64(n) + 1.0)
}

// Exponential returns a new series where out[0] = s[0] and
// out[i] = alpha*s[i] + (1-alpha)*out[i-1].
//
// alpha is expected in (0, 1] but is not checked.
func Exponential(s series.Series, alpha float64) (series.Series, error) {
	if len(s) == 0 {
		return nil, series.ErrEmptySeries
	}

	out := make(series.Series, len(s))
	out[0] = s[0]
	for i := 1; i < len(s); i++ {
		out[i] = alpha*s[i] + (1-alpha)*out[i-1]
	}
	return out, nil
}
