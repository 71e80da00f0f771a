package series

import "errors"

var (
	// ErrInvalidLength indicates a request for a series with fewer than one sample.
	ErrInvalidLength = errors.New("series: length must be at least 1")

	// ErrEmptySeries indicates an operation that needs a seed sample got none.
	ErrEmptySeries = errors.New("series: empty series")

	// ErrNonFinite indicates a series holding NaN or Inf samples.
	ErrNonFinite = errors.New("series: non-finite sample (NaN or Inf)")
)
