package tolerance

import (
	"context"
	"errors"
)

var (
	// ErrInvalidTolerance indicates a configured tolerance that is
	// missing for a root dimension, negative, or not a number.
	ErrInvalidTolerance = errors.New("tolerance: configured tolerance must be a non-negative number for every root dimension")

	// ErrCalibration indicates a failed external calibration: the
	// registration executable was unreachable, exited non-zero, timed
	// out, or produced output that does not parse into one tolerance per
	// root dimension. Terminal for the run; no fallback is substituted.
	ErrCalibration = errors.New("tolerance: calibration failed")
)

// Set maps a root dimension label to the maximum absolute difference,
// in ppm, allowed on that dimension for two peaks to match there.
// Immutable for the duration of clustering once produced.
type Set map[string]float64

// Request carries everything an estimator may need: the spectrum type
// label, the root dimension labels in configured order, and the peak
// list's values per root dimension (Values[i] belongs to Labels[i],
// each series in peak input order).
type Request struct {
	Spectrum string      `json:"spectrum"`
	Labels   []string    `json:"labels"`
	Values   [][]float64 `json:"values"`
}

// Predictor estimates a tolerance Set for a peak list. Implementations
// must be safe to call once per run and must not return a partial Set:
// either every requested label is present, or an error is returned.
type Predictor interface {
	Estimate(ctx context.Context, req Request) (Set, error)
}
