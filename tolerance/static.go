package tolerance

import (
	"context"
	"fmt"
	"math"
)

// Static returns a Predictor that serves the given tolerances verbatim.
// Estimate validates them against the request: every requested root
// label must be present with a finite, non-negative value, otherwise
// ErrInvalidTolerance is returned with the offending label.
func Static(set Set) Predictor { return staticPredictor(set) }

type staticPredictor Set

// Estimate implements Predictor.
func (s staticPredictor) Estimate(_ context.Context, req Request) (Set, error) {
	out := make(Set, len(req.Labels))
	for _, label := range req.Labels {
		tol, ok := s[label]
		if !ok {
			return nil, fmt.Errorf("%w: no tolerance for %q", ErrInvalidTolerance, label)
		}
		if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
			return nil, fmt.Errorf("%w: %q = %v", ErrInvalidTolerance, label, tol)
		}
		out[label] = tol
	}
	return out, nil
}
