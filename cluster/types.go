package cluster

import (
	"errors"
	"runtime"
)

// ErrMissingTolerance indicates a resolved root dimension with no entry
// in the tolerance set. Detected before any pair is compared.
var ErrMissingTolerance = errors.New("cluster: tolerance set has no entry for root dimension")

// Component is one spin-system cluster of the partition.
//
// Fields:
//   - Label   — positive, unique within a result; components are
//     labeled 1..k in ascending order of their lowest member index.
//   - Members — original peak indices, ascending, non-empty.
type Component struct {
	Label   int
	Members []int
}

// Options configures the engine.
//
// Fields:
//   - Workers — number of goroutines evaluating peak pairs. Values
//     below 2 select the sequential path. Parallelism is purely an
//     optimization: the partition and labeling are identical for every
//     worker count.
//
// Example:
//
//	opts := cluster.DefaultOptions()
//	opts.Workers = 4
//	comps, err := cluster.Group(list.Peaks(), res, tol, &opts)
type Options struct {
	Workers int
}

// DefaultOptions returns the recommended defaults: one worker per
// available CPU.
func DefaultOptions() Options {
	return Options{Workers: runtime.GOMAXPROCS(0)}
}
