package dims

import (
	"errors"
	"fmt"

	"github.com/nmrkit/ssc/peak"
)

var (
	// ErrNoDims indicates an empty dimension label list.
	ErrNoDims = errors.New("dims: dimension label list must be non-empty")

	// ErrNoRoots indicates an empty root dimension label list.
	ErrNoRoots = errors.New("dims: root dimension label list must be non-empty")

	// ErrDuplicateLabel indicates a repeated label in dims or rdims.
	ErrDuplicateLabel = errors.New("dims: duplicate dimension label")

	// ErrUnknownRoot indicates a root label that is not a dimension label.
	ErrUnknownRoot = errors.New("dims: root dimension label not present in dimension labels")
)

// Resolution maps root dimension labels, in configured order, to their
// positions in a peak's coordinate vector. It is immutable once built.
type Resolution struct {
	labels  []string
	indices []int
}

// Resolve validates dims and rdims and produces the index mapping.
//
// Steps:
//  1. Both lists must be non-empty (ErrNoDims / ErrNoRoots).
//  2. Neither list may repeat a label (ErrDuplicateLabel, with the label).
//  3. Every root label must occur in dims (ErrUnknownRoot, with the label).
//
// Resolve is a pure function of its inputs; the Resolution is reused for
// the whole run.
func Resolve(dims, rdims []string) (Resolution, error) {
	if len(dims) == 0 {
		return Resolution{}, ErrNoDims
	}
	if len(rdims) == 0 {
		return Resolution{}, ErrNoRoots
	}

	pos := make(map[string]int, len(dims))
	for i, label := range dims {
		if _, dup := pos[label]; dup {
			return Resolution{}, fmt.Errorf("%w: %q in dims", ErrDuplicateLabel, label)
		}
		pos[label] = i
	}

	labels := make([]string, 0, len(rdims))
	indices := make([]int, 0, len(rdims))
	seen := make(map[string]struct{}, len(rdims))
	for _, label := range rdims {
		if _, dup := seen[label]; dup {
			return Resolution{}, fmt.Errorf("%w: %q in rdims", ErrDuplicateLabel, label)
		}
		seen[label] = struct{}{}

		i, ok := pos[label]
		if !ok {
			return Resolution{}, fmt.Errorf("%w: %q", ErrUnknownRoot, label)
		}
		labels = append(labels, label)
		indices = append(indices, i)
	}

	return Resolution{labels: labels, indices: indices}, nil
}

// Len returns the number of root dimensions.
func (r Resolution) Len() int { return len(r.labels) }

// Label returns the i-th root dimension label, in configured order.
func (r Resolution) Label(i int) string { return r.labels[i] }

// Index returns the position the i-th root dimension occupies in a
// peak's coordinate vector.
func (r Resolution) Index(i int) int { return r.indices[i] }

// Labels returns a copy of the root labels in configured order.
func (r Resolution) Labels() []string { return append([]string(nil), r.labels...) }

// Values extracts p's root dimension values in configured root order.
func (r Resolution) Values(p peak.Peak) []float64 {
	out := make([]float64, len(r.indices))
	for i, idx := range r.indices {
		out[i] = p.Dimensions[idx]
	}
	return out
}
