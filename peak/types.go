// Package peak: core value types and sentinel errors.
package peak

import "errors"

var (
	// ErrNoDims indicates an empty dimension label list.
	ErrNoDims = errors.New("peak: dimension label list must be non-empty")

	// ErrDuplicateDim indicates a repeated label in the dimension list.
	ErrDuplicateDim = errors.New("peak: duplicate dimension label")

	// ErrDimCount indicates a peak whose coordinate or assignment width
	// does not match the configured dimension labels.
	ErrDimCount = errors.New("peak: peak width does not match dimension labels")
)

// Unassigned is the assignment marker for a dimension with no known
// residue/atom label.
const Unassigned = "?"

// Peak is a single experimental peak: one chemical-shift coordinate and
// one assignment entry per spectral dimension, in the owning List's
// dimension order.
//
// Fields:
//   - Index      — 0-based position in the original input list; immutable
//     identity, never reused or reassigned.
//   - Dimensions — chemical shifts, one per configured dimension label.
//   - Assignment — residue/atom labels, same length as Dimensions; an
//     entry is either a label or Unassigned. Purely descriptive; never
//     part of any numeric comparison.
//
// A Peak is constructed during ingestion and read-only thereafter.
type Peak struct {
	Index      int
	Dimensions []float64
	Assignment []string
}

// Assigned reports whether dimension i carries a real assignment label
// (anything other than Unassigned or the empty string).
func (p Peak) Assigned(i int) bool {
	return p.Assignment[i] != Unassigned && p.Assignment[i] != ""
}

// ShiftRange restricts one labeled dimension to a closed interval of
// chemical shifts. Ranges whose Label is absent from a List's dimension
// labels do not constrain that List.
type ShiftRange struct {
	Label string
	Min   float64
	Max   float64
}

// DefaultShiftRanges returns the conventional ranges used to discard
// artifact peaks before grouping: CA 35–75 ppm, N 90–140 ppm,
// HN 0–20 ppm.
func DefaultShiftRanges() []ShiftRange {
	return []ShiftRange{
		{Label: "CA", Min: 35, Max: 75},
		{Label: "N", Min: 90, Max: 140},
		{Label: "HN", Min: 0, Max: 20},
	}
}
