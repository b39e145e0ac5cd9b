package peak

import "fmt"

// List is an ordered, read-only experimental peak list together with
// the configuration it was ingested under: the spectrum type and the
// ordered dimension labels shared by all of its peaks.
//
// Order equals input order; it is what makes Peak.Index stable. The
// order itself carries no meaning for grouping correctness.
type List struct {
	spectrum string
	dims     []string
	peaks    []Peak
}

// NewList builds a validated List.
//
// Steps:
//  1. Reject an empty or duplicated dimension label list
//     (ErrNoDims / ErrDuplicateDim).
//  2. Reject any peak whose Dimensions or Assignment length differs
//     from len(dims) (ErrDimCount, with the offending position).
//  3. Assign each peak its 0-based position as Index.
//
// The peaks slice is copied; callers keep no handle into the List.
func NewList(spectrum string, dims []string, peaks []Peak) (*List, error) {
	if len(dims) == 0 {
		return nil, ErrNoDims
	}
	seen := make(map[string]struct{}, len(dims))
	for _, label := range dims {
		if _, dup := seen[label]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateDim, label)
		}
		seen[label] = struct{}{}
	}

	owned := make([]Peak, len(peaks))
	for i, p := range peaks {
		if len(p.Dimensions) != len(dims) || len(p.Assignment) != len(dims) {
			return nil, fmt.Errorf("%w: peak %d has %d shifts and %d assignments, want %d",
				ErrDimCount, i, len(p.Dimensions), len(p.Assignment), len(dims))
		}
		p.Index = i
		owned[i] = p
	}

	return &List{spectrum: spectrum, dims: append([]string(nil), dims...), peaks: owned}, nil
}

// Spectrum returns the spectrum type label the list was ingested under
// (e.g. "HNcoCACB").
func (l *List) Spectrum() string { return l.spectrum }

// Len returns the number of peaks.
func (l *List) Len() int { return len(l.peaks) }

// Dims returns a copy of the ordered dimension labels.
func (l *List) Dims() []string { return append([]string(nil), l.dims...) }

// Peaks returns the peaks in input order. The returned slice and the
// Peak payloads it shares are read-only by contract.
func (l *List) Peaks() []Peak { return l.peaks }

// Peak returns the peak at position i.
func (l *List) Peak(i int) Peak { return l.peaks[i] }

// Filter returns a new List containing only the peaks whose shifts fall
// inside every applicable range, re-indexed from zero. Ranges naming a
// label absent from the list's dimensions constrain nothing. The
// receiver is unchanged.
func (l *List) Filter(ranges ...ShiftRange) *List {
	pos := make(map[string]int, len(l.dims))
	for i, label := range l.dims {
		pos[label] = i
	}

	kept := make([]Peak, 0, len(l.peaks))
	for _, p := range l.peaks {
		if withinRanges(p, pos, ranges) {
			kept = append(kept, p)
		}
	}
	for i := range kept {
		kept[i].Index = i
	}

	return &List{spectrum: l.spectrum, dims: l.dims, peaks: kept}
}

// withinRanges reports whether every applicable range admits the peak.
func withinRanges(p Peak, pos map[string]int, ranges []ShiftRange) bool {
	for _, r := range ranges {
		i, ok := pos[r.Label]
		if !ok {
			continue
		}
		if p.Dimensions[i] < r.Min || p.Dimensions[i] > r.Max {
			return false
		}
	}
	return true
}
