package stats

import (
	"gonum.org/v1/gonum/stat"

	"github.com/nmrkit/ssc/dims"
	"github.com/nmrkit/ssc/peak"
)

// Spread returns the population standard deviation of xs. Fewer than
// two values is defined as zero spread, short-circuited here so no
// generic formula can produce NaN for a singleton.
func Spread(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	return stat.PopStdDev(xs, nil)
}

// PerDimension computes, for the cluster holding the given member peak
// indices, the spread of every root dimension's values. Assignment
// strings play no role; only coordinates at the resolved root indices
// are read.
func PerDimension(peaks []peak.Peak, res dims.Resolution, members []int) map[string]float64 {
	out := make(map[string]float64, res.Len())
	values := make([]float64, len(members))
	for d := 0; d < res.Len(); d++ {
		idx := res.Index(d)
		for i, m := range members {
			values[i] = peaks[m].Dimensions[idx]
		}
		out[res.Label(d)] = Spread(values)
	}
	return out
}
