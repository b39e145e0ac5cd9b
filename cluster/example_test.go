package cluster_test

import (
	"fmt"

	"github.com/nmrkit/ssc/cluster"
	"github.com/nmrkit/ssc/dims"
	"github.com/nmrkit/ssc/peak"
	"github.com/nmrkit/ssc/tolerance"
)

// ExampleGroup demonstrates single-linkage grouping of amide peaks on
// the shared HN/N root dimensions.
func ExampleGroup() {
	res, _ := dims.Resolve([]string{"HN", "N", "CA"}, []string{"HN", "N"})

	peaks := []peak.Peak{
		{Index: 0, Dimensions: []float64{8.10, 120.30, 56.1}, Assignment: []string{"A42HN", "A42N", "A42CA"}},
		{Index: 1, Dimensions: []float64{8.12, 120.55, 30.9}, Assignment: []string{"A42HN", "A42N", "A41CB"}},
		{Index: 2, Dimensions: []float64{7.65, 114.80, 61.3}, Assignment: []string{"?", "?", "?"}},
	}

	comps, _ := cluster.Group(peaks, res, tolerance.Set{"HN": 0.05, "N": 0.5}, nil)
	for _, c := range comps {
		fmt.Println(c.Label, c.Members)
	}
	// Output:
	// 1 [0 1]
	// 2 [2]
}
