package cluster

import (
	"fmt"
	"math"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/nmrkit/ssc/dims"
	"github.com/nmrkit/ssc/peak"
	"github.com/nmrkit/ssc/tolerance"
)

// Group partitions peaks into spin-system components.
//
// Steps:
//  1. Validate that tol carries an entry for every resolved root
//     dimension (ErrMissingTolerance).
//  2. Extract each peak's root values once into an n×r arena.
//  3. Evaluate the i<j pair triangle — sequentially, or striped across
//     opts.Workers goroutines — and union every directly matching pair
//     into an arena union-find.
//  4. Read components off the union-find in ascending peak order, so
//     labels 1..k follow each component's lowest member index and
//     Members come out ascending.
//
// Zero peaks yield zero components; one peak yields one singleton. The
// engine itself never fails on well-formed input. Output is identical
// for every worker count and pair evaluation order.
//
// Complexity: O(n²·r) comparisons, O(n·α(n)) union-find work.
func Group(peaks []peak.Peak, res dims.Resolution, tol tolerance.Set, opts *Options) ([]Component, error) {
	tols := make([]float64, res.Len())
	for i := 0; i < res.Len(); i++ {
		t, ok := tol[res.Label(i)]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingTolerance, res.Label(i))
		}
		tols[i] = t
	}

	n := len(peaks)
	if n == 0 {
		return []Component{}, nil
	}

	vals := make([][]float64, n)
	for i, p := range peaks {
		vals[i] = res.Values(p)
	}

	workers := 1
	if opts != nil {
		workers = opts.Workers
	}

	uf := newUnionFind(n)
	if workers > 1 && n > 2 {
		for _, pair := range matchPairsParallel(vals, tols, workers) {
			uf.union(pair[0], pair[1])
		}
	} else {
		for i := 0; i < n-1; i++ {
			for j := i + 1; j < n; j++ {
				if matches(vals[i], vals[j], tols) {
					uf.union(i, j)
				}
			}
		}
	}

	return components(uf, n), nil
}

// matches reports a direct match: every root dimension within its
// tolerance, inclusive.
func matches(a, b, tols []float64) bool {
	for d, t := range tols {
		if math.Abs(a[d]-b[d]) > t {
			return false
		}
	}
	return true
}

// matchPairsParallel evaluates the pair triangle with worker goroutines
// pulling rows from a shared counter. Each worker collects its matches
// locally; the merged pair list feeds the union-find afterwards, so no
// synchronization on the arena is needed and the resulting components
// are independent of scheduling.
func matchPairsParallel(vals [][]float64, tols []float64, workers int) [][2]int {
	n := len(vals)
	var next atomic.Int64
	local := make([][][2]int, workers)

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			var pairs [][2]int
			for {
				i := int(next.Add(1)) - 1
				if i >= n-1 {
					break
				}
				for j := i + 1; j < n; j++ {
					if matches(vals[i], vals[j], tols) {
						pairs = append(pairs, [2]int{i, j})
					}
				}
			}
			local[w] = pairs
			return nil
		})
	}
	_ = g.Wait() // workers never error

	var all [][2]int
	for _, pairs := range local {
		all = append(all, pairs...)
	}
	return all
}

// components materializes labeled components from the union-find,
// walking peaks in ascending index order so that component k's label is
// determined by its lowest member.
func components(uf *unionFind, n int) []Component {
	order := make(map[int]int, n) // set root → slot in out
	out := make([]Component, 0, n)
	for i := 0; i < n; i++ {
		root := uf.find(i)
		slot, ok := order[root]
		if !ok {
			slot = len(out)
			order[root] = slot
			out = append(out, Component{Label: slot + 1})
		}
		out[slot].Members = append(out[slot].Members, i)
	}
	return out
}
