// Package cluster partitions a peak list into spin-system components:
// groups of peaks whose root dimension values agree within tolerance.
//
// Matching rule: peaks A and B match directly iff, on every root
// dimension d, |A[d] − B[d]| ≤ tolerance[d]. All root dimensions must
// agree simultaneously; agreement on a subset is not enough.
//
// Grouping rule: components are the connected components of the
// direct-match relation taken as an undirected graph — single-linkage
// transitive closure, not all-pairs agreement. This tolerates gradual
// drift along a spin-system chain (a peak needs to match only its
// neighbors), at the cost of the known chaining effect: two peaks in
// one final component are guaranteed a path of direct matches between
// them, not a direct match. That behavior is intentional and covered
// by tests; it is not a defect to tighten.
//
// Determinism: labels run 1..k in ascending order of each component's
// lowest member index, and members are listed ascending by index, so
// the same peaks and tolerances always produce the identical result —
// regardless of worker count, scheduling, or pair evaluation order.
package cluster
