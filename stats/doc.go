// Package stats computes the per-dimension spread figures reported for
// each spin-system cluster.
//
// Spread is the population standard deviation (divide by n, not n−1):
// a two-peak cluster with identical values on a dimension reports
// exactly 0.0, and a singleton cluster reports 0.0 on every dimension
// by definition — never NaN and never an undefined result.
package stats
