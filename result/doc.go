// Package result assembles and serializes the exported grouping
// result: an ordered sequence of labeled clusters, each carrying its
// per-root-dimension spreads and its peaks with their full assignment,
// full coordinates and original input index.
//
// Peak order within a cluster is the original peak-list order
// (ascending by index), never internal discovery order, and JSON
// object keys serialize sorted, so the same input and tolerances
// always produce a byte-identical result file.
package result
