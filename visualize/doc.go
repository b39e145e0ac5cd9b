// Package visualize renders a grouping result as a single
// self-contained HTML document: an SVG scatter of two chosen peak
// dimensions, one color per cluster, the cluster label at each
// centroid, a 4σ ellipse around every multi-peak cluster, and a hover
// tooltip per point carrying the peak's assignment.
//
// The output needs no external assets or scripts, so it can be opened
// from a results directory as-is.
package visualize
