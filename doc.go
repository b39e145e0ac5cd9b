// Package ssc groups peaks from a single multidimensional NMR peak
// list into spin-system clusters.
//
// A spin system is the set of peaks whose resonances belong to one
// residue of the molecule under study. Across experiment types those
// peaks share their root dimensions (e.g. the amide HN and N shifts),
// so peaks whose root values agree within a per-dimension tolerance —
// configured explicitly or estimated by an external registration
// step — are grouped together by single-linkage transitive matching.
//
// The pipeline is organized leaf-first under this module:
//
//	peak/       — Peak and List model, shift-range filters
//	dims/       — root-dimension label → coordinate index resolution
//	tolerance/  — static and subprocess-calibrated tolerance sets
//	cluster/    — the union-find grouping engine
//	stats/      — per-cluster, per-dimension population spreads
//	result/     — exported result assembly and JSON serialization
//	parse/      — sparky / autoassign / json / cstable ingestion
//	visualize/  — HTML scatter rendering of a result
//	cmd/ssc     — the command-line surface
//
// This package ties them together: Group runs the whole pipeline from
// a peak-list file to an exported result under one immutable Config,
// and GroupList does the same for an in-memory list. One invocation,
// one list, one partition; nothing is shared or cached across runs.
package ssc
