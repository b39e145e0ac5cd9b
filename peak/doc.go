// Package peak defines the in-memory model of an experimental NMR peak
// list: individual peaks (one coordinate and one assignment entry per
// spectral dimension) and the list that owns them.
//
// A List is constructed once during ingestion, validated against its
// dimension labels, and read-only afterwards. Every Peak carries its
// 0-based position in the original input as Index; that identity is
// never reused or reassigned and is what downstream grouping results
// refer back to.
//
// The package also provides chemical-shift range filtering
// (ShiftRange), recovering the ranges commonly used to discard
// artifact peaks before grouping. Filtering produces a new, re-indexed
// List; the input List is never mutated.
//
// Errors:
//   - ErrNoDims       — empty dimension label list.
//   - ErrDuplicateDim — repeated dimension label.
//   - ErrDimCount     — peak width differs from the label count.
package peak
