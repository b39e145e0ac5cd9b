// Package dims resolves configured dimension labels to positions in a
// peak's coordinate vector.
//
// Grouping compares peaks only on their root dimensions — the subset of
// labels shared across experiment types (e.g. HN and N). Resolve maps
// each root label to the index it occupies in the full dimension list,
// validating that the configuration is coherent before any clustering
// work starts. The result is a pure value, computed once per run and
// reused everywhere a root value has to be pulled out of a peak.
//
// Errors (all configuration faults, detected before clustering):
//   - ErrNoDims         — empty dimension label list.
//   - ErrNoRoots        — empty root dimension label list.
//   - ErrDuplicateLabel — repeated label in either list.
//   - ErrUnknownRoot    — root label absent from the dimension list.
package dims
