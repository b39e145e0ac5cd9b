// Package tolerance supplies the per-root-dimension matching tolerances
// the clustering engine groups peaks under.
//
// A Set maps each root dimension label to the maximum absolute shift
// difference two peaks may show on that dimension and still be
// considered matching there. Sets come from one of two predictors:
//
//   - Static    — tolerances taken verbatim from configuration.
//   - Exec      — tolerances estimated by an external registration
//     executable, fed the peak list's root dimension values as a child
//     process.
//
// Both satisfy Predictor, so the engine never knows which one produced
// its thresholds; an in-process statistical estimator would slot in the
// same way. Provider wraps any Predictor with run-scoped caching: the
// estimate runs at most once per run, and every caller sees the same
// Set or the same failure.
//
// Calibration failures are terminal for a run. A wrong tolerance
// silently substituted would corrupt every downstream cluster, so there
// is no fallback Set and no retry: unreachable executable, non-zero
// exit, timeout and unparsable output all surface as errors wrapping
// ErrCalibration.
package tolerance
