package ssc_test

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/nmrkit/ssc"
	"github.com/nmrkit/ssc/parse"
	"github.com/nmrkit/ssc/peak"
	"github.com/nmrkit/ssc/tolerance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bptiSample approximates the documented bpti_HNcoCACB example: four
// amide peaks tracing a chain with small HN/N increments, carrying the
// CA/CB shifts of the preceding residue.
const bptiSample = `Assignment	w1	w2	w3
A16HN-A16N-C15CA	8.102	120.31	56.12
A16HN-A16N-C15CB	8.108	120.45	30.88
R17HN-R17N-A16CA	8.441	122.70	52.41
R17HN-R17N-A16CB	8.448	122.86	19.02
`

// writeSample drops the sparky fixture into a temp dir.
func writeSample(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bpti_HNcoCACB.txt")
	require.NoError(t, os.WriteFile(path, []byte(bptiSample), 0o644))
	return path
}

// bptiConfig covers the static-tolerance path over the fixture.
func bptiConfig(path string) ssc.Config {
	return ssc.Config{
		PeakListPath: path,
		Format:       parse.Sparky,
		Spectrum:     "HNcoCACB",
		Dims:         []string{"HN", "N", "CA/CB"},
		RootDims:     []string{"HN", "N"},
		Tolerances:   tolerance.Set{"HN": 0.05, "N": 0.5},
	}
}

// TestGroup_BptiScenario runs the full pipeline: the two CA/CB peak
// pairs of each residue collapse into one spin system per residue.
func TestGroup_BptiScenario(t *testing.T) {
	g, err := ssc.Group(context.Background(), bptiConfig(writeSample(t)))
	require.NoError(t, err)

	require.Len(t, g, 2, "one spin system per residue")

	assert.Equal(t, 1, g[0].Label)
	require.Len(t, g[0].Peaks, 2)
	assert.Equal(t, 0, g[0].Peaks[0].Index)
	assert.Equal(t, 1, g[0].Peaks[1].Index)
	assert.Equal(t, []string{"A16HN", "A16N", "C15CA"}, g[0].Peaks[0].Assignment)
	assert.InDelta(t, 0.003, g[0].Stds["HN"], 1e-9)
	assert.InDelta(t, 0.07, g[0].Stds["N"], 1e-9)

	assert.Equal(t, 2, g[1].Label)
	require.Len(t, g[1].Peaks, 2)
	assert.Equal(t, 2, g[1].Peaks[0].Index)
	assert.Equal(t, 3, g[1].Peaks[1].Index)
}

// TestGroup_Reproducible: repeated runs over the same input and
// tolerances yield the identical result value.
func TestGroup_Reproducible(t *testing.T) {
	cfg := bptiConfig(writeSample(t))

	first, err := ssc.Group(context.Background(), cfg)
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		again, err := ssc.Group(context.Background(), cfg)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

// TestGroup_CalibratedMode drives mode (b) through a stand-in
// registration script.
func TestGroup_CalibratedMode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell fixtures require a POSIX shell")
	}
	dir := t.TempDir()
	crs := filepath.Join(dir, "registration.sh")
	require.NoError(t, os.WriteFile(crs, []byte("#!/bin/sh\ncat >/dev/null\necho '0.05 0.5'\n"), 0o755))

	cfg := bptiConfig(writeSample(t))
	cfg.Tolerances = nil
	cfg.CalibrationPath = crs

	g, err := ssc.Group(context.Background(), cfg)
	require.NoError(t, err)
	assert.Len(t, g, 2)
}

// TestGroup_CalibrationFailure: a non-zero registration exit fails the
// run with ErrCalibration and yields no result at all.
func TestGroup_CalibrationFailure(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell fixtures require a POSIX shell")
	}
	dir := t.TempDir()
	crs := filepath.Join(dir, "registration.sh")
	require.NoError(t, os.WriteFile(crs, []byte("#!/bin/sh\nexit 1\n"), 0o755))

	cfg := bptiConfig(writeSample(t))
	cfg.Tolerances = nil
	cfg.CalibrationPath = crs

	g, err := ssc.Group(context.Background(), cfg)
	assert.ErrorIs(t, err, tolerance.ErrCalibration)
	assert.Nil(t, g)
}

// TestGroup_ToleranceMode rejects zero and two tolerance sources.
func TestGroup_ToleranceMode(t *testing.T) {
	cfg := bptiConfig(writeSample(t))

	neither := cfg
	neither.Tolerances = nil
	_, err := ssc.Group(context.Background(), neither)
	assert.ErrorIs(t, err, ssc.ErrToleranceMode)

	both := cfg
	both.CalibrationPath = "/usr/local/bin/registration"
	_, err = ssc.Group(context.Background(), both)
	assert.ErrorIs(t, err, ssc.ErrToleranceMode)
}

// TestGroup_Filtered applies a shift-range filter before grouping; the
// remaining peaks are re-indexed from zero in the result.
func TestGroup_Filtered(t *testing.T) {
	cfg := bptiConfig(writeSample(t))
	cfg.Filters = []peak.ShiftRange{{Label: "N", Min: 90, Max: 121}}

	g, err := ssc.Group(context.Background(), cfg)
	require.NoError(t, err)
	require.Len(t, g, 1, "only the A16 pair survives the N ≤ 121 filter")
	require.Len(t, g[0].Peaks, 2)
	assert.Equal(t, 0, g[0].Peaks[0].Index)
	assert.Equal(t, 1, g[0].Peaks[1].Index)
}
