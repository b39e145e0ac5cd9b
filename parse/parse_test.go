package parse_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/nmrkit/ssc/parse"
	"github.com/nmrkit/ssc/peak"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sparkySample = `Assignment	w1	w2

A42HN-A42N	8.102	120.31	153002
A43HN-A43N	7.655	114.80	98211
?-?	8.340	121.02	41233
`

// TestRead_Sparky parses assignments, shifts and file-order indices,
// skipping the header and the data-height column.
func TestRead_Sparky(t *testing.T) {
	list, err := parse.Read(strings.NewReader(sparkySample), parse.Sparky, "HSQC", []string{"HN", "N"})
	require.NoError(t, err)
	require.Equal(t, 3, list.Len())

	first := list.Peak(0)
	assert.Equal(t, 0, first.Index)
	assert.Equal(t, []string{"A42HN", "A42N"}, first.Assignment)
	assert.Equal(t, []float64{8.102, 120.31}, first.Dimensions)

	assert.Equal(t, []string{"?", "?"}, list.Peak(2).Assignment)
}

// TestRead_Sparky_BadShift surfaces the offending line number.
func TestRead_Sparky_BadShift(t *testing.T) {
	bad := "A42HN-A42N\t8.102\tnope\n"
	_, err := parse.Read(strings.NewReader(bad), parse.Sparky, "HSQC", []string{"HN", "N"})
	require.ErrorIs(t, err, parse.ErrFormat)
	assert.Contains(t, err.Error(), "line 1")
}

const autoAssignSample = `# bpti HNcoCACB workbook
1	8.102	120.31	0	HNcoCACB
2	7.655	114.80	0	HNcoCACB
*
3	9.999	130.00	0	HNcoCACB
`

// TestRead_AutoAssign honors comments, the "*" terminator and the
// all-unassigned convention.
func TestRead_AutoAssign(t *testing.T) {
	list, err := parse.Read(strings.NewReader(autoAssignSample), parse.AutoAssign, "HNcoCACB", []string{"HN", "N"})
	require.NoError(t, err)
	require.Equal(t, 2, list.Len(), "rows after the terminator are not read")

	assert.Equal(t, []float64{7.655, 114.8}, list.Peak(1).Dimensions)
	assert.Equal(t, []string{"?", "?"}, list.Peak(0).Assignment)
}

const jsonSample = `[
  {"Assignment": ["A42HN", "A42N"], "Dimensions": [8.102, 120.31], "DataHeight": 153002},
  {"Assignment": ["?", "?"], "Dimensions": [7.655, 114.80]}
]`

// TestRead_JSON parses records and ignores extra keys.
func TestRead_JSON(t *testing.T) {
	list, err := parse.Read(strings.NewReader(jsonSample), parse.JSON, "HSQC", []string{"HN", "N"})
	require.NoError(t, err)
	require.Equal(t, 2, list.Len())
	assert.Equal(t, []string{"A42HN", "A42N"}, list.Peak(0).Assignment)
}

const cstableSample = `# shifts only
8.102	120.31
7.655	114.80
`

// TestRead_CSTable parses bare shift columns.
func TestRead_CSTable(t *testing.T) {
	list, err := parse.Read(strings.NewReader(cstableSample), parse.CSTable, "HSQC", []string{"HN", "N"})
	require.NoError(t, err)
	require.Equal(t, 2, list.Len())
	assert.Equal(t, []string{"?", "?"}, list.Peak(0).Assignment)
}

// TestRead_UnknownFormat rejects unrecognized format names.
func TestRead_UnknownFormat(t *testing.T) {
	_, err := parse.Read(strings.NewReader(""), parse.Format("nmrpipe"), "HSQC", []string{"HN", "N"})
	assert.ErrorIs(t, err, parse.ErrUnknownFormat)
}

// TestWrite_SparkyRoundTrip writes sparky and reads it back unchanged.
func TestWrite_SparkyRoundTrip(t *testing.T) {
	list, err := parse.Read(strings.NewReader(sparkySample), parse.Sparky, "HSQC", []string{"HN", "N"})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, parse.Write(&buf, list, parse.Sparky))
	assert.True(t, strings.HasPrefix(buf.String(), "Assignment\tw1\tw2\n"))

	back, err := parse.Read(&buf, parse.Sparky, "HSQC", []string{"HN", "N"})
	require.NoError(t, err)
	assert.Equal(t, list.Peaks(), back.Peaks())
}

// TestWrite_AutoAssign verifies header, 1-based indices and workbook
// column.
func TestWrite_AutoAssign(t *testing.T) {
	list, err := peak.NewList("HNcoCACB", []string{"HN", "N"}, []peak.Peak{
		{Dimensions: []float64{8.102, 120.31}, Assignment: []string{"?", "?"}},
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, parse.Write(&buf, list, parse.AutoAssign))
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Index\t1Dim\t2Dim\tIntensity\tWorkbook", lines[0])
	assert.Equal(t, "1\t8.102\t120.31\t0\tHNcoCACB", lines[1])
}

// TestWrite_JSONRoundTrip writes json and reads it back unchanged.
func TestWrite_JSONRoundTrip(t *testing.T) {
	list, err := parse.Read(strings.NewReader(jsonSample), parse.JSON, "HSQC", []string{"HN", "N"})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, parse.Write(&buf, list, parse.JSON))

	back, err := parse.Read(&buf, parse.JSON, "HSQC", []string{"HN", "N"})
	require.NoError(t, err)
	assert.Equal(t, list.Peaks(), back.Peaks())
}

// TestWrite_CSTableUnsupported: cstable is read-only.
func TestWrite_CSTableUnsupported(t *testing.T) {
	list, err := peak.NewList("HSQC", []string{"HN"}, nil)
	require.NoError(t, err)
	assert.ErrorIs(t, parse.Write(&bytes.Buffer{}, list, parse.CSTable), parse.ErrUnknownFormat)
}
