package result_test

import (
	"bytes"
	"testing"

	"github.com/nmrkit/ssc/cluster"
	"github.com/nmrkit/ssc/dims"
	"github.com/nmrkit/ssc/peak"
	"github.com/nmrkit/ssc/result"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixture builds a three-peak HN/N list with one pair and one
// singleton, pre-grouped.
func fixture(t *testing.T) (*peak.List, dims.Resolution, []cluster.Component) {
	t.Helper()
	list, err := peak.NewList("HSQC", []string{"HN", "N"}, []peak.Peak{
		{Dimensions: []float64{8.10, 119.0}, Assignment: []string{"A42HN", "A42N"}},
		{Dimensions: []float64{7.65, 114.8}, Assignment: []string{"?", "?"}},
		{Dimensions: []float64{8.12, 121.0}, Assignment: []string{"A42HN", "A42N"}},
	})
	require.NoError(t, err)

	res, err := dims.Resolve([]string{"HN", "N"}, []string{"HN", "N"})
	require.NoError(t, err)

	comps := []cluster.Component{
		{Label: 1, Members: []int{0, 2}},
		{Label: 2, Members: []int{1}},
	}
	return list, res, comps
}

// TestAssemble verifies labels, input-order peaks, original indices and
// spreads in the exported structure.
func TestAssemble(t *testing.T) {
	list, res, comps := fixture(t)

	g := result.Assemble(list, res, comps)
	require.Len(t, g, 2)

	assert.Equal(t, 1, g[0].Label)
	require.Len(t, g[0].Peaks, 2)
	assert.Equal(t, 0, g[0].Peaks[0].Index)
	assert.Equal(t, 2, g[0].Peaks[1].Index)
	assert.Equal(t, []string{"A42HN", "A42N"}, g[0].Peaks[0].Assignment)
	assert.InDelta(t, 0.01, g[0].Stds["HN"], 1e-12, "population std of {8.10, 8.12}")
	assert.InDelta(t, 1.0, g[0].Stds["N"], 1e-12, "population std of {119, 121}")

	assert.Equal(t, 2, g[1].Label)
	assert.Equal(t, map[string]float64{"HN": 0, "N": 0}, g[1].Stds, "singleton spreads are exactly zero")
}

// TestWriteRead round-trips the exported document and checks the wire
// field names.
func TestWriteRead(t *testing.T) {
	list, res, comps := fixture(t)
	g := result.Assemble(list, res, comps)

	var buf bytes.Buffer
	require.NoError(t, result.Write(&buf, g))

	for _, field := range []string{`"label"`, `"stds"`, `"peaks"`, `"assignment"`, `"dimensions"`, `"index"`} {
		assert.Contains(t, buf.String(), field)
	}

	back, err := result.Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, g, back)
}

// TestWrite_Deterministic: serializing the same grouping twice yields
// identical bytes.
func TestWrite_Deterministic(t *testing.T) {
	list, res, comps := fixture(t)
	g := result.Assemble(list, res, comps)

	var a, b bytes.Buffer
	require.NoError(t, result.Write(&a, g))
	require.NoError(t, result.Write(&b, g))
	assert.Equal(t, a.String(), b.String())
}
