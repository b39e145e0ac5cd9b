package visualize

import "errors"

var (
	// ErrEmptyGrouping indicates a result with no clusters to plot.
	ErrEmptyGrouping = errors.New("visualize: grouping has no clusters")

	// ErrBadAxis indicates a dimension index outside the peaks' width or
	// an axis label that is not a root dimension of the result.
	ErrBadAxis = errors.New("visualize: axis selection out of range")
)

// Options selects what to plot.
//
// Fields:
//   - XIndex, YIndex — positions inside each peak's dimension vector
//     supplying the x and y coordinates.
//   - XLabel, YLabel — root dimension labels for the axes; they must
//     appear in the result's stds, which also sizes the 4σ ellipses.
//   - Title         — plot title.
type Options struct {
	XIndex int
	YIndex int
	XLabel string
	YLabel string
	Title  string
}

// palette is the per-cluster color cycle.
var palette = []string{
	"#4F46E5", "#10B981", "#F59E0B", "#EF4444", "#8B5CF6",
	"#06B6D4", "#EC4899", "#84CC16", "#F97316", "#6366F1",
}
