package result

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/nmrkit/ssc/cluster"
	"github.com/nmrkit/ssc/dims"
	"github.com/nmrkit/ssc/peak"
	"github.com/nmrkit/ssc/stats"
)

// Peak is one peak as exported in a grouping result.
type Peak struct {
	Assignment []string  `json:"assignment"`
	Dimensions []float64 `json:"dimensions"`
	Index      int       `json:"index"`
}

// Cluster is one exported spin-system cluster: its 1-based label, the
// spread of every root dimension across its peaks, and its peaks in
// original input order.
type Cluster struct {
	Label int                `json:"label"`
	Stds  map[string]float64 `json:"stds"`
	Peaks []Peak             `json:"peaks"`
}

// Grouping is the full exported result, ordered by cluster label.
type Grouping []Cluster

// Assemble combines the engine's components with the source list and
// the statistics module's spreads into the exported structure.
// Component members are already ascending by original index, which is
// exactly the exported peak order.
func Assemble(list *peak.List, res dims.Resolution, comps []cluster.Component) Grouping {
	peaks := list.Peaks()
	out := make(Grouping, 0, len(comps))
	for _, c := range comps {
		rec := Cluster{
			Label: c.Label,
			Stds:  stats.PerDimension(peaks, res, c.Members),
			Peaks: make([]Peak, 0, len(c.Members)),
		}
		for _, m := range c.Members {
			p := peaks[m]
			rec.Peaks = append(rec.Peaks, Peak{
				Assignment: p.Assignment,
				Dimensions: p.Dimensions,
				Index:      p.Index,
			})
		}
		out = append(out, rec)
	}
	return out
}

// Write serializes g as 4-space-indented JSON.
func Write(w io.Writer, g Grouping) error {
	data, err := json.MarshalIndent(g, "", "    ")
	if err != nil {
		return fmt.Errorf("result: encode: %w", err)
	}
	if _, err = w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("result: write: %w", err)
	}
	return nil
}

// WriteFile assembles the whole document in memory first, so a failed
// run never leaves a partial result file behind.
func WriteFile(path string, g Grouping) error {
	data, err := json.MarshalIndent(g, "", "    ")
	if err != nil {
		return fmt.Errorf("result: encode: %w", err)
	}
	if err = os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("result: write %s: %w", path, err)
	}
	return nil
}

// Read parses a grouping result previously produced by Write.
func Read(r io.Reader) (Grouping, error) {
	var g Grouping
	if err := json.NewDecoder(r).Decode(&g); err != nil {
		return nil, fmt.Errorf("result: decode: %w", err)
	}
	return g, nil
}

// ReadFile parses the grouping result at path.
func ReadFile(path string) (Grouping, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("result: open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f)
}
