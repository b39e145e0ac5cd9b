package ssc

import (
	"context"
	"errors"
	"time"

	"github.com/nmrkit/ssc/cluster"
	"github.com/nmrkit/ssc/dims"
	"github.com/nmrkit/ssc/parse"
	"github.com/nmrkit/ssc/peak"
	"github.com/nmrkit/ssc/result"
	"github.com/nmrkit/ssc/tolerance"
)

// ErrToleranceMode indicates that neither or both tolerance sources
// were configured; a run needs exactly one of Tolerances and
// CalibrationPath.
var ErrToleranceMode = errors.New("ssc: exactly one of Tolerances or CalibrationPath must be set")

// Config is the immutable per-run configuration. It is threaded into
// every component explicitly; there is no ambient or global state.
type Config struct {
	// PeakListPath and Format locate and describe the input peak list
	// (used by Group; GroupList takes the list directly).
	PeakListPath string
	Format       parse.Format

	// Spectrum is the experiment type label, e.g. "HNcoCACB".
	Spectrum string

	// Dims are all dimension labels in peak order; RootDims is the
	// ordered subset used as the matching key.
	Dims     []string
	RootDims []string

	// Tolerances selects static mode when non-nil; CalibrationPath
	// selects external calibration. Exactly one must be set.
	Tolerances      tolerance.Set
	CalibrationPath string

	// CalibrationTimeout bounds the external calibration call; zero
	// means tolerance.DefaultTimeout.
	CalibrationTimeout time.Duration

	// Filters optionally restricts ingested peaks to chemical-shift
	// ranges before grouping (see peak.DefaultShiftRanges).
	Filters []peak.ShiftRange

	// Workers sets the engine's parallelism; zero means the engine
	// default.
	Workers int
}

// predictor picks the run's tolerance source from the Config.
func (c Config) predictor() (tolerance.Predictor, error) {
	switch {
	case c.Tolerances != nil && c.CalibrationPath != "":
		return nil, ErrToleranceMode
	case c.Tolerances != nil:
		return tolerance.Static(c.Tolerances), nil
	case c.CalibrationPath != "":
		return tolerance.Exec{Path: c.CalibrationPath, Timeout: c.CalibrationTimeout}, nil
	default:
		return nil, ErrToleranceMode
	}
}

// Group runs the whole pipeline for one peak-list file: ingest, filter
// (when configured), resolve root dimensions, obtain tolerances,
// cluster, and assemble the exported result. Either a full result is
// returned or an error; no partial result is ever produced.
func Group(ctx context.Context, cfg Config) (result.Grouping, error) {
	list, err := parse.ReadFile(cfg.PeakListPath, cfg.Format, cfg.Spectrum, cfg.Dims)
	if err != nil {
		return nil, err
	}
	return GroupList(ctx, list, cfg)
}

// GroupList runs the pipeline from an already ingested list.
//
// Steps:
//  1. Apply configured shift-range filters.
//  2. Resolve root dimension indices (configuration faults stop here).
//  3. Obtain the run's tolerance set — once, via a run-scoped Provider.
//  4. Partition into components and assemble the exported result.
func GroupList(ctx context.Context, list *peak.List, cfg Config) (result.Grouping, error) {
	pred, err := cfg.predictor()
	if err != nil {
		return nil, err
	}

	if len(cfg.Filters) > 0 {
		list = list.Filter(cfg.Filters...)
	}

	res, err := dims.Resolve(list.Dims(), cfg.RootDims)
	if err != nil {
		return nil, err
	}

	set, err := tolerance.NewProvider(pred).Tolerances(ctx, tolerance.Request{
		Spectrum: list.Spectrum(),
		Labels:   res.Labels(),
		Values:   rootSeries(list, res),
	})
	if err != nil {
		return nil, err
	}

	opts := cluster.DefaultOptions()
	if cfg.Workers > 0 {
		opts.Workers = cfg.Workers
	}
	comps, err := cluster.Group(list.Peaks(), res, set, &opts)
	if err != nil {
		return nil, err
	}

	return result.Assemble(list, res, comps), nil
}

// rootSeries collects, per root dimension, every peak's value in input
// order — the series the calibration step estimates spread from.
func rootSeries(list *peak.List, res dims.Resolution) [][]float64 {
	out := make([][]float64, res.Len())
	for d := 0; d < res.Len(); d++ {
		idx := res.Index(d)
		series := make([]float64, list.Len())
		for i, p := range list.Peaks() {
			series[i] = p.Dimensions[idx]
		}
		out[d] = series
	}
	return out
}
