package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/nmrkit/ssc"
	"github.com/nmrkit/ssc/parse"
	"github.com/nmrkit/ssc/peak"
	"github.com/nmrkit/ssc/result"
	"github.com/nmrkit/ssc/tolerance"
)

// groupFlags collects the group subcommand's flag values.
type groupFlags struct {
	plpath    string
	plformat  string
	stype     string
	dims      []string
	rdims     []string
	tols      string
	crs       string
	timeout   string
	workers   int
	filter    bool
	resultDir string
	view      bool
}

func newGroupCmd(defaults envDefaults) *cobra.Command {
	var f groupFlags

	cmd := &cobra.Command{
		Use:   "group",
		Short: "Cluster a peak list into spin systems",
		Long: `Group reads one peak list, obtains per-root-dimension tolerances
(statically via --tols, or from the registration executable via --crs),
clusters the peaks into spin systems, and writes the result as JSON
next to the input (or under --result).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfig(f, defaults)
			if err != nil {
				return err
			}

			grouping, err := ssc.Group(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			out, err := resultPath(f.plpath, f.resultDir)
			if err != nil {
				return err
			}
			if err := result.WriteFile(out, grouping); err != nil {
				return err
			}

			if f.view {
				return result.Write(cmd.OutOrStdout(), grouping)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&f.plpath, "plpath", "", "path to the peak list (required)")
	cmd.Flags().StringVar(&f.plformat, "plformat", "", "peak list format: sparky, autoassign, json, cstable (required)")
	cmd.Flags().StringVar(&f.stype, "stype", "", "spectrum type label, e.g. HNcoCACB")
	cmd.Flags().StringSliceVar(&f.dims, "dims", nil, "comma-separated dimension labels (required)")
	cmd.Flags().StringSliceVar(&f.rdims, "rdims", nil, "comma-separated root dimension labels (required)")
	cmd.Flags().StringVar(&f.tols, "tols", "", "explicit tolerances as label=value pairs, e.g. HN=0.05,N=0.5")
	cmd.Flags().StringVar(&f.crs, "crs", defaults.CRSPath, "registration executable path")
	cmd.Flags().StringVar(&f.timeout, "timeout", "", "calibration timeout, e.g. 30s")
	cmd.Flags().IntVar(&f.workers, "workers", defaults.Workers, "clustering worker count (0 = all CPUs)")
	cmd.Flags().BoolVar(&f.filter, "filter", false, "apply the default chemical-shift range filters before grouping")
	cmd.Flags().StringVar(&f.resultDir, "result", "", "directory for the result file (created if missing)")
	cmd.Flags().BoolVar(&f.view, "view", false, "print the result to stdout as well")

	for _, name := range []string{"plpath", "plformat", "dims", "rdims"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}

// buildConfig translates flags and environment defaults into the run
// configuration.
func buildConfig(f groupFlags, defaults envDefaults) (ssc.Config, error) {
	cfg := ssc.Config{
		PeakListPath:       f.plpath,
		Format:             parse.Format(f.plformat),
		Spectrum:           f.stype,
		Dims:               f.dims,
		RootDims:           f.rdims,
		CalibrationTimeout: defaults.Timeout,
		Workers:            f.workers,
	}

	if f.tols != "" {
		set, err := parseTols(f.tols)
		if err != nil {
			return ssc.Config{}, err
		}
		cfg.Tolerances = set
	} else {
		cfg.CalibrationPath = f.crs
	}

	if f.timeout != "" {
		d, err := parseTimeout(f.timeout)
		if err != nil {
			return ssc.Config{}, err
		}
		cfg.CalibrationTimeout = d
	}

	if f.filter {
		cfg.Filters = peak.DefaultShiftRanges()
	}
	return cfg, nil
}

// parseTols turns "HN=0.05,N=0.5" into a tolerance set.
func parseTols(s string) (tolerance.Set, error) {
	set := make(tolerance.Set)
	for _, pair := range strings.Split(s, ",") {
		label, value, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if !ok || label == "" {
			return nil, fmt.Errorf("bad --tols entry %q, want label=value", pair)
		}
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("bad --tols value for %q: %q", label, value)
		}
		set[label] = v
	}
	return set, nil
}

// parseTimeout parses a Go duration string.
func parseTimeout(s string) (d time.Duration, err error) {
	d, err = time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("bad --timeout %q: %v", s, err)
	}
	return d, nil
}

// resultPath derives "<peaklist>_grouping_result.json", next to the
// input by default or under dir when given.
func resultPath(plpath, dir string) (string, error) {
	name := filepath.Base(plpath) + "_grouping_result.json"
	if dir == "" {
		return filepath.Join(filepath.Dir(plpath), name), nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create result directory %s: %w", dir, err)
	}
	return filepath.Join(dir, name), nil
}
