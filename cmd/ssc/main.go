// Command ssc groups NMR peak lists into spin systems and visualizes
// the resulting clusters.
//
// Usage:
//
//	ssc group --plpath peaks.txt --plformat sparky --stype HNcoCACB \
//	    --dims HN,N,CA/CB --rdims HN,N [--tols HN=0.05,N=0.5 | --crs PATH] \
//	    [--result DIR] [--filter] [--view]
//	ssc visualize RESULT X_IDX Y_IDX X_LABEL Y_LABEL TITLE [--out PATH]
//
// Defaults for the registration executable, calibration timeout and
// worker count come from SSC_CRS_PATH, SSC_TIMEOUT and SSC_WORKERS;
// flags override the environment.
package main

import (
	"log"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/cobra"
)

// envDefaults carries environment-sourced CLI defaults.
type envDefaults struct {
	CRSPath string        `env:"SSC_CRS_PATH"`
	Timeout time.Duration `env:"SSC_TIMEOUT"`
	Workers int           `env:"SSC_WORKERS"`
}

func main() {
	log.SetFlags(0)

	var defaults envDefaults
	if err := env.Parse(&defaults); err != nil {
		log.Fatalf("ssc: parse environment: %v", err)
	}

	root := &cobra.Command{
		Use:           "ssc",
		Short:         "Group NMR peaks into spin system clusters",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newGroupCmd(defaults), newVisualizeCmd())

	if err := root.Execute(); err != nil {
		log.Printf("ssc: %v", err)
		os.Exit(1)
	}
}
