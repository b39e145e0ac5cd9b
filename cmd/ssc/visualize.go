package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/nmrkit/ssc/result"
	"github.com/nmrkit/ssc/visualize"
)

func newVisualizeCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "visualize RESULT X_IDX Y_IDX X_LABEL Y_LABEL TITLE",
		Short: "Render a grouping result as an HTML scatter plot",
		Args:  cobra.ExactArgs(6),
		RunE: func(cmd *cobra.Command, args []string) error {
			resultPath := args[0]
			xIdx, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("bad X_IDX %q", args[1])
			}
			yIdx, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("bad Y_IDX %q", args[2])
			}

			grouping, err := result.ReadFile(resultPath)
			if err != nil {
				return err
			}

			if out == "" {
				out = resultPath + ".html"
			}
			opts := visualize.Options{
				XIndex: xIdx,
				YIndex: yIdx,
				XLabel: args[3],
				YLabel: args[4],
				Title:  args[5],
			}
			if err := visualize.RenderFile(out, grouping, opts); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "saved plot to %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "output HTML path (default RESULT.html)")
	return cmd
}
