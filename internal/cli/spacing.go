package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vdobler/subplot"
)

type spacingOpts struct {
	figWidth   float64
	count      int
	panelWidth float64
	left       float64
	right      float64
	min        float64
}

func (c *CLI) spacingCommand() *cobra.Command {
	opts := spacingOpts{left: 0.5, right: 0.5, min: subplot.DefaultMinSpacing}

	cmd := &cobra.Command{
		Use:   "spacing",
		Short: "Compute the gap that fits a number of panels into one row",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSpacing(cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().Float64Var(&opts.figWidth, "fig-width", 0, "figure width in inches")
	cmd.Flags().IntVarP(&opts.count, "count", "n", 0, "number of panels")
	cmd.Flags().Float64Var(&opts.panelWidth, "panel-width", 0, "panel width in inches")
	cmd.Flags().Float64Var(&opts.left, "left", opts.left, "left margin in inches")
	cmd.Flags().Float64Var(&opts.right, "right", opts.right, "right margin in inches")
	cmd.Flags().Float64Var(&opts.min, "min", opts.min, "minimum gap in inches")
	for _, name := range []string{"fig-width", "count", "panel-width"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}

func (c *CLI) runSpacing(w io.Writer, opts spacingOpts) error {
	m := subplot.Margins{Left: opts.left, Right: opts.right}
	gap, err := subplot.RowSpacing(opts.figWidth, opts.count, opts.panelWidth, m, opts.min)
	if err != nil {
		return err
	}
	c.Logger.Debug("row spacing", "count", opts.count, "panel", opts.panelWidth, "gap", gap)
	fmt.Fprintln(w, num(gap))
	return nil
}
