package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vdobler/subplot"
)

func (c *CLI) presetsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the built-in layouts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listPresets(cmd.OutOrStdout())
		},
	}
}

func listPresets(w io.Writer) error {
	for _, name := range subplot.Presets() {
		l, err := subplot.Preset(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s %s\n", StyleTitle.Render(fmt.Sprintf("%-16s", name)),
			StyleDim.Render(fmt.Sprintf("%dx%d panels on %s", l.Grid.Rows, l.Grid.Cols, l.Figure)))
	}
	return nil
}

func (c *CLI) initCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "init <preset>",
		Short: "Write a preset as an editable YAML layout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := subplot.Preset(args[0])
			if err != nil {
				return err
			}
			if output == "" {
				return l.WriteYAML(cmd.OutOrStdout())
			}
			if err := l.SaveYAML(output); err != nil {
				return err
			}
			c.Logger.Debug("wrote layout", "preset", args[0], "file", output)
			printSuccess(cmd.OutOrStdout(), "Wrote %s", output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	return cmd
}
