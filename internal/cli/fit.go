package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

type fitReport struct {
	Figure   [2]float64 `json:"figure"`
	Required [2]float64 `json:"required"`
	Overflow bool       `json:"overflow"`
}

func (c *CLI) fitCommand() *cobra.Command {
	format := formatTable

	cmd := &cobra.Command{
		Use:   "fit <layout>",
		Short: "Compare the space the panels need with the figure size",
		Long:  `Fit prints the width and height required by panels, gaps and margins next to the figure size. It fails if the panels do not fit.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(format, formatTable, formatJSON); err != nil {
				return err
			}
			return c.runFit(cmd.OutOrStdout(), args[0], format)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", format, "output format: table, json")
	return cmd
}

func (c *CLI) runFit(w io.Writer, arg, format string) error {
	a, err := c.loadArrangement(arg)
	if err != nil {
		return err
	}
	f, err := a.Fit()
	if err != nil {
		return err
	}

	if format == formatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err := enc.Encode(fitReport{
			Figure:   [2]float64{f.Figure.Width, f.Figure.Height},
			Required: [2]float64{f.Required.Width, f.Required.Height},
			Overflow: f.Overflows(),
		})
		if err != nil {
			return err
		}
		return f.Err()
	}

	fmt.Fprintln(w, fitTable(f))
	if err := f.Err(); err != nil {
		printError(w, "%s does not fit", arg)
		return err
	}
	printSuccess(w, "%s fits", arg)
	printDetail(w, "spare %s x %s in", num(f.Figure.Width-f.Required.Width), num(f.Figure.Height-f.Required.Height))
	return nil
}
