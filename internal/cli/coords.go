package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vdobler/subplot"
)

const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

// cell is one output line of the coords command.
type cell struct {
	Index  int     `json:"index" yaml:"index"`
	Row    int     `json:"row" yaml:"row"`
	Col    int     `json:"col" yaml:"col"`
	Left   float64 `json:"left" yaml:"left"`
	Bottom float64 `json:"bottom" yaml:"bottom"`
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

type coordsOpts struct {
	format string
	inches bool
	final  bool
	strict bool
}

func (c *CLI) coordsCommand() *cobra.Command {
	opts := coordsOpts{format: formatTable}

	cmd := &cobra.Command{
		Use:   "coords <layout>",
		Short: "Print the panel rectangles of a layout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(opts.format, formatTable, formatJSON, formatYAML); err != nil {
				return err
			}
			return c.runCoords(cmd.OutOrStdout(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: table, json, yaml")
	cmd.Flags().BoolVar(&opts.inches, "inches", false, "print inches instead of figure fractions")
	cmd.Flags().BoolVar(&opts.final, "final", false, "expand image cells of row layouts")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "fail if the panels overflow the figure")

	return cmd
}

func (c *CLI) runCoords(w io.Writer, arg string, opts coordsOpts) error {
	a, err := c.loadArrangement(arg)
	if err != nil {
		return err
	}
	if err := c.checkFit(a, opts.strict); err != nil {
		return err
	}
	rects, err := coordinates(a, opts.final)
	if err != nil {
		return err
	}
	if opts.inches {
		rects = subplot.ToInches(rects, a.FigureSize())
	}
	cells := newCells(rects, a.Bands())

	switch opts.format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(cells)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(cells); err != nil {
			return err
		}
		return enc.Close()
	}

	unit := ""
	if opts.inches {
		unit = "in"
	}
	fmt.Fprintln(w, StyleTitle.Render(arg)+" "+StyleDim.Render(a.FigureSize().String()))
	fmt.Fprintln(w, rectTable(cells, unit))
	return nil
}

// newCells numbers rects row-major along bands. If the bands do not
// cover rects every cell is placed in row 0.
func newCells(rects []subplot.Rect, bands []int) []cell {
	total := 0
	for _, n := range bands {
		total += n
	}
	cells := make([]cell, len(rects))
	row, col := 0, 0
	for i, r := range rects {
		cells[i] = cell{Index: i, Row: row, Col: col,
			Left: r.Left, Bottom: r.Bottom, Width: r.Width, Height: r.Height}
		if total != len(rects) {
			cells[i].Col = i
			continue
		}
		col++
		if row < len(bands) && col == bands[row] {
			row, col = row+1, 0
		}
	}
	return cells
}

func validateFormat(format string, valid ...string) error {
	for _, v := range valid {
		if format == v {
			return nil
		}
	}
	return fmt.Errorf("invalid format: %s (must be one of %v)", format, valid)
}
