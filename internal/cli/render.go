package cli

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/vdobler/subplot/figure"
)

const (
	backendGonum  = "gonum"
	backendCanvas = "canvas"
)

type renderOpts struct {
	output  string
	backend string
	labels  bool
	start   string
	noBoxes bool
	final   bool
	strict  bool
}

func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{
		output:  "layout.png",
		backend: backendGonum,
		labels:  true,
		start:   "A",
	}

	cmd := &cobra.Command{
		Use:   "render <layout>",
		Short: "Draw the panels of a layout to an image or vector file",
		Long: `Render draws an outline and a subplot letter for every panel. The gonum
backend writes png, jpg, tif, svg, pdf and eps; the canvas backend writes svg and pdf.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.backend != backendGonum && opts.backend != backendCanvas {
				return fmt.Errorf("invalid backend: %s (must be 'gonum' or 'canvas')", opts.backend)
			}
			if utf8.RuneCountInString(opts.start) != 1 {
				return fmt.Errorf("--start must be a single letter, got %q", opts.start)
			}
			return c.runRender(cmd.OutOrStdout(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", opts.output, "output file")
	cmd.Flags().StringVar(&opts.backend, "backend", opts.backend, "renderer: gonum, canvas")
	cmd.Flags().BoolVar(&opts.labels, "labels", opts.labels, "draw subplot letters")
	cmd.Flags().StringVar(&opts.start, "start", opts.start, "first subplot letter")
	cmd.Flags().BoolVar(&opts.noBoxes, "no-boxes", false, "do not outline the panels")
	cmd.Flags().BoolVar(&opts.final, "final", false, "expand image cells of row layouts")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "fail if the panels overflow the figure")

	return cmd
}

func (c *CLI) runRender(w io.Writer, arg string, opts renderOpts) error {
	prog := newProgress(c.Logger)

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

	fopts := []figure.Option{figure.WithLogger(c.Logger), figure.WithRects(rects)}
	if opts.labels {
		r, _ := utf8.DecodeRuneInString(opts.start)
		fopts = append(fopts, figure.WithLabels(r))
	}
	if !opts.noBoxes {
		fopts = append(fopts, figure.WithBoxes())
	}
	f, err := figure.New(a, fopts...)
	if err != nil {
		return err
	}
	for _, p := range f.Panels {
		p.AddCornerText(fmt.Sprintf("%d,%d", p.Row, p.Col), figure.BottomRight)
	}

	if opts.backend == backendCanvas {
		err = f.SaveCanvas(opts.output)
	} else {
		err = f.Save(opts.output)
	}
	if err != nil {
		return err
	}
	prog.done("rendered", "file", opts.output, "panels", len(f.Panels))
	printSuccess(w, "Wrote %s", opts.output)
	return nil
}
