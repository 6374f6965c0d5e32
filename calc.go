package subplot

import (
	"fmt"
	"strings"
)

// Rect is the placement of one panel in normalized figure coordinates,
// i.e. as fractions of the figure width and height with the origin in the
// bottom-left corner.
type Rect struct {
	Left, Bottom, Width, Height float64
}

// Right returns the right edge of r.
func (r Rect) Right() float64 { return r.Left + r.Width }

// Top returns the top edge of r.
func (r Rect) Top() float64 { return r.Bottom + r.Height }

// Slice returns r as [left, bottom, width, height].
func (r Rect) Slice() []float64 { return []float64{r.Left, r.Bottom, r.Width, r.Height} }

func (r Rect) String() string {
	return fmt.Sprintf("(%.4f, %.4f, %.4f, %.4f)", r.Left, r.Bottom, r.Width, r.Height)
}

// grid is the canonical, fully resolved form of a calculation's inputs:
// every extent and gap in inches.
type grid struct {
	fig     FigureSize
	heights []float64 // one per row, top to bottom
	widths  []float64 // one per column, left to right
	hspace  []float64 // rows-1
	wspace  []float64 // cols-1
	margins Margins
}

func resolve(fig FigureSize, shape GridShape, size SizeSpec, spacing SpacingSpec) (*grid, error) {
	if err := fig.validate(); err != nil {
		return nil, err
	}
	if err := shape.validate(); err != nil {
		return nil, err
	}
	heights, widths, err := size.resolve(shape)
	if err != nil {
		return nil, err
	}
	hspace, err := spacing.HSpace.resolve("hspace", shape.Rows)
	if err != nil {
		return nil, err
	}
	wspace, err := spacing.WSpace.resolve("wspace", shape.Cols)
	if err != nil {
		return nil, err
	}
	if err := spacing.Margins.validate(); err != nil {
		return nil, err
	}
	return &grid{
		fig:     fig,
		heights: heights,
		widths:  widths,
		hspace:  hspace,
		wspace:  wspace,
		margins: spacing.Margins,
	}, nil
}

// rowBands returns the vertical extent of each row, measured in inches
// from the top edge of the figure.
func (g *grid) rowBands() []Interval {
	return stack(g.margins.Top, g.heights, g.hspace)
}

// colBands returns the horizontal extent of each column, measured in
// inches from the left edge of the figure.
func (g *grid) colBands() []Interval {
	return stack(g.margins.Left, g.widths, g.wspace)
}

func (g *grid) rects() []Rect {
	rows, cols := g.rowBands(), g.colBands()
	x, y := g.fig.axes()
	rects := make([]Rect, 0, len(rows)*len(cols))
	for _, r := range rows {
		// Row bands run down from the top edge.
		bottom := LinearTrans.Trans(y, topDown, r.Max)
		height := LinearTrans.Trans(y, unit, r.Len())
		for _, c := range cols {
			rects = append(rects, Rect{
				Left:   LinearTrans.Trans(x, unit, c.Min),
				Bottom: bottom,
				Width:  LinearTrans.Trans(x, unit, c.Len()),
				Height: height,
			})
		}
	}
	return rects
}

func (g *grid) fit() Fit {
	return Fit{
		Figure: g.fig,
		Required: FigureSize{
			Width:  g.margins.Left + sum(g.widths) + sum(g.wspace) + g.margins.Right,
			Height: g.margins.Top + sum(g.heights) + sum(g.hspace) + g.margins.Bottom,
		},
	}
}

// Calculate computes the placement of every panel of a rows x cols grid in
// a figure of size fig. Panel extents come from size, gaps and margins from
// spacing; all of them are in inches.
//
// The result holds one Rect per cell in row-major order: row 0 (the top
// row) first and within a row column 0 (the leftmost) first.
//
// Invalid input fails with an *Error of kind InvalidDimension, InvalidGrid,
// SizeSpecLengthMismatch or SpacingSpecLengthMismatch. Panels that do not
// fit into the figure are not an error; use CheckFit to detect them.
func Calculate(fig FigureSize, shape GridShape, size SizeSpec, spacing SpacingSpec) ([]Rect, error) {
	g, err := resolve(fig, shape, size, spacing)
	if err != nil {
		return nil, err
	}
	return g.rects(), nil
}

// ----------------------------------------------------------------------------
// Fit

// fitTolerance absorbs rounding in sums of decimal inch values.
const fitTolerance = 1e-9

// Fit compares the extent a layout needs (panels, gaps and margins) with
// the figure size.
type Fit struct {
	Figure   FigureSize
	Required FigureSize
}

// OverflowsX reports whether the layout is wider than the figure.
func (f Fit) OverflowsX() bool { return f.Required.Width > f.Figure.Width+fitTolerance }

// OverflowsY reports whether the layout is taller than the figure.
func (f Fit) OverflowsY() bool { return f.Required.Height > f.Figure.Height+fitTolerance }

// Overflows reports whether the layout exceeds the figure along any axis.
func (f Fit) Overflows() bool { return f.OverflowsX() || f.OverflowsY() }

// Err returns an Overflow error naming the exceeded axes or nil if the
// layout fits.
func (f Fit) Err() error {
	if !f.Overflows() {
		return nil
	}
	var parts []string
	if f.OverflowsX() {
		parts = append(parts, fmt.Sprintf("requires %.2f in width but figure is %.2f in",
			f.Required.Width, f.Figure.Width))
	}
	if f.OverflowsY() {
		parts = append(parts, fmt.Sprintf("requires %.2f in height but figure is %.2f in",
			f.Required.Height, f.Figure.Height))
	}
	return newError(Overflow, "layout", "%s; panels may overlap", strings.Join(parts, ", "))
}

// CheckFit resolves its inputs like Calculate and reports how much room
// the layout needs compared to the figure.
func CheckFit(fig FigureSize, shape GridShape, size SizeSpec, spacing SpacingSpec) (Fit, error) {
	g, err := resolve(fig, shape, size, spacing)
	if err != nil {
		return Fit{}, err
	}
	return g.fit(), nil
}
