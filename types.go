package subplot

import (
	"fmt"
	"math"
)

// FigureSize is the size of a figure in inches.
type FigureSize struct {
	Width, Height float64
}

func (f FigureSize) String() string { return fmt.Sprintf("%gx%gin", f.Width, f.Height) }

func (f FigureSize) validate() error {
	if !positive(f.Width) || !positive(f.Height) {
		return newError(InvalidDimension, "fig_size",
			"width and height must be positive, got %gx%g", f.Width, f.Height)
	}
	return nil
}

// GridShape is the number of row and column bands of a layout.
type GridShape struct {
	Rows, Cols int
}

// Cells returns the number of panels in the grid.
func (g GridShape) Cells() int { return g.Rows * g.Cols }

func (g GridShape) validate() error {
	if g.Rows <= 0 || g.Cols <= 0 {
		return newError(InvalidGrid, "grid",
			"rows and cols must be positive, got %dx%d", g.Rows, g.Cols)
	}
	return nil
}

// Margins are the fixed insets in inches between the figure edges and the
// outermost bands.
type Margins struct {
	Left, Right, Top, Bottom float64
}

// UniformMargins returns Margins with all four sides set to m.
func UniformMargins(m float64) Margins {
	return Margins{Left: m, Right: m, Top: m, Bottom: m}
}

func (m Margins) validate() error {
	for _, side := range []struct {
		name string
		v    float64
	}{{"left", m.Left}, {"right", m.Right}, {"top", m.Top}, {"bottom", m.Bottom}} {
		if side.v < 0 || math.IsNaN(side.v) || math.IsInf(side.v, 0) {
			return newError(InvalidDimension, "margins."+side.name,
				"must be a non-negative length, got %g", side.v)
		}
	}
	return nil
}

// ----------------------------------------------------------------------------
// SizeSpec

type sizeKind int

const (
	sizeUnset sizeKind = iota
	sizeUniform
	sizePerAxis
)

// SizeSpec describes the panel extents of a grid: either one panel size
// used for every cell or explicit row heights and column widths.
// Use UniformSize or PerAxisSize to construct one.
type SizeSpec struct {
	kind          sizeKind
	width, height float64
	rowHeights    []float64
	colWidths     []float64
}

// UniformSize applies one width x height panel size to every cell.
func UniformSize(width, height float64) SizeSpec {
	return SizeSpec{kind: sizeUniform, width: width, height: height}
}

// PerAxisSize gives every row its height and every column its width.
// The slices are copied.
func PerAxisSize(rowHeights, colWidths []float64) SizeSpec {
	return SizeSpec{
		kind:       sizePerAxis,
		rowHeights: clone(rowHeights),
		colWidths:  clone(colWidths),
	}
}

// IsUniform reports whether s was built by UniformSize.
func (s SizeSpec) IsUniform() bool { return s.kind == sizeUniform }

// Panel returns the uniform panel size. ok is false for per-axis specs.
func (s SizeSpec) Panel() (width, height float64, ok bool) {
	return s.width, s.height, s.kind == sizeUniform
}

// RowHeights returns a copy of the explicit row heights (nil if uniform).
func (s SizeSpec) RowHeights() []float64 { return clone(s.rowHeights) }

// ColWidths returns a copy of the explicit column widths (nil if uniform).
func (s SizeSpec) ColWidths() []float64 { return clone(s.colWidths) }

// resolve turns s into one height per row and one width per column.
func (s SizeSpec) resolve(g GridShape) (heights, widths []float64, err error) {
	switch s.kind {
	case sizeUniform:
		if !positive(s.width) || !positive(s.height) {
			return nil, nil, newError(InvalidDimension, "panel_size",
				"width and height must be positive, got %gx%g", s.width, s.height)
		}
		return repeat(s.height, g.Rows), repeat(s.width, g.Cols), nil
	case sizePerAxis:
		if len(s.rowHeights) != g.Rows {
			return nil, nil, newError(SizeSpecLengthMismatch, "row_heights",
				"got %d values for %d rows", len(s.rowHeights), g.Rows)
		}
		if len(s.colWidths) != g.Cols {
			return nil, nil, newError(SizeSpecLengthMismatch, "col_widths",
				"got %d values for %d cols", len(s.colWidths), g.Cols)
		}
		if err := allPositive("row_heights", s.rowHeights); err != nil {
			return nil, nil, err
		}
		if err := allPositive("col_widths", s.colWidths); err != nil {
			return nil, nil, err
		}
		return clone(s.rowHeights), clone(s.colWidths), nil
	}
	return nil, nil, newError(InvalidDimension, "size", "no panel size given")
}

func (s SizeSpec) String() string {
	switch s.kind {
	case sizeUniform:
		return fmt.Sprintf("Uniform(%gx%g)", s.width, s.height)
	case sizePerAxis:
		return fmt.Sprintf("PerAxis(rows=%v, cols=%v)", s.rowHeights, s.colWidths)
	}
	return "Unset"
}

// ----------------------------------------------------------------------------
// Gaps

// Gaps describes the spacing between adjacent bands, either one value
// broadcast to every gap or one value per gap. The zero value is a uniform
// gap of 0.
type Gaps struct {
	perGap bool
	value  float64
	values []float64
}

// UniformGap uses v between every pair of adjacent bands.
func UniformGap(v float64) Gaps { return Gaps{value: v} }

// PerGap gives one gap per pair of adjacent bands, i.e. n-1 values for n
// bands. The values are copied.
func PerGap(v ...float64) Gaps { return Gaps{perGap: true, values: clone(v)} }

// IsUniform reports whether g broadcasts a single value.
func (g Gaps) IsUniform() bool { return !g.perGap }

// Values returns a copy of the explicit gaps (nil if uniform).
func (g Gaps) Values() []float64 { return clone(g.values) }

// Value returns the uniform gap.
func (g Gaps) Value() float64 { return g.value }

// Mean returns the average gap, used when a single representative value
// is needed.
func (g Gaps) Mean() float64 {
	if !g.perGap {
		return g.value
	}
	if len(g.values) == 0 {
		return 0
	}
	return sum(g.values) / float64(len(g.values))
}

// resolve returns the n-1 gaps between n bands.
func (g Gaps) resolve(name string, bands int) ([]float64, error) {
	n := bands - 1
	var gaps []float64
	if g.perGap {
		if len(g.values) != n {
			return nil, newError(SpacingSpecLengthMismatch, name,
				"got %d values for %d gaps between %d bands", len(g.values), n, bands)
		}
		gaps = clone(g.values)
	} else {
		gaps = repeat(g.value, n)
	}
	for i, v := range gaps {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, newError(InvalidDimension, fmt.Sprintf("%s[%d]", name, i),
				"gap must be a non-negative length, got %g", v)
		}
	}
	return gaps, nil
}

func (g Gaps) String() string {
	if g.perGap {
		return fmt.Sprintf("PerGap(%v)", g.values)
	}
	return fmt.Sprintf("Uniform(%g)", g.value)
}

// SpacingSpec collects the gaps between bands and the figure margins.
// HSpace is the vertical gap between row bands, WSpace the horizontal gap
// between column bands.
type SpacingSpec struct {
	HSpace  Gaps
	WSpace  Gaps
	Margins Margins
}

// ----------------------------------------------------------------------------
// helpers

func positive(x float64) bool {
	return x > 0 && !math.IsInf(x, 0)
}

func allPositive(name string, xs []float64) error {
	for i, x := range xs {
		if !positive(x) {
			return newError(InvalidDimension, fmt.Sprintf("%s[%d]", name, i),
				"must be positive, got %g", x)
		}
	}
	return nil
}

func repeat(x float64, n int) []float64 {
	if n <= 0 {
		return []float64{}
	}
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = x
	}
	return xs
}

func clone(xs []float64) []float64 {
	if xs == nil {
		return nil
	}
	return append([]float64(nil), xs...)
}

func sum(xs []float64) float64 {
	s := 0.0
	for _, x := range xs {
		s += x
	}
	return s
}
