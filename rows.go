package subplot

import "fmt"

// DefaultRowGap is the gap used by row layouts when a row gives no spacing.
const DefaultRowGap = 0.3

// RowSpec describes one row of a RowLayout. Every row has its own column
// count, panel size, spacing and margins.
type RowSpec struct {
	Cols                    int
	PanelWidth, PanelHeight float64
	WSpace                  float64 // gap between the columns of this row
	HSpace                  float64 // gap below this row
	Margins                 Margins
	Images                  []int // columns expanded by FinalCoordinates
}

// IsImage reports whether column col of the row holds an image.
func (r RowSpec) IsImage(col int) bool {
	for _, c := range r.Images {
		if c == col {
			return true
		}
	}
	return false
}

func (r RowSpec) validate(i int) error {
	spec := fmt.Sprintf("row_%d", i+1)
	if r.Cols <= 0 {
		return newError(InvalidGrid, spec, "cols must be positive, got %d", r.Cols)
	}
	if !positive(r.PanelWidth) || !positive(r.PanelHeight) {
		return newError(InvalidDimension, spec+".size",
			"width and height must be positive, got %gx%g", r.PanelWidth, r.PanelHeight)
	}
	if r.WSpace < 0 || r.HSpace < 0 {
		return newError(InvalidDimension, spec+".spacing",
			"gaps must be non-negative, got hspace=%g wspace=%g", r.HSpace, r.WSpace)
	}
	if err := r.Margins.validate(); err != nil {
		return wrapError(InvalidDimension, err, spec, "invalid margins")
	}
	for _, c := range r.Images {
		if c < 0 || c >= r.Cols {
			return newError(InvalidConfig, spec+".image",
				"column %d out of range [0,%d)", c, r.Cols)
		}
	}
	return nil
}

// RowLayout stacks rows of possibly different shape. Rows are listed top
// to bottom and are stacked upwards from the bottom margin of the last row.
type RowLayout struct {
	Figure FigureSize
	Rows   []RowSpec
}

var _ Arrangement = RowLayout{}

func (l RowLayout) validate() error {
	if err := l.Figure.validate(); err != nil {
		return err
	}
	if len(l.Rows) == 0 {
		return newError(InvalidGrid, "rows", "at least one row is required")
	}
	for i, r := range l.Rows {
		if err := r.validate(i); err != nil {
			return err
		}
	}
	return nil
}

// FigureSize implements Arrangement.
func (l RowLayout) FigureSize() FigureSize { return l.Figure }

// Bands implements Arrangement.
func (l RowLayout) Bands() []int {
	bands := make([]int, len(l.Rows))
	for i, r := range l.Rows {
		bands[i] = r.Cols
	}
	return bands
}

// bottoms returns the bottom edge of every row in inches from the bottom
// of the figure.
func (l RowLayout) bottoms() []float64 {
	n := len(l.Rows)
	bottoms := make([]float64, n)
	pos := l.Rows[n-1].Margins.Bottom
	for i := n - 1; i >= 0; i-- {
		bottoms[i] = pos
		pos += l.Rows[i].PanelHeight
		if i > 0 {
			pos += l.Rows[i-1].HSpace
		}
	}
	return bottoms
}

// Coordinates implements Arrangement.
func (l RowLayout) Coordinates() ([]Rect, error) {
	if err := l.validate(); err != nil {
		return nil, err
	}
	var rects []Rect
	for i, b := range l.bottoms() {
		row := l.Rows[i]
		cols := stack(row.Margins.Left, repeat(row.PanelWidth, row.Cols), repeat(row.WSpace, row.Cols-1))
		for _, c := range cols {
			r := Rect{Left: c.Min, Bottom: b, Width: c.Len(), Height: row.PanelHeight}
			rects = append(rects, r.Normalized(l.Figure))
		}
	}
	return rects, nil
}

// FinalCoordinates is Coordinates with every image cell grown by the
// margins of its row.
func (l RowLayout) FinalCoordinates() ([]Rect, error) {
	rects, err := l.Coordinates()
	if err != nil {
		return nil, err
	}
	k := 0
	for _, row := range l.Rows {
		spacing := SpacingSpec{
			HSpace:  UniformGap(row.HSpace),
			WSpace:  UniformGap(row.WSpace),
			Margins: row.Margins,
		}
		for c := 0; c < row.Cols; c, k = c+1, k+1 {
			if !row.IsImage(c) {
				continue
			}
			rects[k], err = Expand(rects[k], l.Figure, spacing, false)
			if err != nil {
				return nil, err
			}
		}
	}
	return rects, nil
}

// Fit implements Arrangement. The width is the widest row.
func (l RowLayout) Fit() (Fit, error) {
	if err := l.validate(); err != nil {
		return Fit{}, err
	}
	n := len(l.Rows)
	height := l.Rows[0].Margins.Top + l.Rows[n-1].Margins.Bottom
	width := 0.0
	for i, r := range l.Rows {
		height += r.PanelHeight
		if i < n-1 {
			height += r.HSpace
		}
		w := r.Margins.Left + float64(r.Cols)*r.PanelWidth + float64(r.Cols-1)*r.WSpace + r.Margins.Right
		if w > width {
			width = w
		}
	}
	return Fit{Figure: l.Figure, Required: FigureSize{width, height}}, nil
}

// Cells returns the total number of panels.
func (l RowLayout) Cells() int {
	n := 0
	for _, r := range l.Rows {
		n += r.Cols
	}
	return n
}
