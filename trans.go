package subplot

// A Transformation maps values of one interval onto another. Inverse
// undoes Trans for the same pair of intervals.
type Transformation struct {
	Name    string
	Trans   func(from, to Interval, x float64) float64
	Inverse func(from, to Interval, y float64) float64
}

// LinearTrans maps from linearly onto to. A reversed to interval flips the
// direction, e.g. Interval{1, 0} turns top-down offsets into bottom-up
// figure fractions.
var LinearTrans = Transformation{
	Name:    "Linear",
	Trans:   linear,
	Inverse: func(from, to Interval, y float64) float64 { return linear(to, from, y) },
}

func linear(from, to Interval, x float64) float64 {
	return to.Min + to.Len()*(x-from.Min)/from.Len()
}

var (
	unit    = Interval{0, 1}
	topDown = Interval{1, 0}
)

// axes returns the horizontal and vertical extent of fig in inches.
func (f FigureSize) axes() (x, y Interval) {
	return Interval{0, f.Width}, Interval{0, f.Height}
}

// Inches converts the normalized rectangle r to inches in a figure of size
// fig. The origin stays in the bottom-left corner.
func (r Rect) Inches(fig FigureSize) Rect {
	return r.convert(fig, LinearTrans.Inverse)
}

// Normalized converts the inch based rectangle r to figure fractions.
// It is the inverse of Inches.
func (r Rect) Normalized(fig FigureSize) Rect {
	return r.convert(fig, LinearTrans.Trans)
}

func (r Rect) convert(fig FigureSize, f func(from, to Interval, x float64) float64) Rect {
	x, y := fig.axes()
	return Rect{
		Left:   f(x, unit, r.Left),
		Bottom: f(y, unit, r.Bottom),
		Width:  f(x, unit, r.Width),
		Height: f(y, unit, r.Height),
	}
}

// ToInches converts all rects to inches.
func ToInches(rects []Rect, fig FigureSize) []Rect {
	out := make([]Rect, len(rects))
	for i, r := range rects {
		out[i] = r.Inches(fig)
	}
	return out
}
