package subplot

import "math"

// Expand grows r by the margins in spacing, e.g. to turn the plot area of
// a panel into the area available to an image. With adjacent set, half the
// mean gap between bands is added on every side as well. The result is
// clipped to the unit square.
//
// An expansion that leaves nothing of r fails with InvalidDimension.
func Expand(r Rect, fig FigureSize, spacing SpacingSpec, adjacent bool) (Rect, error) {
	if err := fig.validate(); err != nil {
		return Rect{}, err
	}
	if err := spacing.Margins.validate(); err != nil {
		return Rect{}, err
	}
	m := spacing.Margins
	left, right := m.Left/fig.Width, m.Right/fig.Width
	top, bottom := m.Top/fig.Height, m.Bottom/fig.Height
	if adjacent {
		dx := spacing.WSpace.Mean() / fig.Width / 2
		dy := spacing.HSpace.Mean() / fig.Height / 2
		left, right = left+dx, right+dx
		top, bottom = top+dy, bottom+dy
	}

	out := Rect{
		Left:   math.Max(0, r.Left-left),
		Bottom: math.Max(0, r.Bottom-bottom),
	}
	out.Width = math.Min(1-out.Left, r.Width+left+right)
	out.Height = math.Min(1-out.Bottom, r.Height+bottom+top)
	if out.Width <= 0 || out.Height <= 0 {
		return Rect{}, newError(InvalidDimension, "expand",
			"expanding %s gives non-positive size %gx%g", r, out.Width, out.Height)
	}
	return out, nil
}

// ExpandAll applies Expand to every rectangle.
func ExpandAll(rects []Rect, fig FigureSize, spacing SpacingSpec, adjacent bool) ([]Rect, error) {
	out := make([]Rect, len(rects))
	for i, r := range rects {
		e, err := Expand(r, fig, spacing, adjacent)
		if err != nil {
			return nil, err
		}
		out[i] = e
	}
	return out, nil
}
