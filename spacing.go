package subplot

// DefaultMinSpacing is the smallest gap RowSpacing accepts by default.
const DefaultMinSpacing = 0.1

// RowSpacing returns the gap between n panels of width panelWidth that
// spreads them over a figure figWidth inches wide, with the left and right
// margins of m. A single panel needs no gap.
//
// Non-positive widths or counts and a negative minSpacing fail with
// InvalidDimension. If the panels do not fit or the gap would be smaller
// than minSpacing the error is of kind Overflow.
func RowSpacing(figWidth float64, n int, panelWidth float64, m Margins, minSpacing float64) (float64, error) {
	switch {
	case !positive(figWidth):
		return 0, newError(InvalidDimension, "fig_width", "must be positive, got %g", figWidth)
	case n <= 0:
		return 0, newError(InvalidDimension, "count", "must be positive, got %d", n)
	case !positive(panelWidth):
		return 0, newError(InvalidDimension, "panel_width", "must be positive, got %g", panelWidth)
	case minSpacing < 0:
		return 0, newError(InvalidDimension, "min_spacing", "must be non-negative, got %g", minSpacing)
	}
	if err := m.validate(); err != nil {
		return 0, err
	}

	panels := float64(n) * panelWidth
	available := figWidth - panels - m.Left - m.Right
	if available < -fitTolerance {
		return 0, newError(Overflow, "row",
			"cannot fit %d panels of width %.2f in %.2f in with margins left=%.2f right=%.2f, requires %.2f in",
			n, panelWidth, figWidth, m.Left, m.Right, panels+m.Left+m.Right)
	}
	if n == 1 {
		return 0, nil
	}
	gap := max(available, 0) / float64(n-1)
	if gap < minSpacing {
		return 0, newError(Overflow, "row",
			"spacing %.3f in is below the minimum of %.3f in", gap, minSpacing)
	}
	return gap, nil
}
