package subplot

import "math"

// Interval represents a (potentially degenerate) real interval, e.g. the
// extent of a band along one axis. Both edges may be NaN indicating the
// edge is not yet determined.
type Interval struct {
	Min, Max float64
}

func unsetInterval() Interval {
	return Interval{math.NaN(), math.NaN()}
}

// Len returns the length of i.
func (i Interval) Len() float64 { return i.Max - i.Min }

// IsSet reports whether both edges of i are determined.
func (i Interval) IsSet() bool {
	return !math.IsNaN(i.Min) && !math.IsNaN(i.Max)
}

// Contains reports whether x lies in the closed interval i.
func (i Interval) Contains(x float64) bool {
	return x >= i.Min && x <= i.Max
}

// Update expands i to include x.
func (i *Interval) Update(x ...float64) {
	for _, v := range x {
		if math.IsNaN(v) {
			continue
		}
		if !(i.Min < v) {
			i.Min = v
		}
		if !(i.Max > v) {
			i.Max = v
		}
	}
}

// Equal reports whether i and j have the same edges, treating unset
// edges as equal.
func (i Interval) Equal(j Interval) bool {
	same := func(a, b float64) bool {
		if math.IsNaN(a) || math.IsNaN(b) {
			return math.IsNaN(a) && math.IsNaN(b)
		}
		return a == b
	}
	return same(i.Min, j.Min) && same(i.Max, j.Max)
}

// stack lays out consecutive bands of the given extents starting at start,
// separated by gaps (len(gaps) == len(extents)-1).
func stack(start float64, extents, gaps []float64) []Interval {
	bands := make([]Interval, len(extents))
	pos := start
	for i, e := range extents {
		bands[i] = Interval{pos, pos + e}
		pos += e
		if i < len(gaps) {
			pos += gaps[i]
		}
	}
	return bands
}
