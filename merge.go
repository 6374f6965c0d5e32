package subplot

import (
	"fmt"
	"sort"
)

// bounds returns the bounding rectangle of rects.
func bounds(rects []Rect) Rect {
	x, y := unsetInterval(), unsetInterval()
	for _, r := range rects {
		x.Update(r.Left, r.Right())
		y.Update(r.Bottom, r.Top())
	}
	return Rect{Left: x.Min, Bottom: y.Min, Width: x.Len(), Height: y.Len()}
}

// Merge replaces every group of cell indices by the bounding rectangle of
// its cells. The merged rectangle takes the position of the lowest index
// of its group, the other cells are dropped. Cells not named in any group
// are kept as they are. Order is preserved otherwise.
//
// Groups must hold valid and pairwise distinct indices; violations fail
// with InvalidMerge.
func Merge(rects []Rect, groups ...[]int) ([]Rect, error) {
	owner := make(map[int]int) // cell -> group
	for g, group := range groups {
		if len(group) == 0 {
			return nil, newError(InvalidMerge, fmt.Sprintf("group[%d]", g), "empty group")
		}
		for _, i := range group {
			if i < 0 || i >= len(rects) {
				return nil, newError(InvalidMerge, fmt.Sprintf("group[%d]", g),
					"index %d out of range [0,%d)", i, len(rects))
			}
			if prev, dup := owner[i]; dup {
				return nil, newError(InvalidMerge, fmt.Sprintf("group[%d]", g),
					"index %d already used by group[%d]", i, prev)
			}
			owner[i] = g
		}
	}

	merged := make(map[int]Rect) // lowest index -> bounding rect
	for _, group := range groups {
		idx := append([]int(nil), group...)
		sort.Ints(idx)
		cells := make([]Rect, len(idx))
		for k, i := range idx {
			cells[k] = rects[i]
		}
		merged[idx[0]] = bounds(cells)
	}

	out := make([]Rect, 0, len(rects))
	for i, r := range rects {
		if m, ok := merged[i]; ok {
			out = append(out, m)
			continue
		}
		if _, ok := owner[i]; ok {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

// MergeBlock merges the inclusive block of cells from (r0, c0) to (r1, c1)
// of a row-major grid into one rectangle.
func MergeBlock(rects []Rect, shape GridShape, r0, c0, r1, c1 int) ([]Rect, error) {
	if err := shape.validate(); err != nil {
		return nil, err
	}
	if len(rects) != shape.Cells() {
		return nil, newError(InvalidMerge, "block",
			"got %d rects for a %dx%d grid", len(rects), shape.Rows, shape.Cols)
	}
	if r0 > r1 {
		r0, r1 = r1, r0
	}
	if c0 > c1 {
		c0, c1 = c1, c0
	}
	if r0 < 0 || c0 < 0 || r1 >= shape.Rows || c1 >= shape.Cols {
		return nil, newError(InvalidMerge, "block",
			"block (%d,%d)-(%d,%d) outside %dx%d grid", r0, c0, r1, c1, shape.Rows, shape.Cols)
	}
	var group []int
	for r := r0; r <= r1; r++ {
		for c := c0; c <= c1; c++ {
			group = append(group, r*shape.Cols+c)
		}
	}
	return Merge(rects, group)
}
