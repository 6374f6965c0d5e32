package subplot

import (
	"strconv"
	"testing"
)

func TestLinearTrans(t *testing.T) {
	tests := []struct {
		from, to Interval
		x, want  float64
	}{
		{Interval{0, 7}, unit, 3.5, 0.5},
		{Interval{0, 7}, unit, 0, 0},
		{Interval{2, 4}, Interval{100, 200}, 3, 150},
		{Interval{0, 6}, topDown, 0, 1},
		{Interval{0, 6}, topDown, 4.5, 0.25},
		{Interval{0, 6}, topDown, 6, 0},
		{Interval{0, 1}, Interval{10, 110}, -0.5, -40},
	}
	for i, tc := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			got := LinearTrans.Trans(tc.from, tc.to, tc.x)
			if !equal64(got, tc.want) {
				t.Errorf("Trans(%v, %v, %g) = %g, want %g", tc.from, tc.to, tc.x, got, tc.want)
			}
			if back := LinearTrans.Inverse(tc.from, tc.to, got); !equal64(back, tc.x) {
				t.Errorf("Inverse(%v, %v, %g) = %g, want %g", tc.from, tc.to, got, back, tc.x)
			}
		})
	}
}

func TestRectInches(t *testing.T) {
	fig := FigureSize{10, 8}
	r := Rect{0.1, 0.2, 0.3, 0.4}
	want := Rect{1, 1.6, 3, 3.2}
	if got := r.Inches(fig); !equalRect(got, want) {
		t.Errorf("%v.Inches(%v) = %v, want %v", r, fig, got, want)
	}
	if got := want.Normalized(fig); !equalRect(got, r) {
		t.Errorf("%v.Normalized(%v) = %v, want %v", want, fig, got, r)
	}

	all := ToInches([]Rect{{0.1, 0.1, 0.3, 0.3}, {0.6, 0.6, 0.3, 0.3}}, FigureSize{12, 10})
	wantAll := []Rect{{1.2, 1, 3.6, 3}, {7.2, 6, 3.6, 3}}
	if !equalRects(all, wantAll) {
		t.Errorf("ToInches = %v, want %v", all, wantAll)
	}
}

func TestCalculateInchesRoundTrip(t *testing.T) {
	fig := FigureSize{7, 5}
	rects, err := Calculate(fig, GridShape{2, 3}, UniformSize(1.8, 1.8), SpacingSpec{
		HSpace:  UniformGap(0.6),
		WSpace:  UniformGap(0.35),
		Margins: Margins{Left: 0.5, Right: 0.15, Top: 0.3, Bottom: 0.5},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	in := ToInches(rects, fig)
	// Top-left panel starts 0.5in from the left and ends 0.3in below the top.
	if !equal64(in[0].Left, 0.5) || !equal64(in[0].Top(), 4.7) || !equal64(in[0].Width, 1.8) {
		t.Errorf("top-left panel in inches = %v", in[0])
	}
	// Bottom row sits 0.3+1.8+0.6+1.8 = 4.5in below the top.
	if !equal64(in[3].Bottom, 0.5) {
		t.Errorf("bottom-left panel in inches = %v", in[3])
	}
	for i := range in {
		if back := in[i].Normalized(fig); !equalRect(back, rects[i]) {
			t.Errorf("%d: round trip %v, want %v", i, back, rects[i])
		}
	}
}
