package figure

import (
	"image/color"
	"strconv"
	"testing"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/recorder"
)

func TestSequenceColors(t *testing.T) {
	red, green := nucleotideColors['A'], nucleotideColors['T']
	tests := []struct {
		seq     string
		want    []color.Color
		wantErr bool
	}{
		{"AU", []color.Color{red, green}, false},
		{"at", []color.Color{red, green}, false},
		{"", []color.Color{}, false},
		{"ACGX", nil, true},
		{"A C", nil, true},
	}
	for i, tc := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			got, err := SequenceColors(tc.seq)
			if tc.wantErr {
				if err == nil {
					t.Errorf("SequenceColors(%q) = %v, want error", tc.seq, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(tc.want) {
				t.Fatalf("got %d colors, want %d", len(got), len(tc.want))
			}
			for j := range got {
				if got[j] != tc.want[j] {
					t.Errorf("color %d = %v, want %v", j, got[j], tc.want[j])
				}
			}
		})
	}
	if c, _ := SequenceColors("G&"); c[1] != (color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}) {
		t.Errorf("strand break color %v, want gray", c[1])
	}
}

func TestSequenceTicks(t *testing.T) {
	ticks, err := SequenceTicks("ACGU", "((.)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ticks) != 4 || ticks[2].Value != 2 || ticks[2].Label != "G\n." {
		t.Errorf("ticks %v", ticks)
	}
	seqOnly, err := SequenceTicks("AC", "")
	if err != nil || len(seqOnly) != 2 || seqOnly[1].Label != "C" {
		t.Errorf("sequence only ticks %v (%v)", seqOnly, err)
	}
	if _, err := SequenceTicks("ACGU", "(("); err == nil {
		t.Errorf("short structure should fail")
	}
}

func TestBarsDataRange(t *testing.T) {
	tests := []struct {
		values                 []float64
		xmin, xmax, ymin, ymax float64
	}{
		{[]float64{0.5, 2, 1}, -0.4, 2.4, 0, 2},
		{[]float64{-1, 0.5}, -0.4, 1.4, -1, 0.5},
	}
	for i, tc := range tests {
		b := &Bars{Values: tc.values, Width: 0.8}
		xmin, xmax, ymin, ymax := b.DataRange()
		if !equal64(xmin, tc.xmin) || !equal64(xmax, tc.xmax) || ymin != tc.ymin || ymax != tc.ymax {
			t.Errorf("%d: DataRange = %g %g %g %g, want %g %g %g %g",
				i, xmin, xmax, ymin, ymax, tc.xmin, tc.xmax, tc.ymin, tc.ymax)
		}
	}
}

func TestPanelContentHelpers(t *testing.T) {
	f, err := New(gridLayout(t), quiet)
	if err != nil {
		t.Fatal(err)
	}

	if err := f.Panels[0].PopAvg("ACGU", "(..)", []float64{0.1, 0.2, 0.3, 0.4}); err != nil {
		t.Fatalf("PopAvg: %v", err)
	}
	ticks := f.Panels[0].Plot.X.Tick.Marker.Ticks(0, 3)
	if len(ticks) != 4 || ticks[0].Label != "A\n(" {
		t.Errorf("pop avg ticks %v", ticks)
	}

	diff, err := Difference([]float64{1, 2, 3, 4}, []float64{0.5, 2.5, 3, 1})
	if err != nil {
		t.Fatal(err)
	}
	if want := []float64{0.5, -0.5, 0, 3}; diff[1] != want[1] || diff[3] != want[3] {
		t.Errorf("Difference = %v, want %v", diff, want)
	}
	if err := f.Panels[1].PopAvg("ACGU", "", diff); err != nil {
		t.Errorf("PopAvg with negative values: %v", err)
	}

	if err := f.Panels[2].Lollipop([]float64{1, 2, 3}, []float64{3, 1, 2}, []float64{1, 2, 2}); err != nil {
		t.Errorf("Lollipop: %v", err)
	}
	if err := f.Panels[3].Lollipop([]float64{1, 2}, []float64{3, 1}, nil); err != nil {
		t.Errorf("single Lollipop: %v", err)
	}

	r2, err := f.Panels[4].ScatterRegression([]float64{1, 2, 3, 4}, []float64{3, 5, 7, 9}, TopLeft)
	if err != nil {
		t.Fatalf("ScatterRegression: %v", err)
	}
	if !equal64(r2, 1) {
		t.Errorf("R² of a perfect line = %g, want 1", r2)
	}
	if len(f.Panels[4].texts) != 1 || f.Panels[4].texts[0].text != "R² = 1.00" {
		t.Errorf("corner texts %v", f.Panels[4].texts)
	}

	f.Draw(draw.NewCanvas(&recorder.Canvas{}, 7*vg.Inch, 5*vg.Inch))
}

func TestPanelContentErrors(t *testing.T) {
	p := &Panel{}
	tests := []struct {
		name string
		err  error
	}{
		{"pop avg length", p.PopAvg("ACG", "", []float64{1, 2})},
		{"pop avg empty", p.PopAvg("", "", nil)},
		{"pop avg letter", p.PopAvg("ACX", "", []float64{1, 2, 3})},
		{"pop avg structure", p.PopAvg("ACG", "(", []float64{1, 2, 3})},
		{"lollipop length", p.Lollipop([]float64{1, 2}, []float64{1}, nil)},
		{"lollipop y2", p.Lollipop([]float64{1, 2}, []float64{1, 2}, []float64{1})},
		{"regression short", func() error { _, err := p.ScatterRegression([]float64{1}, []float64{1}, TopLeft); return err }()},
	}
	for _, tc := range tests {
		if tc.err == nil {
			t.Errorf("%s: want error", tc.name)
		}
	}
	if _, err := Difference([]float64{1}, []float64{1, 2}); err == nil {
		t.Errorf("Difference of unequal lengths should fail")
	}
}

var _ plot.DataRanger = (*Bars)(nil)
