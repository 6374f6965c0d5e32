package subplot

import (
	"errors"
	"strings"
	"testing"
)

func baseLayout(t *testing.T) Layout {
	t.Helper()
	l, err := NewLayout(FigureSize{7, 5}, GridShape{2, 3}, UniformSize(1.8, 1.8), SpacingSpec{
		HSpace:  UniformGap(0.3),
		WSpace:  UniformGap(0.3),
		Margins: UniformMargins(0.5),
	})
	if err != nil {
		t.Fatal(err)
	}
	return l
}

func TestNewLayoutValidates(t *testing.T) {
	_, err := NewLayout(FigureSize{7, 5}, GridShape{3, 1},
		PerAxisSize([]float64{1, 1}, []float64{1}), SpacingSpec{})
	if !errors.Is(err, ErrSizeSpecLengthMismatch) {
		t.Errorf("got %v, want %s", err, SizeSpecLengthMismatch)
	}
}

func TestLayoutWith(t *testing.T) {
	l := baseLayout(t)

	taller := l.WithRowHeights(2, 1)
	if !l.Size.IsUniform() {
		t.Errorf("WithRowHeights modified the receiver")
	}
	if got := taller.Size.ColWidths(); len(got) != 3 || got[0] != 1.8 {
		t.Errorf("col widths %v, want three times 1.8", got)
	}
	rects, err := taller.Coordinates()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !equal64(rects[0].Height, 2.0/5) || !equal64(rects[3].Height, 1.0/5) {
		t.Errorf("heights %g, %g, want 0.4, 0.2", rects[0].Height, rects[3].Height)
	}

	wider := l.WithColWidths(1, 2, 3)
	if got := wider.Size.RowHeights(); len(got) != 2 || got[1] != 1.8 {
		t.Errorf("row heights %v, want two times 1.8", got)
	}

	m := l.WithFigureSize(8, 6).WithPanelSize(2, 2).
		WithHSpace(PerGap(0.5)).WithWSpace(UniformGap(0.1)).WithMargins(Margins{Left: 1})
	if m.Figure != (FigureSize{8, 6}) || m.Spacing.Margins != (Margins{Left: 1}) {
		t.Errorf("setters not applied: %v", m)
	}
	rects, err = m.Coordinates()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := (Rect{1.0 / 8, 1 - 2.0/6, 2.0 / 8, 2.0 / 6}); !equalRect(rects[0], want) {
		t.Errorf("first panel %v, want %v", rects[0], want)
	}
}

func TestLayoutMap(t *testing.T) {
	l := baseLayout(t)
	m, err := l.Map()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := m["hspace"].([]float64); len(got) != 1 || got[0] != 0.3 {
		t.Errorf("hspace %v, want [0.3]", got)
	}
	if got := m["col_widths"].([]float64); len(got) != 3 {
		t.Errorf("col_widths %v, want 3 values", got)
	}
	back, err := LayoutFromMap(m)
	if err != nil {
		t.Fatalf("LayoutFromMap(Map()): %v", err)
	}
	want, _ := l.Coordinates()
	got, _ := back.Coordinates()
	if !equalRects(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if bands := l.Bands(); len(bands) != 2 || bands[0] != 3 {
		t.Errorf("bands %v, want [3 3]", bands)
	}
}

func TestErrorMessage(t *testing.T) {
	_, err := Calculate(FigureSize{5, 5}, GridShape{3, 1},
		PerAxisSize([]float64{1, 1}, []float64{1}), SpacingSpec{})
	msg := err.Error()
	for _, want := range []string{string(SizeSpecLengthMismatch), "row_heights", "2 values for 3 rows"} {
		if !strings.Contains(msg, want) {
			t.Errorf("message %q lacks %q", msg, want)
		}
	}
	if KindOf(err) != SizeSpecLengthMismatch {
		t.Errorf("KindOf = %q", KindOf(err))
	}
	if KindOf(errors.New("plain")) != "" {
		t.Errorf("KindOf plain error should be empty")
	}
}
