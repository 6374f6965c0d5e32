package subplot

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const gridYAML = `
fig_size: [7, 6]
rows: 3
cols: 2
row_heights: [2.0, 1.5, 1.0]
col_widths: [2.0, 2.0]
hspace: [0.3]
wspace: 0.3
margins: {left: 0.5, right: 0.5, top: 0.5, bottom: 0.5}
`

const gridTOML = `
fig_size = [7, 6]
layout = [3, 2]
row_heights = [2.0, 1.5, 1.0]
col_widths = [2, 2]

[spacing]
hspace = [0.3, 0.3]
wspace = [0.3]

[spacing.margins]
left = 0.5
right = 0.5
top = 0.5
bottom = 0.5
`

const gridJSON = `{
  "fig_size": [7, 6],
  "rows": 3,
  "cols": 2,
  "row_heights": [2, 1.5, 1],
  "col_widths": [2, 2],
  "hspace": 0.3,
  "wspace": [0.3],
  "margins": {"left": 0.5, "right": 0.5, "top": 0.5, "bottom": 0.5}
}`

func TestParsersAgree(t *testing.T) {
	want, err := Calculate(FigureSize{7, 6}, GridShape{3, 2},
		PerAxisSize([]float64{2, 1.5, 1}, []float64{2, 2}),
		SpacingSpec{HSpace: UniformGap(0.3), WSpace: UniformGap(0.3), Margins: UniformMargins(0.5)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	fromMap, err := LayoutFromMap(map[string]any{
		"fig_size":    []any{7, 6.0},
		"rows":        3,
		"cols":        int64(2),
		"row_heights": []float64{2, 1.5, 1},
		"col_widths":  []any{2, 2},
		"hspace":      0.3,
		"wspace":      []any{0.3},
		"margins":     0.5,
	})
	if err != nil {
		t.Fatalf("LayoutFromMap: %v", err)
	}

	tests := []struct {
		name  string
		parse func() (Arrangement, error)
	}{
		{"map", func() (Arrangement, error) { return fromMap, nil }},
		{"yaml", func() (Arrangement, error) { return ParseYAML(strings.NewReader(gridYAML)) }},
		{"toml", func() (Arrangement, error) { return ParseTOML(strings.NewReader(gridTOML)) }},
		{"json", func() (Arrangement, error) { return ParseJSON(strings.NewReader(gridJSON)) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := tt.parse()
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			if _, ok := a.(Layout); !ok {
				t.Fatalf("got %T, want Layout", a)
			}
			got, err := a.Coordinates()
			if err != nil {
				t.Fatalf("Coordinates: %v", err)
			}
			if !equalRects(got, want) {
				t.Errorf("got %v, want %v", got, want)
			}
		})
	}
}

func TestLayoutFromMapUniform(t *testing.T) {
	l, err := LayoutFromMap(map[string]any{
		"fig_size":     []any{7, 5},
		"layout":       []any{2, 3},
		"subplot_size": []any{1.8, 1.8},
		"spacing": map[string]any{
			"hspace":  0.3,
			"wspace":  0.3,
			"margins": map[string]any{"left": 0.5, "right": 0.5, "top": 0.5, "bottom": 0.5},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !l.Size.IsUniform() {
		t.Errorf("size %v, want uniform", l.Size)
	}
	if l.Grid != (GridShape{2, 3}) {
		t.Errorf("grid %v, want 2x3", l.Grid)
	}
	if l.Spacing.Margins != UniformMargins(0.5) {
		t.Errorf("margins %v, want 0.5 everywhere", l.Spacing.Margins)
	}
}

func TestLayoutFromMapMargins(t *testing.T) {
	l, err := LayoutFromMap(map[string]any{
		"fig_size":   []any{4, 4},
		"rows":       1,
		"cols":       1,
		"panel_size": []any{2, 2},
		"margins":    map[string]any{"left": 0.7},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := (Margins{Left: 0.7}); l.Spacing.Margins != want {
		t.Errorf("margins %v, want %v", l.Spacing.Margins, want)
	}
}

var layoutFromMapErrorTests = []struct {
	name string
	m    map[string]any
	want error
}{
	{"no fig_size", map[string]any{"rows": 1, "cols": 1, "panel_size": []any{1, 1}}, ErrInvalidConfig},
	{"fig_size scalar", map[string]any{"fig_size": 5, "rows": 1, "cols": 1, "panel_size": []any{1, 1}}, ErrInvalidConfig},
	{"fig_size triple", map[string]any{"fig_size": []any{1, 2, 3}, "rows": 1, "cols": 1, "panel_size": []any{1, 1}}, ErrInvalidConfig},
	{"no cols", map[string]any{"fig_size": []any{5, 5}, "rows": 1, "panel_size": []any{1, 1}}, ErrInvalidConfig},
	{"fractional rows", map[string]any{"fig_size": []any{5, 5}, "rows": 1.5, "cols": 1, "panel_size": []any{1, 1}}, ErrInvalidConfig},
	{"no size", map[string]any{"fig_size": []any{5, 5}, "rows": 1, "cols": 1}, ErrInvalidConfig},
	{"only row_heights", map[string]any{"fig_size": []any{5, 5}, "rows": 1, "cols": 1, "row_heights": []any{1}}, ErrInvalidConfig},
	{"string value", map[string]any{"fig_size": []any{5, "wide"}, "rows": 1, "cols": 1, "panel_size": []any{1, 1}}, ErrInvalidConfig},
	{"bad margins", map[string]any{"fig_size": []any{5, 5}, "rows": 1, "cols": 1, "panel_size": []any{1, 1}, "margins": "wide"}, ErrInvalidConfig},
	{"zero rows", map[string]any{"fig_size": []any{5, 5}, "rows": 0, "cols": 1, "panel_size": []any{1, 1}}, ErrInvalidGrid},
	{"length mismatch", map[string]any{"fig_size": []any{5, 5}, "rows": 3, "cols": 1,
		"row_heights": []any{1, 1}, "col_widths": []any{1}}, ErrSizeSpecLengthMismatch},
	{"gap mismatch", map[string]any{"fig_size": []any{5, 5}, "rows": 3, "cols": 1,
		"panel_size": []any{1, 1}, "hspace": []any{0.1, 0.2, 0.3}}, ErrSpacingSpecLengthMismatch},
}

func TestLayoutFromMapErrors(t *testing.T) {
	for _, tt := range layoutFromMapErrorTests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LayoutFromMap(tt.m)
			if !errors.Is(err, tt.want) {
				t.Errorf("got %v, want kind %s", err, KindOf(tt.want))
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		parse func() (Arrangement, error)
	}{
		{"empty yaml", func() (Arrangement, error) { return ParseYAML(strings.NewReader("")) }},
		{"broken yaml", func() (Arrangement, error) { return ParseYAML(strings.NewReader("fig_size: [1, 2")) }},
		{"broken toml", func() (Arrangement, error) { return ParseTOML(strings.NewReader("fig_size = ")) }},
		{"broken json", func() (Arrangement, error) { return ParseJSON(strings.NewReader("{")) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.parse(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("got %v, want kind %s", err, InvalidConfig)
			}
		})
	}
}

const rowsYAML = `
fig_size: [7, 8]
row_2:
  cols: 3
  size: [1.8, 1.2]
  margins: {left: 0.4, bottom: 0.3}
row_1:
  cols: 2
  size: [2.9, 2.5]
  spacing: {hspace: 0.7, wspace: 0.4}
  margins: {left: 0.4, top: 0.2}
  image: [1]
row_10:
  cols: 1
  size: [6, 1]
  image: true
`

func TestDecodeRows(t *testing.T) {
	a, err := ParseYAML(strings.NewReader(rowsYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	l, ok := a.(RowLayout)
	if !ok {
		t.Fatalf("got %T, want RowLayout", a)
	}
	want := []RowSpec{
		{Cols: 2, PanelWidth: 2.9, PanelHeight: 2.5, WSpace: 0.7, HSpace: 0.4,
			Margins: Margins{Left: 0.4, Top: 0.2}, Images: []int{1}},
		{Cols: 3, PanelWidth: 1.8, PanelHeight: 1.2, WSpace: DefaultRowGap, HSpace: DefaultRowGap,
			Margins: Margins{Left: 0.4, Bottom: 0.3}},
		{Cols: 1, PanelWidth: 6, PanelHeight: 1, WSpace: DefaultRowGap, HSpace: DefaultRowGap,
			Images: []int{0}},
	}
	if len(l.Rows) != len(want) {
		t.Fatalf("got %d rows, want %d", len(l.Rows), len(want))
	}
	for i, r := range l.Rows {
		w := want[i]
		if r.Cols != w.Cols || r.PanelWidth != w.PanelWidth || r.PanelHeight != w.PanelHeight ||
			r.WSpace != w.WSpace || r.HSpace != w.HSpace || r.Margins != w.Margins ||
			len(r.Images) != len(w.Images) {
			t.Errorf("row %d = %+v, want %+v", i, r, w)
		}
	}
	if got := l.Bands(); len(got) != 3 || got[0] != 2 || got[1] != 3 || got[2] != 1 {
		t.Errorf("bands %v, want [2 3 1]", got)
	}
}

func TestDecodeRowsSpacingKeys(t *testing.T) {
	row := func(h float64) map[string]any {
		return map[string]any{
			"size":    []any{2.9, h},
			"spacing": map[string]any{"hspace": 0.70, "wspace": 0.40},
			"margins": map[string]any{"left": 0.40, "right": 0.0, "top": 0.0, "bottom": 0.30},
			"cols":    2,
		}
	}
	a, err := Decode(map[string]any{"fig_size": []any{7, 8.0}, "row_1": row(2.5), "row_2": row(1.2)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rects, err := a.Coordinates()
	if err != nil {
		t.Fatal(err)
	}
	// hspace separates the columns, wspace the rows.
	if !equal64(rects[1].Left, 4.0/7) {
		t.Errorf("second column at %g, want %g", rects[1].Left, 4.0/7)
	}
	if !equal64(rects[2].Bottom, 0.3/8) || !equal64(rects[0].Bottom, 1.9/8) {
		t.Errorf("row bottoms %g and %g, want %g and %g", rects[0].Bottom, rects[2].Bottom, 1.9/8, 0.3/8)
	}
}

func TestRowLayoutFromMapErrors(t *testing.T) {
	tests := []struct {
		name string
		m    map[string]any
		want error
	}{
		{"no cols", map[string]any{"fig_size": []any{5, 5}, "row_1": map[string]any{"size": []any{1, 1}}}, ErrInvalidConfig},
		{"no size", map[string]any{"fig_size": []any{5, 5}, "row_1": map[string]any{"cols": 1}}, ErrInvalidConfig},
		{"not a map", map[string]any{"fig_size": []any{5, 5}, "row_1": 3}, ErrInvalidConfig},
		{"bad image", map[string]any{"fig_size": []any{5, 5},
			"row_1": map[string]any{"cols": 2, "size": []any{1, 1}, "image": []any{2}}}, ErrInvalidConfig},
		{"zero cols", map[string]any{"fig_size": []any{5, 5},
			"row_1": map[string]any{"cols": 0, "size": []any{1, 1}}}, ErrInvalidGrid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.m)
			if !errors.Is(err, tt.want) {
				t.Errorf("got %v, want kind %s", err, KindOf(tt.want))
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	for name, content := range map[string]string{
		"grid.yaml": gridYAML,
		"grid.yml":  gridYAML,
		"grid.toml": gridTOML,
		"grid.json": gridJSON,
	} {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		a, err := LoadFile(path)
		if err != nil {
			t.Errorf("%s: %v", name, err)
			continue
		}
		if got := a.FigureSize(); got != (FigureSize{7, 6}) {
			t.Errorf("%s: figure %v, want 7x6", name, got)
		}
	}

	_, err := LoadFile(filepath.Join(dir, "missing.yaml"))
	if !errors.Is(err, ErrInvalidConfig) || !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("missing file: got %v, want InvalidConfig wrapping fs.ErrNotExist", err)
	}
	if _, err := LoadFile(filepath.Join(dir, "grid.xml")); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("unknown extension: got %v, want InvalidConfig", err)
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	l, err := NewLayout(FigureSize{7, 5}, GridShape{2, 3}, UniformSize(1.8, 1.8), SpacingSpec{
		HSpace:  UniformGap(0.3),
		WSpace:  PerGap(0.2, 0.4),
		Margins: Margins{Left: 0.5, Right: 0.1, Top: 0.3, Bottom: 0.5},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var buf bytes.Buffer
	if err := l.WriteYAML(&buf); err != nil {
		t.Fatalf("WriteYAML: %v", err)
	}
	back, err := ParseYAML(&buf)
	if err != nil {
		t.Fatalf("ParseYAML: %v\n%s", err, buf.String())
	}
	want, _ := l.Coordinates()
	got, err := back.Coordinates()
	if err != nil {
		t.Fatalf("Coordinates: %v", err)
	}
	if !equalRects(got, want) {
		t.Errorf("round trip changed coordinates: got %v, want %v", got, want)
	}

	path := filepath.Join(t.TempDir(), "nested", "dir", "layout.yaml")
	if err := l.SaveYAML(path); err != nil {
		t.Fatalf("SaveYAML: %v", err)
	}
	if _, err := LoadFile(path); err != nil {
		t.Errorf("LoadFile after SaveYAML: %v", err)
	}
}
