package subplot

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Arrangement is anything that can place panels in a figure.
type Arrangement interface {
	// FigureSize returns the figure size in inches.
	FigureSize() FigureSize
	// Coordinates returns the panel rectangles in row-major order.
	Coordinates() ([]Rect, error)
	// Bands returns the number of panels in each row, top to bottom.
	Bands() []int
	// Fit reports the extent required by the panels.
	Fit() (Fit, error)
}

// Layout is the canonical description of a regular grid of panels.
// Its With methods return modified copies.
type Layout struct {
	Figure  FigureSize
	Grid    GridShape
	Size    SizeSpec
	Spacing SpacingSpec
}

var _ Arrangement = Layout{}

// NewLayout returns a validated Layout.
func NewLayout(fig FigureSize, shape GridShape, size SizeSpec, spacing SpacingSpec) (Layout, error) {
	l := Layout{Figure: fig, Grid: shape, Size: size, Spacing: spacing}
	if _, err := l.resolve(); err != nil {
		return Layout{}, err
	}
	return l, nil
}

func (l Layout) resolve() (*grid, error) {
	return resolve(l.Figure, l.Grid, l.Size, l.Spacing)
}

// FigureSize implements Arrangement.
func (l Layout) FigureSize() FigureSize { return l.Figure }

// Coordinates implements Arrangement.
func (l Layout) Coordinates() ([]Rect, error) {
	return Calculate(l.Figure, l.Grid, l.Size, l.Spacing)
}

// Fit implements Arrangement.
func (l Layout) Fit() (Fit, error) {
	return CheckFit(l.Figure, l.Grid, l.Size, l.Spacing)
}

// Bands implements Arrangement.
func (l Layout) Bands() []int {
	if l.Grid.Rows <= 0 {
		return nil
	}
	return repeatInt(l.Grid.Cols, l.Grid.Rows)
}

// WithFigureSize returns a copy of l with the figure size in inches replaced.
func (l Layout) WithFigureSize(width, height float64) Layout {
	l.Figure = FigureSize{width, height}
	return l
}

// WithPanelSize returns a copy of l with every panel width x height inches.
func (l Layout) WithPanelSize(width, height float64) Layout {
	l.Size = UniformSize(width, height)
	return l
}

// WithRowHeights switches l to per-axis sizing. Missing column widths are
// taken from the current uniform panel size.
func (l Layout) WithRowHeights(h ...float64) Layout {
	widths := l.Size.ColWidths()
	if w, _, ok := l.Size.Panel(); ok {
		widths = repeat(w, l.Grid.Cols)
	}
	l.Size = PerAxisSize(h, widths)
	return l
}

// WithColWidths is the column counterpart of WithRowHeights.
func (l Layout) WithColWidths(w ...float64) Layout {
	heights := l.Size.RowHeights()
	if _, h, ok := l.Size.Panel(); ok {
		heights = repeat(h, l.Grid.Rows)
	}
	l.Size = PerAxisSize(heights, w)
	return l
}

// WithHSpace returns a copy of l with the gaps between rows replaced.
func (l Layout) WithHSpace(g Gaps) Layout {
	l.Spacing.HSpace = g
	return l
}

// WithWSpace returns a copy of l with the gaps between columns replaced.
func (l Layout) WithWSpace(g Gaps) Layout {
	l.Spacing.WSpace = g
	return l
}

// WithMargins returns a copy of l with the figure margins replaced.
func (l Layout) WithMargins(m Margins) Layout {
	l.Spacing.Margins = m
	return l
}

// Map returns the canonical key/value form of l. Broadcast values are
// written out per row, column and gap. LayoutFromMap(l.Map()) yields a
// layout with identical coordinates.
func (l Layout) Map() (map[string]any, error) {
	g, err := l.resolve()
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"fig_size":    []float64{l.Figure.Width, l.Figure.Height},
		"rows":        l.Grid.Rows,
		"cols":        l.Grid.Cols,
		"row_heights": g.heights,
		"col_widths":  g.widths,
		"hspace":      g.hspace,
		"wspace":      g.wspace,
		"margins": map[string]any{
			"left":   g.margins.Left,
			"right":  g.margins.Right,
			"top":    g.margins.Top,
			"bottom": g.margins.Bottom,
		},
	}, nil
}

// yamlLayout fixes the key order of written documents.
type yamlLayout struct {
	FigSize    []float64   `yaml:"fig_size,flow"`
	Rows       int         `yaml:"rows"`
	Cols       int         `yaml:"cols"`
	RowHeights []float64   `yaml:"row_heights,flow"`
	ColWidths  []float64   `yaml:"col_widths,flow"`
	HSpace     []float64   `yaml:"hspace,flow"`
	WSpace     []float64   `yaml:"wspace,flow"`
	Margins    yamlMargins `yaml:"margins"`
}

type yamlMargins struct {
	Left   float64 `yaml:"left"`
	Right  float64 `yaml:"right"`
	Top    float64 `yaml:"top"`
	Bottom float64 `yaml:"bottom"`
}

// WriteYAML writes l as a YAML document that ParseYAML reads back.
func (l Layout) WriteYAML(w io.Writer) error {
	g, err := l.resolve()
	if err != nil {
		return err
	}
	doc := yamlLayout{
		FigSize:    []float64{l.Figure.Width, l.Figure.Height},
		Rows:       l.Grid.Rows,
		Cols:       l.Grid.Cols,
		RowHeights: g.heights,
		ColWidths:  g.widths,
		HSpace:     g.hspace,
		WSpace:     g.wspace,
		Margins:    yamlMargins(g.margins),
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode layout: %w", err)
	}
	return enc.Close()
}

// SaveYAML writes l to path, creating parent directories as needed.
func (l Layout) SaveYAML(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := l.WriteYAML(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (l Layout) String() string {
	return fmt.Sprintf("Layout(%s, %dx%d, %s, hspace=%s, wspace=%s)",
		l.Figure, l.Grid.Rows, l.Grid.Cols,
		l.Size, l.Spacing.HSpace, l.Spacing.WSpace)
}

func repeatInt(x, n int) []int {
	xs := make([]int, n)
	for i := range xs {
		xs[i] = x
	}
	return xs
}
