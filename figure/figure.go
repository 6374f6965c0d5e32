// Package figure turns subplot arrangements into drawable figures on top
// of gonum.org/v1/plot.
//
// A Figure holds one Panel per rectangle of its arrangement. Panels can
// carry a plot.Plot, an image, corner texts and custom Drawers; Draw
// carves one canvas per panel out of the target canvas and renders
// everything, optionally with debug boxes and subplot letters.
package figure

import (
	"github.com/charmbracelet/log"
	"github.com/vdobler/subplot"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Figure is a set of panels placed on a figure of fixed size.
type Figure struct {
	Size   subplot.FigureSize
	Style  Style
	Panels []*Panel   // row-major
	Rows   [][]*Panel // Panels split into the arrangement's rows

	// Labels holds one subplot letter per panel. Empty disables letters.
	Labels []string
	// Boxes outlines every panel.
	Boxes bool

	logger *log.Logger
}

type config struct {
	style  Style
	logger *log.Logger
	labels bool
	start  rune
	boxes  bool
	rects  []subplot.Rect
}

// Option configures New.
type Option func(*config)

// WithStyle replaces DefaultStyle(12).
func WithStyle(s Style) Option { return func(c *config) { c.style = s } }

// WithLogger sets the logger used while building and drawing.
func WithLogger(l *log.Logger) Option { return func(c *config) { c.logger = l } }

// WithLabels enables subplot letters starting at start, e.g. 'A'.
func WithLabels(start rune) Option {
	return func(c *config) { c.labels, c.start = true, start }
}

// WithBoxes outlines every panel, one color per panel.
func WithBoxes() Option { return func(c *config) { c.boxes = true } }

// WithRects places the panels at rects instead of the arrangement's
// coordinates, e.g. at final or merged coordinates.
func WithRects(rects []subplot.Rect) Option {
	return func(c *config) { c.rects = append([]subplot.Rect(nil), rects...) }
}

// New creates a figure with one panel per rectangle of a.
func New(a subplot.Arrangement, opts ...Option) (*Figure, error) {
	cfg := config{style: DefaultStyle(12)}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = log.Default()
	}

	rects := cfg.rects
	if rects == nil {
		var err error
		if rects, err = a.Coordinates(); err != nil {
			return nil, err
		}
	}

	f := &Figure{
		Size:   a.FigureSize(),
		Style:  cfg.style,
		Panels: make([]*Panel, len(rects)),
		Boxes:  cfg.boxes,
		logger: cfg.logger,
	}
	for i, r := range rects {
		f.Panels[i] = &Panel{Index: i, Rect: r}
	}
	f.Rows = splitRows(f.Panels, a.Bands())
	for row, panels := range f.Rows {
		for col, p := range panels {
			p.Row, p.Col = row, col
		}
	}

	if cfg.labels {
		labels, err := Letters(cfg.start, len(rects))
		if err != nil {
			return nil, err
		}
		f.Labels = labels
	}

	f.logger.Debug("created figure", "size", f.Size,
		"panels", len(f.Panels), "rows", len(f.Rows))
	return f, nil
}

// splitRows groups panels by bands. If the counts do not add up (merged
// cells) every panel ends up in a single row.
func splitRows(panels []*Panel, bands []int) [][]*Panel {
	total := 0
	for _, n := range bands {
		total += n
	}
	if total != len(panels) {
		return [][]*Panel{panels}
	}
	rows := make([][]*Panel, 0, len(bands))
	k := 0
	for _, n := range bands {
		rows = append(rows, panels[k:k+n])
		k += n
	}
	return rows
}

// At returns the panel in row and col or nil.
func (f *Figure) At(row, col int) *Panel {
	if row < 0 || row >= len(f.Rows) || col < 0 || col >= len(f.Rows[row]) {
		return nil
	}
	return f.Rows[row][col]
}

// Draw renders f onto c. The figure is stretched to fill c.
func (f *Figure) Draw(c draw.Canvas) {
	if f.Style.Background != nil {
		c.SetColor(f.Style.Background)
		c.Fill(c.Rectangle.Path())
	}

	w, h := c.Max.X-c.Min.X, c.Max.Y-c.Min.Y
	for _, p := range f.Panels {
		p.Canvas.Canvas = c.Canvas
		p.Canvas.Min.X = c.Min.X + vg.Length(p.Rect.Left)*w
		p.Canvas.Min.Y = c.Min.Y + vg.Length(p.Rect.Bottom)*h
		p.Canvas.Max.X = p.Canvas.Min.X + vg.Length(p.Rect.Width)*w
		p.Canvas.Max.Y = p.Canvas.Min.Y + vg.Length(p.Rect.Height)*h
		f.logger.Debug("panel", "index", p.Index, "row", p.Row, "col", p.Col,
			"min", p.Canvas.Min, "max", p.Canvas.Max)

		if f.Style.Panel.Background != nil {
			p.Canvas.SetColor(f.Style.Panel.Background)
			p.Canvas.Fill(p.Canvas.Rectangle.Path())
		}
		if p.Image != nil {
			p.Canvas.DrawImage(p.Canvas.Rectangle, p.Image)
		}
		if p.Plot != nil {
			p.Plot.Draw(p.Canvas)
		}
		for _, g := range p.Geoms {
			g.Draw(p)
		}
		p.drawCornerTexts(f.Style)
	}

	if f.Boxes {
		for _, p := range f.Panels {
			f.drawBox(p)
		}
	}
	if len(f.Labels) > 0 {
		f.drawLabels(c)
	}
}

func (f *Figure) drawBox(p *Panel) {
	sty := f.Style.Box
	if sty.Color == nil {
		sty.Color = plotutil.Color(p.Index)
	}
	r := p.Canvas.Rectangle
	p.Canvas.StrokeLines(sty, []vg.Point{
		r.Min,
		{X: r.Max.X, Y: r.Min.Y},
		r.Max,
		{X: r.Min.X, Y: r.Max.Y},
		r.Min,
	})
}

// drawLabels puts the subplot letters left of and above the top-left
// corner of every panel.
func (f *Figure) drawLabels(c draw.Canvas) {
	dx := vg.Length(f.Style.Label.Offset.X/f.Size.Width) * (c.Max.X - c.Min.X)
	dy := vg.Length(f.Style.Label.Offset.Y/f.Size.Height) * (c.Max.Y - c.Min.Y)
	for i, p := range f.Panels {
		if i >= len(f.Labels) {
			break
		}
		pt := vg.Point{X: p.Canvas.Min.X - dx, Y: p.Canvas.Max.Y + dy}
		c.FillText(f.Style.Label.TextStyle, pt, f.Labels[i])
	}
}
