package figure

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/vdobler/subplot"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Drawer draws custom content onto a panel.
type Drawer interface {
	Draw(p *Panel)
}

// DrawerFunc adapts a function to the Drawer interface.
type DrawerFunc func(p *Panel)

// Draw calls f(p).
func (f DrawerFunc) Draw(p *Panel) { f(p) }

// Corner selects a corner of a panel.
type Corner int

// Corners of a panel for AddCornerText.
const (
	TopLeft Corner = iota
	TopRight
	BottomLeft
	BottomRight
)

type cornerText struct {
	text   string
	corner Corner
}

// ----------------------------------------------------------------------------
// Panel

// A Panel is one subplot of a Figure. Canvas is valid during and after
// Figure.Draw.
type Panel struct {
	Index    int // position in Figure.Panels
	Row, Col int
	Rect     subplot.Rect

	Canvas draw.Canvas
	Plot   *plot.Plot  // drawn into Canvas if not nil
	Image  image.Image // stretched over Canvas if not nil
	Geoms  []Drawer

	texts []cornerText
}

var unit = subplot.Interval{Min: 0, Max: 1}

// MapUnit maps the panel fractions (u,v) to a canvas point. (0,0) is the
// bottom-left and (1,1) the top-right corner of the panel.
func (p *Panel) MapUnit(u, v float64) vg.Point {
	cx := subplot.Interval{Min: float64(p.Canvas.Min.X), Max: float64(p.Canvas.Max.X)}
	cy := subplot.Interval{Min: float64(p.Canvas.Min.Y), Max: float64(p.Canvas.Max.Y)}
	x := subplot.LinearTrans.Trans(unit, cx, u)
	y := subplot.LinearTrans.Trans(unit, cy, v)
	return vg.Point{X: vg.Length(x), Y: vg.Length(y)}
}

// NewPlot attaches a fresh plot to p and returns it. An existing plot is
// returned unchanged.
func (p *Panel) NewPlot() *plot.Plot {
	if p.Plot == nil {
		p.Plot = plot.New()
	}
	return p.Plot
}

// LoadImage reads a PNG, JPEG or GIF image to be drawn over the whole
// panel.
func (p *Panel) LoadImage(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	p.Image = img
	return nil
}

// AddCornerText places text in the given corner of the panel.
func (p *Panel) AddCornerText(text string, c Corner) {
	p.texts = append(p.texts, cornerText{text, c})
}

// AddLegend adds one line entry per label to the legend of the panel's
// plot, colored like plotutil's default cycle. A plot is created if the
// panel has none.
func (p *Panel) AddLegend(width vg.Length, labels ...string) error {
	plt := p.NewPlot()
	for i, label := range labels {
		line, err := plotter.NewLine(plotter.XYs{})
		if err != nil {
			return err
		}
		line.Color = plotutil.Color(i)
		line.Width = width
		plt.Legend.Add(label, line)
	}
	plt.Legend.Top = true
	return nil
}

func (p *Panel) drawCornerTexts(sty Style) {
	inset := sty.Corner.Inset
	for _, t := range p.texts {
		ts := sty.Corner.TextStyle
		var pt vg.Point
		switch t.corner {
		case TopLeft:
			pt = p.MapUnit(inset, 1-inset)
			ts.XAlign, ts.YAlign = draw.XLeft, draw.YTop
		case TopRight:
			pt = p.MapUnit(1-inset, 1-inset)
			ts.XAlign, ts.YAlign = draw.XRight, draw.YTop
		case BottomLeft:
			pt = p.MapUnit(inset, inset)
			ts.XAlign, ts.YAlign = draw.XLeft, draw.YBottom
		case BottomRight:
			pt = p.MapUnit(1-inset, inset)
			ts.XAlign, ts.YAlign = draw.XRight, draw.YBottom
		}
		p.Canvas.FillText(ts, pt, t.text)
	}
}
