package figure

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"unicode/utf8"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var nucleotideColors = map[rune]color.Color{
	'A': color.RGBA{R: 0xff, A: 0xff},                   // red
	'C': color.RGBA{B: 0xff, A: 0xff},                   // blue
	'G': color.RGBA{R: 0xff, G: 0xa5, A: 0xff},          // orange
	'T': color.RGBA{G: 0x80, A: 0xff},                   // green
	'U': color.RGBA{G: 0x80, A: 0xff},                   // green
	'&': color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}, // strand break
}

// SequenceColors returns one color per nucleotide of the DNA or RNA
// sequence seq: A red, C blue, G orange, T and U green and the strand
// separator & gray. Lower case is accepted.
func SequenceColors(seq string) ([]color.Color, error) {
	colors := make([]color.Color, 0, len(seq))
	for i, r := range strings.ToUpper(seq) {
		c, ok := nucleotideColors[r]
		if !ok {
			return nil, fmt.Errorf("invalid character %q at %d in sequence, want one of ACGTU&", r, i)
		}
		colors = append(colors, c)
	}
	return colors, nil
}

// SequenceTicks labels positions 0, 1, ... with the nucleotides of seq.
// A non-empty structure, e.g. in dot-bracket notation, adds a second line
// to every label and must be as long as seq.
func SequenceTicks(seq, structure string) (plot.ConstantTicks, error) {
	if structure != "" && utf8.RuneCountInString(structure) != utf8.RuneCountInString(seq) {
		return nil, fmt.Errorf("structure has %d characters, sequence %d",
			utf8.RuneCountInString(structure), utf8.RuneCountInString(seq))
	}
	ss := []rune(structure)
	ticks := make(plot.ConstantTicks, 0, len(seq))
	for i, r := range []rune(seq) {
		label := string(r)
		if len(ss) > 0 {
			label += "\n" + string(ss[i])
		}
		ticks = append(ticks, plot.Tick{Value: float64(len(ticks)), Label: label})
	}
	return ticks, nil
}

// Bars draws one bar per value, centered on the value's index and Width
// data units wide. Bars start at zero, so negative values point down.
// Colors are cycled.
type Bars struct {
	Values []float64
	Colors []color.Color
	Width  float64
}

// Plot implements plot.Plotter.
func (b *Bars) Plot(c draw.Canvas, p *plot.Plot) {
	trX, trY := p.Transforms(&c)
	for i, v := range b.Values {
		x0, x1 := trX(float64(i)-b.Width/2), trX(float64(i)+b.Width/2)
		y0, y1 := trY(0), trY(v)
		pts := []vg.Point{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}}
		col := color.Color(color.Black)
		if len(b.Colors) > 0 {
			col = b.Colors[i%len(b.Colors)]
		}
		c.FillPolygon(col, c.ClipPolygonXY(pts))
	}
}

// DataRange implements plot.DataRanger. The y range always includes zero.
func (b *Bars) DataRange() (xmin, xmax, ymin, ymax float64) {
	xmin, xmax = -b.Width/2, float64(len(b.Values)-1)+b.Width/2
	for _, v := range b.Values {
		ymin, ymax = min(ymin, v), max(ymax, v)
	}
	return xmin, xmax, ymin, ymax
}

// PopAvg draws the population average reactivities of a sequence as bars
// colored by nucleotide. The X axis shows the sequence and, if given, the
// secondary structure below it.
func (p *Panel) PopAvg(seq, structure string, reactivities []float64) error {
	if len(reactivities) == 0 || len(reactivities) != utf8.RuneCountInString(seq) {
		return fmt.Errorf("got %d reactivities for a sequence of %d nucleotides",
			len(reactivities), utf8.RuneCountInString(seq))
	}
	colors, err := SequenceColors(seq)
	if err != nil {
		return err
	}
	ticks, err := SequenceTicks(seq, structure)
	if err != nil {
		return err
	}
	plt := p.NewPlot()
	plt.Add(&Bars{Values: append([]float64(nil), reactivities...), Colors: colors, Width: 0.8})
	plt.X.Tick.Marker = ticks
	return nil
}

// Difference returns a-b element by element, e.g. of two reactivity
// profiles of the same sequence.
func Difference(a, b []float64) ([]float64, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("cannot subtract %d values from %d", len(b), len(a))
	}
	d := make([]float64, len(a))
	for i := range a {
		d[i] = a[i] - b[i]
	}
	return d, nil
}

// Lollipop draws a stem from y1 to y2 at every x with a dot at both ends.
// Without y2 the stems start at zero and only y1 gets a dot.
func (p *Panel) Lollipop(x, y1, y2 []float64) error {
	if len(x) == 0 || len(y1) != len(x) || (y2 != nil && len(y2) != len(x)) {
		return fmt.Errorf("lollipop needs equally long x and y values, got %d, %d and %d",
			len(x), len(y1), len(y2))
	}
	plt := p.NewPlot()
	ticks := make(plot.ConstantTicks, len(x))
	for i := range x {
		base := 0.0
		if y2 != nil {
			base = y2[i]
		}
		stem, err := plotter.NewLine(plotter.XYs{{X: x[i], Y: base}, {X: x[i], Y: y1[i]}})
		if err != nil {
			return err
		}
		stem.Color = color.Black
		stem.Width = vg.Points(1)
		plt.Add(stem)
		ticks[i] = plot.Tick{Value: x[i], Label: strconv.FormatFloat(x[i], 'g', -1, 64)}
	}
	for i, ys := range [][]float64{y1, y2} {
		if ys == nil {
			continue
		}
		xys := make(plotter.XYs, len(x))
		for j := range x {
			xys[j].X, xys[j].Y = x[j], ys[j]
		}
		dots, err := plotter.NewScatter(xys)
		if err != nil {
			return err
		}
		dots.GlyphStyle.Color = plotutil.Color(i)
		dots.GlyphStyle.Shape = draw.CircleGlyph{}
		dots.GlyphStyle.Radius = vg.Points(3)
		plt.Add(dots)
	}
	plt.X.Tick.Marker = ticks
	return nil
}

// ScatterRegression draws the points (x, y) with a dashed least squares
// line over the x range and puts "R² = ..." into corner. It returns R².
func (p *Panel) ScatterRegression(x, y []float64, corner Corner) (float64, error) {
	if len(x) < 2 || len(x) != len(y) {
		return 0, fmt.Errorf("regression needs at least two equally long x and y values, got %d and %d",
			len(x), len(y))
	}
	alpha, beta := stat.LinearRegression(x, y, nil, false)
	r2 := stat.RSquared(x, y, nil, alpha, beta)

	xys := make(plotter.XYs, len(x))
	xmin, xmax := x[0], x[0]
	for i := range x {
		xys[i].X, xys[i].Y = x[i], y[i]
		xmin, xmax = min(xmin, x[i]), max(xmax, x[i])
	}
	dots, err := plotter.NewScatter(xys)
	if err != nil {
		return 0, err
	}
	dots.GlyphStyle.Color = plotutil.Color(0)
	dots.GlyphStyle.Shape = draw.CircleGlyph{}
	dots.GlyphStyle.Radius = vg.Points(1.5)

	fit, err := plotter.NewLine(plotter.XYs{
		{X: xmin, Y: alpha + beta*xmin},
		{X: xmax, Y: alpha + beta*xmax},
	})
	if err != nil {
		return 0, err
	}
	fit.Color = color.Black
	fit.Width = vg.Points(1)
	fit.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}

	plt := p.NewPlot()
	plt.Add(dots, fit)
	p.AddCornerText(fmt.Sprintf("R² = %.2f", r2), corner)
	return r2, nil
}
