package figure

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/vg"
)

// PublicationStyle makes p look like a journal figure: axis labels and
// title in size, tick labels in tickSize and 0.75pt axis and tick lines.
func PublicationStyle(p *plot.Plot, size, tickSize vg.Length) {
	lw := vg.Points(0.75)
	labelFont := font.From(plot.DefaultFont, size)
	tickFont := font.From(plot.DefaultFont, tickSize)

	p.Title.TextStyle.Font = labelFont
	p.Legend.TextStyle.Font = tickFont
	p.Legend.ThumbnailWidth = vg.Points(12)
	for _, ax := range []*plot.Axis{&p.X, &p.Y} {
		ax.Label.TextStyle.Font = labelFont
		ax.Tick.Label.Font = tickFont
		ax.Width = lw
		ax.Tick.Width = lw
		ax.Tick.Length = vg.Points(3)
		ax.Padding = 0
	}
}
