//go:build ignore
// +build ignore

package main

import (
	"fmt"
	"math"
	"os"

	"github.com/vdobler/subplot"
	"github.com/vdobler/subplot/figure"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

func sine(phase float64) plotter.XYs {
	xy := make(plotter.XYs, 50)
	for i := range xy {
		xy[i].X = float64(i) / 5
		xy[i].Y = math.Sin(xy[i].X + phase)
	}
	return xy
}

func main() {
	layout, err := subplot.Preset("2x3_landscape")
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	layout = layout.WithRowHeights(2.2, 1.4)

	f, err := figure.New(layout, figure.WithLabels('A'), figure.WithBoxes())
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	for i, p := range f.Panels {
		plt := p.NewPlot()
		line, err := plotter.NewLine(sine(float64(i)))
		if err != nil {
			panic(err)
		}
		line.Color = plotutil.Color(i)
		plt.Add(line)
		figure.PublicationStyle(plt, 8, 6)
		p.AddCornerText(fmt.Sprintf("phase %d", i), figure.TopRight)
	}

	img := vgimg.New(vg.Length(layout.Figure.Width)*vg.Inch, vg.Length(layout.Figure.Height)*vg.Inch)
	f.Draw(draw.New(img))
	out, err := os.Create("layout-demo.png")
	if err != nil {
		panic(err)
	}
	defer out.Close()
	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(out); err != nil {
		panic(err)
	}
}
