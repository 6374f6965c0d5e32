package figure

import (
	"image/color"
	"math"
	"slices"
	"sync"

	xfont "golang.org/x/image/font"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/font/liberation"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// labelFonts is the Liberation collection plus the bold serif face
// registered as semi-bold. vgpdf asks for a "B" style variant of every
// WeightBold face and fails to find it, so subplot letters use the
// semi-bold entry.
var labelFonts = sync.OnceValue(func() *font.Cache {
	coll := slices.Clone(liberation.Collection())
	for _, f := range coll {
		if f.Font.Variant == "Serif" && f.Font.Weight == xfont.WeightBold && f.Font.Style == xfont.StyleNormal {
			f.Font.Weight = xfont.WeightSemiBold
			coll = append(coll, f)
			break
		}
	}
	return font.NewCache(coll)
})

// LabelHandler is the text handler of subplot letters. Its cache resolves
// plot.DefaultFont at WeightSemiBold to the bold Liberation Serif face.
func LabelHandler() text.Handler { return text.Plain{Fonts: labelFonts()} }

// A Style controls how a Figure is drawn.
type Style struct {
	Background color.Color

	Panel struct {
		Background color.Color // nil: not filled
	}

	// Box outlines every panel when boxes are enabled. A nil Color
	// cycles through the plotutil default colors.
	Box draw.LineStyle

	// Label is the style of the subplot letters. The letter's top-left
	// corner is placed Offset inches left of and above the panel.
	Label struct {
		draw.TextStyle
		Offset struct{ X, Y float64 }
	}

	// Corner is the style of corner texts which are inset by the fraction
	// Inset of the panel size.
	Corner struct {
		draw.TextStyle
		Inset float64
	}

	Legend struct {
		LineWidth vg.Length
	}
}

// DefaultStyle returns a Style with subplot letters in bold baseFontSize,
// corner texts a bit smaller and thin panel boxes.
func DefaultStyle(baseFontSize vg.Length) Style {
	scale := func(x vg.Length, f float64) vg.Length {
		return vg.Length(math.Round(f * float64(x)))
	}

	labelFont := font.From(plot.DefaultFont, baseFontSize)
	labelFont.Weight = xfont.WeightSemiBold
	cornerFont := font.From(plot.DefaultFont, scale(baseFontSize, 1/1.2))

	fs := Style{}
	fs.Background = color.White

	fs.Box.Width = vg.Points(2)

	fs.Label.Color = color.Black
	fs.Label.Font = labelFont
	fs.Label.XAlign = draw.XLeft
	fs.Label.YAlign = draw.YTop
	fs.Label.Handler = LabelHandler()
	fs.Label.Offset.X = 0.4
	fs.Label.Offset.Y = 0.1

	fs.Corner.Color = color.Black
	fs.Corner.Font = cornerFont
	fs.Corner.Handler = plot.DefaultTextHandler
	fs.Corner.Inset = 0.03

	fs.Legend.LineWidth = vg.Points(0.75)

	return fs
}
