package figure

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

func format(path string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
}

// Save draws f into a file. The format is chosen by extension, any format
// registered with gonum's vg/draw works: png, jpg, jpeg, tif, tiff, svg,
// pdf, eps and tex.
func (f *Figure) Save(path string) (err error) {
	w := vg.Length(f.Size.Width) * vg.Inch
	h := vg.Length(f.Size.Height) * vg.Inch
	c, err := draw.NewFormattedCanvas(w, h, format(path))
	if err != nil {
		return err
	}
	f.Draw(draw.New(c))

	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if e := out.Close(); err == nil {
			err = e
		}
	}()
	if _, err = c.WriteTo(out); err != nil {
		return err
	}
	f.logger.Info("wrote figure", "path", path, "backend", "gonum")
	return nil
}

// SaveCanvas draws f through github.com/tdewolff/canvas and writes an SVG
// or PDF file depending on the extension of path.
func (f *Figure) SaveCanvas(path string) error {
	var writer canvas.Writer
	switch ext := format(path); ext {
	case "svg":
		writer = renderers.SVG()
	case "pdf":
		writer = renderers.PDF()
	default:
		return fmt.Errorf("canvas backend: unsupported format %q", ext)
	}

	// canvas works in millimeters.
	c := canvas.New(f.Size.Width*25.4, f.Size.Height*25.4)
	f.Draw(renderers.NewGonumPlot(c))
	if err := c.WriteFile(path, writer); err != nil {
		return err
	}
	f.logger.Info("wrote figure", "path", path, "backend", "canvas")
	return nil
}
