package plotting

import (
	"bytes"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/gwinfer/postplot/common"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

const (
	outputDPI = 200
	panelSize = 2.75 * vg.Inch
	tilePad   = 4 * vg.Millimeter
)

// Metadata is embedded into the written image: the exact command line
// that produced it plus an optional title and caption.
type Metadata struct {
	CommandLine string
	Title       string
	Caption     string
}

func (m Metadata) entries() map[string]string {
	return map[string]string{
		"cmd":     m.CommandLine,
		"title":   m.Title,
		"caption": m.Caption,
	}
}

// SaveFigure renders the corner figure grid to a 200 DPI PNG with the
// metadata embedded, drawing the per-file legend when labels were set.
func SaveFigure(fig *Figure, path string, meta Metadata) error {
	w := panelSize * vg.Length(fig.n)
	h := panelSize * vg.Length(fig.n)
	if w < 5*vg.Inch {
		w, h = 5*vg.Inch, 5*vg.Inch
	}

	img := vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(outputDPI))
	dc := draw.New(img)

	tiles := draw.Tiles{
		Rows: fig.n, Cols: fig.n,
		PadX: 2 * vg.Millimeter, PadY: 2 * vg.Millimeter,
		PadTop: tilePad, PadBottom: tilePad,
		PadLeft: tilePad, PadRight: tilePad,
	}
	canvases := plot.Align(fig.plots, tiles, dc)
	for i := range fig.plots {
		for j := range fig.plots[i] {
			if fig.plots[i][j] != nil {
				fig.plots[i][j].Draw(canvases[i][j])
			}
		}
	}

	if len(fig.fileLabels) > 0 {
		legend := plot.NewLegend()
		for i, label := range fig.fileLabels {
			if i >= len(fig.legendColors) {
				break
			}
			legend.Add(label, patch{c: fig.legendColors[i]})
		}
		legend.Top = true
		legend.Left = false
		legend.Draw(dc)
	}

	return writePNG(img, path, meta)
}

// SavePlot renders a single standalone plot (the PP figure) the same way.
func SavePlot(p *plot.Plot, path string, meta Metadata) error {
	img := vgimg.NewWith(vgimg.UseWH(6*vg.Inch, 5*vg.Inch), vgimg.UseDPI(outputDPI))
	dc := draw.New(img)
	p.Draw(dc)
	return writePNG(img, path, meta)
}

func writePNG(img *vgimg.Canvas, path string, meta Metadata) error {
	if ext := strings.ToLower(filepath.Ext(path)); ext != ".png" {
		return fmt.Errorf("%w: output must be a .png path, got %q", common.ErrorInvalidValue, path)
	}

	var buf bytes.Buffer
	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(&buf); err != nil {
		return err
	}

	withMeta, err := EmbedText(buf.Bytes(), meta.entries())
	if err != nil {
		return err
	}
	return os.WriteFile(path, withMeta, 0o644)
}

// patch is a filled-rectangle legend thumbnail, one per input file.
type patch struct {
	c color.Color
}

func (p patch) Thumbnail(c *draw.Canvas) {
	pts := []vg.Point{
		{X: c.Min.X, Y: c.Min.Y},
		{X: c.Min.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Min.Y},
	}
	poly := c.ClipPolygonXY(pts)
	c.FillPolygon(p.c, poly)
}
