package plotting

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// addScatter draws one file's pairwise sample cloud. When z values are
// present the points are colored through the configured color map,
// clamped to the vmin/vmax overrides; otherwise they take the file's
// contour color.
func addScatter(p *plot.Plot, x, y, z []float64, colors FileColors, style Style) error {
	pts := make(plotter.XYs, len(x))
	for i := range x {
		pts[i].X = x[i]
		pts[i].Y = y[i]
	}
	sc, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}

	glyph := draw.GlyphStyle{
		Color:  colors.Contour,
		Radius: vg.Points(1.2),
		Shape:  draw.CircleGlyph{},
	}

	if len(z) == len(x) && len(z) > 0 {
		vmin, vmax := floats.Min(z), floats.Max(z)
		if style.VMin != nil {
			vmin = *style.VMin
		}
		if style.VMax != nil {
			vmax = *style.VMax
		}
		cmap, err := ColorMap(style.ScatterCmap, vmin, vmax)
		if err != nil {
			return err
		}
		sc.GlyphStyleFunc = func(i int) draw.GlyphStyle {
			g := glyph
			g.Color = atClamped(cmap, z[i])
			return g
		}
	} else {
		sc.GlyphStyle = glyph
	}

	p.Add(sc)
	return nil
}
