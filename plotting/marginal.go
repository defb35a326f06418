package plotting

import (
	"github.com/gwinfer/postplot/credible"
	"github.com/gwinfer/postplot/kde"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

const marginalBins = 50

// addMarginal draws one file's 1D distribution of a parameter onto a
// diagonal panel: a normalized histogram, or a KDE curve when the KDE
// style is on, plus dashed markers at the requested percentiles.
func addMarginal(p *plot.Plot, samples []float64, colors FileColors, style Style) error {
	if style.KDE {
		if err := addKDECurve(p, samples, colors); err != nil {
			return err
		}
	} else {
		hist, err := plotter.NewHist(plotter.Values(samples), marginalBins)
		if err != nil {
			return err
		}
		hist.Normalize(1)
		hist.FillColor = colors.HistFill
		hist.LineStyle.Color = colors.HistLine
		p.Add(hist)
	}

	for _, pct := range style.MarginalPercentiles {
		v, err := credible.Percentile(samples, pct)
		if err != nil {
			return err
		}
		if err := addVerticalMarker(p, v, colors); err != nil {
			return err
		}
	}
	return nil
}

func addKDECurve(p *plot.Plot, samples []float64, colors FileColors) error {
	est, err := kde.NewUnivariate(samples, 1.0, 3.0)
	if err != nil {
		return err
	}
	density, _ := est.Density()

	pts := make(plotter.XYs, len(density))
	for i, d := range density {
		pts[i].X = d.X
		pts[i].Y = d.Value
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.LineStyle.Color = colors.Line
	p.Add(line)
	return nil
}

// addVerticalMarker draws a dashed percentile marker spanning the panel.
func addVerticalMarker(p *plot.Plot, x float64, colors FileColors) error {
	// marker height is resolved at draw time by the axis autoscale, so
	// span a generous vertical extent and let the clip take it
	line, err := plotter.NewLine(plotter.XYs{{X: x, Y: 0}, {X: x, Y: 1}})
	if err != nil {
		return err
	}
	line.LineStyle.Color = colors.Line
	line.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
	p.Add(line)
	return nil
}
