package plotting

import (
	"context"
	"math"

	"github.com/gwinfer/postplot/common"
	"github.com/gwinfer/postplot/credible"
	"github.com/gwinfer/postplot/utils"
	"go.uber.org/zap"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// BuildPPPlot renders the calibration figure: one recovered-fraction
// curve per parameter against the nominal credible-interval size, with
// a dashed gray diagonal marking perfect calibration. labels maps
// parameter name to its display label (taken from the first input file
// that exposed it). Quantile buckets whose fraction is NaN (zero pooled
// injections) are skipped.
func BuildPPPlot(ctx context.Context, counter *credible.ContainmentCounter, labels map[string]string) (*plot.Plot, error) {
	logger := utils.GetLogger(ctx)

	p := plot.New()
	p.X.Label.Text = "Credible interval"
	p.Y.Label.Text = "Fraction of injections recovered"
	p.X.Min, p.X.Max = 0, 1
	p.Y.Min, p.Y.Max = 0, 1
	p.Add(plotter.NewGrid())

	diag, err := plotter.NewLine(plotter.XYs{{X: 0, Y: 0}, {X: 1, Y: 1}})
	if err != nil {
		return nil, err
	}
	diag.LineStyle.Color = colorGray
	diag.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(4)}
	p.Add(diag)

	params := counter.Params()
	if len(params) == 0 {
		return nil, common.ErrorNoSamples
	}

	quantiles := counter.Quantiles()
	for i, param := range params {
		fractions, _ := counter.Fractions(param)

		pts := make(plotter.XYs, 0, len(quantiles))
		for qi, q := range quantiles {
			if math.IsNaN(fractions[qi]) {
				logger.Warn("no injections for quantile, skipping point",
					zap.String("param", param), zap.Float64("quantile", q))
				continue
			}
			pts = append(pts, plotter.XY{X: q, Y: fractions[qi]})
		}
		if len(pts) == 0 {
			continue
		}

		line, err := plotter.NewLine(pts)
		if err != nil {
			return nil, err
		}
		line.LineStyle.Color = CycleColor(i + 1)
		p.Add(line)

		label, ok := labels[param]
		if !ok {
			label = param
		}
		p.Legend.Add(label, line)
	}

	p.Legend.Top = true
	p.Legend.Left = true
	return p, nil
}
