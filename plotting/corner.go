package plotting

import (
	"context"
	"fmt"
	"image/color"

	"github.com/gwinfer/postplot/common"
	"github.com/gwinfer/postplot/model"
	"github.com/gwinfer/postplot/utils"
	"go.uber.org/zap"
	"gonum.org/v1/plot"
)

// Figure is the accumulated corner-style posterior figure: an n×n grid
// with marginal distributions on the diagonal and pairwise scatter or
// density maps below it. Successive input files overlay onto the same
// axes via AddResult.
type Figure struct {
	params []string
	labels []string
	ranges model.RangeMap
	style  Style

	n            int
	totalFiles   int
	fileIdx      int
	fixedContour color.Color

	// plots[row][col]; the upper triangle stays nil.
	plots [][]*plot.Plot

	fileLabels   []string
	legendColors []color.Color
}

func NewFigure(params, labels []string, ranges model.RangeMap, style Style,
	totalFiles int, fixedContour color.Color) (*Figure, error) {
	n := len(params)
	if n == 0 || len(labels) != n {
		return nil, fmt.Errorf("%w: %d params, %d labels", common.ErrorInvalidValue, n, len(labels))
	}
	for _, p := range params {
		if _, ok := ranges[p]; !ok {
			return nil, fmt.Errorf("%w: no range for %q", common.ErrorInvalidValue, p)
		}
	}

	fig := &Figure{
		params:       params,
		labels:       labels,
		ranges:       ranges,
		style:        style,
		n:            n,
		totalFiles:   totalFiles,
		fixedContour: fixedContour,
		plots:        make([][]*plot.Plot, n),
	}

	for i := 0; i < n; i++ {
		fig.plots[i] = make([]*plot.Plot, n)
		for j := 0; j <= i; j++ {
			if i == j && !style.Marginal && n > 1 {
				continue
			}
			if i != j && !style.Scatter && !style.Density {
				continue
			}
			fig.plots[i][j] = fig.newPanel(i, j)
		}
	}
	return fig, nil
}

// newPanel builds one grid cell with its axis ranges and edge labels.
// x is params[col]; off-diagonal y is params[row].
func (f *Figure) newPanel(row, col int) *plot.Plot {
	p := plot.New()
	rx := f.ranges[f.params[col]]
	p.X.Min, p.X.Max = rx.Min, rx.Max

	if row != col {
		ry := f.ranges[f.params[row]]
		p.Y.Min, p.Y.Max = ry.Min, ry.Max
	}

	if row == f.n-1 || (row == col && f.n == 1) {
		p.X.Label.Text = f.labels[col]
	}
	if col == 0 && row != 0 {
		p.Y.Label.Text = f.labels[row]
	}
	if f.n == 1 {
		p.Y.Label.Text = "Probability Density"
	}
	return p
}

// AddResult overlays one input file onto the figure, picking its colors
// from the cycle rules.
func (f *Figure) AddResult(ctx context.Context, res *model.Result) error {
	logger := utils.GetLogger(ctx)

	colors := ColorsForFile(f.fileIdx, f.totalFiles, f.fixedContour)

	for i, param := range f.params {
		p := f.plots[i][i]
		if p == nil {
			continue
		}
		s, ok := res.Samples[param]
		if !ok {
			continue
		}
		if err := addMarginal(p, s, colors, f.style); err != nil {
			return fmt.Errorf("marginal for %q: %w", param, err)
		}
	}

	for i := 1; i < f.n; i++ {
		for j := 0; j < i; j++ {
			p := f.plots[i][j]
			if p == nil {
				continue
			}
			x, okx := res.Samples[f.params[j]]
			y, oky := res.Samples[f.params[i]]
			if !okx || !oky {
				continue
			}
			if f.style.Density {
				if err := addDensity(p, x, y, f.ranges[f.params[j]], f.ranges[f.params[i]],
					colors, f.style); err != nil {
					return fmt.Errorf("density %q vs %q: %w", f.params[j], f.params[i], err)
				}
			}
			if f.style.Scatter {
				if err := addScatter(p, x, y, res.ZValues, colors, f.style); err != nil {
					return fmt.Errorf("scatter %q vs %q: %w", f.params[j], f.params[i], err)
				}
			}
		}
	}

	f.legendColors = append(f.legendColors, colors.HistLine)
	f.fileIdx++

	logger.Info("added result to figure", zap.String("path", res.Path),
		zap.Int("fileIndex", f.fileIdx), zap.Int("samples", res.SampleCount()))
	return nil
}

// SetFileLabels installs the per-file legend labels; the legend is only
// drawn when labels were supplied.
func (f *Figure) SetFileLabels(labels []string) {
	f.fileLabels = labels
}
