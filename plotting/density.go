package plotting

import (
	"sort"

	"github.com/gwinfer/postplot/model"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
)

const densityBins = 40

// defaultContourPercentiles are the enclosed probability masses drawn
// when none were requested.
var defaultContourPercentiles = []float64{50, 90}

// histGrid is a 2D binned density over the panel ranges, implementing
// plotter.GridXYZ. z is indexed [col][row] and normalized to unit mass.
type histGrid struct {
	x, y     []float64
	z        [][]float64
	cellArea float64
}

func (g *histGrid) Dims() (c, r int) { return len(g.x), len(g.y) }
func (g *histGrid) Z(c, r int) float64 {
	return g.z[c][r]
}
func (g *histGrid) X(c int) float64 { return g.x[c] }
func (g *histGrid) Y(r int) float64 { return g.y[r] }

// binSamples builds the normalized 2D histogram of (x, y) over the
// resolved ranges. Samples outside the ranges are dropped.
func binSamples(x, y []float64, rx, ry model.Range, bins int) *histGrid {
	dx := (rx.Max - rx.Min) / float64(bins)
	dy := (ry.Max - ry.Min) / float64(bins)
	if dx <= 0 || dy <= 0 {
		return nil
	}

	g := &histGrid{
		x:        make([]float64, bins),
		y:        make([]float64, bins),
		z:        make([][]float64, bins),
		cellArea: dx * dy,
	}
	for i := 0; i < bins; i++ {
		g.x[i] = rx.Min + (float64(i)+0.5)*dx
		g.y[i] = ry.Min + (float64(i)+0.5)*dy
		g.z[i] = make([]float64, bins)
	}

	total := 0
	for i := range x {
		ci := int((x[i] - rx.Min) / dx)
		ri := int((y[i] - ry.Min) / dy)
		if ci < 0 || ri < 0 || ci >= bins || ri >= bins {
			continue
		}
		g.z[ci][ri]++
		total++
	}
	if total == 0 {
		return nil
	}

	norm := float64(total) * g.cellArea
	for ci := range g.z {
		for ri := range g.z[ci] {
			g.z[ci][ri] /= norm
		}
	}
	return g
}

// contourLevels finds the density values whose superlevel sets enclose
// the requested probability masses (in percent), the usual convention
// for posterior contours. Returned ascending, deduplicated.
func contourLevels(g *histGrid, percentiles []float64) []float64 {
	flat := make([]float64, 0, len(g.x)*len(g.y))
	for ci := range g.z {
		flat = append(flat, g.z[ci]...)
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(flat)))

	levels := make([]float64, 0, len(percentiles))
	for _, pct := range percentiles {
		target := pct / 100
		mass := 0.0
		level := flat[len(flat)-1]
		for _, d := range flat {
			mass += d * g.cellArea
			if mass >= target {
				level = d
				break
			}
		}
		levels = append(levels, level)
	}

	sort.Float64s(levels)
	uniq := levels[:0]
	for i, l := range levels {
		if l <= 0 {
			continue
		}
		if i > 0 && l == levels[i-1] {
			continue
		}
		uniq = append(uniq, l)
	}
	return uniq
}

// addDensity draws one file's binned density map with mass-enclosing
// contour lines in the file's contour color.
func addDensity(p *plot.Plot, x, y []float64, rx, ry model.Range, colors FileColors, style Style) error {
	g := binSamples(x, y, rx, ry, densityBins)
	if g == nil {
		return nil
	}

	maxDensity := 0.0
	for ci := range g.z {
		for ri := range g.z[ci] {
			if g.z[ci][ri] > maxDensity {
				maxDensity = g.z[ci][ri]
			}
		}
	}

	if style.DensityCmap != "" {
		cmap, err := ColorMap(style.DensityCmap, 0, maxDensity)
		if err != nil {
			return err
		}
		heat := plotter.NewHeatMap(g, cmap.Palette(255))
		p.Add(heat)
	}

	pcts := style.ContourPercentiles
	if len(pcts) == 0 {
		pcts = defaultContourPercentiles
	}
	levels := contourLevels(g, pcts)
	if len(levels) == 0 {
		return nil
	}
	contour := plotter.NewContour(g, levels, singlePalette{c: colors.Contour, n: len(levels)})
	p.Add(contour)
	return nil
}
