// Package plotting builds the corner-style posterior figures and the
// injection calibration plot on top of gonum/plot, and writes them out
// as PNG images with embedded metadata.
package plotting

import (
	"fmt"

	"github.com/gwinfer/postplot/common"
	"github.com/gwinfer/postplot/model"
	"gonum.org/v1/gonum/floats"
)

// Style is the resolved set of plot-type and styling options for one
// posterior figure.
type Style struct {
	Marginal bool
	Scatter  bool
	Density  bool

	// KDE draws a smoothed density curve on the diagonals instead of a
	// plain histogram.
	KDE bool

	// MarginalPercentiles adds dashed vertical markers on the diagonals.
	MarginalPercentiles []float64

	// ContourPercentiles selects the probability masses enclosed by the
	// density-map contour lines.
	ContourPercentiles []float64
	// ContourColor overrides the per-file cycled contour color; empty
	// means cycle.
	ContourColor string

	DensityCmap string
	ScatterCmap string

	// VMin/VMax clamp the z color scale; nil means derive from data.
	VMin *float64
	VMax *float64
}

// ResolveTypes applies the default plot-type combination: with no flags
// set, a single parameter gets marginal only, more get scatter+marginal.
// User supplied combinations pass through unchanged.
func ResolveTypes(marginal, scatter, density bool, nparams int) (m, s, d bool) {
	if !marginal && !scatter && !density {
		if nparams == 1 {
			return true, false, false
		}
		return true, true, false
	}
	return marginal, scatter, density
}

// ResolveRanges gives every parameter a numeric plotting range. An
// explicit per-side CLI override wins; any side not overridden is the
// min (resp. max) over the sample sets of every loaded file containing
// the parameter.
func ResolveRanges(params []string, minOverride, maxOverride map[string]float64,
	results []*model.Result) (model.RangeMap, error) {
	ranges := model.RangeMap{}
	for _, p := range params {
		lo, hasMin := minOverride[p]
		hi, hasMax := maxOverride[p]
		if hasMin && hasMax {
			ranges[p] = model.Range{Min: lo, Max: hi}
			continue
		}

		found := false
		var r model.Range
		for _, res := range results {
			s, ok := res.Samples[p]
			if !ok || len(s) == 0 {
				continue
			}
			smin, smax := floats.Min(s), floats.Max(s)
			if !found {
				r = model.Range{Min: smin, Max: smax}
				found = true
				continue
			}
			if smin < r.Min {
				r.Min = smin
			}
			if smax > r.Max {
				r.Max = smax
			}
		}
		if !found {
			return nil, fmt.Errorf("%w: %q in any input file", common.ErrorNoSamples, p)
		}
		if hasMin {
			r.Min = lo
		}
		if hasMax {
			r.Max = hi
		}
		ranges[p] = r
	}
	return ranges, nil
}
