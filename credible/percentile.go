// Package credible computes symmetric credible intervals from posterior
// samples and the injection containment counts behind the calibration
// (PP) plot.
package credible

import (
	"math"
	"sort"

	"github.com/gwinfer/postplot/common"
	"github.com/gwinfer/postplot/model"
)

// Percentile returns the p-th percentile (p in [0, 100]) of the samples
// using the midpoint (Hazen) plotting position: rank p/100*n + 0.5,
// linearly interpolated. gonum's stat.Quantile offers only the Empirical
// and LinInterp conventions, neither of which places the 50% interval of
// 0..99 at [24.5, 74.5], so the rank arithmetic lives here.
func Percentile(samples []float64, p float64) (float64, error) {
	if len(samples) == 0 {
		return 0, common.ErrorNoSamples
	}
	if p < 0 || p > 100 || math.IsNaN(p) {
		return 0, common.ErrorInvalidValue
	}

	sorted := make([]float64, len(samples))
	copy(sorted, samples)
	sort.Float64s(sorted)

	return percentileSorted(sorted, p), nil
}

func percentileSorted(sorted []float64, p float64) float64 {
	n := len(sorted)
	idx := p/100*float64(n) - 0.5
	if idx <= 0 {
		return sorted[0]
	}
	if idx >= float64(n-1) {
		return sorted[n-1]
	}
	lo := int(math.Floor(idx))
	frac := idx - float64(lo)
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}

// Interval returns the symmetric credible interval covering a fraction q
// of the posterior: bounds at the 50 -/+ q*50 percentiles.
func Interval(samples []float64, q float64) (*model.CredibleInterval, error) {
	if q <= 0 || q > 1 {
		return nil, common.ErrorInvalidValue
	}

	sorted := make([]float64, len(samples))
	copy(sorted, samples)
	sort.Float64s(sorted)

	return intervalSorted(sorted, q)
}

func intervalSorted(sorted []float64, q float64) (*model.CredibleInterval, error) {
	if len(sorted) == 0 {
		return nil, common.ErrorNoSamples
	}

	qPct := q * 100
	lowPct := 50 - qPct/2
	highPct := 50 + qPct/2

	return &model.CredibleInterval{
		Lower: &model.QuantileValue{
			Quantile: lowPct / 100,
			Value:    percentileSorted(sorted, lowPct),
		},
		Upper: &model.QuantileValue{
			Quantile: highPct / 100,
			Value:    percentileSorted(sorted, highPct),
		},
	}, nil
}
