package kde

import (
	"sort"

	"github.com/gwinfer/postplot/common"
	"github.com/gwinfer/postplot/model"
	"github.com/gwinfer/postplot/utils"
	"gonum.org/v1/gonum/floats"
)

// Univariate is a Gaussian kernel density estimate of one posterior
// parameter, used for the smoothed marginal curves. Samples are copied
// and sorted at construction; the estimate is fitted lazily.
type Univariate struct {
	// An adjustment factor for the bw. Bandwidth becomes bw * adjust.
	bwAdjust float64

	// Defines the length of the grid past the lowest and highest values
	// of x so that the kernel goes to zero. The end points are
	// ``min(x) - cut * bw`` and ``max(x) + cut * bw``.
	cut float64

	gridSize int
	samples  []float64

	density []model.Density
	grid    []float64
	bw      float64
	fitted  bool
	kernel  *GaussianKernel
}

func NewUnivariate(samples []float64, bwAdjust float64, cut float64) (*Univariate, error) {
	if len(samples) == 0 {
		return nil, common.ErrorInvalidValue
	}
	if bwAdjust <= 0 {
		bwAdjust = 1.0
	}
	if cut == 0 {
		cut = 3
	}

	sorted := make([]float64, len(samples))
	copy(sorted, samples)
	sort.Float64s(sorted)

	return &Univariate{
		bwAdjust: bwAdjust,
		cut:      cut,
		gridSize: utils.IntMax(len(sorted), 100),
		samples:  sorted,
	}, nil
}

// Density returns the estimate evaluated on the fitted grid, along with
// the selected bandwidth.
func (kde *Univariate) Density() ([]model.Density, float64) {
	if kde.fitted {
		return kde.density, kde.bw
	}

	kernel := NewGaussianKernel()
	bandWidth := NewNormalReferenceBandWidth(kernel)

	bw := bandWidth.BandWidth(kde.samples) * kde.bwAdjust
	kernel.SetH(bw)

	a := floats.Min(kde.samples) - kde.cut*bw
	b := floats.Max(kde.samples) + kde.cut*bw
	grid := utils.Linspace(a, b, kde.gridSize)

	res := make([]model.Density, 0, len(grid))
	for _, x := range grid {
		res = append(res, model.Density{
			X:     x,
			Value: kernel.Density(kde.samples, x),
		})
	}

	kde.density = res
	kde.bw = bw
	kde.grid = grid
	kde.fitted = true
	kde.kernel = kernel

	return res, bw
}

// EvaluateAt returns the density at arbitrary points, fitting first if
// needed so the bandwidth matches the grid estimate.
func (kde *Univariate) EvaluateAt(xs []float64) []float64 {
	if !kde.fitted {
		kde.Density()
	}
	res := make([]float64, len(xs))
	for i, x := range xs {
		res[i] = kde.kernel.Density(kde.samples, x)
	}
	return res
}
