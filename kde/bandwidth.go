package kde

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// NormalReferenceBandWidth is the statsmodels-style rule of thumb:
// C * A * n^(-1/5), with A the robust spread estimate.
type NormalReferenceBandWidth struct {
	kernel *GaussianKernel
}

func NewNormalReferenceBandWidth(kernel *GaussianKernel) *NormalReferenceBandWidth {
	if kernel == nil {
		kernel = NewGaussianKernel()
	}
	return &NormalReferenceBandWidth{kernel: kernel}
}

func (bw *NormalReferenceBandWidth) BandWidth(x []float64) float64 {
	C := bw.kernel.NormalReferenceConstant()
	A := selectSigma(x)
	n := len(x)
	return C * A * math.Pow(float64(n), -0.2)
}

func selectSigma(x []float64) float64 {
	normalize := 1.349

	q75 := stat.Quantile(0.75, stat.Empirical, x, nil)
	q25 := stat.Quantile(0.25, stat.Empirical, x, nil)
	iqr := (q75 - q25) / normalize

	stdDev := stat.StdDev(x, nil)

	if iqr > 0 {
		if stdDev < iqr {
			return stdDev
		}
		return iqr
	}
	return stdDev
}
