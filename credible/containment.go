package credible

import (
	"context"
	"math"
	"sort"

	"github.com/gwinfer/postplot/common"
	"github.com/gwinfer/postplot/utils"
	"go.uber.org/zap"
)

// ContainmentCounter accumulates, per parameter and per requested
// quantile, how many injected true values fell inside vs. outside the
// symmetric credible interval of that size. Counts pool across input
// files sharing a parameter name; fractions are computed only after
// every file has been added.
type ContainmentCounter struct {
	quantiles []float64
	inside    map[string][]int
	outside   map[string][]int
	order     []string
}

func NewContainmentCounter(quantiles []float64) (*ContainmentCounter, error) {
	if len(quantiles) == 0 {
		return nil, common.ErrorInvalidValue
	}
	for _, q := range quantiles {
		if q <= 0 || q > 1 {
			return nil, common.ErrorInvalidValue
		}
	}
	return &ContainmentCounter{
		quantiles: quantiles,
		inside:    map[string][]int{},
		outside:   map[string][]int{},
	}, nil
}

func (c *ContainmentCounter) Quantiles() []float64 {
	return c.quantiles
}

// Params returns parameter names in first-seen order.
func (c *ContainmentCounter) Params() []string {
	return c.order
}

// Add counts one input file's injections against the credible intervals
// of its posterior samples for one parameter.
func (c *ContainmentCounter) Add(ctx context.Context, param string, samples, injected []float64) error {
	logger := utils.GetLogger(ctx)

	if len(samples) == 0 {
		return common.ErrorNoSamples
	}

	if _, ok := c.inside[param]; !ok {
		c.inside[param] = make([]int, len(c.quantiles))
		c.outside[param] = make([]int, len(c.quantiles))
		c.order = append(c.order, param)
	}

	sorted := make([]float64, len(samples))
	copy(sorted, samples)
	sort.Float64s(sorted)

	for qi, q := range c.quantiles {
		ci, err := intervalSorted(sorted, q)
		if err != nil {
			return err
		}
		low, high := ci.Lower.Value, ci.Upper.Value
		for _, v := range injected {
			// endpoint-equal values count as missed
			if low < v && v < high {
				c.inside[param][qi]++
			} else {
				c.outside[param][qi]++
			}
		}
	}

	logger.Info("counted injections",
		zap.String("param", param),
		zap.Int("injections", len(injected)),
		zap.Int("samples", len(samples)))
	return nil
}

// Fractions returns the recovered fraction per quantile for one
// parameter. Quantile buckets with zero pooled injections yield NaN so
// the render layer can skip them rather than fault on a zero division.
func (c *ContainmentCounter) Fractions(param string) ([]float64, bool) {
	in, ok := c.inside[param]
	if !ok {
		return nil, false
	}
	out := c.outside[param]

	res := make([]float64, len(c.quantiles))
	for i := range c.quantiles {
		total := in[i] + out[i]
		if total == 0 {
			res[i] = math.NaN()
			continue
		}
		res[i] = float64(in[i]) / float64(total)
	}
	return res, true
}

// Counts exposes the raw pooled inside/outside tallies for one parameter.
func (c *ContainmentCounter) Counts(param string) (inside, outside []int, ok bool) {
	in, found := c.inside[param]
	if !found {
		return nil, nil, false
	}
	return in, c.outside[param], true
}
