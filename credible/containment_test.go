package credible

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/distuv"
)

func TestContainmentEndToEnd(t *testing.T) {
	// 50% interval of 0..99 is [24.5, 74.5]; of the injections 10, 50
	// and 90 only 50 lands inside
	c, err := NewContainmentCounter([]float64{0.5})
	require.NoError(t, err)

	err = c.Add(context.Background(), "mass", uniformSamples(100), []float64{10, 50, 90})
	require.NoError(t, err)

	in, out, ok := c.Counts("mass")
	require.True(t, ok)
	assert.Equal(t, []int{1}, in)
	assert.Equal(t, []int{2}, out)

	fractions, ok := c.Fractions("mass")
	require.True(t, ok)
	assert.InDelta(t, 1.0/3.0, fractions[0], 1e-12)
}

func TestContainmentEndpointCountsOutside(t *testing.T) {
	// interval of [1..5] at q=0.4 is exactly [2, 4]; endpoint-equal
	// injections must be counted as missed
	samples := []float64{1, 2, 3, 4, 5}
	ci, err := Interval(samples, 0.4)
	require.NoError(t, err)
	require.Equal(t, 2.0, ci.Lower.Value)
	require.Equal(t, 4.0, ci.Upper.Value)

	c, err := NewContainmentCounter([]float64{0.4})
	require.NoError(t, err)
	require.NoError(t, c.Add(context.Background(), "p", samples, []float64{2, 4, 3}))

	in, out, ok := c.Counts("p")
	require.True(t, ok)
	assert.Equal(t, []int{1}, in)
	assert.Equal(t, []int{2}, out)
}

func TestContainmentPoolsAcrossFiles(t *testing.T) {
	c, err := NewContainmentCounter([]float64{0.5})
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, c.Add(ctx, "mass", uniformSamples(100), []float64{50}))
	require.NoError(t, c.Add(ctx, "mass", uniformSamples(100), []float64{10, 90}))

	in, out, ok := c.Counts("mass")
	require.True(t, ok)
	assert.Equal(t, 1, in[0])
	assert.Equal(t, 2, out[0])

	fractions, _ := c.Fractions("mass")
	assert.InDelta(t, 1.0/3.0, fractions[0], 1e-12)
}

func TestContainmentCountsSumToTotal(t *testing.T) {
	quantiles := []float64{0.1, 0.3, 0.5, 0.7, 0.9}
	c, err := NewContainmentCounter(quantiles)
	require.NoError(t, err)

	norm := distuv.Normal{Mu: 0, Sigma: 1, Src: nil}
	samples := make([]float64, 500)
	for i := range samples {
		samples[i] = norm.Rand()
	}
	injected := make([]float64, 37)
	for i := range injected {
		injected[i] = norm.Rand()
	}

	require.NoError(t, c.Add(context.Background(), "x", samples, injected))

	in, out, ok := c.Counts("x")
	require.True(t, ok)
	for qi := range quantiles {
		assert.Equal(t, len(injected), in[qi]+out[qi])
	}
}

func TestContainmentFractionsMonotonic(t *testing.T) {
	// wider symmetric intervals nest, so sorted quantiles give
	// non-decreasing recovered fractions
	quantiles := []float64{0.05, 0.2, 0.4, 0.6, 0.8, 0.95}
	c, err := NewContainmentCounter(quantiles)
	require.NoError(t, err)

	norm := distuv.Normal{Mu: 10, Sigma: 2, Src: nil}
	samples := make([]float64, 1000)
	for i := range samples {
		samples[i] = norm.Rand()
	}
	injected := make([]float64, 100)
	for i := range injected {
		injected[i] = norm.Rand()
	}

	require.NoError(t, c.Add(context.Background(), "x", samples, injected))

	fractions, ok := c.Fractions("x")
	require.True(t, ok)
	for i := 1; i < len(fractions); i++ {
		assert.GreaterOrEqual(t, fractions[i], fractions[i-1])
	}
}

func TestContainmentZeroInjectionsIsNaN(t *testing.T) {
	c, err := NewContainmentCounter([]float64{0.5})
	require.NoError(t, err)
	require.NoError(t, c.Add(context.Background(), "x", uniformSamples(10), nil))

	fractions, ok := c.Fractions("x")
	require.True(t, ok)
	assert.True(t, math.IsNaN(fractions[0]))
}

func TestContainmentRejectsBadQuantiles(t *testing.T) {
	_, err := NewContainmentCounter(nil)
	assert.Error(t, err)

	_, err = NewContainmentCounter([]float64{0.5, 0})
	assert.Error(t, err)

	_, err = NewContainmentCounter([]float64{1.2})
	assert.Error(t, err)
}

func TestContainmentParamOrder(t *testing.T) {
	c, err := NewContainmentCounter([]float64{0.5})
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, c.Add(ctx, "b", uniformSamples(10), []float64{5}))
	require.NoError(t, c.Add(ctx, "a", uniformSamples(10), []float64{5}))
	require.NoError(t, c.Add(ctx, "b", uniformSamples(10), []float64{5}))

	assert.Equal(t, []string{"b", "a"}, c.Params())
}
