package plotting

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/gwinfer/postplot/credible"
	"github.com/gwinfer/postplot/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/distuv"
)

func readPNG(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func syntheticResult(path string, n int) *model.Result {
	norm := distuv.Normal{Mu: 20, Sigma: 3, Src: nil}
	m1 := make([]float64, n)
	m2 := make([]float64, n)
	z := make([]float64, n)
	for i := range m1 {
		m1[i] = norm.Rand()
		m2[i] = norm.Rand() * 0.5
		z[i] = norm.Rand()
	}
	return &model.Result{
		Path:    path,
		Params:  []string{"mass1", "mass2"},
		Labels:  []string{"m1", "m2"},
		Samples: map[string][]float64{"mass1": m1, "mass2": m2},
		ZValues: z,
	}
}

func TestFigureEndToEnd(t *testing.T) {
	ctx := context.Background()
	res := syntheticResult("run.json", 400)

	ranges, err := ResolveRanges(res.Params, nil, nil, []*model.Result{res})
	require.NoError(t, err)

	style := Style{
		Marginal:            true,
		Scatter:             true,
		Density:             true,
		MarginalPercentiles: []float64{5, 95},
		ContourPercentiles:  []float64{50, 90},
	}
	fig, err := NewFigure(res.Params, res.Labels, ranges, style, 1, nil)
	require.NoError(t, err)
	require.NoError(t, fig.AddResult(ctx, res))

	out := filepath.Join(t.TempDir(), "posterior.png")
	meta := Metadata{CommandLine: "plot-posterior --input-file run.json", Title: "t"}
	require.NoError(t, SaveFigure(fig, out, meta))

	written, err := readPNG(out)
	require.NoError(t, err)
	entries, err := ReadText(written)
	require.NoError(t, err)
	assert.Equal(t, "plot-posterior --input-file run.json", entries["cmd"])
	assert.Equal(t, "t", entries["title"])
}

func TestFigureOverlayMultipleFiles(t *testing.T) {
	ctx := context.Background()
	resA := syntheticResult("a.json", 200)
	resB := syntheticResult("b.json", 200)
	loaded := []*model.Result{resA, resB}

	ranges, err := ResolveRanges(resA.Params, nil, nil, loaded)
	require.NoError(t, err)

	style := Style{Marginal: true, Scatter: true, KDE: true}
	fig, err := NewFigure(resA.Params, resA.Labels, ranges, style, len(loaded), nil)
	require.NoError(t, err)
	for _, r := range loaded {
		require.NoError(t, fig.AddResult(ctx, r))
	}
	fig.SetFileLabels([]string{"run a", "run b"})

	assert.Len(t, fig.legendColors, 2)
	assert.Equal(t, CycleColor(0), fig.legendColors[0])
	assert.Equal(t, CycleColor(1), fig.legendColors[1])

	out := filepath.Join(t.TempDir(), "overlay.png")
	require.NoError(t, SaveFigure(fig, out, Metadata{CommandLine: "x"}))
}

func TestFigureSingleParameter(t *testing.T) {
	ctx := context.Background()
	res := syntheticResult("run.json", 300)
	res.Params = res.Params[:1]
	res.Labels = res.Labels[:1]

	ranges, err := ResolveRanges(res.Params, nil, nil, []*model.Result{res})
	require.NoError(t, err)

	fig, err := NewFigure(res.Params, res.Labels, ranges, Style{Marginal: true}, 1, nil)
	require.NoError(t, err)
	require.NoError(t, fig.AddResult(ctx, res))

	out := filepath.Join(t.TempDir(), "marginal.png")
	require.NoError(t, SaveFigure(fig, out, Metadata{CommandLine: "x"}))
}

func TestFigureRejectsNonPNGOutput(t *testing.T) {
	res := syntheticResult("run.json", 50)
	ranges, err := ResolveRanges(res.Params, nil, nil, []*model.Result{res})
	require.NoError(t, err)

	fig, err := NewFigure(res.Params, res.Labels, ranges, Style{Marginal: true}, 1, nil)
	require.NoError(t, err)
	require.NoError(t, fig.AddResult(context.Background(), res))

	err = SaveFigure(fig, filepath.Join(t.TempDir(), "posterior.pdf"), Metadata{})
	assert.Error(t, err)
}

func TestBuildPPPlot(t *testing.T) {
	ctx := context.Background()
	counter, err := credible.NewContainmentCounter([]float64{0.25, 0.5, 0.75})
	require.NoError(t, err)

	samples := make([]float64, 100)
	for i := range samples {
		samples[i] = float64(i)
	}
	require.NoError(t, counter.Add(ctx, "mass1", samples, []float64{10, 50, 90}))

	p, err := BuildPPPlot(ctx, counter, map[string]string{"mass1": "m1"})
	require.NoError(t, err)

	out := filepath.Join(t.TempDir(), "pp.png")
	require.NoError(t, SavePlot(p, out, Metadata{CommandLine: "plot-inj-intervals"}))

	written, err := readPNG(out)
	require.NoError(t, err)
	entries, err := ReadText(written)
	require.NoError(t, err)
	assert.Equal(t, "plot-inj-intervals", entries["cmd"])
}

func TestBuildPPPlotEmptyCounter(t *testing.T) {
	counter, err := credible.NewContainmentCounter([]float64{0.5})
	require.NoError(t, err)
	_, err = BuildPPPlot(context.Background(), counter, nil)
	assert.Error(t, err)
}
