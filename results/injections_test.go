package results

import (
	"context"
	"testing"

	"github.com/gwinfer/postplot/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadInjectionsCompanionFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "inj.json", map[string]any{
		"H1": map[string]any{
			"injections": map[string][]float64{
				"mass1": {10, 20, 30},
				"mass2": {8, 16, 24},
			},
		},
	})
	resultPath := writeFile(t, dir, "run.json", map[string]any{
		"posterior":      map[string][]float64{"mass1": {1, 2}},
		"injection_file": "inj.json",
	})

	set, err := LoadInjections(context.Background(), resultPath, "H1/injections")
	require.NoError(t, err)
	assert.Equal(t, 3, set.Count())
	assert.Equal(t, []float64{10, 20, 30}, set.Values["mass1"])
}

func TestLoadInjectionsInline(t *testing.T) {
	dir := t.TempDir()
	resultPath := writeFile(t, dir, "run.json", map[string]any{
		"posterior": map[string][]float64{"mass1": {1, 2}},
		"injections": map[string]any{
			"H1": map[string]any{
				"injections": map[string][]float64{"mass1": {42}},
			},
		},
	})

	set, err := LoadInjections(context.Background(), resultPath, "H1/injections")
	require.NoError(t, err)
	assert.Equal(t, []float64{42}, set.Values["mass1"])
}

func TestLoadInjectionsMissingGroup(t *testing.T) {
	dir := t.TempDir()
	resultPath := writeFile(t, dir, "run.json", map[string]any{
		"posterior": map[string][]float64{"mass1": {1, 2}},
		"injections": map[string]any{
			"L1": map[string]any{
				"injections": map[string][]float64{"mass1": {42}},
			},
		},
	})

	_, err := LoadInjections(context.Background(), resultPath, "H1/injections")
	assert.ErrorIs(t, err, common.ErrorMissingGroup)
}

func TestLoadInjectionsNoSource(t *testing.T) {
	dir := t.TempDir()
	resultPath := writeFile(t, dir, "run.json", map[string]any{
		"posterior": map[string][]float64{"mass1": {1, 2}},
	})

	_, err := LoadInjections(context.Background(), resultPath, "H1/injections")
	assert.ErrorIs(t, err, common.ErrorNoInjections)
}
