package transform

import (
	"math"
	"testing"

	"github.com/gwinfer/postplot/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveStoredPassThrough(t *testing.T) {
	table := map[string][]float64{"mass1": {10, 20}}
	got, err := Derive("mass1", table)
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 20}, got)
}

func TestDeriveChirpMass(t *testing.T) {
	table := map[string][]float64{
		"mass1": {10},
		"mass2": {10},
	}
	got, err := Derive("mchirp", table)
	require.NoError(t, err)
	// equal masses: mchirp = m * 2^(3/5) / 2^(1/5) = m * 2^(2/5)
	want := 10 * math.Pow(2, 0.4)
	assert.InDelta(t, want, got[0], 1e-12)
}

func TestDeriveMassRatioAtLeastOne(t *testing.T) {
	table := map[string][]float64{
		"mass1": {5, 30},
		"mass2": {10, 10},
	}
	got, err := Derive("q", table)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, got[0], 1e-12)
	assert.InDelta(t, 3.0, got[1], 1e-12)
}

func TestDeriveEtaBounded(t *testing.T) {
	table := map[string][]float64{
		"mass1": {10, 25},
		"mass2": {10, 5},
	}
	got, err := Derive("eta", table)
	require.NoError(t, err)
	// symmetric mass ratio peaks at 0.25 for equal masses
	assert.InDelta(t, 0.25, got[0], 1e-12)
	assert.Less(t, got[1], 0.25)
}

func TestDeriveUnknownParam(t *testing.T) {
	_, err := Derive("spin1z", map[string][]float64{"mass1": {1}})
	assert.ErrorIs(t, err, common.ErrorNoTransform)
}

func TestDeriveMissingInputs(t *testing.T) {
	_, err := Derive("mchirp", map[string][]float64{"mass1": {1}})
	assert.ErrorIs(t, err, common.ErrorNoTransform)
}
