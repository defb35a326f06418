package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultQuantiles(t *testing.T) {
	q := defaultQuantiles()
	require.Len(t, q, 20)
	assert.InDelta(t, 0.05, q[0], 1e-12)
	assert.InDelta(t, 1.0, q[len(q)-1], 1e-12)
	for i := 1; i < len(q); i++ {
		assert.InDelta(t, 0.05, q[i]-q[i-1], 1e-12)
	}
}

func TestCommandFlags(t *testing.T) {
	cmd := newCommand()
	for _, name := range []string{
		"output-file", "verbose", "quantiles", "injection-hdf-group",
		"input-file", "parameters", "z-arg", "scatter-cmap",
	} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "flag %q", name)
	}

	group, err := cmd.Flags().GetString("injection-hdf-group")
	require.NoError(t, err)
	assert.Equal(t, "H1/injections", group)
}
