// Package transform derives parameters that are not stored directly in a
// sample or injection table, e.g. chirp mass from component masses. New
// transforms register themselves by output parameter name.
package transform

import (
	"fmt"
	"math"

	"github.com/gwinfer/postplot/common"
)

// Func computes one derived parameter from a table of per-parameter
// value arrays. All required inputs are guaranteed present and equal
// length when the registry invokes it.
type Func func(table map[string][]float64) []float64

type entry struct {
	requires []string
	fn       Func
}

var registry = map[string]entry{}

// Register installs a transform for the named output parameter.
func Register(name string, requires []string, fn Func) {
	registry[name] = entry{requires: requires, fn: fn}
}

// Derive returns values for param, either directly from the table or via
// a registered transform. A missing transform or missing inputs is an
// error the caller is expected to propagate.
func Derive(param string, table map[string][]float64) ([]float64, error) {
	if v, ok := table[param]; ok {
		return v, nil
	}

	e, ok := registry[param]
	if !ok {
		return nil, fmt.Errorf("%w: %q", common.ErrorNoTransform, param)
	}
	for _, req := range e.requires {
		if _, ok := table[req]; !ok {
			return nil, fmt.Errorf("%w: %q needs %q", common.ErrorNoTransform, param, req)
		}
	}
	return e.fn(table), nil
}

func init() {
	Register("mchirp", []string{"mass1", "mass2"}, func(t map[string][]float64) []float64 {
		m1, m2 := t["mass1"], t["mass2"]
		res := make([]float64, len(m1))
		for i := range m1 {
			res[i] = math.Pow(m1[i]*m2[i], 0.6) / math.Pow(m1[i]+m2[i], 0.2)
		}
		return res
	})

	Register("mtotal", []string{"mass1", "mass2"}, func(t map[string][]float64) []float64 {
		m1, m2 := t["mass1"], t["mass2"]
		res := make([]float64, len(m1))
		for i := range m1 {
			res[i] = m1[i] + m2[i]
		}
		return res
	})

	Register("q", []string{"mass1", "mass2"}, func(t map[string][]float64) []float64 {
		m1, m2 := t["mass1"], t["mass2"]
		res := make([]float64, len(m1))
		for i := range m1 {
			res[i] = math.Max(m1[i], m2[i]) / math.Min(m1[i], m2[i])
		}
		return res
	})

	Register("eta", []string{"mass1", "mass2"}, func(t map[string][]float64) []float64 {
		m1, m2 := t["mass1"], t["mass2"]
		res := make([]float64, len(m1))
		for i := range m1 {
			mt := m1[i] + m2[i]
			res[i] = m1[i] * m2[i] / (mt * mt)
		}
		return res
	})
}
