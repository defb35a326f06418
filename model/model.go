package model

import (
	"fmt"

	"github.com/gwinfer/postplot/common"
)

// Result holds everything extracted from one input file: the parameters
// selected for plotting, their display labels, the posterior samples and
// the optional per-sample z statistic. All slices in Samples share one
// length; ZValues, when present, is aligned index-for-index with them.
type Result struct {
	Path    string
	Params  []string
	Labels  []string
	Samples map[string][]float64
	ZValues []float64
}

func (r *Result) DebugString() string {
	return fmt.Sprintf("path: %v, params: %v, sampleCount: %v", r.Path, r.Params, r.SampleCount())
}

func (r *Result) SampleCount() int {
	for _, s := range r.Samples {
		return len(s)
	}
	return 0
}

// Validate checks that every selected parameter is present and that all
// sample arrays (and the z array, if any) share one length.
func (r *Result) Validate() error {
	n := -1
	for _, p := range r.Params {
		s, ok := r.Samples[p]
		if !ok || len(s) == 0 {
			return fmt.Errorf("%w: %q in %v", common.ErrorNoSamples, p, r.Path)
		}
		if n < 0 {
			n = len(s)
		} else if len(s) != n {
			return fmt.Errorf("%w: %q in %v", common.ErrorUnevenSamples, p, r.Path)
		}
	}
	if len(r.ZValues) > 0 && n >= 0 && len(r.ZValues) != n {
		return fmt.Errorf("%w: z values in %v", common.ErrorUnevenSamples, r.Path)
	}
	return nil
}

// Range is a closed [Min, Max] plotting bound for one parameter.
type Range struct {
	Min float64
	Max float64
}

// RangeMap maps parameter name to its resolved plotting bounds.
type RangeMap map[string]Range

// InjectionSet is the table of true injected values for one input file,
// keyed by parameter name, one entry per injection event.
type InjectionSet struct {
	Values map[string][]float64
}

func NewInjectionSet() *InjectionSet {
	return &InjectionSet{Values: map[string][]float64{}}
}

func (s *InjectionSet) Count() int {
	for _, v := range s.Values {
		return len(v)
	}
	return 0
}

func (s *InjectionSet) IsEmpty() bool {
	return s == nil || len(s.Values) == 0
}
