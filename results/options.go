// Package results is the loading facility for posterior result files and
// their companion injection sources. Files are plain JSON documents; a
// handle is held only long enough to decode the arrays the caller asked
// for and is closed before any plotting starts.
package results

import "strings"

// Options is the shared "results group" of CLI flags: which files to
// read, which parameters to extract, how to thin the chains, and which
// likelihood statistic to pull for z-coloring.
type Options struct {
	InputFiles []string
	// Parameters are "name" or "name:LABEL" specs. An empty list selects
	// every parameter stored in each file.
	Parameters []string

	ThinStart    int
	ThinInterval int
	ThinEnd      int
	// Iteration selects a single sample index instead of a thinning
	// window; negative means unset.
	Iteration int

	// ZArg names the likelihood statistic used to color scatter points;
	// empty means no z values are read.
	ZArg string
}

func DefaultOptions() Options {
	return Options{
		ThinInterval: 1,
		ThinEnd:      -1,
		Iteration:    -1,
	}
}

// parseParamSpec splits "name:LABEL" into its parts; the label falls
// back to a registered display label, then to the bare name.
func parseParamSpec(spec string, stored map[string]string) (name, label string) {
	name = spec
	if i := strings.Index(spec, ":"); i >= 0 {
		name, label = spec[:i], spec[i+1:]
	}
	if label == "" {
		if l, ok := stored[name]; ok {
			label = l
		} else if l, ok := defaultLabels[name]; ok {
			label = l
		} else {
			label = name
		}
	}
	return name, label
}

var defaultLabels = map[string]string{
	"mass1":    "m₁ (M☉)",
	"mass2":    "m₂ (M☉)",
	"mchirp":   "M_c (M☉)",
	"mtotal":   "M (M☉)",
	"q":        "q",
	"eta":      "η",
	"distance": "d_L (Mpc)",
	"tc":       "t_c (s)",
	"ra":       "α",
	"dec":      "δ",
	"loglr":    "log ℒ/ℒ₀",
}
