package results

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/gwinfer/postplot/common"
	"github.com/gwinfer/postplot/model"
	"github.com/gwinfer/postplot/transform"
	"github.com/gwinfer/postplot/utils"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// resultDoc is the on-disk schema of one posterior result file.
type resultDoc struct {
	Posterior       map[string][]float64 `json:"posterior"`
	LikelihoodStats map[string][]float64 `json:"likelihood_stats"`
	Labels          map[string]string    `json:"labels"`
	InjectionFile   string               `json:"injection_file"`
	Injections      json.RawMessage      `json:"injections"`
}

// Load reads every input file and returns one Result per file, in input
// order. Each file handle is closed as soon as its arrays have been
// extracted, whether or not z values were requested.
func Load(ctx context.Context, opts Options) ([]*model.Result, error) {
	logger := utils.GetLogger(ctx)

	if len(opts.InputFiles) == 0 {
		return nil, fmt.Errorf("%w: no input files", common.ErrorInvalidValue)
	}

	res := make([]*model.Result, 0, len(opts.InputFiles))
	for _, path := range opts.InputFiles {
		r, err := loadOne(ctx, path, opts)
		if err != nil {
			return nil, err
		}
		logger.Info("loaded result file", zap.String("path", path),
			zap.Int("samples", r.SampleCount()), zap.Strings("params", r.Params))
		res = append(res, r)
	}
	return res, nil
}

func loadOne(ctx context.Context, path string, opts Options) (res *model.Result, err error) {
	doc, err := readDoc(path)
	if err != nil {
		return nil, err
	}

	// The same flat parameter spec list applies to every input file, so
	// per-file iteration downstream is uniform.
	specs := opts.Parameters
	if len(specs) == 0 {
		specs = storedParams(doc)
	}

	res = &model.Result{
		Path:    path,
		Samples: map[string][]float64{},
	}
	for _, spec := range specs {
		name, label := parseParamSpec(spec, doc.Labels)
		values, derr := transform.Derive(name, doc.Posterior)
		if derr != nil {
			return nil, fmt.Errorf("loading %v: %w", path, derr)
		}
		res.Params = append(res.Params, name)
		res.Labels = append(res.Labels, label)
		res.Samples[name] = thin(values, opts)
	}

	if opts.ZArg != "" {
		z, ok := doc.LikelihoodStats[opts.ZArg]
		if !ok {
			return nil, fmt.Errorf("%w: likelihood stat %q in %v",
				common.ErrorNoSamples, opts.ZArg, path)
		}
		res.ZValues = thin(z, opts)
	}

	if err := res.Validate(); err != nil {
		return nil, err
	}
	return res, nil
}

// readDoc opens, decodes and closes one result file. The handle never
// outlives the read phase.
func readDoc(path string) (doc *resultDoc, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		err = multierr.Append(err, f.Close())
	}()

	doc = &resultDoc{}
	if derr := json.NewDecoder(f).Decode(doc); derr != nil {
		return nil, fmt.Errorf("decoding %v: %w", path, derr)
	}
	return doc, nil
}

func storedParams(doc *resultDoc) []string {
	params := make([]string, 0, len(doc.Posterior))
	for p := range doc.Posterior {
		params = append(params, p)
	}
	sort.Strings(params)
	return params
}

// thin applies the iteration selection or the [start:end:interval]
// thinning window to one sample array.
func thin(values []float64, opts Options) []float64 {
	if opts.Iteration >= 0 {
		if opts.Iteration >= len(values) {
			return nil
		}
		return []float64{values[opts.Iteration]}
	}

	start, end, step := opts.ThinStart, opts.ThinEnd, opts.ThinInterval
	if step <= 0 {
		step = 1
	}
	if start < 0 {
		start = 0
	}
	if end < 0 || end > len(values) {
		end = len(values)
	}

	res := make([]float64, 0, (end-start+step-1)/step)
	for i := start; i < end; i += step {
		res = append(res, values[i])
	}
	return res
}
