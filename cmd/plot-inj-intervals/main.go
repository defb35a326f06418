// plot-inj-intervals checks sampler calibration against a set of
// synthetic injections: for each parameter and each nominal credible
// interval size it counts how many injected true values the interval
// recovered, and plots the recovered fraction against the nominal size.
// A well calibrated sampler tracks the diagonal.
package main

import (
	"os"
	"strings"

	"github.com/gwinfer/postplot/cliopts"
	"github.com/gwinfer/postplot/credible"
	"github.com/gwinfer/postplot/plotting"
	"github.com/gwinfer/postplot/results"
	"github.com/gwinfer/postplot/transform"
	"github.com/gwinfer/postplot/utils"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const defaultInjectionGroup = "H1/injections"

func main() {
	if err := newCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func defaultQuantiles() []float64 {
	res := make([]float64, 0, 20)
	for i := 1; i <= 20; i++ {
		res = append(res, float64(i)*0.05)
	}
	return res
}

func newCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "plot-inj-intervals",
		Short:        "Plot the fraction of injections recovered per credible interval",
		SilenceUsage: true,
		RunE:         run,
	}

	cliopts.AddCommonFlags(cmd)
	cliopts.AddResultsFlags(cmd.Flags())
	cliopts.AddScatterFlags(cmd.Flags())

	fs := cmd.Flags()
	fs.Float64Slice("quantiles", defaultQuantiles(), "credible interval sizes to test, each in (0, 1]")
	fs.String("injection-hdf-group", defaultInjectionGroup, "group path of the injection table inside its source")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	v, err := cliopts.Bind(cmd)
	if err != nil {
		return err
	}
	utils.SetupLogger(v.GetBool("verbose"))

	ctx := cmd.Context()
	logger := utils.GetLogger(ctx)

	quantiles, err := cmd.Flags().GetFloat64Slice("quantiles")
	if err != nil {
		return err
	}
	counter, err := credible.NewContainmentCounter(quantiles)
	if err != nil {
		return err
	}

	opts := cliopts.ResultsOptions(v)
	loaded, err := results.Load(ctx, opts)
	if err != nil {
		return err
	}

	group := v.GetString("injection-hdf-group")
	labels := map[string]string{}

	for _, res := range loaded {
		injSet, err := results.LoadInjections(ctx, res.Path, group)
		if err != nil {
			return err
		}
		logger.Info("loaded injections", zap.String("result", res.Path),
			zap.Int("count", injSet.Count()))

		for i, param := range res.Params {
			if _, ok := labels[param]; !ok {
				labels[param] = res.Labels[i]
			}

			// true values absent from the table are derived; a missing
			// transform is fatal
			injected, err := transform.Derive(param, injSet.Values)
			if err != nil {
				return err
			}
			if err := counter.Add(ctx, param, res.Samples[param], injected); err != nil {
				return err
			}
		}
	}

	p, err := plotting.BuildPPPlot(ctx, counter, labels)
	if err != nil {
		return err
	}

	out := v.GetString("output-file")
	meta := plotting.Metadata{
		CommandLine: strings.Join(os.Args, " "),
		Title:       v.GetString("title"),
		Caption:     v.GetString("caption"),
	}
	if err := plotting.SavePlot(p, out, meta); err != nil {
		return err
	}

	logger.Info("wrote calibration figure", zap.String("path", out),
		zap.Int("params", len(counter.Params())))
	return nil
}
