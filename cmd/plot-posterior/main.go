// plot-posterior draws posterior probability distributions from one or
// more inference result files: marginal histograms on the diagonal of a
// corner grid, with pairwise scatter clouds and density maps below it.
// Multiple input files overlay onto the same axes.
package main

import (
	"image/color"
	"os"
	"strings"

	"github.com/gwinfer/postplot/cliopts"
	"github.com/gwinfer/postplot/plotting"
	"github.com/gwinfer/postplot/results"
	"github.com/gwinfer/postplot/utils"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	if err := newCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "plot-posterior",
		Short:         "Plot posterior distributions from inference result files",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          run,
	}

	cliopts.AddCommonFlags(cmd)
	cliopts.AddResultsFlags(cmd.Flags())
	cliopts.AddScatterFlags(cmd.Flags())

	fs := cmd.Flags()
	fs.Bool("plot-marginal", false, "draw 1D marginal distributions on the diagonal")
	fs.Bool("plot-scatter", false, "draw pairwise sample scatter plots")
	fs.Bool("plot-density", false, "draw pairwise binned density maps")
	fs.Float64Slice("marginal-percentiles", nil, "dashed markers at these percentiles on the marginals")
	fs.Bool("kde", false, "smooth the marginals with a kernel density estimate")
	fs.Float64Slice("contour-percentiles", nil, "probability masses enclosed by density contours")
	fs.String("contour-color", "", "fixed contour color instead of the per-file cycle")
	fs.String("density-cmap", "", "color map for the density heat map")
	fs.StringSlice("mins", nil, `lower plotting bound override, "param:value"`)
	fs.StringSlice("maxs", nil, `upper plotting bound override, "param:value"`)

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

	opts := cliopts.ResultsOptions(v)
	loaded, err := results.Load(ctx, opts)
	if err != nil {
		return err
	}

	// Per-file parameter lists are uniform, so the first file names the
	// figure axes.
	first := loaded[0]
	params, labels := first.Params, first.Labels

	marginalPcts, err := cmd.Flags().GetFloat64Slice("marginal-percentiles")
	if err != nil {
		return err
	}
	contourPcts, err := cmd.Flags().GetFloat64Slice("contour-percentiles")
	if err != nil {
		return err
	}

	m, s, d := plotting.ResolveTypes(v.GetBool("plot-marginal"),
		v.GetBool("plot-scatter"), v.GetBool("plot-density"), len(params))
	style := plotting.Style{
		Marginal:            m,
		Scatter:             s,
		Density:             d,
		KDE:                 v.GetBool("kde"),
		MarginalPercentiles: marginalPcts,
		ContourPercentiles:  contourPcts,
		ContourColor:        v.GetString("contour-color"),
		DensityCmap:         v.GetString("density-cmap"),
		ScatterCmap:         v.GetString("scatter-cmap"),
		VMin:                cliopts.FloatPtr(cmd, v, "vmin"),
		VMax:                cliopts.FloatPtr(cmd, v, "vmax"),
	}

	mins, err := cliopts.ParseBounds(v.GetStringSlice("mins"))
	if err != nil {
		return err
	}
	maxs, err := cliopts.ParseBounds(v.GetStringSlice("maxs"))
	if err != nil {
		return err
	}
	ranges, err := plotting.ResolveRanges(params, mins, maxs, loaded)
	if err != nil {
		return err
	}

	var fixedContour color.Color
	if name := style.ContourColor; name != "" {
		if fixedContour, err = plotting.NamedColor(name); err != nil {
			return err
		}
	}

	fig, err := plotting.NewFigure(params, labels, ranges, style, len(loaded), fixedContour)
	if err != nil {
		return err
	}
	for _, res := range loaded {
		if err := fig.AddResult(ctx, res); err != nil {
			return err
		}
	}

	if fileLabels := v.GetStringSlice("input-file-labels"); len(fileLabels) > 0 && len(loaded) > 1 {
		fig.SetFileLabels(fileLabels)
	}

	out := v.GetString("output-file")
	meta := plotting.Metadata{
		CommandLine: strings.Join(os.Args, " "),
		Title:       v.GetString("title"),
		Caption:     v.GetString("caption"),
	}
	if err := plotting.SaveFigure(fig, out, meta); err != nil {
		return err
	}

	logger.Info("wrote posterior figure", zap.String("path", out),
		zap.Int("files", len(loaded)), zap.Strings("params", params))
	return nil
}
