// Package cliopts defines the flag groups shared between the plotting
// commands and turns parsed flags into loader and style options. Flags
// are bound through viper so an optional YAML config file can supply
// defaults without overriding anything given on the command line.
package cliopts

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gwinfer/postplot/common"
	"github.com/gwinfer/postplot/results"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// AddCommonFlags registers the flags both commands carry.
func AddCommonFlags(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.String("output-file", "", "path of the image to write (required, .png)")
	fs.Bool("verbose", false, "enable informational logging")
	fs.String("config", "", "optional YAML file of flag defaults")
	fs.String("title", "", "figure title stored in the image metadata")
	fs.String("caption", "", "figure caption stored in the image metadata")
	cobra.CheckErr(cmd.MarkFlagRequired("output-file"))
}

// AddResultsFlags registers the shared results group: input selection,
// parameter specs, thinning and the z statistic.
func AddResultsFlags(fs *pflag.FlagSet) {
	fs.StringSlice("input-file", nil, "posterior result file to load (repeatable)")
	fs.StringSlice("parameters", nil, `parameter to plot, "name" or "name:LABEL"`)
	fs.StringSlice("input-file-labels", nil, "legend label per input file")
	fs.Int("thin-start", 0, "first sample index to keep")
	fs.Int("thin-interval", 1, "keep every n-th sample")
	fs.Int("thin-end", -1, "sample index to stop at (exclusive, -1 for end)")
	fs.Int("iteration", -1, "plot a single iteration instead of a thinned window")
	fs.String("z-arg", "", "likelihood statistic used to color scatter points")
}

// AddScatterFlags registers the scatter/density styling group shared by
// both commands.
func AddScatterFlags(fs *pflag.FlagSet) {
	fs.String("scatter-cmap", "kindlmann", "color map for z-colored scatter points")
	fs.Float64("vmin", 0, "lower bound of the z color scale")
	fs.Float64("vmax", 0, "upper bound of the z color scale")
}

// Bind wires the command's flags into a fresh viper instance and merges
// the optional config file underneath them.
func Bind(cmd *cobra.Command) (*viper.Viper, error) {
	v := viper.New()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, err
	}
	if cfg := v.GetString("config"); cfg != "" {
		v.SetConfigFile(cfg)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}
	return v, nil
}

// ResultsOptions extracts the results group into loader options.
func ResultsOptions(v *viper.Viper) results.Options {
	opts := results.DefaultOptions()
	opts.InputFiles = v.GetStringSlice("input-file")
	opts.Parameters = v.GetStringSlice("parameters")
	opts.ThinStart = v.GetInt("thin-start")
	opts.ThinInterval = v.GetInt("thin-interval")
	opts.ThinEnd = v.GetInt("thin-end")
	opts.Iteration = v.GetInt("iteration")
	opts.ZArg = v.GetString("z-arg")
	return opts
}

// ParseBounds parses repeatable "param:value" bound overrides.
func ParseBounds(specs []string) (map[string]float64, error) {
	if len(specs) == 0 {
		return nil, nil
	}
	res := make(map[string]float64, len(specs))
	for _, spec := range specs {
		i := strings.LastIndex(spec, ":")
		if i <= 0 || i == len(spec)-1 {
			return nil, fmt.Errorf("%w: bound %q, want param:value", common.ErrorInvalidValue, spec)
		}
		val, err := strconv.ParseFloat(spec[i+1:], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: bound %q: %v", common.ErrorInvalidValue, spec, err)
		}
		res[spec[:i]] = val
	}
	return res, nil
}

// FloatPtr turns a flag that was actually set into a pointer, nil
// otherwise, so unset bounds fall back to the data range.
func FloatPtr(cmd *cobra.Command, v *viper.Viper, name string) *float64 {
	if !cmd.Flags().Changed(name) && !v.InConfig(name) {
		return nil
	}
	val := v.GetFloat64(name)
	return &val
}
