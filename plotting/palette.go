package plotting

import (
	"fmt"
	"image/color"

	"github.com/gwinfer/postplot/common"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
)

// cycle is the fixed 11-color contour palette: black plus the ten
// numbered colors, in cycle order.
var cycle = []color.Color{
	color.RGBA{0x00, 0x00, 0x00, 0xff}, // black
	color.RGBA{0x1f, 0x77, 0xb4, 0xff}, // C0
	color.RGBA{0xff, 0x7f, 0x0e, 0xff}, // C1
	color.RGBA{0x2c, 0xa0, 0x2c, 0xff}, // C2
	color.RGBA{0xd6, 0x27, 0x28, 0xff}, // C3
	color.RGBA{0x94, 0x67, 0xbd, 0xff}, // C4
	color.RGBA{0x8c, 0x56, 0x4b, 0xff}, // C5
	color.RGBA{0xe3, 0x77, 0xc2, 0xff}, // C6
	color.RGBA{0x7f, 0x7f, 0x7f, 0xff}, // C7
	color.RGBA{0xbc, 0xbd, 0x22, 0xff}, // C8
	color.RGBA{0x17, 0xbe, 0xcf, 0xff}, // C9
}

var (
	colorBlack = color.RGBA{0x00, 0x00, 0x00, 0xff}
	colorGray  = color.RGBA{0x80, 0x80, 0x80, 0xff}
	colorNavy  = color.RGBA{0x00, 0x00, 0x80, 0xff}
)

// CycleColor returns the i-th color of the contour cycle, wrapping.
func CycleColor(i int) color.Color {
	return cycle[i%len(cycle)]
}

// NamedColor resolves the small set of color names accepted on the
// command line for fixed contour colors.
func NamedColor(name string) (color.Color, error) {
	switch name {
	case "black":
		return colorBlack, nil
	case "gray", "grey":
		return colorGray, nil
	case "navy":
		return colorNavy, nil
	case "white":
		return color.RGBA{0xff, 0xff, 0xff, 0xff}, nil
	case "red":
		return color.RGBA{0xd6, 0x27, 0x28, 0xff}, nil
	case "blue":
		return color.RGBA{0x1f, 0x77, 0xb4, 0xff}, nil
	case "green":
		return color.RGBA{0x2c, 0xa0, 0x2c, 0xff}, nil
	case "orange":
		return color.RGBA{0xff, 0x7f, 0x0e, 0xff}, nil
	}
	return nil, fmt.Errorf("%w: color %q", common.ErrorInvalidValue, name)
}

// ColorMap returns the named continuous color map scaled to [min, max].
func ColorMap(name string, min, max float64) (palette.ColorMap, error) {
	var cm palette.ColorMap
	switch name {
	case "", "kindlmann":
		cm = moreland.Kindlmann()
	case "extended_kindlmann":
		cm = moreland.ExtendedKindlmann()
	case "black_body":
		cm = moreland.BlackBody()
	default:
		return nil, fmt.Errorf("%w: %q", common.ErrorUnknownColorMap, name)
	}
	if min == max {
		// degenerate scale, widen so At never faults
		max = min + 1
	}
	cm.SetMin(min)
	cm.SetMax(max)
	return cm, nil
}

// atClamped samples a color map with out-of-range values pinned to the
// scale ends, so vmin/vmax overrides narrower than the data still work.
func atClamped(cm palette.ColorMap, v float64) color.Color {
	if v < cm.Min() {
		v = cm.Min()
	}
	if v > cm.Max() {
		v = cm.Max()
	}
	c, err := cm.At(v)
	if err != nil {
		return colorGray
	}
	return c
}

// singlePalette renders every contour level in one fixed color.
type singlePalette struct {
	c color.Color
	n int
}

func (p singlePalette) Colors() []color.Color {
	cols := make([]color.Color, p.n)
	for i := range cols {
		cols[i] = p.c
	}
	return cols
}
