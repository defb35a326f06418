package plotting

import "image/color"

// FileColors is the color assignment for one input file's layers.
type FileColors struct {
	// Contour colors the density contours and scatter fallback.
	Contour color.Color
	// HistFill is nil when the histogram should be unfilled.
	HistFill color.Color
	HistLine color.Color
	// Line colors KDE curves and percentile markers.
	Line color.Color
}

// ColorsForFile implements the per-file color rules: a lone input file
// gets the solid gray fill with black outline and navy lines regardless
// of cycling state; multiple files cycle through the contour palette
// and draw unfilled histograms. A fixed contour color, when given,
// replaces the cycled color.
func ColorsForFile(idx, totalFiles int, fixedContour color.Color) FileColors {
	if totalFiles == 1 {
		contour := fixedContour
		if contour == nil {
			contour = CycleColor(0)
		}
		return FileColors{
			Contour:  contour,
			HistFill: colorGray,
			HistLine: colorBlack,
			Line:     colorNavy,
		}
	}

	c := fixedContour
	if c == nil {
		c = CycleColor(idx)
	}
	return FileColors{
		Contour:  c,
		HistFill: nil,
		HistLine: c,
		Line:     c,
	}
}
