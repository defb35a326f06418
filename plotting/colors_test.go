package plotting

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorsSingleFile(t *testing.T) {
	// a lone input file is gray-filled with black outline and navy
	// lines regardless of the cycle
	c := ColorsForFile(0, 1, nil)
	assert.Equal(t, colorGray, c.HistFill)
	assert.Equal(t, colorBlack, c.HistLine)
	assert.Equal(t, colorNavy, c.Line)
}

func TestColorsMultipleFilesCycle(t *testing.T) {
	c0 := ColorsForFile(0, 3, nil)
	c1 := ColorsForFile(1, 3, nil)

	assert.Nil(t, c0.HistFill)
	assert.Nil(t, c1.HistFill)
	assert.Equal(t, CycleColor(0), c0.Contour)
	assert.Equal(t, CycleColor(1), c1.Contour)
	assert.NotEqual(t, c0.Contour, c1.Contour)
}

func TestColorsFixedContour(t *testing.T) {
	navy, err := NamedColor("navy")
	assert.NoError(t, err)

	c := ColorsForFile(2, 3, navy)
	assert.Equal(t, navy, c.Contour)
	assert.Equal(t, navy, c.HistLine)
}

func TestCycleWraps(t *testing.T) {
	assert.Equal(t, CycleColor(0), CycleColor(11))
	assert.Equal(t, CycleColor(3), CycleColor(14))
}

func TestNamedColorUnknown(t *testing.T) {
	_, err := NamedColor("chartreuse")
	assert.Error(t, err)
}
