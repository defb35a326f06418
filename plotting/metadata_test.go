package plotting

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodeTestPNG(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestEmbedTextRoundTrip(t *testing.T) {
	raw := encodeTestPNG(t)

	entries := map[string]string{
		"cmd":     "plot-posterior --input-file run.json",
		"title":   "posterior",
		"caption": "a test figure",
	}
	withMeta, err := EmbedText(raw, entries)
	require.NoError(t, err)

	// still decodable as a PNG
	_, err = png.Decode(bytes.NewReader(withMeta))
	require.NoError(t, err)

	got, err := ReadText(withMeta)
	require.NoError(t, err)
	assert.Equal(t, entries, got)
}

func TestEmbedTextSkipsEmptyEntries(t *testing.T) {
	raw := encodeTestPNG(t)

	withMeta, err := EmbedText(raw, map[string]string{"cmd": "x", "title": ""})
	require.NoError(t, err)

	got, err := ReadText(withMeta)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"cmd": "x"}, got)
}

func TestEmbedTextRejectsNonPNG(t *testing.T) {
	_, err := EmbedText([]byte("not a png"), map[string]string{"cmd": "x"})
	assert.Error(t, err)
}
