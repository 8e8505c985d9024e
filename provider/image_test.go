package provider

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeImageConvertsJPEGToPNG(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			src.Set(x, y, color.RGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, src, nil))

	data, err := NormalizeImage(&buf)
	require.NoError(t, err)

	_, format, err := image.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, "png", format)
}

func TestNormalizeImagePreservesTransparency(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	src.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 128})
	src.SetNRGBA(1, 1, color.NRGBA{B: 255, A: 0})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, src))

	data, err := NormalizeImage(&buf)
	require.NoError(t, err)

	decoded, _, err := image.Decode(bytes.NewReader(data))
	require.NoError(t, err)

	nrgba, ok := decoded.(*image.NRGBA)
	require.True(t, ok)
	assert.Equal(t, uint8(128), nrgba.NRGBAAt(0, 0).A)
	assert.Equal(t, uint8(0), nrgba.NRGBAAt(1, 1).A)
}

func TestNormalizeImageRejectsGarbage(t *testing.T) {
	_, err := NormalizeImage(strings.NewReader("definitely not an image"))
	require.Error(t, err)
	assert.Equal(t, KindInvalidArgument, KindOf(err))
}
