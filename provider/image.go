package provider

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"

	_ "image/gif"
	_ "image/jpeg"
)

// ProductImageContentType is the single content type every stored product
// image carries after normalization.
const ProductImageContentType = "image/png"

// NormalizeImage decodes any supported input format, redraws it onto an
// NRGBA canvas so transparency survives, and re-encodes it as PNG.
func NormalizeImage(r io.Reader) ([]byte, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, E(KindInvalidArgument, fmt.Sprintf("failed to decode image: %v", err))
	}

	bounds := img.Bounds()
	canvas := image.NewNRGBA(bounds)
	draw.Draw(canvas, bounds, img, bounds.Min, draw.Src)

	var buf bytes.Buffer
	if err := png.Encode(&buf, canvas); err != nil {
		return nil, &Error{Kind: KindInternal, Message: "failed to encode image", Err: err}
	}
	return buf.Bytes(), nil
}
