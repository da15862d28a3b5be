package ioutils

import (
	"bytes"
	"image"
	"image/jpeg"
	_ "image/png" // PNG decoder registration

	"golang.org/x/image/draw"
)

// ShrinkToJPEG re-encodes an image as JPEG, scaling it down to fit
// within maxSize pixels on its longest side.
//
// Cover sources hand out covers in whatever format and resolution
// they like; this normalizes them for the web frontend. The aspect
// ratio is preserved and images already within bounds are only
// re-encoded, never upscaled.
//
// Returns the JPEG bytes, or an error when the input cannot be
// decoded; callers fall back to the original bytes in that case.
func ShrinkToJPEG(data []byte, maxSize int) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	if maxSize > 0 && (width > maxSize || height > maxSize) {
		if width >= height {
			height = height * maxSize / width
			width = maxSize
		} else {
			width = width * maxSize / height
			height = maxSize
		}

		dst := image.NewRGBA(image.Rect(0, 0, width, height))
		// Catmull-Rom keeps cover art crisp at thumbnail sizes.
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
