package ico

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/provide-io/iconforge/pkg/iconerr"
)

// PNGThreshold is the edge length at and above which frames are stored as
// PNG payloads instead of the legacy masked bitmap sub-format.
const PNGThreshold = 256

// NewFrame encodes a rendered raster as one container frame, selecting the
// sub-format by size: 256px and larger frames are PNG-encoded, smaller
// frames go through the masked bitmap codec.
func NewFrame(img *image.RGBA) (Frame, error) {
	b := img.Bounds()
	if b.Dx() != b.Dy() {
		return Frame{}, fmt.Errorf("%w: icon frames must be square, got %dx%d", iconerr.ErrEncodeFailure, b.Dx(), b.Dy())
	}
	size := b.Dx()

	if size >= PNGThreshold {
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			return Frame{}, fmt.Errorf("%w: PNG encode of %dpx frame: %v", iconerr.ErrEncodeFailure, size, err)
		}
		return Frame{Size: uint(size), Data: buf.Bytes()}, nil
	}

	return Frame{Size: uint(size), Data: EncodeMasked(img)}, nil
}
