package render

import (
	"fmt"
	"image"

	"github.com/provide-io/iconforge/pkg/iconerr"
)

// Render rasterizes doc onto a fresh width×height canvas.
//
// The background is fully transparent (alpha 0 everywhere). The source is
// scaled uniformly by min(width/sourceW, height/sourceH) — aspect ratio is
// preserved, never stretched — and centered on the canvas. Pixels are 4-byte
// (R,G,B,A) tuples, row-major, top-down.
//
// Safe to call repeatedly and concurrently for different sizes against the
// same document.
func Render(doc Document, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: invalid raster size %dx%d", iconerr.ErrRenderFailure, width, height)
	}

	sw, sh := doc.Size()

	scale := float64(width) / sw
	if s := float64(height) / sh; s < scale {
		scale = s
	}

	scaledW := sw * scale
	scaledH := sh * scale
	offsetX := (float64(width) - scaledW) / 2
	offsetY := (float64(height) - scaledH) / 2

	// NewRGBA zeroes the pixel buffer: the transparent fill is implicit.
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	if err := doc.Rasterize(img, offsetX, offsetY, scaledW, scaledH); err != nil {
		return nil, fmt.Errorf("%w at %dx%d: %v", iconerr.ErrRenderFailure, width, height, err)
	}

	return img, nil
}
