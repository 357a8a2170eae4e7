package render

import (
	"bytes"
	"fmt"
	"image"
	"math"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/nfnt/resize"
	"golang.org/x/image/draw"

	"github.com/provide-io/iconforge/pkg/iconerr"
)

// rasterDocument wraps an already-decoded bitmap source. The decoded image
// is never written to after Open, so renders can run concurrently.
type rasterDocument struct {
	img image.Image
}

func openRaster(data []byte) (Document, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", iconerr.ErrInvalidSourceFormat, err)
	}

	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, fmt.Errorf("%w: %s source has empty bounds", iconerr.ErrInvalidSourceFormat, format)
	}

	return &rasterDocument{img: img}, nil
}

func (d *rasterDocument) Size() (float64, float64) {
	b := d.img.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

func (d *rasterDocument) Rasterize(img *image.RGBA, ox, oy, sw, sh float64) error {
	tw := int(math.Round(sw))
	th := int(math.Round(sh))
	if tw <= 0 || th <= 0 {
		return fmt.Errorf("target size %gx%g is too small", sw, sh)
	}

	scaled := resize.Resize(uint(tw), uint(th), d.img, resize.Lanczos3)

	x := int(math.Round(ox))
	y := int(math.Round(oy))
	rect := image.Rect(x, y, x+tw, y+th)
	draw.Draw(img, rect, scaled, image.Point{}, draw.Over)
	return nil
}
