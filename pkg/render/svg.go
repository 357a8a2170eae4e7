package render

import (
	"bytes"
	"fmt"
	"image"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/provide-io/iconforge/pkg/iconerr"
)

// svgDocument keeps the raw SVG bytes and re-parses them on every render.
// oksvg's SetTarget mutates the parsed icon, so sharing one parsed instance
// across renders would couple concurrent calls through hidden state. Icon
// sources are small; a parse per size is cheap and keeps Rasterize pure.
type svgDocument struct {
	data []byte
	w, h float64
}

// openSVG validates the SVG and captures its natural dimensions.
func openSVG(data []byte) (Document, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", iconerr.ErrInvalidSourceFormat, err)
	}

	w, h := icon.ViewBox.W, icon.ViewBox.H
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: SVG has no usable viewBox (%gx%g)", iconerr.ErrInvalidSourceFormat, w, h)
	}

	return &svgDocument{data: data, w: w, h: h}, nil
}

func (d *svgDocument) Size() (float64, float64) {
	return d.w, d.h
}

func (d *svgDocument) Rasterize(img *image.RGBA, ox, oy, sw, sh float64) error {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(d.data))
	if err != nil {
		return fmt.Errorf("failed to re-parse SVG source: %w", err)
	}

	icon.SetTarget(ox, oy, sw, sh)

	b := img.Bounds()
	scanner := rasterx.NewScannerGV(b.Dx(), b.Dy(), img, b)
	icon.Draw(rasterx.NewDasher(b.Dx(), b.Dy(), scanner), 1.0)
	return nil
}
