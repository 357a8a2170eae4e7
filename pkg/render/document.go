// Package render turns an opened source document into transparent RGBA
// rasters at exact pixel sizes, centering and uniformly scaling the source.
package render

import (
	"bytes"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/provide-io/iconforge/pkg/iconerr"
)

// Document is an opened icon source ready to be rasterized.
//
// Implementations must be pure with respect to render state: Rasterize is a
// function of (document, placement) only, with no mutable fields shared
// between calls, so different sizes may be rendered concurrently from the
// same document.
type Document interface {
	// Size returns the source's natural dimensions in its own units.
	Size() (w, h float64)

	// Rasterize draws the source into img scaled to sw×sh pixels with its
	// top-left corner at (ox, oy).
	Rasterize(img *image.RGBA, ox, oy, sw, sh float64) error
}

// Open reads a source image file and returns a Document for it.
// SVG sources are selected by extension or by content sniffing; anything
// else is handed to the raster decoders.
func Open(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", iconerr.ErrSourceNotFound, path)
		}
		return nil, fmt.Errorf("failed to read source %s: %w", path, err)
	}

	if isVector(path, data) {
		return openSVG(data)
	}
	return openRaster(data)
}

// isVector decides whether the source should go through the SVG parser.
func isVector(path string, data []byte) bool {
	if strings.EqualFold(filepath.Ext(path), ".svg") {
		return true
	}
	head := bytes.TrimLeft(data, " \t\r\n\xef\xbb\xbf")
	return bytes.HasPrefix(head, []byte("<"))
}
