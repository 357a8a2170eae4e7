package ico

import (
	"encoding/binary"
	"image"
)

// Legacy bitmap sub-format constants - part of the container specification
const (
	// InfoHeaderSize is the size of the BITMAPINFOHEADER block
	InfoHeaderSize = 40

	// MaskedBitsPerPixel is the color depth of the XOR plane
	MaskedBitsPerPixel = 32

	// TransparentAlphaCutoff marks a pixel transparent in the AND mask
	TransparentAlphaCutoff = 128
)

// MaskStride returns the byte length of one AND-mask row: 1 bit per pixel,
// rows padded to a 4-byte boundary.
func MaskStride(width int) int {
	return ((width + 31) / 32) * 4
}

// EncodeMasked converts an RGBA raster into the legacy masked bitmap
// sub-format used by small icon frames: a 40-byte info header, a 32-bit
// color plane (XOR mask) and a 1-bit transparency plane (AND mask).
//
// Both planes are stored bottom-up, as legacy readers expect. The color
// plane uses DIB pixel order (B,G,R,A); the AND mask sets a pixel's bit
// when its alpha is below the transparency cutoff, MSB-first within each
// byte. The header's height field is doubled to signal the trailing AND
// mask to legacy readers.
func EncodeMasked(img *image.RGBA) []byte {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	xorSize := w * h * 4
	andStride := MaskStride(w)
	andSize := andStride * h

	out := make([]byte, InfoHeaderSize+xorSize+andSize)
	packInfoHeader(out[:InfoHeaderSize], w, h, xorSize+andSize)

	// XOR mask: full-color plane, bottom-up rows, DIB (BGRA) pixel order.
	xor := out[InfoHeaderSize : InfoHeaderSize+xorSize]
	for y := 0; y < h; y++ {
		src := img.Pix[img.PixOffset(b.Min.X, b.Min.Y+y):]
		dst := xor[(h-1-y)*w*4:]
		for x := 0; x < w; x++ {
			s := src[x*4 : x*4+4 : x*4+4]
			d := dst[x*4 : x*4+4]
			d[0] = s[2] // B
			d[1] = s[1] // G
			d[2] = s[0] // R
			d[3] = s[3] // A
		}
	}

	// AND mask: matching bottom-up row order, 1=transparent, MSB-first.
	and := out[InfoHeaderSize+xorSize:]
	for y := 0; y < h; y++ {
		row := and[(h-1-y)*andStride:]
		for x := 0; x < w; x++ {
			alpha := img.Pix[img.PixOffset(b.Min.X+x, b.Min.Y+y)+3]
			if alpha < TransparentAlphaCutoff {
				row[x/8] |= 0x80 >> (x % 8)
			}
		}
	}

	return out
}

// packInfoHeader serializes the 40-byte BITMAPINFOHEADER. The height is
// doubled because the payload carries both the XOR and AND planes.
func packInfoHeader(buf []byte, w, h, imageSize int) {
	binary.LittleEndian.PutUint32(buf[0:4], InfoHeaderSize)
	binary.LittleEndian.PutUint32(buf[4:8], uint32(w))
	binary.LittleEndian.PutUint32(buf[8:12], uint32(h*2))
	binary.LittleEndian.PutUint16(buf[12:14], 1) // planes
	binary.LittleEndian.PutUint16(buf[14:16], MaskedBitsPerPixel)
	binary.LittleEndian.PutUint32(buf[16:20], 0) // BI_RGB, uncompressed
	binary.LittleEndian.PutUint32(buf[20:24], uint32(imageSize))
	// Remaining fields (resolution, palette counts) stay zero.
}
