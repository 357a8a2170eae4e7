package assets

import "fmt"

// SizeVariant is one target raster of an asset definition. It is exactly
// one of two kinds: a scale variant (explicit width/height tied to a
// display-scale percentage) or a target-size variant (a single edge length,
// always square, no scale). The constructors below are the only way the
// catalog builds variants, which keeps the two kinds from mixing.
type SizeVariant struct {
	Width  uint
	Height uint

	// ScalePercent is 100/125/150/200/400 for scale variants, 0 otherwise.
	ScalePercent uint

	// TargetSize is the edge length for target-size variants, 0 otherwise.
	TargetSize uint
}

// ScaleVariant builds a variant tied to a display-scale percentage.
func ScaleVariant(width, height, scalePercent uint) SizeVariant {
	return SizeVariant{Width: width, Height: height, ScalePercent: scalePercent}
}

// TargetSizeVariant builds a square variant identified by one edge length.
// Target-size variants are only meaningful for square icon frames.
func TargetSizeVariant(size uint) SizeVariant {
	return SizeVariant{Width: size, Height: size, TargetSize: size}
}

// IsTargetSize reports whether the variant is a target-size variant.
func (v SizeVariant) IsTargetSize() bool {
	return v.TargetSize != 0
}

// Token returns the file-name token for the variant: "scale-N" or
// "targetsize-N".
func (v SizeVariant) Token() string {
	if v.IsTargetSize() {
		return fmt.Sprintf("targetsize-%d", v.TargetSize)
	}
	return fmt.Sprintf("scale-%d", v.ScalePercent)
}
