package iconerr

import "errors"

var (
	// Source errors 🖼️
	ErrSourceNotFound      = errors.New("❌ source image not found")
	ErrInvalidSourceFormat = errors.New("❌ unrecognized source image format")

	// Pipeline errors 🎨
	ErrRenderFailure = errors.New("❌ rasterization failed")
	ErrEncodeFailure = errors.New("❌ icon frame encoding failed")

	// Output errors 💾
	ErrOutputWriteFailure = errors.New("❌ output write failed")

	// Request errors 🏷️
	ErrInvalidRequirementLevel = errors.New("❌ unrecognized requirement level")
)
