// Package generate runs the two top-level pipelines: icon container
// generation and asset family generation.
package generate

import (
	"errors"
	"fmt"
	"image"

	"github.com/hashicorp/go-hclog"

	"github.com/provide-io/iconforge/pkg/assets"
	"github.com/provide-io/iconforge/pkg/ico"
	"github.com/provide-io/iconforge/pkg/render"
)

// Icon renders the requested frame sizes from doc and writes a single icon
// container to outputPath. fullSizeSet selects the extended frame list over
// the minimal one. A failed render or encode for any size aborts the
// pipeline; no partial container is left on disk.
func Icon(doc render.Document, outputPath string, fullSizeSet bool, logger hclog.Logger) error {
	sizes := assets.IconSizes(fullSizeSet)
	logger.Info("📦 Generating icon container",
		"output", outputPath,
		"frames", len(sizes))

	frames := make([]ico.Frame, 0, len(sizes))
	for _, size := range sizes {
		img, err := render.Render(doc, int(size), int(size))
		if err != nil {
			return fmt.Errorf("icon frame %dpx: %w", size, err)
		}

		frame, err := ico.NewFrame(img)
		if err != nil {
			return fmt.Errorf("icon frame %dpx: %w", size, err)
		}

		logger.Debug("🖌️  Encoded frame", "size", size, "bytes", len(frame.Data))
		frames = append(frames, frame)
	}

	if err := ico.WriteFile(outputPath, frames, logger); err != nil {
		return err
	}

	logger.Info("✅ Icon container written", "output", outputPath, "frames", len(frames))
	return nil
}

// Assets renders and writes the asset family for the requested requirement
// level and returns the written paths.
func Assets(doc render.Document, outputDir string, level assets.RequirementLevel, useScaleFolders bool, logger hclog.Logger) ([]string, error) {
	logger.Info("🖼️  Generating asset family",
		"output", outputDir,
		"level", level.String(),
		"scale_folders", useScaleFolders)

	renderFn := func(width, height uint) (*image.RGBA, error) {
		return render.Render(doc, int(width), int(height))
	}

	return assets.Emit(assets.AllDefinitions(), renderFn, outputDir, level, useScaleFolders, logger)
}

// All runs the icon and asset pipelines concurrently against the same
// read-only document. The pipelines write disjoint outputs, so one failing
// does not stop the other; both results are reported, and the returned
// error aggregates whichever pipelines failed.
func All(doc render.Document, iconPath, assetsDir string, fullSizeSet bool, level assets.RequirementLevel, useScaleFolders bool, logger hclog.Logger) error {
	iconDone := make(chan error, 1)
	go func() {
		iconDone <- Icon(doc, iconPath, fullSizeSet, logger.Named("icon"))
	}()

	_, assetsErr := Assets(doc, assetsDir, level, useScaleFolders, logger.Named("assets"))
	iconErr := <-iconDone

	if iconErr != nil {
		logger.Error("❌ Icon pipeline failed", "error", iconErr)
	}
	if assetsErr != nil {
		logger.Error("❌ Asset pipeline failed", "error", assetsErr)
	}

	return errors.Join(iconErr, assetsErr)
}
