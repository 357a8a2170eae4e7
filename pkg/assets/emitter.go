package assets

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"

	"github.com/provide-io/iconforge/internal/outpath"
	"github.com/provide-io/iconforge/pkg/iconerr"
)

// RenderFunc produces the raster for one asset variant. The emitter renders
// each (definition, size) pair exactly once, however many suffixed names it
// is written under.
type RenderFunc func(width, height uint) (*image.RGBA, error)

// Emit renders and writes the asset family for the requested requirement
// level and returns the paths it wrote. Definitions are filtered by level;
// within a kept definition, only the tags matching the level produce files.
//
// File naming is {baseName}[.scale-{N}|.targetsize-{N}][_{suffix}].png.
// With useScaleFolders, scale variants drop the ".scale-N" token and land in
// a scale-{N}/ subdirectory instead; target-size variants are never
// foldered. Directories are created on demand.
//
// An error on any variant aborts the whole emission - partial families are
// not silently reported as success.
func Emit(defs []AssetDefinition, renderFn RenderFunc, outputDir string, level RequirementLevel, useScaleFolders bool, logger hclog.Logger) ([]string, error) {
	if err := outpath.EnsureDir(outputDir); err != nil {
		return nil, fmt.Errorf("%w: %v", iconerr.ErrOutputWriteFailure, err)
	}

	var written []string
	for _, def := range Filter(defs, level) {
		var suffixes []string
		for _, t := range def.Requirements {
			if t.Matches(level) {
				suffixes = append(suffixes, t.Suffix)
			}
		}

		for _, variant := range def.Sizes {
			img, err := renderFn(variant.Width, variant.Height)
			if err != nil {
				return nil, fmt.Errorf("asset %s %s: %w", def.BaseName, variant.Token(), err)
			}

			var buf bytes.Buffer
			if err := png.Encode(&buf, img); err != nil {
				return nil, fmt.Errorf("%w: asset %s %s: %v", iconerr.ErrEncodeFailure, def.BaseName, variant.Token(), err)
			}

			for _, suffix := range suffixes {
				path := assetPath(outputDir, def.BaseName, variant, suffix, useScaleFolders)

				if err := outpath.EnsureDir(filepath.Dir(path)); err != nil {
					return nil, fmt.Errorf("%w: %v", iconerr.ErrOutputWriteFailure, err)
				}
				if err := os.WriteFile(path, buf.Bytes(), os.FileMode(outpath.FilePerms)); err != nil {
					return nil, fmt.Errorf("%w: %s: %v", iconerr.ErrOutputWriteFailure, path, err)
				}

				logger.Debug("🖼️  Wrote asset",
					"path", path,
					"width", variant.Width,
					"height", variant.Height)
				written = append(written, path)
			}
		}
	}

	logger.Info("✅ Asset family written",
		"dir", outputDir,
		"level", level.String(),
		"files", len(written))

	return written, nil
}

// assetPath applies the naming and foldering rules for one emitted file.
func assetPath(outputDir, baseName string, v SizeVariant, suffix string, useScaleFolders bool) string {
	name := baseName
	dir := outputDir

	if useScaleFolders && !v.IsTargetSize() {
		dir = filepath.Join(outputDir, v.Token())
	} else {
		name += "." + v.Token()
	}

	if suffix != "" {
		name += "_" + suffix
	}

	return filepath.Join(dir, name+".png")
}
