package pkg

import (
	"github.com/hashicorp/go-hclog"

	"github.com/provide-io/iconforge/pkg/assets"
	"github.com/provide-io/iconforge/pkg/generate"
	"github.com/provide-io/iconforge/pkg/peicon"
	"github.com/provide-io/iconforge/pkg/render"
)

// GenerateIcon renders the source image at the requested frame sizes and
// writes a single multi-resolution icon container to outputPath.
func GenerateIcon(sourcePath, outputPath string, fullSizeSet bool, logger hclog.Logger) error {
	doc, err := render.Open(sourcePath)
	if err != nil {
		return err
	}
	return generate.Icon(doc, outputPath, fullSizeSet, logger)
}

// GenerateAssets renders the source image into the platform asset family
// for the given requirement level and returns the written file paths.
func GenerateAssets(sourcePath, outputDir, requirementLevel string, useScaleFolders bool, logger hclog.Logger) ([]string, error) {
	level, err := assets.ParseRequirementLevel(requirementLevel)
	if err != nil {
		return nil, err
	}
	doc, err := render.Open(sourcePath)
	if err != nil {
		return nil, err
	}
	return generate.Assets(doc, outputDir, level, useScaleFolders, logger)
}

// GenerateAll runs the icon and asset pipelines concurrently from one
// source. Both pipelines are reported independently; the returned error
// aggregates whichever failed.
func GenerateAll(sourcePath, iconPath, assetsDir string, fullSizeSet bool, requirementLevel string, useScaleFolders bool, logger hclog.Logger) error {
	level, err := assets.ParseRequirementLevel(requirementLevel)
	if err != nil {
		return err
	}
	doc, err := render.Open(sourcePath)
	if err != nil {
		return err
	}
	return generate.All(doc, iconPath, assetsDir, fullSizeSet, level, useScaleFolders, logger)
}

// EmbedIcon embeds an icon container into a Windows executable's resources.
func EmbedIcon(exePath, icoPath string, logger hclog.Logger) error {
	return peicon.EmbedICO(exePath, icoPath, logger)
}
