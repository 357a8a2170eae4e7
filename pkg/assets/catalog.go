package assets

// AssetDefinition describes one catalog entry: a base file name, the sizes
// it is rendered at, and the requirement tags it is emitted under. Several
// definitions may share a base name (the app icon appears once for its
// scale variants and again for each target-size group); they are
// independent entries, never merged.
type AssetDefinition struct {
	BaseName     string
	Sizes        []SizeVariant
	Requirements []RequirementTag
}

// scalePercents are the display-scale factors of the platform asset tables.
var scalePercents = [5]uint{100, 125, 150, 200, 400}

func scaleSet(widths, heights [5]uint) []SizeVariant {
	out := make([]SizeVariant, 0, len(scalePercents))
	for i, pct := range scalePercents {
		out = append(out, ScaleVariant(widths[i], heights[i], pct))
	}
	return out
}

func squareScaleSet(edges [5]uint) []SizeVariant {
	return scaleSet(edges, edges)
}

func targetSizeSet(sizes ...uint) []SizeVariant {
	out := make([]SizeVariant, 0, len(sizes))
	for _, s := range sizes {
		out = append(out, TargetSizeVariant(s))
	}
	return out
}

// appIconTags emits the app icon under its plain name plus the unplated
// alternate forms the shell picks up for taskbar rendering.
func appIconTags(plain RequirementLevel) []RequirementTag {
	return []RequirementTag{
		{Level: plain},
		{Level: LevelOptional, Suffix: "altform-unplated"},
		{Level: LevelOptional, Suffix: "altform-lightunplated"},
	}
}

func tag(level RequirementLevel) []RequirementTag {
	return []RequirementTag{{Level: level}}
}

// AllDefinitions returns the full asset catalog, mirroring the platform's
// published per-kind size tables. The pixel dimensions are the published
// values for each scale percentage, not computed at run time, so rounding
// policy differences can never change the output set.
func AllDefinitions() []AssetDefinition {
	return []AssetDefinition{
		{
			BaseName:     "Square71x71Logo",
			Sizes:        squareScaleSet([5]uint{71, 89, 107, 142, 284}),
			Requirements: tag(LevelOptional),
		},
		{
			BaseName:     "Square150x150Logo",
			Sizes:        squareScaleSet([5]uint{150, 188, 225, 300, 600}),
			Requirements: tag(LevelRequired),
		},
		{
			BaseName:     "Wide310x150Logo",
			Sizes:        scaleSet([5]uint{310, 388, 465, 620, 1240}, [5]uint{150, 188, 225, 300, 600}),
			Requirements: tag(LevelRequired),
		},
		{
			BaseName:     "Square310x310Logo",
			Sizes:        squareScaleSet([5]uint{310, 388, 465, 620, 1240}),
			Requirements: tag(LevelOptional),
		},
		{
			BaseName:     "Square44x44Logo",
			Sizes:        squareScaleSet([5]uint{44, 55, 66, 88, 176}),
			Requirements: appIconTags(LevelRequired),
		},
		{
			BaseName:     "Square44x44Logo",
			Sizes:        targetSizeSet(16, 24, 32, 48, 256),
			Requirements: appIconTags(LevelMandatory),
		},
		{
			BaseName:     "Square44x44Logo",
			Sizes:        targetSizeSet(20, 30, 36, 40, 60, 64, 72, 80, 96),
			Requirements: appIconTags(LevelOptional),
		},
		{
			BaseName:     "SplashScreen",
			Sizes:        scaleSet([5]uint{620, 775, 930, 1240, 2480}, [5]uint{300, 375, 450, 600, 1200}),
			Requirements: tag(LevelRequired),
		},
		{
			BaseName:     "BadgeLogo",
			Sizes:        squareScaleSet([5]uint{24, 30, 36, 48, 96}),
			Requirements: tag(LevelOptional),
		},
		{
			BaseName:     "StoreLogo",
			Sizes:        squareScaleSet([5]uint{50, 63, 75, 100, 200}),
			Requirements: tag(LevelMandatory),
		},
	}
}

// Filter keeps a definition when any of its requirement tags matches the
// requested level (see RequirementTag.Matches; LevelAll selects Required
// and Optional tags but not Mandatory ones).
func Filter(defs []AssetDefinition, level RequirementLevel) []AssetDefinition {
	var out []AssetDefinition
	for _, def := range defs {
		for _, t := range def.Requirements {
			if t.Matches(level) {
				out = append(out, def)
				break
			}
		}
	}
	return out
}

// Icon frame size sets for the container pipeline. The extended set covers
// every edge length the shell scales app icons to; the minimal set is the
// classic desktop selection.
var (
	minimalIconSizes  = []uint{16, 24, 32, 48, 256}
	extendedIconSizes = []uint{16, 20, 24, 30, 32, 36, 40, 48, 60, 64, 72, 80, 96, 256}
)

// IconSizes returns the frame sizes for an icon container request.
func IconSizes(fullSet bool) []uint {
	var sizes []uint
	if fullSet {
		sizes = extendedIconSizes
	} else {
		sizes = minimalIconSizes
	}
	out := make([]uint, len(sizes))
	copy(out, sizes)
	return out
}
