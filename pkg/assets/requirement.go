// Package assets holds the static catalog of platform visual-asset kinds
// and writes the filtered, rendered asset family to disk.
package assets

import (
	"fmt"
	"strings"

	"github.com/provide-io/iconforge/pkg/iconerr"
)

// RequirementLevel classifies how strongly an asset is expected by the
// platform, and doubles as the selection token of a generation request.
type RequirementLevel int

const (
	// LevelMandatory assets must always be shipped.
	LevelMandatory RequirementLevel = iota

	// LevelRequired assets are expected by store validation.
	LevelRequired

	// LevelOptional assets improve presentation but may be omitted.
	LevelOptional

	// LevelAll selects the union of Required and Optional. It deliberately
	// excludes Mandatory - a long-standing contract of the filtering
	// policy, preserved as-is.
	LevelAll
)

// String returns the request token for the level.
func (l RequirementLevel) String() string {
	switch l {
	case LevelMandatory:
		return "mandatory"
	case LevelRequired:
		return "required"
	case LevelOptional:
		return "optional"
	case LevelAll:
		return "all"
	default:
		return fmt.Sprintf("RequirementLevel(%d)", int(l))
	}
}

// ParseRequirementLevel maps a request token to its level.
func ParseRequirementLevel(s string) (RequirementLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mandatory":
		return LevelMandatory, nil
	case "required":
		return LevelRequired, nil
	case "optional":
		return LevelOptional, nil
	case "all":
		return LevelAll, nil
	default:
		return 0, fmt.Errorf("%w: %q (want mandatory, required, optional or all)", iconerr.ErrInvalidRequirementLevel, s)
	}
}

// RequirementTag pairs a level with an optional file-name qualifier suffix.
// One asset definition may carry several tags and thus be emitted under
// several suffixed names (plain, altform-unplated, ...). Tags are compared
// by value.
type RequirementTag struct {
	Level  RequirementLevel
	Suffix string
}

// Matches reports whether the tag is selected by the requested level:
// an exact level match, or LevelAll selecting Required and Optional tags.
func (t RequirementTag) Matches(level RequirementLevel) bool {
	if level == LevelAll {
		return t.Level == LevelRequired || t.Level == LevelOptional
	}
	return t.Level == level
}
