package assets

import (
	"errors"
	"testing"

	"github.com/provide-io/iconforge/pkg/iconerr"
)

func TestParseRequirementLevel(t *testing.T) {
	testCases := []struct {
		token string
		want  RequirementLevel
		ok    bool
	}{
		{"mandatory", LevelMandatory, true},
		{"required", LevelRequired, true},
		{"optional", LevelOptional, true},
		{"all", LevelAll, true},
		{"ALL", LevelAll, true},
		{" required ", LevelRequired, true},
		{"", 0, false},
		{"everything", 0, false},
	}

	for _, tc := range testCases {
		got, err := ParseRequirementLevel(tc.token)
		if tc.ok {
			if err != nil {
				t.Errorf("ParseRequirementLevel(%q) error = %v", tc.token, err)
			} else if got != tc.want {
				t.Errorf("ParseRequirementLevel(%q) = %v, want %v", tc.token, got, tc.want)
			}
			continue
		}
		if !errors.Is(err, iconerr.ErrInvalidRequirementLevel) {
			t.Errorf("ParseRequirementLevel(%q) error = %v, want ErrInvalidRequirementLevel", tc.token, err)
		}
	}
}

func TestRequirementTagMatches(t *testing.T) {
	testCases := []struct {
		tag   RequirementTag
		level RequirementLevel
		want  bool
	}{
		{RequirementTag{Level: LevelMandatory}, LevelMandatory, true},
		{RequirementTag{Level: LevelRequired}, LevelRequired, true},
		{RequirementTag{Level: LevelOptional}, LevelOptional, true},
		{RequirementTag{Level: LevelMandatory}, LevelRequired, false},
		{RequirementTag{Level: LevelOptional}, LevelRequired, false},
		// LevelAll selects Required and Optional but not Mandatory.
		{RequirementTag{Level: LevelRequired}, LevelAll, true},
		{RequirementTag{Level: LevelOptional}, LevelAll, true},
		{RequirementTag{Level: LevelMandatory}, LevelAll, false},
	}

	for _, tc := range testCases {
		if got := tc.tag.Matches(tc.level); got != tc.want {
			t.Errorf("tag %v Matches(%v) = %v, want %v", tc.tag, tc.level, got, tc.want)
		}
	}
}

func hasMandatoryTag(def AssetDefinition) bool {
	for _, tag := range def.Requirements {
		if tag.Level == LevelMandatory {
			return true
		}
	}
	return false
}

func TestFilterMandatory(t *testing.T) {
	defs := Filter(AllDefinitions(), LevelMandatory)
	if len(defs) == 0 {
		t.Fatal("no mandatory definitions in the catalog")
	}
	for _, def := range defs {
		if !hasMandatoryTag(def) {
			t.Errorf("%s kept under mandatory filter without a mandatory tag", def.BaseName)
		}
	}

	names := map[string]bool{}
	for _, def := range defs {
		names[def.BaseName] = true
	}
	if !names["StoreLogo"] {
		t.Error("StoreLogo missing from mandatory set")
	}
	if !names["Square44x44Logo"] {
		t.Error("mandatory target-size app icon group missing from mandatory set")
	}
}

func TestFilterAllExcludesPureMandatory(t *testing.T) {
	defs := Filter(AllDefinitions(), LevelAll)

	for _, def := range defs {
		matched := false
		for _, tag := range def.Requirements {
			if tag.Level == LevelRequired || tag.Level == LevelOptional {
				matched = true
			}
		}
		if !matched {
			t.Errorf("%s kept under 'all' with only mandatory tags", def.BaseName)
		}
	}

	// StoreLogo carries only a Mandatory tag and must therefore be absent.
	for _, def := range defs {
		if def.BaseName == "StoreLogo" {
			t.Error("StoreLogo present under 'all' despite the mandatory carve-out")
		}
	}
}

func TestCatalogShape(t *testing.T) {
	defs := AllDefinitions()

	appIconEntries := 0
	for _, def := range defs {
		if len(def.Requirements) == 0 {
			t.Errorf("%s has no requirement tags", def.BaseName)
		}
		if len(def.Sizes) == 0 {
			t.Errorf("%s has no size variants", def.BaseName)
		}
		if def.BaseName == "Square44x44Logo" {
			appIconEntries++
		}

		for _, v := range def.Sizes {
			if v.IsTargetSize() {
				if v.Width != v.TargetSize || v.Height != v.TargetSize {
					t.Errorf("%s: target-size variant %d is not square", def.BaseName, v.TargetSize)
				}
				if v.ScalePercent != 0 {
					t.Errorf("%s: variant %d is both target-size and scale", def.BaseName, v.TargetSize)
				}
			} else if v.ScalePercent == 0 {
				t.Errorf("%s: variant %dx%d has neither scale nor target size", def.BaseName, v.Width, v.Height)
			}
		}
	}

	// The app icon appears as independent entries: scale variants plus two
	// target-size groups.
	if appIconEntries != 3 {
		t.Errorf("Square44x44Logo appears %d times, want 3", appIconEntries)
	}
}

func TestIconSizes(t *testing.T) {
	minimal := IconSizes(false)
	wantMinimal := []uint{16, 24, 32, 48, 256}
	if len(minimal) != len(wantMinimal) {
		t.Fatalf("minimal set = %v, want %v", minimal, wantMinimal)
	}
	for i := range wantMinimal {
		if minimal[i] != wantMinimal[i] {
			t.Errorf("minimal[%d] = %d, want %d", i, minimal[i], wantMinimal[i])
		}
	}

	extended := IconSizes(true)
	wantExtended := []uint{16, 20, 24, 30, 32, 36, 40, 48, 60, 64, 72, 80, 96, 256}
	if len(extended) != len(wantExtended) {
		t.Fatalf("extended set = %v, want %v", extended, wantExtended)
	}
	for i := range wantExtended {
		if extended[i] != wantExtended[i] {
			t.Errorf("extended[%d] = %d, want %d", i, extended[i], wantExtended[i])
		}
	}

	// Callers may mutate the returned slice without corrupting the catalog.
	extended[0] = 9999
	if IconSizes(true)[0] != 16 {
		t.Error("IconSizes returns a shared backing array")
	}
}
