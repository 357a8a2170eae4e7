// Package peicon embeds a generated icon container into a Windows PE
// executable's resource section. Resource writing is pure Go, so embedding
// works from any host platform.
package peicon

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/tc-hib/winres"

	"github.com/provide-io/iconforge/internal/outpath"
	"github.com/provide-io/iconforge/pkg/iconerr"
)

// appIconID is the group-icon resource identifier. Windows picks the
// numerically first group as the executable's display icon.
const appIconID = 1

// EmbedICO embeds the icon container at icoPath into the executable at
// exePath, replacing its current application icon. The rewritten executable
// is staged in a temporary file and moved into place atomically.
func EmbedICO(exePath, icoPath string, logger hclog.Logger) error {
	logger.Info("🪟 Embedding icon into executable",
		"exe", exePath,
		"icon", icoPath)

	icoFile, err := os.Open(icoPath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", iconerr.ErrSourceNotFound, icoPath)
		}
		return fmt.Errorf("failed to open icon: %w", err)
	}

	icon, err := winres.LoadICO(icoFile)
	icoFile.Close()
	if err != nil {
		return fmt.Errorf("%w: not a readable icon container: %v", iconerr.ErrInvalidSourceFormat, err)
	}

	// Load existing resources so version info, manifests etc survive.
	exeFile, err := os.Open(exePath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", iconerr.ErrSourceNotFound, exePath)
		}
		return fmt.Errorf("failed to open EXE for reading: %w", err)
	}

	rs, err := winres.LoadFromEXE(exeFile)
	if err != nil {
		// The EXE has no resource section yet; start from an empty set.
		logger.Debug("Creating new resource set (no existing resources)")
		rs = &winres.ResourceSet{}
	} else {
		logger.Debug("Loaded existing resources from EXE")
	}

	if err := exeFile.Close(); err != nil {
		return fmt.Errorf("failed to close input file: %w", err)
	}

	if err := rs.SetIcon(winres.ID(appIconID), icon); err != nil {
		return fmt.Errorf("%w: failed to set icon resource: %v", iconerr.ErrEncodeFailure, err)
	}

	// Rewrite the EXE with the updated resource tree. No defers on the
	// file handles: both must be closed before the rename on Windows.
	exeIn, err := os.Open(exePath)
	if err != nil {
		return fmt.Errorf("failed to open EXE for rewriting: %w", err)
	}

	tempPath := outpath.TempPath(exePath)
	exeOut, err := os.Create(tempPath)
	if err != nil {
		exeIn.Close()
		return fmt.Errorf("%w: failed to create temporary output: %v", iconerr.ErrOutputWriteFailure, err)
	}

	logger.Debug("Writing resources to temporary file", "temp", tempPath)
	if err := rs.WriteToEXE(exeOut, exeIn); err != nil {
		exeOut.Close()
		exeIn.Close()
		os.Remove(tempPath)
		return fmt.Errorf("%w: failed to write resources: %v", iconerr.ErrOutputWriteFailure, err)
	}

	if err := exeOut.Close(); err != nil {
		exeIn.Close()
		os.Remove(tempPath)
		return fmt.Errorf("%w: failed to close output file: %v", iconerr.ErrOutputWriteFailure, err)
	}
	if err := exeIn.Close(); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to close input file: %w", err)
	}

	if err := outpath.Replace(tempPath, exePath, logger); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("%w: %v", iconerr.ErrOutputWriteFailure, err)
	}

	logger.Info("✅ Icon embedded", "exe", exePath)
	return nil
}
