//go:build windows

package probe

import (
	"os"

	"golang.org/x/sys/windows"
)

type windowsProbe struct {
	wslMarkers bool
}

func newPlatformProbe(o options) LinkProbe {
	return windowsProbe{wslMarkers: o.wslMarkers}
}

// IsLink checks the symlink mode first, then the reparse-point bit for
// directories and junctions, then WSL markers for regular files. Only the
// entry itself is inspected, so a junction whose target is gone still
// counts.
func (p windowsProbe) IsLink(path string) bool {
	info, err := os.Lstat(path)
	if err != nil {
		return false
	}
	mode := info.Mode()
	if mode&os.ModeSymlink != 0 {
		return true
	}

	// junctions surface as directories or, since go1.23, as irregular files
	if info.IsDir() || mode&os.ModeIrregular != 0 {
		return isReparsePoint(path)
	}

	if p.wslMarkers && mode.IsRegular() {
		return hasWSLMarkerFile(path)
	}

	return false
}

// attributes reads the entry's own attributes; GetFileAttributes does not
// follow reparse points.
func attributes(path string) (uint32, bool) {
	ptr, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return 0, false
	}
	attrs, err := windows.GetFileAttributes(ptr)
	if err != nil {
		return 0, false
	}
	return attrs, true
}

func isReparsePoint(path string) bool {
	attrs, ok := attributes(path)
	return ok && attrs&windows.FILE_ATTRIBUTE_REPARSE_POINT != 0
}
