//go:build !windows

package probe

import "os"

type posixProbe struct{}

func newPlatformProbe(options) LinkProbe {
	return posixProbe{}
}

// IsLink defers to the native symlink test.
func (posixProbe) IsLink(path string) bool {
	info, err := os.Lstat(path)
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeSymlink != 0
}
