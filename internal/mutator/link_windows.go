//go:build windows

package mutator

import (
	"os"

	"golang.org/x/sys/windows"
)

func createLink(target, linkName string, isDir bool) error {
	linkPtr, err := windows.UTF16PtrFromString(linkName)
	if err != nil {
		return err
	}
	targetPtr, err := windows.UTF16PtrFromString(target)
	if err != nil {
		return err
	}

	flags := uint32(windows.SYMBOLIC_LINK_FLAG_ALLOW_UNPRIVILEGED_CREATE)
	if isDir {
		flags |= windows.SYMBOLIC_LINK_FLAG_DIRECTORY
	}
	return windows.CreateSymbolicLink(linkPtr, targetPtr, flags)
}

// removeLink uses RemoveDirectory for directory links and junctions,
// which DeleteFile refuses. The directory attribute belongs to the link
// itself, so dangling ones are handled too.
func removeLink(path string) error {
	ptr, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return err
	}
	attrs, err := windows.GetFileAttributes(ptr)
	if err == nil && attrs&windows.FILE_ATTRIBUTE_DIRECTORY != 0 {
		return windows.RemoveDirectory(ptr)
	}
	return os.Remove(path)
}
