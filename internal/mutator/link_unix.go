//go:build !windows

package mutator

import "os"

// createLink ignores isDir: POSIX symlinks are the same for any target kind.
func createLink(target, linkName string, _ bool) error {
	return os.Symlink(target, linkName)
}

func removeLink(path string) error {
	return os.Remove(path)
}
