//go:build !windows

package privilege

import "os"

func detect() Status {
	return Status{Required: false, Elevated: os.Geteuid() == 0}
}
