//go:build windows

package privilege

import "golang.org/x/sys/windows"

func detect() Status {
	return Status{
		Required: true,
		Elevated: windows.GetCurrentProcessToken().IsElevated(),
	}
}
