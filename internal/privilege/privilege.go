// Package privilege detects whether the process may create links.
package privilege

// Status is the result of a one-time privilege check.
type Status struct {
	// Required is set on platforms where link creation needs elevation.
	Required bool
	// Elevated reports administrator (Windows) or root (POSIX) rights.
	Elevated bool
}

// Allows reports whether link creation is permitted.
func (s Status) Allows() bool {
	return !s.Required || s.Elevated
}

// Detect queries the current process token once.
func Detect() Status {
	return detect()
}
