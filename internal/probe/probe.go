// Package probe classifies filesystem entries as links.
//
// A link is a symbolic link on any platform, or on Windows a directory
// carrying the reparse-point attribute (junctions, mount points) or a
// regular file that starts with a WSL interop marker.
package probe

import (
	"bytes"
	"io"
	"os"
)

// LinkProbe reports whether a path is a link-like object. Implementations
// never fail: any I/O error is treated as "not a link".
type LinkProbe interface {
	IsLink(path string) bool
}

// Markers written at the start of files that WSL uses to represent links
// created from the Linux side.
var wslMarkers = [][]byte{
	[]byte("lxsf"),
	[]byte("wsl$"),
}

const sniffLen = 4

type options struct {
	wslMarkers bool
}

// Option configures a probe.
type Option func(*options)

// WithWSLMarkers toggles WSL marker sniffing on regular files. It only
// has an effect on Windows.
func WithWSLMarkers(enabled bool) Option {
	return func(o *options) {
		o.wslMarkers = enabled
	}
}

// New returns the probe for the platform the binary was built for.
func New(opts ...Option) LinkProbe {
	o := options{wslMarkers: true}
	for _, opt := range opts {
		opt(&o)
	}
	return newPlatformProbe(o)
}

// HasWSLMarker reports whether r begins with a known WSL link marker.
// Any binary file starting with the same bytes matches too.
func HasWSLMarker(r io.Reader) bool {
	head := make([]byte, sniffLen)
	n, err := io.ReadFull(r, head)
	if err != nil || n < sniffLen {
		return false
	}
	for _, m := range wslMarkers {
		if bytes.HasPrefix(head, m) {
			return true
		}
	}
	return false
}

func hasWSLMarkerFile(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer func() { _ = f.Close() }()
	return HasWSLMarker(f)
}

// ReadTarget returns the stored target of a link, if it can be read.
func ReadTarget(path string) (string, bool) {
	target, err := os.Readlink(path)
	if err != nil {
		return "", false
	}
	return target, true
}
