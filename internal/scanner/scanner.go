// Package scanner finds links below a directory.
package scanner

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/yarlson/linkman/internal/logger"
	"github.com/yarlson/linkman/internal/probe"
)

// Entry is a link found during a scan.
type Entry struct {
	Path     string
	Target   string
	Resolved bool // Target could be read
	Broken   bool // Target does not exist
}

// ErrorHandler receives per-entry scan failures. Scanning continues after it returns.
type ErrorHandler func(path string, err error)

// Scanner walks directories and collects entries the probe classifies as links.
type Scanner struct {
	probe   probe.LinkProbe
	onError ErrorHandler
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithErrorHandler replaces the default handler, which logs a warning.
func WithErrorHandler(h ErrorHandler) Option {
	return func(s *Scanner) {
		if h != nil {
			s.onError = h
		}
	}
}

// New creates a Scanner using the given probe.
func New(p probe.LinkProbe, opts ...Option) *Scanner {
	s := &Scanner{
		probe: p,
		onError: func(path string, err error) {
			logger.L().Warn("scan.error", "path", path, "err", err)
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Scan returns the links under root in directory-listing order. The root
// itself is never reported. Links to directories are not descended into.
func (s *Scanner) Scan(root string, recursive bool) []Entry {
	if recursive {
		return s.walk(root)
	}
	return s.list(root)
}

func (s *Scanner) list(root string) []Entry {
	entries, err := os.ReadDir(root)
	if err != nil {
		s.onError(root, err)
		// ReadDir may still return the entries read before the error
	}

	var found []Entry
	for _, e := range entries {
		path := filepath.Join(root, e.Name())
		if s.probe.IsLink(path) {
			found = append(found, s.entry(path))
		}
	}
	return found
}

func (s *Scanner) walk(root string) []Entry {
	var found []Entry
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			s.onError(path, err)
			return nil
		}
		if path == root {
			return nil
		}

		if s.probe.IsLink(path) {
			found = append(found, s.entry(path))
			if d.IsDir() {
				return filepath.SkipDir
			}
		}
		return nil
	})
	return found
}

func (s *Scanner) entry(path string) Entry {
	target, ok := probe.ReadTarget(path)
	_, err := os.Stat(path)
	broken := err != nil && os.IsNotExist(err)
	logger.L().Debug("scan.link", "path", path, "target", target, "broken", broken)
	return Entry{Path: path, Target: target, Resolved: ok, Broken: broken}
}
