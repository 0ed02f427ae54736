// Package mutator creates and deletes links.
package mutator

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/yarlson/linkman/internal/linkerror"
	"github.com/yarlson/linkman/internal/logger"
	"github.com/yarlson/linkman/internal/privilege"
	"github.com/yarlson/linkman/internal/probe"
)

// Result describes the outcome of a recursive delete.
type Result struct {
	Deleted []string
	Failed  map[string]error
}

// Mutator creates and removes links. Privileges are checked once by the
// caller and handed in.
type Mutator struct {
	probe    probe.LinkProbe
	priv     privilege.Status
	absolute bool
}

// Option configures a Mutator.
type Option func(*Mutator)

// WithAbsoluteTargets stores absolute source paths in new links instead
// of paths relative to the link's directory.
func WithAbsoluteTargets() Option {
	return func(m *Mutator) {
		m.absolute = true
	}
}

// New creates a Mutator.
func New(p probe.LinkProbe, priv privilege.Status, opts ...Option) *Mutator {
	m := &Mutator{probe: p, priv: priv}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Create makes linkName point at source.
func (m *Mutator) Create(source, linkName string) error {
	if _, err := os.Lstat(linkName); err == nil {
		return linkerror.WithPath(linkerror.ErrLinkExists, linkName)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to check link destination: %w", err)
	}

	info, err := os.Stat(source)
	if err != nil {
		if os.IsNotExist(err) {
			return linkerror.WithPath(linkerror.ErrSourceMissing, source)
		}
		return fmt.Errorf("failed to stat source: %w", err)
	}

	if !m.priv.Allows() {
		return linkerror.WithPathAndSuggestion(linkerror.ErrInsufficientPrivilege, linkName,
			"run from an elevated prompt")
	}

	target, err := m.linkTarget(source, linkName)
	if err != nil {
		return err
	}

	logger.L().Debug("link.create", "link", linkName, "target", target, "dir", info.IsDir())
	if err := createLink(target, linkName, info.IsDir()); err != nil {
		return fmt.Errorf("failed to create link: %w", err)
	}
	return nil
}

// linkTarget returns the path to store in the link. Relative targets are
// computed from the link's directory so the link keeps working when the
// tree is moved together.
func (m *Mutator) linkTarget(source, linkName string) (string, error) {
	absSource, err := filepath.Abs(source)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %w", err)
	}
	if m.absolute {
		return absSource, nil
	}

	absLink, err := filepath.Abs(linkName)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %w", err)
	}

	rel, err := filepath.Rel(filepath.Dir(absLink), absSource)
	if err != nil {
		// different volumes
		return absSource, nil
	}
	return rel, nil
}

// Delete removes a single link. Paths the probe does not classify as
// links are refused.
func (m *Mutator) Delete(path string) error {
	if !m.probe.IsLink(path) {
		return linkerror.WithPath(linkerror.ErrNotLink, path)
	}

	logger.L().Debug("link.delete", "path", path)
	if err := removeLink(path); err != nil {
		return fmt.Errorf("failed to delete link %s: %w", path, err)
	}
	return nil
}

// DeleteRecursive removes every link below path, deepest first. A failed
// removal does not stop the sweep; failures are collected and joined into
// the returned error. Finding no links at all is an error.
func (m *Mutator) DeleteRecursive(path string) (*Result, error) {
	result := &Result{Failed: map[string]error{}}

	if m.probe.IsLink(path) {
		if err := m.Delete(path); err != nil {
			result.Failed[path] = err
			return result, err
		}
		result.Deleted = append(result.Deleted, path)
		return result, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return result, linkerror.WithPath(linkerror.ErrNotLink, path)
		}
		return result, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if !info.IsDir() {
		err := m.Delete(path)
		if err != nil {
			result.Failed[path] = err
		}
		return result, err
	}

	links := m.collect(path)
	if len(links) == 0 {
		return result, linkerror.WithPath(linkerror.ErrNoLinksFound, path)
	}

	var errs []error
	for _, link := range links {
		if err := m.Delete(link); err != nil {
			logger.L().Warn("link.delete.failed", "path", link, "err", err)
			result.Failed[link] = err
			errs = append(errs, err)
			continue
		}
		result.Deleted = append(result.Deleted, link)
	}

	if len(errs) > 0 {
		return result, errors.Join(append([]error{linkerror.ErrPartialDelete}, errs...)...)
	}
	return result, nil
}

// collect returns the links under root ordered bottom-up. Unreadable
// entries are logged and skipped.
func (m *Mutator) collect(root string) []string {
	var links []string
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			logger.L().Warn("link.collect.error", "path", path, "err", err)
			return nil
		}
		if path == root {
			return nil
		}
		if m.probe.IsLink(path) {
			links = append(links, path)
			if d.IsDir() {
				return filepath.SkipDir
			}
		}
		return nil
	})

	sortDeepestFirst(links)
	return links
}

func sortDeepestFirst(paths []string) {
	depth := func(p string) int {
		return strings.Count(filepath.Clean(p), string(filepath.Separator))
	}
	// stable so siblings keep walk order
	slices.SortStableFunc(paths, func(a, b string) int {
		return depth(b) - depth(a)
	})
}
