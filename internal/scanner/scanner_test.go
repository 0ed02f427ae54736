//go:build !windows

package scanner

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/yarlson/linkman/internal/probe"
)

type ScannerTestSuite struct {
	suite.Suite
	tempDir string
	errs    map[string]error
	scanner *Scanner
}

func (suite *ScannerTestSuite) SetupTest() {
	suite.tempDir = suite.T().TempDir()
	suite.errs = map[string]error{}
	suite.scanner = New(probe.New(), WithErrorHandler(func(path string, err error) {
		suite.errs[path] = err
	}))
}

func TestScannerSuite(t *testing.T) {
	suite.Run(t, new(ScannerTestSuite))
}

func (suite *ScannerTestSuite) path(parts ...string) string {
	return filepath.Join(append([]string{suite.tempDir}, parts...)...)
}

// buildTree creates:
//
//	a            file
//	b -> a       link
//	sub/         dir
//	sub/c        file
//	sub/d -> ../a
//	sub/deep/e -> missing
//	sublink -> sub
func (suite *ScannerTestSuite) buildTree() {
	suite.Require().NoError(os.WriteFile(suite.path("a"), []byte("a"), 0644))
	suite.Require().NoError(os.Symlink("a", suite.path("b")))
	suite.Require().NoError(os.MkdirAll(suite.path("sub", "deep"), 0755))
	suite.Require().NoError(os.WriteFile(suite.path("sub", "c"), []byte("c"), 0644))
	suite.Require().NoError(os.Symlink("../a", suite.path("sub", "d")))
	suite.Require().NoError(os.Symlink("missing", suite.path("sub", "deep", "e")))
	suite.Require().NoError(os.Symlink("sub", suite.path("sublink")))
}

func paths(entries []Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Path)
	}
	return out
}

func (suite *ScannerTestSuite) TestScanRecursive() {
	suite.buildTree()

	entries := suite.scanner.Scan(suite.tempDir, true)

	suite.ElementsMatch([]string{
		suite.path("b"),
		suite.path("sub", "d"),
		suite.path("sub", "deep", "e"),
		suite.path("sublink"),
	}, paths(entries))
	suite.Empty(suite.errs)
}

func (suite *ScannerTestSuite) TestScanNonRecursive() {
	suite.buildTree()

	entries := suite.scanner.Scan(suite.tempDir, false)

	suite.ElementsMatch([]string{
		suite.path("b"),
		suite.path("sublink"),
	}, paths(entries))
}

func (suite *ScannerTestSuite) TestScanDoesNotFollowDirectoryLinks() {
	suite.buildTree()

	entries := suite.scanner.Scan(suite.tempDir, true)

	prefix := suite.path("sublink") + string(filepath.Separator)
	for _, p := range paths(entries) {
		suite.False(strings.HasPrefix(p, prefix), "descended into link: %s", p)
	}
}

func (suite *ScannerTestSuite) TestScanTargets() {
	suite.buildTree()

	entries := suite.scanner.Scan(suite.tempDir, false)

	targets := map[string]Entry{}
	for _, e := range entries {
		targets[filepath.Base(e.Path)] = e
	}
	suite.Equal("a", targets["b"].Target)
	suite.True(targets["b"].Resolved)
	suite.Equal("sub", targets["sublink"].Target)
	suite.False(targets["b"].Broken)
}

func (suite *ScannerTestSuite) TestScanMarksBrokenLinks() {
	suite.buildTree()

	entries := suite.scanner.Scan(suite.tempDir, true)

	broken := map[string]bool{}
	for _, e := range entries {
		broken[e.Path] = e.Broken
	}
	suite.True(broken[suite.path("sub", "deep", "e")])
	suite.False(broken[suite.path("sub", "d")])
	suite.False(broken[suite.path("sublink")])
}

func (suite *ScannerTestSuite) TestScanEmptyDirectory() {
	suite.Empty(suite.scanner.Scan(suite.tempDir, true))
	suite.Empty(suite.scanner.Scan(suite.tempDir, false))
	suite.Empty(suite.errs)
}

func (suite *ScannerTestSuite) TestScanMissingRootReportsError() {
	missing := suite.path("nope")

	suite.Empty(suite.scanner.Scan(missing, true))
	suite.Contains(suite.errs, missing)

	suite.errs = map[string]error{}
	suite.Empty(suite.scanner.Scan(missing, false))
	suite.Contains(suite.errs, missing)
}

func (suite *ScannerTestSuite) TestScanContinuesPastUnreadableDirectory() {
	if os.Geteuid() == 0 {
		suite.T().Skip("permissions are not enforced for root")
	}
	suite.buildTree()
	locked := suite.path("locked")
	suite.Require().NoError(os.Mkdir(locked, 0755))
	suite.Require().NoError(os.Symlink("../a", filepath.Join(locked, "hidden")))
	suite.Require().NoError(os.Chmod(locked, 0000))
	defer func() { _ = os.Chmod(locked, 0755) }()

	entries := suite.scanner.Scan(suite.tempDir, true)

	suite.Contains(suite.errs, locked)
	suite.Contains(paths(entries), suite.path("b"))
	suite.Contains(paths(entries), suite.path("sub", "d"))
	suite.NotContains(paths(entries), filepath.Join(locked, "hidden"))
}
