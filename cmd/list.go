package cmd

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/yarlson/linkman/internal/logger"
	"github.com/yarlson/linkman/internal/scanner"
)

func newListCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "list",
		Short:         "📋 List symbolic links in a directory",
		Long:          "Finds symbolic links and junctions under a directory and prints each with its target. Scan errors are reported as warnings and never fail the command.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := s.cfg.Directory
			if cmd.Flags().Changed("directory") {
				dir, _ = cmd.Flags().GetString("directory")
			}
			recursive := s.cfg.Recursive
			if cmd.Flags().Changed("no-recursive") {
				noRecursive, _ := cmd.Flags().GetBool("no-recursive")
				recursive = !noRecursive
			}

			brokenOnly, _ := cmd.Flags().GetBool("broken")

			return listLinks(cmd, s, dir, recursive, brokenOnly)
		},
	}

	cmd.Flags().StringP("directory", "d", ".", "Directory to search")
	cmd.Flags().Bool("no-recursive", false, "Only inspect direct children of the directory")
	cmd.Flags().Bool("broken", false, "Only show links whose target is missing")
	return cmd
}

func listLinks(cmd *cobra.Command, s *session, dir string, recursive, brokenOnly bool) error {
	w := GetWriter(cmd)
	ew := GetErrorWriter(cmd)

	sc := s.scanner(scanner.WithErrorHandler(func(path string, err error) {
		logger.L().Debug("scan.error", "path", path, "err", err)
		ew.Writeln(Warning(fmt.Sprintf("Scan error at %s: %v", path, err)))
	}))

	entries := sc.Scan(dir, recursive)
	noun := "link"
	if brokenOnly {
		entries = slices.DeleteFunc(entries, func(e scanner.Entry) bool { return !e.Broken })
		noun = "broken link"
	}

	if len(entries) == 0 {
		w.Writeln(Heading(fmt.Sprintf("No %ss found in %s", noun, dir)))
		return w.Err()
	}

	w.Writeln(Heading(fmt.Sprintf("Found %s in %s:", plural(len(entries), noun), dir))).
		WritelnString("")

	for _, e := range entries {
		line := []Message{Link(e.Path)}
		if e.Resolved {
			line[0] = LinkTo(e.Path, e.Target)
		}
		if e.Broken {
			line = append(line, Broken())
		}
		w.Item(line...)
	}

	return w.Err()
}
