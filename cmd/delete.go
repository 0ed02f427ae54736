package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/yarlson/linkman/internal/linkerror"
)

func newDeleteCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "delete <path>",
		Short:         "🗑️ Delete a symbolic link",
		Long:          "Deletes a link. With --recursive, deletes every link below a directory (deepest first) and leaves everything else in place.",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			recursive, _ := cmd.Flags().GetBool("recursive")
			silent, _ := cmd.Flags().GetBool("silent")
			w := GetWriter(cmd)
			m := s.mutator(false)

			if !recursive {
				if err := m.Delete(path); err != nil {
					return report(w, err, silent)
				}
				if !silent {
					w.Writeln(Removed(fmt.Sprintf("Deleted link %s", path)))
				}
				return w.Err()
			}

			result, err := m.DeleteRecursive(path)
			if !silent {
				for _, p := range result.Deleted {
					w.Item(Removed(p))
				}
				failed := make([]string, 0, len(result.Failed))
				for p := range result.Failed {
					failed = append(failed, p)
				}
				sort.Strings(failed)
				for _, p := range failed {
					w.Item(Colored(fmt.Sprintf("%s: %v", p, result.Failed[p]), ColorRed))
				}
			}

			if err != nil {
				if len(result.Failed) > 0 {
					err = fmt.Errorf("%w: deleted %s, %d failed", linkerror.ErrPartialDelete, plural(len(result.Deleted), "link"), len(result.Failed))
				}
				return report(w, err, silent)
			}

			if !silent {
				w.Writeln(Success(fmt.Sprintf("Deleted %s under %s", plural(len(result.Deleted), "link"), path)))
			}
			return w.Err()
		},
	}

	cmd.Flags().BoolP("recursive", "r", false, "Delete every link below the given directory")
	cmd.Flags().BoolP("silent", "s", false, "Suppress output; only the exit code reports the result")
	return cmd
}
