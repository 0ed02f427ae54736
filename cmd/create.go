package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCreateCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "create <source> <link_name>",
		Short:         "✨ Create a symbolic link",
		Long:          "Creates link_name pointing at source. Fails if source is missing, link_name already exists, or (on Windows) the process is not elevated.",
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			source, linkName := args[0], args[1]
			silent, _ := cmd.Flags().GetBool("silent")
			absolute := s.cfg.Absolute
			if cmd.Flags().Changed("absolute") {
				absolute, _ = cmd.Flags().GetBool("absolute")
			}
			w := GetWriter(cmd)

			if err := s.mutator(absolute).Create(source, linkName); err != nil {
				return report(w, err, silent)
			}

			if silent {
				return nil
			}
			w.Writeln(Success(fmt.Sprintf("Created link %s", linkName))).
				Item(LinkTo(linkName, source))
			return w.Err()
		},
	}

	cmd.Flags().BoolP("silent", "s", false, "Suppress output; only the exit code reports the result")
	cmd.Flags().Bool("absolute", false, "Store the absolute source path instead of a relative one")
	return cmd
}
