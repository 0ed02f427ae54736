package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yarlson/linkman/internal/config"
	"github.com/yarlson/linkman/internal/linkerror"
	"github.com/yarlson/linkman/internal/logger"
	"github.com/yarlson/linkman/internal/mutator"
	"github.com/yarlson/linkman/internal/privilege"
	"github.com/yarlson/linkman/internal/probe"
	"github.com/yarlson/linkman/internal/scanner"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

// SetVersion sets the version information for the CLI
func SetVersion(v, bt string) {
	version = v
	buildTime = bt
}

// session carries what every subcommand needs, resolved once before it runs.
type session struct {
	cfg   *config.Config
	priv  privilege.Status
	probe probe.LinkProbe
}

func (s *session) scanner(opts ...scanner.Option) *scanner.Scanner {
	return scanner.New(s.probe, opts...)
}

func (s *session) mutator(absolute bool) *mutator.Mutator {
	var opts []mutator.Option
	if absolute {
		opts = append(opts, mutator.WithAbsoluteTargets())
	}
	return mutator.New(s.probe, s.priv, opts...)
}

// NewRootCommand creates a new root command with all subcommands
func NewRootCommand() *cobra.Command {
	s := &session{}

	rootCmd := &cobra.Command{
		Use:           "linkman",
		Short:         "🔗 Find, create and delete symbolic links",
		Long:          "Linkman manages symbolic links and Windows junctions the same way on every platform.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       fmt.Sprintf("%s (built %s)", version, buildTime),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return s.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().String("color", "auto", "When to use colors: auto, always, never")
	rootCmd.PersistentFlags().Bool("no-emoji", false, "Disable emoji in output")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log debug traces to stderr")

	rootCmd.AddCommand(newCreateCmd(s))
	rootCmd.AddCommand(newListCmd(s))
	rootCmd.AddCommand(newDeleteCmd(s))

	return rootCmd
}

// setup loads configuration, applies global flags on top of it and
// detects privileges once for the whole invocation.
func (s *session) setup(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("color") {
		cfg.Color, _ = flags.GetString("color")
	}
	if flags.Changed("no-emoji") {
		noEmoji, _ := flags.GetBool("no-emoji")
		cfg.Emoji = !noEmoji
	}
	if flags.Changed("verbose") {
		cfg.Verbose, _ = flags.GetBool("verbose")
	}

	if err := SetGlobalConfig(cfg.Color, cfg.Emoji); err != nil {
		return err
	}
	logger.Setup(logger.Config{Out: cmd.ErrOrStderr(), Verbose: cfg.Verbose})

	s.cfg = cfg
	s.priv = privilege.Detect()
	s.probe = probe.New(probe.WithWSLMarkers(cfg.WSLMarkers))

	logger.L().Debug("session.ready",
		"privilege_required", s.priv.Required,
		"elevated", s.priv.Elevated,
		"wsl_markers", cfg.WSLMarkers)
	return nil
}

// reportedError marks an error whose message was already shown (or
// deliberately silenced). Execute only turns it into an exit code.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

// report prints err through w unless silent, and marks it as reported.
func report(w *Writer, err error, silent bool) error {
	if !silent {
		writeError(w, err)
	}
	return &reportedError{err: err}
}

// writeError renders structured errors with their path and suggestion
// on separate lines.
func writeError(w *Writer, err error) {
	var lerr *linkerror.Error
	if errors.As(err, &lerr) {
		w.Writeln(Error(lerr.Err.Error()))
		if lerr.Path != "" {
			w.Item(Colored(lerr.Path, ColorRed))
		}
		if lerr.Suggestion != "" {
			w.Item(Info(lerr.Suggestion))
		}
		return
	}
	w.Writeln(Error(err.Error()))
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		var reported *reportedError
		if !errors.As(err, &reported) {
			_, _ = fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
