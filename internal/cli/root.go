// Package cli implements the Cobra command hierarchy for the orang CLI
// tool: one subcommand per verb (find, match, replace, rename, copy, move,
// delete, sync, escape, split, list-patterns), plus version and completion.
// The root command handles the
// cross-cutting concerns -- logging initialization and exit-code
// extraction -- common to every verb.
//
// Cross-cutting concerns (logging initialization, exit-code extraction) use
// the same PersistentPreRunE / Execute shape across every verb.
package cli

import (
	"errors"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Rynaret/Orang/internal/config"
	"github.com/Rynaret/Orang/internal/orangerr"
)

var globalFlags struct {
	Verbose bool
	Quiet   bool
	Profile string
}

var rootCmd = &cobra.Command{
	Use:   "orang",
	Short: "Search, filter, and transform filesystem trees.",
	Long: `Orang walks a directory tree applying regex filters on names,
extensions, attributes, properties, and file content, then displays,
copies, moves, renames, replaces, deletes, or bidirectionally syncs the
matched items.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := config.ResolveLogLevel(globalFlags.Verbose, globalFlags.Quiet)
		format := config.ResolveLogFormat()
		config.SetupLogging(level, format)
		slog.Debug("logging initialized", "level", level, "format", format)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&globalFlags.Verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&globalFlags.Quiet, "quiet", "q", false, "only log errors")
	rootCmd.PersistentFlags().StringVar(&globalFlags.Profile, "profile", "", "named profile from .orang.toml")

	rootCmd.AddCommand(newFindCmd())
	rootCmd.AddCommand(newMatchCmd())
	rootCmd.AddCommand(newReplaceCmd())
	rootCmd.AddCommand(newRenameCmd())
	rootCmd.AddCommand(newCopyCmd())
	rootCmd.AddCommand(newMoveCmd())
	rootCmd.AddCommand(newDeleteCmd())
	rootCmd.AddCommand(newSyncCmd())
	rootCmd.AddCommand(newEscapeCmd())
	rootCmd.AddCommand(newSplitCmd())
	rootCmd.AddCommand(newListPatternsCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
}

// Execute runs the root command and returns the process exit code:
// 0 success-with-matches, 1 success-no-matches, 2 failure.
func Execute() int {
	err := rootCmd.Execute()
	switch {
	case err == nil:
		return int(orangerr.ExitSuccess)
	case errors.Is(err, errNoMatches):
		return int(orangerr.ExitNoMatches)
	default:
		slog.Error(err.Error())
		return int(orangerr.CodeOf(err))
	}
}

// RootCmd returns the root cobra.Command, for testing and completion setup.
func RootCmd() *cobra.Command {
	return rootCmd
}

// resolveProfile loads .orang.toml (if present) and resolves the named
// profile (or "default" if name is empty), falling back to the built-in
// defaults when the file or profile is absent.
func resolveProfile(name string) (*config.Profile, error) {
	if name == "" {
		name = "default"
	}
	cfg, err := config.Load(config.DiscoverPath())
	if err != nil {
		return nil, err
	}
	res, err := config.ResolveProfile(name, cfg.Profile)
	if err != nil {
		return nil, err
	}
	if err := config.Validate(res.Profile); err != nil {
		return nil, err
	}
	return res.Profile, nil
}
