package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Rynaret/Orang/internal/config"
	"github.com/Rynaret/Orang/internal/orangerr"
	syncpkg "github.com/Rynaret/Orang/internal/sync"
)

func newSyncCmd() *cobra.Command {
	f := &filterFlags{}
	var right string
	var conflict string
	var compare []string
	var dryRun bool
	var noPrompt bool

	cmd := &cobra.Command{
		Use:   "sync [left]",
		Short: "Bidirectionally synchronize two directory trees",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := resolveProfile(globalFlags.Profile)
			if err != nil {
				return err
			}

			fsf, err := f.buildFileSystemFilter(profile)
			if err != nil {
				return err
			}
			dirFilter, err := f.directoryFilter(profile)
			if err != nil {
				return err
			}

			res, err := resolveConflict(conflict, profile)
			if err != nil {
				return err
			}
			cmp, err := resolveCompare(compare, profile)
			if err != nil {
				return err
			}

			var prompter syncpkg.Prompter
			if res == syncpkg.Ask && !noPrompt {
				prompter = syncpkg.InteractivePrompter{}
			}

			opts := syncpkg.Options{
				Left:            rootArg(args),
				Right:           right,
				FileFilter:      fsf,
				DirectoryFilter: dirFilter,
				Compare:         cmp,
				Conflict:        res,
				DryRun:          dryRun || f.effectiveDryRun(profile),
				Prompter:        prompter,
			}

			reporter := newConsoleReporter(cmd.OutOrStdout())
			result, err := syncpkg.Run(cmd.Context(), opts, reporter)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "copied=%d updated=%d deleted=%d renamed=%d skipped=%d errors=%d\n",
				result.Copied, result.Updated, result.Deleted, result.Renamed, result.Skipped, result.Errors)
			if result.Errors > 0 {
				return orangerr.IO("", orangerr.CauseWriteFailed, fmt.Errorf("sync finished with %d errors", result.Errors))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&right, "right", "", "the other directory to synchronize with")
	cmd.MarkFlagRequired("right")
	cmd.Flags().StringVar(&conflict, "conflict", "", `conflict resolution when mtime doesn't decide: "left", "right", or "ask" (default from profile, else "ask")`)
	cmd.Flags().StringSliceVar(&compare, "compare", nil, "comparison criteria: attributes, content, modified-time, size (default from profile; attributes is accepted but not compared for files)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "report what would change without writing anything")
	cmd.Flags().BoolVar(&noPrompt, "no-prompt", false, "treat an unresolved ask-conflict as cancel instead of prompting")

	addNameFlags(cmd, f)
	addRegexOptionFlags(cmd, f)
	addAttributeFlags(cmd, f)
	return cmd
}

func resolveConflict(flagValue string, profile *config.Profile) (syncpkg.ConflictResolution, error) {
	v := flagValue
	if v == "" && profile != nil && profile.Conflict != nil {
		v = *profile.Conflict
	}
	switch v {
	case "", "ask":
		return syncpkg.Ask, nil
	case "left":
		return syncpkg.LeftWins, nil
	case "right":
		return syncpkg.RightWins, nil
	default:
		return 0, orangerr.UnknownEnum("--conflict", v)
	}
}

func resolveCompare(flagValues []string, profile *config.Profile) (syncpkg.CompareOption, error) {
	values := flagValues
	if len(values) == 0 && profile != nil {
		values = profile.Compare
	}
	if len(values) == 0 {
		values = []string{"content", "modified_time", "size"}
	}

	var opt syncpkg.CompareOption
	for _, v := range values {
		switch v {
		case "attributes":
			opt |= syncpkg.CompareAttributes
		case "content":
			opt |= syncpkg.CompareContent
		case "modified-time", "modified_time":
			opt |= syncpkg.CompareModifiedTime
		case "size":
			opt |= syncpkg.CompareSize
		default:
			return 0, orangerr.UnknownEnum("--compare", v)
		}
	}
	return opt, nil
}
