package cli

import (
	"github.com/spf13/cobra"

	"github.com/Rynaret/Orang/internal/ops"
)

func newCopyCmd() *cobra.Command {
	f := &filterFlags{}
	var dest string
	var overwrite bool

	cmd := &cobra.Command{
		Use:   "copy [path]",
		Short: "Copy matched files/directories to a destination, preserving relative structure",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := resolveProfile(globalFlags.Profile)
			if err != nil {
				return err
			}
			opts := ops.Options{
				DryRun:            f.effectiveDryRun(profile),
				Destination:       dest,
				ConflictOverwrite: overwrite,
			}
			return runVerb(cmd, rootArg(args), f, ops.VerbCopy, opts, profile, resultOptions{})
		},
	}

	cmd.Flags().StringVar(&dest, "to", "", "destination root directory")
	cmd.MarkFlagRequired("to")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "replace an existing destination instead of failing")

	addNameFlags(cmd, f)
	addRegexOptionFlags(cmd, f)
	addAttributeFlags(cmd, f)
	addPropertyFlags(cmd, f)
	addTraversalFlags(cmd, f)
	addDryRunFlag(cmd, f)
	return cmd
}
