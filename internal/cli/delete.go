package cli

import (
	"github.com/spf13/cobra"

	"github.com/Rynaret/Orang/internal/ops"
)

func newDeleteCmd() *cobra.Command {
	f := &filterFlags{}
	var recursive bool

	cmd := &cobra.Command{
		Use:   "delete [path]",
		Short: "Delete matched files/directories",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := resolveProfile(globalFlags.Profile)
			if err != nil {
				return err
			}
			opts := ops.Options{
				DryRun:    f.effectiveDryRun(profile),
				Recursive: recursive,
			}
			return runVerb(cmd, rootArg(args), f, ops.VerbDelete, opts, profile, resultOptions{})
		},
	}

	cmd.Flags().BoolVar(&recursive, "recursive", false, "allow deleting non-empty directories")

	addNameFlags(cmd, f)
	addRegexOptionFlags(cmd, f)
	addAttributeFlags(cmd, f)
	addEmptyFlags(cmd, f)
	addPropertyFlags(cmd, f)
	addTraversalFlags(cmd, f)
	addDryRunFlag(cmd, f)
	return cmd
}
