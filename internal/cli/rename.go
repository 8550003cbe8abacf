package cli

import (
	"github.com/spf13/cobra"

	"github.com/Rynaret/Orang/internal/content"
	"github.com/Rynaret/Orang/internal/ops"
)

func newRenameCmd() *cobra.Command {
	f := &filterFlags{}
	var template string

	cmd := &cobra.Command{
		Use:   "rename [path]",
		Short: "Rename matched files/directories by applying a template to their base name",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := resolveProfile(globalFlags.Profile)
			if err != nil {
				return err
			}
			opts := ops.Options{
				DryRun:         f.effectiveDryRun(profile),
				RenameTemplate: content.Template{Raw: template},
			}
			return runVerb(cmd, rootArg(args), f, ops.VerbRename, opts, profile, resultOptions{})
		},
	}

	cmd.Flags().StringVar(&template, "to", "", "rename template ($1, ${name}, $$ references supported)")
	cmd.MarkFlagRequired("to")

	addNameFlags(cmd, f)
	cmd.MarkFlagRequired("name")
	addRegexOptionFlags(cmd, f)
	addAttributeFlags(cmd, f)
	addPropertyFlags(cmd, f)
	addTraversalFlags(cmd, f)
	addDryRunFlag(cmd, f)
	return cmd
}
