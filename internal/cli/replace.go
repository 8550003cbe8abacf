package cli

import (
	"github.com/spf13/cobra"

	"github.com/Rynaret/Orang/internal/content"
	"github.com/Rynaret/Orang/internal/ops"
)

func newReplaceCmd() *cobra.Command {
	f := &filterFlags{}
	var template string

	cmd := &cobra.Command{
		Use:   "replace [path]",
		Short: "Rewrite file content matched by --content, applying a replacement template",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := resolveProfile(globalFlags.Profile)
			if err != nil {
				return err
			}
			opts := ops.Options{
				DryRun:          f.effectiveDryRun(profile),
				ReplaceTemplate: content.Template{Raw: template},
			}
			return runVerb(cmd, rootArg(args), f, ops.VerbReplace, opts, profile, resultOptions{})
		},
	}

	cmd.Flags().StringVar(&template, "with", "", "replacement template ($1, ${name}, $$ references supported)")
	cmd.MarkFlagRequired("with")

	addNameFlags(cmd, f)
	addContentFlags(cmd, f)
	cmd.MarkFlagRequired("content")
	addRegexOptionFlags(cmd, f)
	addAttributeFlags(cmd, f)
	addPropertyFlags(cmd, f)
	addTraversalFlags(cmd, f)
	addDryRunFlag(cmd, f)
	return cmd
}
