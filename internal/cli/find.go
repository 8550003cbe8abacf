package cli

import (
	"github.com/spf13/cobra"

	"github.com/Rynaret/Orang/internal/ops"
)

func newFindCmd() *cobra.Command {
	f := &filterFlags{}
	var sortSpec string
	var maxCount int
	var displaySpec string

	cmd := &cobra.Command{
		Use:   "find [path]",
		Short: "List files and directories matching name/extension/attribute/property filters",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := resolveProfile(globalFlags.Profile)
			if err != nil {
				return err
			}
			sort, err := parseSortDescriptors(sortSpec)
			if err != nil {
				return err
			}
			ro := resultOptions{
				Sort:     sort,
				MaxCount: maxCount,
				Columns:  parseDisplayColumns(displaySpec),
			}
			return runVerb(cmd, rootArg(args), f, ops.VerbFind, ops.Options{}, profile, ro)
		},
	}

	cmd.Flags().StringVar(&sortSpec, "sort", "", "comma-separated sort descriptors, e.g. \"name,-size\" (prefix a field with - for descending)")
	cmd.Flags().IntVar(&maxCount, "max-count", 0, "cap the number of results shown (0 = unbounded)")
	cmd.Flags().StringVar(&displaySpec, "display", "", "comma-separated property columns to show alongside each match, e.g. \"size\"")

	addNameFlags(cmd, f)
	addRegexOptionFlags(cmd, f)
	addAttributeFlags(cmd, f)
	addEmptyFlags(cmd, f)
	addPropertyFlags(cmd, f)
	addTraversalFlags(cmd, f)
	return cmd
}

func rootArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "."
}
