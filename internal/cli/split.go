package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Rynaret/Orang/internal/content"
	"github.com/Rynaret/Orang/internal/model"
	"github.com/Rynaret/Orang/internal/orangerr"
)

func newSplitCmd() *cobra.Command {
	var pattern string
	var ignoreCase bool

	cmd := &cobra.Command{
		Use:   "split [text]",
		Short: "Split text around regex matches, one part per line",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := textArg(cmd, args)
			if err != nil {
				return err
			}
			f, err := model.Compile(pattern, -1, "", false, model.FilterOptions{IgnoreCase: ignoreCase})
			if err != nil {
				return orangerr.Regex(pattern, err)
			}

			out := cmd.OutOrStdout()
			m := &content.Matcher{Filter: f, Text: text}
			last := 0
			for _, mr := range m.All() {
				fmt.Fprintln(out, text[last:mr.Index])
				last = mr.Index + mr.Length
			}
			fmt.Fprintln(out, text[last:])
			return nil
		},
	}

	cmd.Flags().StringVarP(&pattern, "pattern", "p", "", "regex whose matches separate the parts")
	cmd.MarkFlagRequired("pattern")
	cmd.Flags().BoolVarP(&ignoreCase, "ignore-case", "i", false, "case-insensitive matching")
	return cmd
}
