package cli

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/spf13/cobra"
)

func newEscapeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "escape [text]",
		Short: "Escape regex metacharacters so a literal string can be used as a pattern",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := textArg(cmd, args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), regexp.QuoteMeta(text))
			return nil
		},
	}
}

// textArg returns the single positional argument, or the whole of stdin
// when no argument was given (so the verb composes with pipes).
func textArg(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(string(data), "\n"), nil
}
