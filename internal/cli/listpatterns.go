package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/Rynaret/Orang/internal/config"
)

func newListPatternsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list-patterns",
		Short: "List the named profiles available in .orang.toml",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(config.DiscoverPath())
			if err != nil {
				return err
			}

			names := make([]string, 0, len(cfg.Profile)+1)
			for name := range cfg.Profile {
				names = append(names, name)
			}
			if _, ok := cfg.Profile["default"]; !ok {
				names = append(names, "default")
			}
			sort.Strings(names)

			out := cmd.OutOrStdout()
			for _, name := range names {
				p := cfg.Profile[name]
				if p != nil && p.Extends != nil && *p.Extends != "" {
					fmt.Fprintf(out, "%s (extends %s)\n", name, *p.Extends)
					continue
				}
				fmt.Fprintln(out, name)
			}
			return nil
		},
	}
}
