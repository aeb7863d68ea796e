package cmd

import (
	"fmt"
	"maps"
	"slices"

	"pipeline-features/core/pipeline"
	"pipeline-features/feature/features"

	"github.com/spf13/cobra"
)

func newExceptionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "exceptions [section]",
		Short: "List component types that share a feature",
		Long:  `Prints the per-section table of component types mapped onto a shared feature name, as "section: type -> feature".`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sections := pipeline.Sections()
			if len(args) == 1 {
				section := pipeline.Section(args[0])
				if !slices.Contains(sections, section) {
					return fmt.Errorf("unknown section %q", args[0])
				}
				sections = []pipeline.Section{section}
			}

			cfg, logg, err := setup()
			if err != nil {
				return err
			}
			defer logg.Sync()

			tables := features.NewService(logg, cfg.Extract.Suppress).Exceptions()

			out := cmd.OutOrStdout()
			for _, section := range sections {
				table := tables[section]
				for _, componentType := range slices.Sorted(maps.Keys(table)) {
					fmt.Fprintf(out, "%s: %s -> %s\n", section, componentType, table[componentType])
				}
			}
			return nil
		},
	}
}
