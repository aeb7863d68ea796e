package cmd

import (
	"fmt"

	"pipeline-features/feature/features"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newExtractCmd() *cobra.Command {
	var (
		format   string
		suppress []string
	)

	extractCmd := &cobra.Command{
		Use:   "extract [config-file]",
		Short: "Print the features required by a pipeline configuration",
		Long: `Reads the configuration file, selects the decoder from its extension
(.json, .toml, .yaml, .yml) and prints the sorted feature list.

Output formats:
  lines  one feature per line (default)
  csv    comma separated, ready for a --features flag
  json   JSON array`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logg, err := setup()
			if err != nil {
				return err
			}
			defer logg.Sync()

			if format == "" {
				format = cfg.Extract.Format
			}
			if !features.IsValidFormat(format) {
				return fmt.Errorf("unknown output format %q", format)
			}

			svc := features.NewService(logg, append(cfg.Extract.Suppress, suppress...))
			list, err := svc.Extract(args[0])
			if err != nil {
				return err
			}

			logg.Debug("Writing features", zap.String("format", format), zap.Int("count", len(list)))
			return features.Write(cmd.OutOrStdout(), list, format)
		},
	}

	extractCmd.Flags().StringVarP(&format, "format", "f", "", "output format: lines, csv or json (default from EXTRACT_FORMAT)")
	extractCmd.Flags().StringSliceVar(&suppress, "suppress", nil, "additional features to leave out of the result")
	return extractCmd
}
