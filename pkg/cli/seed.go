package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/sqlutions-fatec/radarmock/pkg/cli/internal/output"
	"github.com/sqlutions-fatec/radarmock/pkg/seed"
)

var seedFormat string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Print the seed dataset",
	Long: `Print the seed dataset the server starts from: the embedded one, or the
contents of --seed-dir after validation. The output is a starting point for
a custom seed directory.`,
	Example: `  radarmock seed
  radarmock seed --format yaml
  radarmock seed --seed-dir ./fixtures --json`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		snap, err := loadSeed(cfg)
		if err != nil {
			return err
		}
		format := seedFormat
		if jsonOutput {
			format = "json"
		}
		return writeSeed(cmd.OutOrStdout(), snap, format)
	},
}

func init() {
	seedCmd.Flags().StringVarP(&seedFormat, "format", "f", "json", "Output format (json, yaml)")
	rootCmd.AddCommand(seedCmd)
}

func writeSeed(w io.Writer, snap *seed.Snapshot, format string) error {
	switch format {
	case "json":
		return output.JSON(w, snap)
	case "yaml", "yml":
		return output.YAML(w, snap)
	default:
		return fmt.Errorf("unknown format %q (use json or yaml)", format)
	}
}
