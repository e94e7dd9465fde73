package cli

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sqlutions-fatec/radarmock/pkg/cli/internal/output"
	"github.com/sqlutions-fatec/radarmock/pkg/cliconfig"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration and where each value came from",
	Example: `  radarmock config
  RADARMOCK_LATENCY=0 radarmock config --json`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		return printConfig(cmd.OutOrStdout(), cfg, jsonOutput)
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}

// ConfigValue is one effective setting.
type ConfigValue struct {
	Key    string `json:"key"`
	Value  string `json:"value"`
	Source string `json:"source"`
}

func configValues(cfg *cliconfig.Config) []ConfigValue {
	rates := make([]string, 0, len(cfg.FailureRates))
	for _, k := range slices.Sorted(maps.Keys(cfg.FailureRates)) {
		rates = append(rates, k+"="+strconv.Itoa(cfg.FailureRates[k]))
	}
	values := []ConfigValue{
		{Key: "enabled", Value: strconv.FormatBool(cfg.Enabled)},
		{Key: "baseUrl", Value: cfg.BaseURL},
		{Key: "namespace", Value: cfg.Namespace},
		{Key: "latency", Value: cfg.Latency.String()},
		{Key: "upstream", Value: cfg.Upstream},
		{Key: "seedDir", Value: cfg.SeedDir},
		{Key: "chaosEnabled", Value: strconv.FormatBool(cfg.ChaosEnabled)},
		{Key: "failureRates", Value: strings.Join(rates, ",")},
		{Key: "disabledRoutes", Value: strings.Join(cfg.DisabledRoutes, ",")},
		{Key: "singularAliases", Value: strconv.FormatBool(cfg.SingularAliases)},
		{Key: "logLevel", Value: cfg.LogLevel},
		{Key: "logFormat", Value: cfg.LogFormat},
		{Key: "maxLogEntries", Value: strconv.Itoa(cfg.MaxLogEntries)},
		{Key: "traceStdout", Value: strconv.FormatBool(cfg.TraceStdout)},
	}
	for i := range values {
		values[i].Source = cfg.Sources[values[i].Key]
		if values[i].Source == "" {
			values[i].Source = cliconfig.SourceDefault
		}
	}
	return values
}

func printConfig(w io.Writer, cfg *cliconfig.Config, asJSON bool) error {
	values := configValues(cfg)
	if asJSON {
		return output.JSON(w, values)
	}
	if cfg.ConfigFile != "" {
		fmt.Fprintf(w, "Config file: %s\n\n", cfg.ConfigFile)
	}
	tw := output.Table(w)
	fmt.Fprintln(tw, "KEY\tVALUE\tSOURCE")
	for _, v := range values {
		value := v.Value
		if value == "" {
			value = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", v.Key, value, v.Source)
	}
	return tw.Flush()
}
