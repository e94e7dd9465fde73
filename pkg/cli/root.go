// Package cli implements the radarmock command-line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time via ldflags.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// Global flags.
var (
	jsonOutput bool
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "radarmock",
	Short: "Mock API for the traffic radar monitoring front-end",
	Long: `radarmock serves an in-memory imitation of the traffic monitoring back-end.

It answers the addresses, radars, registers and users routes from seeded
data, simulates latency and injects random failures so the front-end can be
exercised without the real service.

Configuration is read from the global config file, .radarmockrc.yaml,
RADARMOCK_* environment variables and flags, in increasing precedence.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("radarmock {{.Version}}\n")

	pf := rootCmd.PersistentFlags()
	pf.BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	pf.StringVar(&configPath, "config", "", "Path to a config file (replaces .radarmockrc.yaml)")
	pf.String("base-url", "", "URL the front-end calls; the server listens on its host and port")
	pf.String("namespace", "", "Path prefix the routes are mounted under")
	pf.String("seed-dir", "", "Directory with addresses, radars, registers and users seed files")
	pf.Bool("singular-aliases", false, "Also mount /address, /radar, /register and /user")
	pf.StringSlice("disable", nil, "Disable routes matching a \"METHOD /pattern\" glob (repeatable)")
	pf.String("log-level", "", "Log level (debug, info, warn, error)")
	pf.String("log-format", "", "Log format (text, json)")
}
