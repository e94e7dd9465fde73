package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/sqlutions-fatec/radarmock/pkg/cli/internal/output"
	"github.com/sqlutions-fatec/radarmock/pkg/engine"
	"github.com/sqlutions-fatec/radarmock/pkg/logging"
	"github.com/sqlutions-fatec/radarmock/pkg/model"
)

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "List the mocked routes",
	Example: `  radarmock routes
  radarmock routes --singular-aliases --disable "DELETE /**"
  radarmock routes --json`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		st, err := buildStack(cfg, logging.Nop(), stackOptions{})
		if err != nil {
			return err
		}
		return printRoutes(cmd.OutOrStdout(), st.Engine.Registry().Routes(), jsonOutput)
	},
}

func init() {
	rootCmd.AddCommand(routesCmd)
}

func printRoutes(w io.Writer, routes []engine.RouteInfo, asJSON bool) error {
	if asJSON {
		return output.JSON(w, model.NewList(routes))
	}
	tw := output.Table(w)
	fmt.Fprintln(tw, "METHOD\tPATH\tNAME\tSTATUS\tENABLED")
	for _, r := range routes {
		enabled := "yes"
		if !r.Enabled {
			enabled = "no"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n", r.Method, r.Path, r.Name, r.SuccessStatus, enabled)
	}
	return tw.Flush()
}
