package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/sqlutions-fatec/radarmock/pkg/cliconfig"
	"github.com/sqlutions-fatec/radarmock/pkg/engine"
	"github.com/sqlutions-fatec/radarmock/pkg/logging"
	"github.com/sqlutions-fatec/radarmock/pkg/tracing"
)

// shutdownTimeout bounds graceful shutdown after a signal.
const shutdownTimeout = 5 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the mock API server",
	Long: `Start the mock API server on the host and port of the base URL.

Mocked routes answer after the configured latency. Requests no route
matches, and every request while interception is disabled, are forwarded
to --upstream when one is set.

Admin endpoints are mounted under ` + engine.AdminPrefix + `.`,
	Example: `  # Serve on the default http://localhost:8080/api
  radarmock serve

  # Fast responses, no injected failures
  radarmock serve --latency 0 --chaos=false

  # Always fail radar creation, forward the rest to the real API
  radarmock serve --failure-rate "POST /radars=100" --upstream http://localhost:3000`,
	RunE: runServe,
}

func init() {
	f := serveCmd.Flags()
	f.Duration("latency", cliconfig.DefaultLatency, "Simulated response time of mocked routes")
	f.String("upstream", "", "Forward unmatched requests to this URL")
	f.Bool("chaos", cliconfig.DefaultChaosEnabled, "Inject random failures")
	f.StringToInt("failure-rate", nil, "Override failure rates by route glob, e.g. \"GET /radars*=50\"")
	f.Bool("enabled", cliconfig.DefaultEnabled, "Intercept requests (false passes everything through)")
	f.Int("max-log-entries", cliconfig.DefaultMaxLogEntries, "Request history capacity")
	f.Bool("trace-stdout", cliconfig.DefaultTraceStdout, "Export dispatch spans to stdout")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log, err := newLogger(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	addr, err := cfg.ListenAddr()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.Init(ctx, tracing.Config{
		Enabled:     cfg.TraceStdout,
		ServiceName: tracing.DefaultServiceName,
		Writer:      cmd.OutOrStdout(),
	}, log)
	if err != nil {
		return fmt.Errorf("tracing: %w", err)
	}

	st, err := buildStack(cfg, log, stackOptions{})
	if err != nil {
		return err
	}
	srv := engine.NewServer(addr, st.Handler, engine.WithServerLogger(log))

	for key, source := range cfg.Sources {
		if source != cliconfig.SourceDefault {
			log.Debug("config value", "key", key, "source", source)
		}
	}
	logging.Component(log, "cli").Info("radarmock starting",
		"version", Version,
		"baseUrl", cfg.BaseURL,
		"routes", st.Engine.Registry().Len(),
		"chaos", cfg.ChaosEnabled,
		"latency", cfg.Latency,
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Run(gctx, shutdownTimeout)
	})
	g.Go(func() error {
		<-gctx.Done()
		tracing.ShutdownWithTimeout(context.WithoutCancel(gctx), shutdownTracing, log)
		return nil
	})
	return g.Wait()
}
