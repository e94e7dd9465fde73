package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/sqlutions-fatec/radarmock/pkg/api"
	"github.com/sqlutions-fatec/radarmock/pkg/chaos"
	"github.com/sqlutions-fatec/radarmock/pkg/cliconfig"
	"github.com/sqlutions-fatec/radarmock/pkg/engine"
	"github.com/sqlutions-fatec/radarmock/pkg/logging"
	"github.com/sqlutions-fatec/radarmock/pkg/metrics"
	"github.com/sqlutions-fatec/radarmock/pkg/requestlog"
	"github.com/sqlutions-fatec/radarmock/pkg/resource"
	"github.com/sqlutions-fatec/radarmock/pkg/seed"
	"github.com/sqlutions-fatec/radarmock/pkg/store"
)

// loadConfig resolves the effective configuration for cmd: files and
// environment first, then the --config file, then changed flags.
func loadConfig(cmd *cobra.Command) (*cliconfig.Config, error) {
	cfg, err := cliconfig.LoadAll()
	if err != nil {
		return nil, err
	}

	if configPath != "" {
		fileCfg, err := cliconfig.LoadConfigFile(configPath)
		if err != nil {
			return nil, err
		}
		cliconfig.MergeConfig(cfg, fileCfg, cliconfig.SourceFile)
		cfg.ConfigFile = configPath

		// Environment still wins over any file.
		envCfg := &cliconfig.Config{}
		if err := cliconfig.LoadEnvConfig(envCfg); err != nil {
			return nil, err
		}
		cliconfig.MergeConfig(cfg, envCfg, cliconfig.SourceEnv)
	}

	flagCfg, err := flagConfig(cmd)
	if err != nil {
		return nil, err
	}
	cliconfig.MergeConfig(cfg, flagCfg, cliconfig.SourceFlag)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration:\n%w", err)
	}
	return cfg, nil
}

// flagConfig collects the flags the user changed into a Config whose
// SetFields lists exactly those keys.
func flagConfig(cmd *cobra.Command) (*cliconfig.Config, error) {
	cfg := &cliconfig.Config{SetFields: make(map[string]bool)}
	flags := cmd.Flags()

	var errs []error
	str := func(name, key string, dst *string) {
		if flags.Lookup(name) == nil || !flags.Changed(name) {
			return
		}
		v, err := flags.GetString(name)
		errs = append(errs, err)
		*dst = v
		cfg.SetFields[key] = true
	}
	boolean := func(name, key string, dst *bool) {
		if flags.Lookup(name) == nil || !flags.Changed(name) {
			return
		}
		v, err := flags.GetBool(name)
		errs = append(errs, err)
		*dst = v
		cfg.SetFields[key] = true
	}

	str("base-url", "baseUrl", &cfg.BaseURL)
	str("namespace", "namespace", &cfg.Namespace)
	str("seed-dir", "seedDir", &cfg.SeedDir)
	str("upstream", "upstream", &cfg.Upstream)
	str("log-level", "logLevel", &cfg.LogLevel)
	str("log-format", "logFormat", &cfg.LogFormat)
	boolean("singular-aliases", "singularAliases", &cfg.SingularAliases)
	boolean("chaos", "chaosEnabled", &cfg.ChaosEnabled)
	boolean("enabled", "enabled", &cfg.Enabled)
	boolean("trace-stdout", "traceStdout", &cfg.TraceStdout)

	if flags.Lookup("latency") != nil && flags.Changed("latency") {
		v, err := flags.GetDuration("latency")
		errs = append(errs, err)
		cfg.Latency = v
		cfg.SetFields["latency"] = true
	}
	if flags.Lookup("max-log-entries") != nil && flags.Changed("max-log-entries") {
		v, err := flags.GetInt("max-log-entries")
		errs = append(errs, err)
		cfg.MaxLogEntries = v
		cfg.SetFields["maxLogEntries"] = true
	}
	if flags.Lookup("disable") != nil && flags.Changed("disable") {
		v, err := flags.GetStringSlice("disable")
		errs = append(errs, err)
		cfg.DisabledRoutes = v
		cfg.SetFields["disabledRoutes"] = true
	}
	if flags.Lookup("failure-rate") != nil && flags.Changed("failure-rate") {
		v, err := flags.GetStringToInt("failure-rate")
		errs = append(errs, err)
		cfg.FailureRates = v
		cfg.SetFields["failureRates"] = true
	}

	return cfg, errors.Join(errs...)
}

// newLogger builds the CLI logger writing to w.
func newLogger(cfg *cliconfig.Config, w io.Writer) (*slog.Logger, error) {
	return logging.FromStrings(cfg.LogLevel, cfg.LogFormat, w)
}

// loadSeed returns the configured seed dataset.
func loadSeed(cfg *cliconfig.Config) (*seed.Snapshot, error) {
	if cfg.SeedDir == "" {
		return seed.Default()
	}
	snap, err := seed.LoadDir(cfg.SeedDir)
	if err != nil {
		return nil, fmt.Errorf("seed %s: %w", cfg.SeedDir, err)
	}
	return snap, nil
}

// stack is every runtime component wired from one configuration.
type stack struct {
	Engine  *engine.Engine
	Handler *engine.Handler
	Metrics *metrics.Collector
}

// stackOptions tune buildStack for non-server commands.
type stackOptions struct {
	// latency overrides cfg.Latency when set.
	latency *time.Duration
	// clock pins server-assigned timestamps.
	clock func() time.Time
}

// buildStack wires seed, store, engines, routes, injector, request log,
// metrics and the HTTP handler.
func buildStack(cfg *cliconfig.Config, log *slog.Logger, so stackOptions) (*stack, error) {
	snap, err := loadSeed(cfg)
	if err != nil {
		return nil, err
	}
	st := store.New(snap)

	var resOpts []resource.Option
	if so.clock != nil {
		resOpts = append(resOpts, resource.WithClock(so.clock))
	}
	engines := resource.New(st, resOpts...)

	reg := engine.NewRegistry(cfg.RoutePrefix())
	if err := api.Register(reg, engines, api.Options{SingularAliases: cfg.SingularAliases}); err != nil {
		return nil, fmt.Errorf("registering routes: %w", err)
	}
	if err := reg.DisableMatching(cfg.DisabledRoutes...); err != nil {
		return nil, err
	}

	injector, err := chaos.NewInjector(cfg.ChaosConfig())
	if err != nil {
		return nil, fmt.Errorf("chaos: %w", err)
	}

	collector, err := metrics.NewCollector(prometheus.NewRegistry())
	if err != nil {
		return nil, fmt.Errorf("metrics: %w", err)
	}

	e := engine.New(reg,
		engine.WithLogger(log),
		engine.WithStore(st),
		engine.WithInjector(injector),
		engine.WithMetrics(collector),
		engine.WithRequestLog(requestlog.NewMemoryStore(cfg.MaxLogEntries)),
	)
	e.SetEnabled(cfg.Enabled)

	upstream, err := cfg.UpstreamURL()
	if err != nil {
		return nil, err
	}
	latency := cfg.Latency
	if so.latency != nil {
		latency = *so.latency
	}
	h := engine.NewHandler(e,
		engine.WithLatency(latency),
		engine.WithUpstream(upstream),
		engine.WithHandlerLogger(log),
	)

	return &stack{Engine: e, Handler: h, Metrics: collector}, nil
}
