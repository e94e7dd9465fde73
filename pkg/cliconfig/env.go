package cliconfig

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Environment variable names.
const (
	EnvEnabled         = "RADARMOCK_ENABLED"
	EnvBaseURL         = "RADARMOCK_BASE_URL"
	EnvNamespace       = "RADARMOCK_NAMESPACE"
	EnvLatency         = "RADARMOCK_LATENCY"
	EnvUpstream        = "RADARMOCK_UPSTREAM"
	EnvSeedDir         = "RADARMOCK_SEED_DIR"
	EnvChaosEnabled    = "RADARMOCK_CHAOS_ENABLED"
	EnvSingularAliases = "RADARMOCK_SINGULAR_ALIASES"
	EnvLogLevel        = "RADARMOCK_LOG_LEVEL"
	EnvLogFormat       = "RADARMOCK_LOG_FORMAT"
	EnvMaxLogEntries   = "RADARMOCK_MAX_LOG_ENTRIES"
	EnvTraceStdout     = "RADARMOCK_TRACE_STDOUT"
	EnvConfig          = "RADARMOCK_CONFIG"
)

// LoadEnvConfig applies the environment variables that are set.
// Malformed values are reported and leave the field unchanged.
func LoadEnvConfig(cfg *Config) error {
	return loadEnv(cfg, os.LookupEnv)
}

func loadEnv(cfg *Config, lookup func(string) (string, bool)) error {
	if cfg.Sources == nil {
		cfg.Sources = make(map[string]string)
	}
	var errs []error

	str := func(env, key string, dst *string) {
		if v, ok := lookup(env); ok && v != "" {
			*dst = v
			cfg.Sources[key] = SourceEnv
		}
	}
	boolean := func(env, key string, dst *bool) {
		v, ok := lookup(env)
		if !ok || v == "" {
			return
		}
		b, err := parseBool(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", env, err))
			return
		}
		*dst = b
		cfg.Sources[key] = SourceEnv
	}

	boolean(EnvEnabled, "enabled", &cfg.Enabled)
	str(EnvBaseURL, "baseUrl", &cfg.BaseURL)
	str(EnvNamespace, "namespace", &cfg.Namespace)
	if v, ok := lookup(EnvLatency); ok && v != "" {
		if d, err := time.ParseDuration(v); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvLatency, err))
		} else {
			cfg.Latency = d
			cfg.Sources["latency"] = SourceEnv
		}
	}
	str(EnvUpstream, "upstream", &cfg.Upstream)
	str(EnvSeedDir, "seedDir", &cfg.SeedDir)
	boolean(EnvChaosEnabled, "chaosEnabled", &cfg.ChaosEnabled)
	boolean(EnvSingularAliases, "singularAliases", &cfg.SingularAliases)
	str(EnvLogLevel, "logLevel", &cfg.LogLevel)
	str(EnvLogFormat, "logFormat", &cfg.LogFormat)
	if v, ok := lookup(EnvMaxLogEntries); ok && v != "" {
		if n, err := strconv.Atoi(v); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvMaxLogEntries, err))
		} else {
			cfg.MaxLogEntries = n
			cfg.Sources["maxLogEntries"] = SourceEnv
		}
	}
	boolean(EnvTraceStdout, "traceStdout", &cfg.TraceStdout)
	str(EnvConfig, "configFile", &cfg.ConfigFile)

	return errors.Join(errs...)
}

func parseBool(v string) (bool, error) {
	switch v {
	case "yes", "on":
		return true, nil
	case "no", "off":
		return false, nil
	}
	return strconv.ParseBool(v)
}
