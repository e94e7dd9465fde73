package cliconfig

import "time"

// Default values.
const (
	DefaultEnabled         = true
	DefaultBaseURL         = "http://localhost:8080"
	DefaultNamespace       = "api"
	DefaultLatency         = 400 * time.Millisecond
	DefaultChaosEnabled    = true
	DefaultSingularAliases = false
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "text"
	DefaultMaxLogEntries   = 1000
	DefaultTraceStdout     = false
)

// NewDefault creates a Config with default values.
func NewDefault() *Config {
	cfg := &Config{
		Enabled:         DefaultEnabled,
		BaseURL:         DefaultBaseURL,
		Namespace:       DefaultNamespace,
		Latency:         DefaultLatency,
		ChaosEnabled:    DefaultChaosEnabled,
		SingularAliases: DefaultSingularAliases,
		LogLevel:        DefaultLogLevel,
		LogFormat:       DefaultLogFormat,
		MaxLogEntries:   DefaultMaxLogEntries,
		TraceStdout:     DefaultTraceStdout,
		Sources:         make(map[string]string),
	}
	for _, key := range []string{
		"enabled", "baseUrl", "namespace", "latency", "upstream", "seedDir",
		"chaosEnabled", "failureRates", "disabledRoutes", "singularAliases",
		"logLevel", "logFormat", "maxLogEntries", "traceStdout",
	} {
		cfg.Sources[key] = SourceDefault
	}
	return cfg
}
