package cliconfig

import "time"

// Config is the complete configuration of the radarmock CLI.
type Config struct {
	// Enabled turns route interception on. When false every request is
	// passed through to the upstream.
	Enabled bool `yaml:"enabled" json:"enabled"`

	// BaseURL is the URL the front-end calls. The server listens on its
	// host and port.
	BaseURL string `yaml:"baseUrl" json:"baseUrl"`

	// Namespace is the path prefix routes are mounted under.
	Namespace string `yaml:"namespace" json:"namespace"`

	// Latency is the simulated response time of mocked routes.
	Latency time.Duration `yaml:"latency" json:"latency"`

	// Upstream receives requests no mock route matches.
	Upstream string `yaml:"upstream,omitempty" json:"upstream,omitempty"`

	// SeedDir replaces the embedded seed dataset.
	SeedDir string `yaml:"seedDir,omitempty" json:"seedDir,omitempty"`

	ChaosEnabled bool `yaml:"chaosEnabled" json:"chaosEnabled"`

	// FailureRates overrides route failure rates by "METHOD /pattern" glob.
	FailureRates map[string]int `yaml:"failureRates,omitempty" json:"failureRates,omitempty"`

	// DisabledRoutes switches off routes by "METHOD /pattern" glob.
	DisabledRoutes []string `yaml:"disabledRoutes,omitempty" json:"disabledRoutes,omitempty"`

	SingularAliases bool `yaml:"singularAliases" json:"singularAliases"`

	LogLevel      string `yaml:"logLevel" json:"logLevel"`
	LogFormat     string `yaml:"logFormat" json:"logFormat"`
	MaxLogEntries int    `yaml:"maxLogEntries" json:"maxLogEntries"`

	// TraceStdout exports dispatch spans to stdout.
	TraceStdout bool `yaml:"traceStdout" json:"traceStdout"`

	// ConfigFile is an explicit config file replacing the local one.
	ConfigFile string `yaml:"-" json:"configFile,omitempty"`

	// Sources tracks where each value came from, keyed by YAML name.
	Sources map[string]string `yaml:"-" json:"-"`

	// SetFields records the keys present in a loaded file, so an explicit
	// false can override a true.
	SetFields map[string]bool `yaml:"-" json:"-"`
}

// Config sources.
const (
	SourceDefault = "default"
	SourceEnv     = "env"
	SourceGlobal  = "global"
	SourceLocal   = "local"
	SourceFile    = "file"
	SourceFlag    = "flag"
)
