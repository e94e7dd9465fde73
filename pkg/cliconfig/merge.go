package cliconfig

import (
	"maps"
	"slices"
)

// MergeConfig merges source into target, recording sourceType for every
// applied key. Strings, numbers and collections are applied when non-zero.
// Booleans and the latency are applied when listed in source.SetFields,
// or, for programmatic configs without SetFields, when non-zero.
func MergeConfig(target, source *Config, sourceType string) {
	if source == nil {
		return
	}
	if target.Sources == nil {
		target.Sources = make(map[string]string)
	}
	set := func(key string) { target.Sources[key] = sourceType }

	if isSet(source, "enabled", source.Enabled) {
		target.Enabled = source.Enabled
		set("enabled")
	}
	if source.BaseURL != "" {
		target.BaseURL = source.BaseURL
		set("baseUrl")
	}
	if source.Namespace != "" {
		target.Namespace = source.Namespace
		set("namespace")
	}
	if isSet(source, "latency", source.Latency != 0) {
		target.Latency = source.Latency
		set("latency")
	}
	if source.Upstream != "" {
		target.Upstream = source.Upstream
		set("upstream")
	}
	if source.SeedDir != "" {
		target.SeedDir = source.SeedDir
		set("seedDir")
	}
	if isSet(source, "chaosEnabled", source.ChaosEnabled) {
		target.ChaosEnabled = source.ChaosEnabled
		set("chaosEnabled")
	}
	if len(source.FailureRates) > 0 {
		if target.FailureRates == nil {
			target.FailureRates = make(map[string]int)
		}
		maps.Copy(target.FailureRates, source.FailureRates)
		set("failureRates")
	}
	if len(source.DisabledRoutes) > 0 {
		target.DisabledRoutes = slices.Clone(source.DisabledRoutes)
		set("disabledRoutes")
	}
	if isSet(source, "singularAliases", source.SingularAliases) {
		target.SingularAliases = source.SingularAliases
		set("singularAliases")
	}
	if source.LogLevel != "" {
		target.LogLevel = source.LogLevel
		set("logLevel")
	}
	if source.LogFormat != "" {
		target.LogFormat = source.LogFormat
		set("logFormat")
	}
	if source.MaxLogEntries != 0 {
		target.MaxLogEntries = source.MaxLogEntries
		set("maxLogEntries")
	}
	if isSet(source, "traceStdout", source.TraceStdout) {
		target.TraceStdout = source.TraceStdout
		set("traceStdout")
	}
	if source.ConfigFile != "" {
		target.ConfigFile = source.ConfigFile
	}
}

// isSet reports whether the key was explicitly present in cfg. Without
// SetFields, nonZero decides.
func isSet(cfg *Config, key string, nonZero bool) bool {
	if cfg.SetFields != nil {
		return cfg.SetFields[key]
	}
	return nonZero
}
