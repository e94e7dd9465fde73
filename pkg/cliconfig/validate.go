package cliconfig

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/sqlutions-fatec/radarmock/pkg/chaos"
	"github.com/sqlutions-fatec/radarmock/pkg/logging"
)

// MaxMaxLogEntries bounds the request history size.
const MaxMaxLogEntries = 100000

// Validate checks every field and reports all problems at once.
func (c *Config) Validate() error {
	var errs []error

	if _, err := c.ListenAddr(); err != nil {
		errs = append(errs, err)
	}
	if strings.Contains(strings.Trim(c.Namespace, "/"), "//") {
		errs = append(errs, fmt.Errorf("namespace %q is malformed", c.Namespace))
	}
	if c.Latency < 0 {
		errs = append(errs, fmt.Errorf("latency %s must not be negative", c.Latency))
	}
	if _, err := c.UpstreamURL(); err != nil {
		errs = append(errs, err)
	}
	chaosCfg := c.ChaosConfig()
	if err := chaosCfg.Validate(); err != nil {
		errs = append(errs, err)
	}
	for _, g := range c.DisabledRoutes {
		if !doublestar.ValidatePattern(g) {
			errs = append(errs, fmt.Errorf("disabledRoutes: invalid pattern %q", g))
		}
	}
	if _, err := logging.ParseLevelStrict(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("logLevel: %w", err))
	}
	if _, err := logging.ParseFormatStrict(c.LogFormat); err != nil {
		errs = append(errs, fmt.Errorf("logFormat: %w", err))
	}
	if c.MaxLogEntries < 1 || c.MaxLogEntries > MaxMaxLogEntries {
		errs = append(errs, fmt.Errorf("maxLogEntries %d is out of range (1-%d)", c.MaxLogEntries, MaxMaxLogEntries))
	}
	return errors.Join(errs...)
}

// ListenAddr derives the listen address from the host and port of BaseURL.
// A URL without a port listens on the scheme's default port.
func (c *Config) ListenAddr() (string, error) {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return "", fmt.Errorf("baseUrl %q: %w", c.BaseURL, err)
	}
	port := u.Port()
	switch {
	case u.Scheme != "http" && u.Scheme != "https":
		return "", fmt.Errorf("baseUrl %q: scheme must be http or https", c.BaseURL)
	case u.Host == "":
		return "", fmt.Errorf("baseUrl %q: missing host", c.BaseURL)
	case port == "" && u.Scheme == "https":
		port = "443"
	case port == "":
		port = "80"
	}
	return net.JoinHostPort(u.Hostname(), port), nil
}

// UpstreamURL parses Upstream. It returns nil when no upstream is set.
func (c *Config) UpstreamURL() (*url.URL, error) {
	if c.Upstream == "" {
		return nil, nil
	}
	u, err := url.Parse(c.Upstream)
	if err != nil {
		return nil, fmt.Errorf("upstream %q: %w", c.Upstream, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("upstream %q must be an absolute http(s) URL", c.Upstream)
	}
	return u, nil
}

// ChaosConfig returns the failure-injector configuration.
func (c *Config) ChaosConfig() chaos.Config {
	return chaos.Config{Enabled: c.ChaosEnabled, FailureRates: c.FailureRates}
}

// RoutePrefix returns the namespace as an absolute path prefix.
func (c *Config) RoutePrefix() string {
	return "/" + strings.Trim(c.Namespace, "/")
}
