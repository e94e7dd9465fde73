package chaos

import (
	"cmp"
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
)

// Config holds the runtime controls of an Injector.
type Config struct {
	// Enabled turns simulated failures on. Deterministic business errors
	// (rate Always) fire regardless.
	Enabled bool `json:"enabled" yaml:"enabled"`

	// FailureRates overrides the failure rate of routes whose
	// "METHOD /pattern" key matches the glob. Longer globs win.
	FailureRates map[string]int `json:"failureRates,omitempty" yaml:"failureRates,omitempty"`
}

// Validate checks globs and rate ranges.
func (c *Config) Validate() error {
	for pattern, rate := range c.FailureRates {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("failureRates: invalid pattern %q", pattern)
		}
		if rate < Never || rate > Always {
			return fmt.Errorf("failureRates[%q]: rate must be between %d and %d, got %d", pattern, Never, Always, rate)
		}
	}
	return nil
}

// Stats tracks injector decisions.
type Stats struct {
	TotalCalls       int64         `json:"totalCalls"`
	InjectedFailures int64         `json:"injectedFailures"`
	BusinessErrors   int64         `json:"businessErrors"`
	FailuresByStatus map[int]int64 `json:"failuresByStatus"`
}

// NewStats creates an empty stats tracker.
func NewStats() *Stats {
	return &Stats{FailuresByStatus: make(map[int]int64)}
}

// Decision is an Outcome annotated with how the rate was chosen.
type Decision struct {
	Outcome

	// Rate is the effective failure rate used for the draw.
	Rate int

	// Injected is true for a simulated failure, false for a business error
	// or a success.
	Injected bool
}

// Option configures an Injector.
type Option func(*Injector)

// WithRandomSource replaces the default random source.
func WithRandomSource(src RandomSource) Option {
	return func(i *Injector) {
		if src != nil {
			i.src = src
		}
	}
}

// Injector applies Wrap under runtime controls. It is safe for concurrent use.
type Injector struct {
	mu       sync.Mutex
	config   Config
	patterns []string
	src      RandomSource
	stats    *Stats
}

// NewInjector creates an injector from cfg.
func NewInjector(cfg Config, opts ...Option) (*Injector, error) {
	i := &Injector{
		src:   DefaultSource(),
		stats: NewStats(),
	}
	for _, opt := range opts {
		opt(i)
	}
	if err := i.UpdateConfig(cfg); err != nil {
		return nil, err
	}
	return i, nil
}

// UpdateConfig validates and installs cfg.
func (i *Injector) UpdateConfig(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	rates := maps.Clone(cfg.FailureRates)
	if rates == nil {
		rates = make(map[string]int)
	}
	patterns := slices.Collect(maps.Keys(rates))
	slices.SortFunc(patterns, func(a, b string) int {
		return cmp.Or(len(b)-len(a), strings.Compare(a, b))
	})

	i.mu.Lock()
	defer i.mu.Unlock()
	i.config = Config{Enabled: cfg.Enabled, FailureRates: rates}
	i.patterns = patterns
	return nil
}

// Config returns a copy of the current configuration.
func (i *Injector) Config() Config {
	i.mu.Lock()
	defer i.mu.Unlock()
	return Config{Enabled: i.config.Enabled, FailureRates: maps.Clone(i.config.FailureRates)}
}

// IsEnabled reports whether simulated failures are on.
func (i *Injector) IsEnabled() bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.config.Enabled
}

// SetEnabled toggles simulated failures.
func (i *Injector) SetEnabled(enabled bool) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.config.Enabled = enabled
}

// EffectiveRate returns the rate Wrap would use for route with the given
// handler rate.
func (i *Injector) EffectiveRate(route string, rate int) int {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.effectiveRate(route, rate)
}

func (i *Injector) effectiveRate(route string, rate int) int {
	rate = ClampRate(rate)
	if rate == Always {
		return rate
	}
	if !i.config.Enabled {
		return Never
	}
	for _, pattern := range i.patterns {
		if ok, _ := doublestar.Match(pattern, route); ok {
			return i.config.FailureRates[pattern]
		}
	}
	return rate
}

// Wrap decides the outcome of a call on route, a "METHOD /pattern" key.
func (i *Injector) Wrap(route string, p Params) Decision {
	i.mu.Lock()
	defer i.mu.Unlock()

	business := ClampRate(p.FailureRate) == Always
	p.FailureRate = i.effectiveRate(route, p.FailureRate)
	out := Wrap(i.src, p)

	i.stats.TotalCalls++
	d := Decision{Outcome: out, Rate: p.FailureRate}
	if out.Failed() {
		i.stats.FailuresByStatus[out.Error.Code]++
		if business {
			i.stats.BusinessErrors++
		} else {
			i.stats.InjectedFailures++
			d.Injected = true
		}
	}
	return d
}

// GetStats returns a copy of the statistics.
func (i *Injector) GetStats() Stats {
	i.mu.Lock()
	defer i.mu.Unlock()
	return Stats{
		TotalCalls:       i.stats.TotalCalls,
		InjectedFailures: i.stats.InjectedFailures,
		BusinessErrors:   i.stats.BusinessErrors,
		FailuresByStatus: maps.Clone(i.stats.FailuresByStatus),
	}
}

// ResetStats clears the statistics.
func (i *Injector) ResetStats() {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.stats = NewStats()
}
