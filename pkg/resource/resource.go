package resource

import (
	"time"

	"github.com/sqlutions-fatec/radarmock/pkg/store"
)

// Engines bundles the four query engines over one store.
type Engines struct {
	Addresses *Addresses
	Radars    *Radars
	Registers *Registers
	Users     *Users
}

// Option configures the engines.
type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock sets the clock used for server-assigned timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// New creates the engines over s.
func New(s *store.Store, opts ...Option) *Engines {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return &Engines{
		Addresses: &Addresses{store: s},
		Radars:    &Radars{store: s},
		Registers: &Registers{store: s, now: o.now},
		Users:     &Users{store: s},
	}
}

// pick returns in when it is non-zero, else cur.
func pick[T comparable](cur, in T) T {
	var zero T
	if in != zero {
		return in
	}
	return cur
}

func indexOf[T any](items []T, match func(T) bool) int {
	for i, it := range items {
		if match(it) {
			return i
		}
	}
	return -1
}

func remove[T any](items []T, i int) []T {
	return append(items[:i], items[i+1:]...)
}
