// Package store holds the mutable in-memory collections served by the mock
// backend.
//
// A Store is built from a seed snapshot and owns deep copies of every
// collection, so mutations never reach the snapshot and Reset can restore
// it. The Store performs no locking; callers serialize access (the engine
// dispatcher handles one request at a time).
package store

import (
	"github.com/sqlutions-fatec/radarmock/pkg/model"
	"github.com/sqlutions-fatec/radarmock/pkg/seed"
)

// Store is the per-process dataset. Collections keep insertion order.
type Store struct {
	Addresses []model.Address
	Radars    []model.Radar
	Registers []model.Register
	Users     []model.User

	snapshot  *seed.Snapshot
	highWater map[string]int
}

// New creates a store initialized from a deep copy of snap.
// A nil snapshot yields empty collections.
func New(snap *seed.Snapshot) *Store {
	if snap == nil {
		snap = &seed.Snapshot{}
	}
	s := &Store{snapshot: snap.Clone()}
	s.Reset()
	return s
}

// Reset discards every mutation and restores the seed snapshot.
func (s *Store) Reset() {
	c := s.snapshot.Clone()
	s.Addresses = c.Addresses
	s.Radars = c.Radars
	s.Registers = c.Registers
	s.Users = c.Users
	s.highWater = map[string]int{
		seed.Addresses: s.maxID(seed.Addresses),
		seed.Registers: s.maxID(seed.Registers),
		seed.Users:     s.maxID(seed.Users),
	}
}

// NextID reserves the next integer id of an integer-keyed collection.
// The id is one past the larger of the highest live id and the highest id
// ever handed out, so ids freed by deletion are not reused.
func (s *Store) NextID(collection string) int {
	next := max(s.maxID(collection), s.highWater[collection], 0) + 1
	s.highWater[collection] = next
	return next
}

func (s *Store) maxID(collection string) int {
	hi := 0
	switch collection {
	case seed.Addresses:
		for _, a := range s.Addresses {
			hi = max(hi, a.ID)
		}
	case seed.Registers:
		for _, r := range s.Registers {
			hi = max(hi, r.ID)
		}
	case seed.Users:
		for _, u := range s.Users {
			hi = max(hi, u.ID)
		}
	}
	return hi
}

// Counts reports the current size of every collection.
func (s *Store) Counts() map[string]int {
	return map[string]int{
		seed.Addresses: len(s.Addresses),
		seed.Radars:    len(s.Radars),
		seed.Registers: len(s.Registers),
		seed.Users:     len(s.Users),
	}
}

// Snapshot returns a deep copy of the current collections.
func (s *Store) Snapshot() *seed.Snapshot {
	return (&seed.Snapshot{
		Addresses: s.Addresses,
		Radars:    s.Radars,
		Registers: s.Registers,
		Users:     s.Users,
	}).Clone()
}

// Seed returns a deep copy of the snapshot the store was built from.
func (s *Store) Seed() *seed.Snapshot {
	return s.snapshot.Clone()
}
