// Package seed provides the initial dataset the mock backend starts from.
//
// The default dataset is embedded in the binary. A directory of seed files
// can replace it at startup; each collection lives in its own file named
// after the collection (addresses, radars, registers, users) with a .json,
// .yaml or .yml extension. JSON files are read with the YAML decoder, so
// both formats share the same field names.
package seed

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"

	"golang.org/x/text/cases"
	"gopkg.in/yaml.v3"

	"github.com/sqlutions-fatec/radarmock/pkg/model"
)

//go:embed data/*.json
var embedded embed.FS

// Collection names, also used as seed file base names.
const (
	Addresses = "addresses"
	Radars    = "radars"
	Registers = "registers"
	Users     = "users"
)

// Collections lists every collection name in load order.
var Collections = []string{Addresses, Radars, Registers, Users}

var extensions = []string{".json", ".yaml", ".yml"}

// Snapshot is an immutable-by-convention copy of every collection.
type Snapshot struct {
	Addresses []model.Address  `json:"addresses" yaml:"addresses"`
	Radars    []model.Radar    `json:"radars" yaml:"radars"`
	Registers []model.Register `json:"registers" yaml:"registers"`
	Users     []model.User     `json:"users" yaml:"users"`
}

// Default returns the embedded dataset.
func Default() (*Snapshot, error) {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		return nil, err
	}
	return Load(sub)
}

// LoadDir reads a seed directory from disk. Missing collection files yield
// empty collections.
func LoadDir(dir string) (*Snapshot, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("seed directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("seed directory: %s is not a directory", dir)
	}
	return Load(os.DirFS(dir))
}

// Load reads every collection from the root of fsys and validates the result.
func Load(fsys fs.FS) (*Snapshot, error) {
	snap := &Snapshot{}
	targets := map[string]any{
		Addresses: &snap.Addresses,
		Radars:    &snap.Radars,
		Registers: &snap.Registers,
		Users:     &snap.Users,
	}
	for _, name := range Collections {
		if err := loadCollection(fsys, name, targets[name]); err != nil {
			return nil, err
		}
	}
	if err := snap.Validate(); err != nil {
		return nil, err
	}
	// Missing files leave nil slices; encode them as empty collections.
	return snap.Clone(), nil
}

func loadCollection(fsys fs.FS, name string, out any) error {
	for _, ext := range extensions {
		file := name + ext
		data, err := fs.ReadFile(fsys, file)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", file, err)
		}
		if err := yaml.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to parse %s: %w", path.Base(file), err)
		}
		return nil
	}
	return nil
}

// Validate checks ids, uniqueness and enumerations across all collections.
// Integer ids must be positive. Addresses are unique under Unicode case
// folding and emails are unique as written.
// Dangling references (a radar pointing at a missing address, a register
// pointing at a missing radar) are allowed and surface as null joins.
func (s *Snapshot) Validate() error {
	var errs []error

	fold := cases.Fold()
	addrIDs := make(map[int]bool, len(s.Addresses))
	addrs := make(map[string]bool, len(s.Addresses))
	for _, a := range s.Addresses {
		errs = append(errs, checkID("addresses", a.ID, addrIDs))
		if a.Addr == "" {
			errs = append(errs, fmt.Errorf("addresses: id %d has empty addr", a.ID))
			continue
		}
		key := fold.String(a.Addr)
		if addrs[key] {
			errs = append(errs, fmt.Errorf("addresses: duplicate addr %q", a.Addr))
		}
		addrs[key] = true
	}

	radarIDs := make(map[string]bool, len(s.Radars))
	for _, r := range s.Radars {
		if r.ID == "" {
			errs = append(errs, errors.New("radars: empty id"))
		}
		if radarIDs[r.ID] {
			errs = append(errs, fmt.Errorf("radars: duplicate id %q", r.ID))
		}
		radarIDs[r.ID] = true
	}

	regIDs := make(map[int]bool, len(s.Registers))
	for _, r := range s.Registers {
		errs = append(errs, checkID("registers", r.ID, regIDs))
		if !r.VehicleType.Valid() {
			errs = append(errs, fmt.Errorf("registers: id %d has unknown vehicle type %q", r.ID, r.VehicleType))
		}
	}

	userIDs := make(map[int]bool, len(s.Users))
	emails := make(map[string]bool, len(s.Users))
	for _, u := range s.Users {
		errs = append(errs, checkID("users", u.ID, userIDs))
		if emails[u.Email] {
			errs = append(errs, fmt.Errorf("users: duplicate email %q", u.Email))
		}
		emails[u.Email] = true
		if !u.Level.Valid() {
			errs = append(errs, fmt.Errorf("users: id %d has unknown level %q", u.ID, u.Level))
		}
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid seed: %w", err)
	}
	return nil
}

// checkID reports a non-positive or already seen id and records it.
func checkID(collection string, id int, seen map[int]bool) error {
	if id < 1 {
		return fmt.Errorf("%s: id %d must be positive", collection, id)
	}
	if seen[id] {
		return fmt.Errorf("%s: duplicate id %d", collection, id)
	}
	seen[id] = true
	return nil
}

// Clone returns a deep copy of the snapshot.
func (s *Snapshot) Clone() *Snapshot {
	return &Snapshot{
		Addresses: clone(s.Addresses),
		Radars:    clone(s.Radars),
		Registers: clone(s.Registers),
		Users:     clone(s.Users),
	}
}

// clone copies a slice of pointer-free values, never returning nil.
func clone[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}
