package resource

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/sqlutions-fatec/radarmock/pkg/model"
	"github.com/sqlutions-fatec/radarmock/pkg/seed"
	"github.com/sqlutions-fatec/radarmock/pkg/store"
)

// AddressInput is the body of address create and update requests.
type AddressInput struct {
	Addr         string `json:"addr"`
	Neighborhood string `json:"neighborhood"`
	Region       string `json:"region"`
}

// Addresses is the address query engine.
type Addresses struct {
	store *store.Store
}

// List returns every address in insertion order.
func (e *Addresses) List() []model.Address {
	out := make([]model.Address, len(e.store.Addresses))
	copy(out, e.store.Addresses)
	return out
}

// Get returns the address with the given id.
func (e *Addresses) Get(id int) (model.Address, error) {
	i := e.index(id)
	if i < 0 {
		return model.Address{}, notFound("Address", id)
	}
	return e.store.Addresses[i], nil
}

// Create appends a new address. addr is required and must be unique
// ignoring case.
func (e *Addresses) Create(in AddressInput) (model.Address, error) {
	addr := strings.TrimSpace(in.Addr)
	if addr == "" {
		return model.Address{}, &ValidationError{Field: "addr", Message: "Address is required"}
	}
	if e.taken(addr, -1) {
		return model.Address{}, addrConflict(addr)
	}
	a := model.Address{
		ID:           e.store.NextID(seed.Addresses),
		Addr:         addr,
		Neighborhood: in.Neighborhood,
		Region:       in.Region,
	}
	e.store.Addresses = append(e.store.Addresses, a)
	return a, nil
}

// Update overwrites the non-empty fields of in. Renaming onto another
// address's addr is a conflict.
func (e *Addresses) Update(id int, in AddressInput) (model.Address, error) {
	i := e.index(id)
	if i < 0 {
		return model.Address{}, notFound("Address", id)
	}
	addr := strings.TrimSpace(in.Addr)
	if addr != "" && e.taken(addr, i) {
		return model.Address{}, addrConflict(addr)
	}
	a := &e.store.Addresses[i]
	a.Addr = pick(a.Addr, addr)
	a.Neighborhood = pick(a.Neighborhood, in.Neighborhood)
	a.Region = pick(a.Region, in.Region)
	return *a, nil
}

// Delete removes the address and returns it.
func (e *Addresses) Delete(id int) (model.Address, error) {
	i := e.index(id)
	if i < 0 {
		return model.Address{}, notFound("Address", id)
	}
	a := e.store.Addresses[i]
	e.store.Addresses = remove(e.store.Addresses, i)
	return a, nil
}

func (e *Addresses) index(id int) int {
	return indexOf(e.store.Addresses, func(a model.Address) bool { return a.ID == id })
}

// taken reports whether an address other than the one at index except
// uses addr under Unicode case folding. except -1 checks them all.
func (e *Addresses) taken(addr string, except int) bool {
	fold := cases.Fold()
	want := fold.String(addr)
	for i, a := range e.store.Addresses {
		if i != except && fold.String(a.Addr) == want {
			return true
		}
	}
	return false
}

func addrConflict(addr string) *ConflictError {
	return &ConflictError{Resource: "Address", Field: "addr", Value: addr, Message: "Address already exists"}
}
