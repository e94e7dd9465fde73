package resource

import (
	"strings"

	"github.com/sqlutions-fatec/radarmock/pkg/model"
	"github.com/sqlutions-fatec/radarmock/pkg/store"
)

// RadarInput is the body of radar create and update requests. ID is only
// read on create.
type RadarInput struct {
	ID         string  `json:"id"`
	AddressID  int     `json:"addressId"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	SpeedLimit int     `json:"speedLimit"`
}

// Radars is the radar query engine.
type Radars struct {
	store *store.Store
}

// List returns every radar joined with its address summary.
func (e *Radars) List() []model.RadarListItem {
	out := make([]model.RadarListItem, 0, len(e.store.Radars))
	for _, r := range e.store.Radars {
		item := model.RadarListItem{Radar: r}
		if a, ok := e.address(r.AddressID); ok {
			item.Address = a.Summary()
		}
		out = append(out, item)
	}
	return out
}

// Get returns the radar joined with its full address.
func (e *Radars) Get(id string) (model.RadarDetail, error) {
	i := e.index(id)
	if i < 0 {
		return model.RadarDetail{}, notFound("Radar", id)
	}
	return e.detail(e.store.Radars[i]), nil
}

// Create inserts the radar as given. The id is client-chosen and unique.
func (e *Radars) Create(in RadarInput) (model.RadarDetail, error) {
	id := strings.TrimSpace(in.ID)
	if id == "" {
		return model.RadarDetail{}, &ValidationError{Field: "id", Message: "Radar ID is required"}
	}
	if in.SpeedLimit <= 0 {
		return model.RadarDetail{}, &ValidationError{Field: "speedLimit", Message: "Speed limit must be positive"}
	}
	if e.index(id) >= 0 {
		return model.RadarDetail{}, &ConflictError{Resource: "Radar", Field: "id", Value: id, Message: "Radar ID already exists"}
	}
	r := model.Radar{
		ID:         id,
		AddressID:  in.AddressID,
		Latitude:   in.Latitude,
		Longitude:  in.Longitude,
		SpeedLimit: in.SpeedLimit,
	}
	e.store.Radars = append(e.store.Radars, r)
	return e.detail(r), nil
}

// Update overwrites the non-zero location and limit fields of in.
func (e *Radars) Update(id string, in RadarInput) (model.RadarDetail, error) {
	i := e.index(id)
	if i < 0 {
		return model.RadarDetail{}, notFound("Radar", id)
	}
	if in.SpeedLimit < 0 {
		return model.RadarDetail{}, &ValidationError{Field: "speedLimit", Message: "Speed limit must be positive"}
	}
	r := &e.store.Radars[i]
	r.AddressID = pick(r.AddressID, in.AddressID)
	r.Latitude = pick(r.Latitude, in.Latitude)
	r.Longitude = pick(r.Longitude, in.Longitude)
	r.SpeedLimit = pick(r.SpeedLimit, in.SpeedLimit)
	return e.detail(*r), nil
}

// Delete removes the radar and returns it. Registers referencing it are
// kept and surface with a null radar join.
func (e *Radars) Delete(id string) (model.Radar, error) {
	i := e.index(id)
	if i < 0 {
		return model.Radar{}, notFound("Radar", id)
	}
	r := e.store.Radars[i]
	e.store.Radars = remove(e.store.Radars, i)
	return r, nil
}

func (e *Radars) index(id string) int {
	return indexOf(e.store.Radars, func(r model.Radar) bool { return r.ID == id })
}

// find returns the radar with the given id.
func (e *Radars) find(id string) (model.Radar, bool) {
	i := e.index(id)
	if i < 0 {
		return model.Radar{}, false
	}
	return e.store.Radars[i], true
}

func (e *Radars) address(id int) (model.Address, bool) {
	i := indexOf(e.store.Addresses, func(a model.Address) bool { return a.ID == id })
	if i < 0 {
		return model.Address{}, false
	}
	return e.store.Addresses[i], true
}

func (e *Radars) detail(r model.Radar) model.RadarDetail {
	d := model.RadarDetail{Radar: r}
	if a, ok := e.address(r.AddressID); ok {
		d.Address = &a
	}
	return d
}
