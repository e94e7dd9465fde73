package resource

import (
	"math"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sqlutions-fatec/radarmock/pkg/model"
	"github.com/sqlutions-fatec/radarmock/pkg/seed"
	"github.com/sqlutions-fatec/radarmock/pkg/store"
)

// Register pagination defaults.
const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// RegisterQuery holds the filters and pagination of a register listing.
// Zero-valued filters are ignored; all others must hold at once.
type RegisterQuery struct {
	RadarID     string
	VehicleType model.VehicleType

	// StartDate and EndDate bound the timestamp inclusively. They compare
	// lexicographically, which orders ISO-8601 UTC timestamps correctly.
	StartDate string
	EndDate   string

	MinSpeed *float64
	MaxSpeed *float64

	Page  int
	Limit int
}

// ParseRegisterQuery reads a RegisterQuery from URL query parameters.
// Malformed numbers, non-positive page or limit and unknown vehicle types
// are validation errors.
func ParseRegisterQuery(v url.Values) (RegisterQuery, error) {
	q := RegisterQuery{
		RadarID:   strings.TrimSpace(v.Get("radarId")),
		StartDate: strings.TrimSpace(v.Get("startDate")),
		EndDate:   strings.TrimSpace(v.Get("endDate")),
		Page:      DefaultPage,
		Limit:     DefaultLimit,
	}

	if s := strings.TrimSpace(v.Get("vehicleType")); s != "" {
		vt := model.VehicleType(s)
		if !vt.Valid() {
			return q, &ValidationError{Field: "vehicleType", Message: "Invalid vehicle type"}
		}
		q.VehicleType = vt
	}

	var err error
	if q.MinSpeed, err = parseSpeed(v, "minSpeed"); err != nil {
		return q, err
	}
	if q.MaxSpeed, err = parseSpeed(v, "maxSpeed"); err != nil {
		return q, err
	}
	if q.Page, err = parsePositive(v, "page", DefaultPage); err != nil {
		return q, err
	}
	if q.Limit, err = parsePositive(v, "limit", DefaultLimit); err != nil {
		return q, err
	}
	return q, nil
}

func parseSpeed(v url.Values, key string) (*float64, error) {
	s := strings.TrimSpace(v.Get(key))
	if s == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, &ValidationError{Field: key, Message: "Invalid " + key}
	}
	return &f, nil
}

func parsePositive(v url.Values, key string, def int) (int, error) {
	s := strings.TrimSpace(v.Get(key))
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, &ValidationError{Field: key, Message: "Invalid " + key}
	}
	return n, nil
}

// Matches reports whether r satisfies every set filter.
func (q RegisterQuery) Matches(r model.Register) bool {
	switch {
	case q.RadarID != "" && r.RadarID != q.RadarID:
		return false
	case q.VehicleType != "" && r.VehicleType != q.VehicleType:
		return false
	case q.StartDate != "" && r.Timestamp < q.StartDate:
		return false
	case q.EndDate != "" && r.Timestamp > q.EndDate:
		return false
	case q.MinSpeed != nil && r.Speed < *q.MinSpeed:
		return false
	case q.MaxSpeed != nil && r.Speed > *q.MaxSpeed:
		return false
	}
	return true
}

// RegisterInput is the body of register create requests.
type RegisterInput struct {
	RadarID     string            `json:"radarId"`
	VehicleType model.VehicleType `json:"vehicleType"`
	Speed       float64           `json:"speed"`
}

// Registers is the register query engine. Registers are append-only
// observations and have no update operation.
type Registers struct {
	store *store.Store
	now   func() time.Time
}

// List filters, paginates and joins registers. Total counts the filtered
// set before slicing; pages past the end are empty.
func (e *Registers) List(q RegisterQuery) model.Page[model.RegisterListItem] {
	if q.Page < 1 {
		q.Page = DefaultPage
	}
	if q.Limit < 1 {
		q.Limit = DefaultLimit
	}

	filtered := make([]model.Register, 0, len(e.store.Registers))
	for _, r := range e.store.Registers {
		if q.Matches(r) {
			filtered = append(filtered, r)
		}
	}

	total := len(filtered)
	start, end := total, total
	// Compare by division; page*limit can overflow int.
	if q.Page-1 <= total/q.Limit {
		start = min((q.Page-1)*q.Limit, total)
		end = start + min(q.Limit, total-start)
	}
	totalPages := total / q.Limit
	if total%q.Limit != 0 {
		totalPages++
	}

	items := make([]model.RegisterListItem, 0, end-start)
	for _, r := range filtered[start:end] {
		items = append(items, e.listItem(r))
	}

	return model.Page[model.RegisterListItem]{
		Items:      items,
		Total:      total,
		Page:       q.Page,
		Limit:      q.Limit,
		TotalPages: totalPages,
	}
}

// Get returns the register joined with its radar location.
func (e *Registers) Get(id int) (model.RegisterDetail, error) {
	i := e.index(id)
	if i < 0 {
		return model.RegisterDetail{}, notFound("Register", id)
	}
	r := e.store.Registers[i]
	d := model.RegisterDetail{Register: r}
	if radar, ok := e.radars().find(r.RadarID); ok {
		d.Radar = &model.RegisterRadar{
			ID:         radar.ID,
			AddressID:  radar.AddressID,
			SpeedLimit: radar.SpeedLimit,
			Latitude:   radar.Latitude,
			Longitude:  radar.Longitude,
		}
	}
	return d, nil
}

// Create records a new observation stamped with the engine clock. The
// referenced radar must exist.
func (e *Registers) Create(in RegisterInput) (model.RegisterListItem, error) {
	radarID := strings.TrimSpace(in.RadarID)
	if radarID == "" || in.VehicleType == "" || in.Speed == 0 {
		return model.RegisterListItem{}, &ValidationError{Message: "Missing required fields"}
	}
	if !in.VehicleType.Valid() {
		return model.RegisterListItem{}, &ValidationError{Field: "vehicleType", Message: "Invalid vehicle type"}
	}
	if in.Speed < 0 || math.IsNaN(in.Speed) || math.IsInf(in.Speed, 0) {
		return model.RegisterListItem{}, &ValidationError{Field: "speed", Message: "Invalid speed"}
	}
	if _, ok := e.radars().find(radarID); !ok {
		return model.RegisterListItem{}, notFound("Radar", radarID)
	}

	r := model.Register{
		ID:          e.store.NextID(seed.Registers),
		RadarID:     radarID,
		Timestamp:   model.FormatTimestamp(e.now()),
		VehicleType: in.VehicleType,
		Speed:       in.Speed,
	}
	e.store.Registers = append(e.store.Registers, r)
	return e.listItem(r), nil
}

// Delete removes the register and returns it.
func (e *Registers) Delete(id int) (model.Register, error) {
	i := e.index(id)
	if i < 0 {
		return model.Register{}, notFound("Register", id)
	}
	r := e.store.Registers[i]
	e.store.Registers = remove(e.store.Registers, i)
	return r, nil
}

func (e *Registers) index(id int) int {
	return indexOf(e.store.Registers, func(r model.Register) bool { return r.ID == id })
}

func (e *Registers) radars() *Radars {
	return &Radars{store: e.store}
}

func (e *Registers) listItem(r model.Register) model.RegisterListItem {
	item := model.RegisterListItem{Register: r}
	if radar, ok := e.radars().find(r.RadarID); ok {
		item.Radar = radar.Summary()
	}
	return item
}
