package model

import "time"

// TimestampLayout is the ISO-8601 layout of register timestamps. It always
// renders UTC with millisecond precision so timestamps sort lexicographically.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// FormatTimestamp renders t in TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// VehicleType classifies the vehicle observed by a radar.
type VehicleType string

// Vehicle types.
const (
	VehicleCar         VehicleType = "Car"
	VehiclePickupTruck VehicleType = "PickupTruck"
	VehicleBus         VehicleType = "Bus"
	VehicleVan         VehicleType = "Van"
	VehicleLargeTruck  VehicleType = "LargeTruck"
	VehicleMotorcycle  VehicleType = "Motorcycle"
	VehicleUndefined   VehicleType = "Undefined"
)

// VehicleTypes lists every vehicle type in display order.
var VehicleTypes = []VehicleType{
	VehicleCar,
	VehiclePickupTruck,
	VehicleBus,
	VehicleVan,
	VehicleLargeTruck,
	VehicleMotorcycle,
	VehicleUndefined,
}

var vehicleLabels = map[VehicleType]string{
	VehicleCar:         "Carro",
	VehiclePickupTruck: "Camionete",
	VehicleBus:         "Ônibus",
	VehicleVan:         "Van",
	VehicleLargeTruck:  "Caminhão Grande",
	VehicleMotorcycle:  "Moto",
	VehicleUndefined:   "Indefinido",
}

// Valid reports whether v is a known vehicle type.
func (v VehicleType) Valid() bool {
	_, ok := vehicleLabels[v]
	return ok
}

// Label returns the label shown by the front-end.
func (v VehicleType) Label() string {
	if l, ok := vehicleLabels[v]; ok {
		return l
	}
	return string(v)
}

// Register is a single vehicle-speed observation.
type Register struct {
	ID          int         `json:"id" yaml:"id"`
	RadarID     string      `json:"radarId" yaml:"radarId"`
	Timestamp   string      `json:"timestamp" yaml:"timestamp"`
	VehicleType VehicleType `json:"vehicleType" yaml:"vehicleType"`
	Speed       float64     `json:"speed" yaml:"speed"`
}

// RegisterListItem is a register joined with its radar speed limit.
type RegisterListItem struct {
	Register
	Radar *RadarSummary `json:"radar"`
}

// RegisterRadar is the radar join embedded in a single register response.
type RegisterRadar struct {
	ID         string  `json:"id"`
	AddressID  int     `json:"addressId"`
	SpeedLimit int     `json:"speedLimit"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
}

// RegisterDetail is a register joined with its radar location.
type RegisterDetail struct {
	Register
	Radar *RegisterRadar `json:"radar"`
}
