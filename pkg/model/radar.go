package model

// Radar is a speed camera bound to an address.
// AddressID is a reference by value; a radar whose address row is missing is
// still valid and is served with a null address join.
type Radar struct {
	ID         string  `json:"id" yaml:"id"`
	AddressID  int     `json:"addressId" yaml:"addressId"`
	Latitude   float64 `json:"latitude" yaml:"latitude"`
	Longitude  float64 `json:"longitude" yaml:"longitude"`
	SpeedLimit int     `json:"speedLimit" yaml:"speedLimit"`
}

// RadarListItem is a radar joined with its address summary.
type RadarListItem struct {
	Radar
	Address *AddressSummary `json:"address"`
}

// RadarDetail is a radar joined with its full address.
type RadarDetail struct {
	Radar
	Address *Address `json:"address"`
}

// RadarSummary is the speed-limit join embedded in register listings.
type RadarSummary struct {
	ID         string `json:"id"`
	SpeedLimit int    `json:"speedLimit"`
}

// Summary returns the speed-limit join view of the radar.
func (r Radar) Summary() *RadarSummary {
	return &RadarSummary{ID: r.ID, SpeedLimit: r.SpeedLimit}
}
