package model

// Address is a physical location where radars are installed.
type Address struct {
	ID           int    `json:"id" yaml:"id"`
	Addr         string `json:"addr" yaml:"addr"`
	Neighborhood string `json:"neighborhood" yaml:"neighborhood"`
	Region       string `json:"region" yaml:"region"`
}

// AddressSummary is the short address join embedded in radar listings.
type AddressSummary struct {
	Addr         string `json:"addr"`
	Neighborhood string `json:"neighborhood"`
}

// Summary returns the short join view of the address.
func (a Address) Summary() *AddressSummary {
	return &AddressSummary{Addr: a.Addr, Neighborhood: a.Neighborhood}
}
