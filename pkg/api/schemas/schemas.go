// Package schemas holds the JSON Schemas of the mock API request bodies.
//
// The schemas check shape only: field types and ranges. Required fields
// and enum membership are business rules enforced by the resource engines,
// which own the error messages the front-end displays.
package schemas

import (
	"embed"

	"github.com/sqlutions-fatec/radarmock/pkg/validation"
)

//go:embed *.json
var files embed.FS

var (
	Address  = mustLoad("address")
	Radar    = mustLoad("radar")
	Register = mustLoad("register")
	User     = mustLoad("user")
)

// All returns every schema keyed by name.
func All() map[string]*validation.Schema {
	return map[string]*validation.Schema{
		Address.Name():  Address,
		Radar.Name():    Radar,
		Register.Name(): Register,
		User.Name():     User,
	}
}

func mustLoad(name string) *validation.Schema {
	doc, err := files.ReadFile(name + ".json")
	if err != nil {
		panic(err)
	}
	return validation.MustCompile(name, doc)
}
