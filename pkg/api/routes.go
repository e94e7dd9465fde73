package api

import (
	"net/http"

	"github.com/sqlutions-fatec/radarmock/pkg/engine"
	"github.com/sqlutions-fatec/radarmock/pkg/resource"
)

// Failure rates, in percent, of successful calls.
const (
	RateList   = 10
	RateGet    = 10
	RateCreate = 15
	RateUpdate = 15
	RateDelete = 10

	// RateUsers applies to every user route.
	RateUsers = 0
)

// Generic failure messages.
const (
	MsgListAddresses  = "Error fetching addresses"
	MsgGetAddress     = "Error fetching address details"
	MsgCreateAddress  = "Error creating address"
	MsgUpdateAddress  = "Error updating address"
	MsgDeleteAddress  = "Error deleting address"
	MsgListRadars     = "Error fetching radars"
	MsgGetRadar       = "Error fetching radar details"
	MsgCreateRadar    = "Error creating radar"
	MsgUpdateRadar    = "Error updating radar"
	MsgDeleteRadar    = "Error deleting radar"
	MsgListRegisters  = "Error fetching registers"
	MsgGetRegister    = "Error fetching register details"
	MsgCreateRegister = "Error creating register"
	MsgDeleteRegister = "Error deleting register"
	MsgListUsers      = "Error fetching users"
	MsgGetUser        = "Error fetching user details"
	MsgCreateUser     = "Error creating user"
	MsgUpdateUser     = "Error updating user"
	MsgDeleteUser     = "Error deleting user"
)

// Options controls route registration.
type Options struct {
	// SingularAliases also mounts every route under the singular resource
	// name ("/radar/:id" next to "/radars/:id").
	SingularAliases bool
}

type routeDef struct {
	method  string
	plural  string
	single  string
	suffix  string
	name    string
	status  int
	handler engine.HandlerFunc
}

// Register mounts the mock API on reg.
func Register(reg *engine.Registry, e *resource.Engines, opts Options) error {
	for _, d := range table(&handlers{e: e}) {
		patterns := []string{"/" + d.plural + d.suffix}
		if opts.SingularAliases {
			patterns = append(patterns, "/"+d.single+d.suffix)
		}
		for _, p := range patterns {
			if _, err := reg.Handle(d.method, p, d.handler,
				engine.WithName(d.name),
				engine.WithSuccessStatus(d.status),
			); err != nil {
				return err
			}
		}
	}
	return nil
}

func table(h *handlers) []routeDef {
	const id = "/:id"
	return []routeDef{
		{http.MethodGet, "addresses", "address", "", "list addresses", http.StatusOK, h.listAddresses},
		{http.MethodGet, "addresses", "address", id, "get address", http.StatusOK, h.getAddress},
		{http.MethodPost, "addresses", "address", "", "create address", http.StatusCreated, h.createAddress},
		{http.MethodPut, "addresses", "address", id, "update address", http.StatusOK, h.updateAddress},
		{http.MethodDelete, "addresses", "address", id, "delete address", http.StatusOK, h.deleteAddress},

		{http.MethodGet, "radars", "radar", "", "list radars", http.StatusOK, h.listRadars},
		{http.MethodGet, "radars", "radar", id, "get radar", http.StatusOK, h.getRadar},
		{http.MethodPost, "radars", "radar", "", "create radar", http.StatusCreated, h.createRadar},
		{http.MethodPut, "radars", "radar", id, "update radar", http.StatusOK, h.updateRadar},
		{http.MethodDelete, "radars", "radar", id, "delete radar", http.StatusOK, h.deleteRadar},

		{http.MethodGet, "registers", "register", "", "list registers", http.StatusOK, h.listRegisters},
		{http.MethodGet, "registers", "register", id, "get register", http.StatusOK, h.getRegister},
		{http.MethodPost, "registers", "register", "", "create register", http.StatusCreated, h.createRegister},
		{http.MethodDelete, "registers", "register", id, "delete register", http.StatusOK, h.deleteRegister},

		{http.MethodGet, "users", "user", "", "list users", http.StatusOK, h.listUsers},
		{http.MethodGet, "users", "user", id, "get user", http.StatusOK, h.getUser},
		{http.MethodPost, "users", "user", "", "create user", http.StatusCreated, h.createUser},
		{http.MethodPut, "users", "user", id, "update user", http.StatusOK, h.updateUser},
		{http.MethodDelete, "users", "user", id, "delete user", http.StatusOK, h.deleteUser},
	}
}
