package api

import (
	"context"

	"github.com/sqlutions-fatec/radarmock/pkg/api/schemas"
	"github.com/sqlutions-fatec/radarmock/pkg/engine"
	"github.com/sqlutions-fatec/radarmock/pkg/model"
	"github.com/sqlutions-fatec/radarmock/pkg/resource"
)

type handlers struct {
	e *resource.Engines
}

// Addresses

func (h *handlers) listAddresses(context.Context, *engine.Request) (engine.Reply, error) {
	return success(model.NewList(h.e.Addresses.List()), MsgListAddresses, RateList), nil
}

func (h *handlers) getAddress(_ context.Context, req *engine.Request) (engine.Reply, error) {
	id, err := intID(req, "Address")
	if err != nil {
		return result(nil, err, MsgGetAddress, RateGet)
	}
	a, err := h.e.Addresses.Get(id)
	return result(a, err, MsgGetAddress, RateGet)
}

func (h *handlers) createAddress(_ context.Context, req *engine.Request) (engine.Reply, error) {
	in, err := decode[resource.AddressInput](schemas.Address, req.Body)
	if err != nil {
		return engine.Reply{}, err
	}
	a, err := h.e.Addresses.Create(in)
	return result(a, err, MsgCreateAddress, RateCreate)
}

func (h *handlers) updateAddress(_ context.Context, req *engine.Request) (engine.Reply, error) {
	in, err := decode[resource.AddressInput](schemas.Address, req.Body)
	if err != nil {
		return engine.Reply{}, err
	}
	id, err := intID(req, "Address")
	if err != nil {
		return result(nil, err, MsgUpdateAddress, RateUpdate)
	}
	a, err := h.e.Addresses.Update(id, in)
	return result(a, err, MsgUpdateAddress, RateUpdate)
}

func (h *handlers) deleteAddress(_ context.Context, req *engine.Request) (engine.Reply, error) {
	id, err := intID(req, "Address")
	if err != nil {
		return result(nil, err, MsgDeleteAddress, RateDelete)
	}
	a, err := h.e.Addresses.Delete(id)
	return result(a, err, MsgDeleteAddress, RateDelete)
}

// Radars

func (h *handlers) listRadars(context.Context, *engine.Request) (engine.Reply, error) {
	return success(model.NewList(h.e.Radars.List()), MsgListRadars, RateList), nil
}

func (h *handlers) getRadar(_ context.Context, req *engine.Request) (engine.Reply, error) {
	r, err := h.e.Radars.Get(req.Params["id"])
	return result(r, err, MsgGetRadar, RateGet)
}

func (h *handlers) createRadar(_ context.Context, req *engine.Request) (engine.Reply, error) {
	in, err := decode[resource.RadarInput](schemas.Radar, req.Body)
	if err != nil {
		return engine.Reply{}, err
	}
	r, err := h.e.Radars.Create(in)
	return result(r, err, MsgCreateRadar, RateCreate)
}

func (h *handlers) updateRadar(_ context.Context, req *engine.Request) (engine.Reply, error) {
	in, err := decode[resource.RadarInput](schemas.Radar, req.Body)
	if err != nil {
		return engine.Reply{}, err
	}
	r, err := h.e.Radars.Update(req.Params["id"], in)
	return result(r, err, MsgUpdateRadar, RateUpdate)
}

func (h *handlers) deleteRadar(_ context.Context, req *engine.Request) (engine.Reply, error) {
	r, err := h.e.Radars.Delete(req.Params["id"])
	return result(r, err, MsgDeleteRadar, RateDelete)
}

// Registers

func (h *handlers) listRegisters(_ context.Context, req *engine.Request) (engine.Reply, error) {
	q, err := resource.ParseRegisterQuery(req.Query)
	if err != nil {
		return result(nil, err, MsgListRegisters, RateList)
	}
	return success(h.e.Registers.List(q), MsgListRegisters, RateList), nil
}

func (h *handlers) getRegister(_ context.Context, req *engine.Request) (engine.Reply, error) {
	id, err := intID(req, "Register")
	if err != nil {
		return result(nil, err, MsgGetRegister, RateGet)
	}
	r, err := h.e.Registers.Get(id)
	return result(r, err, MsgGetRegister, RateGet)
}

func (h *handlers) createRegister(_ context.Context, req *engine.Request) (engine.Reply, error) {
	in, err := decode[resource.RegisterInput](schemas.Register, req.Body)
	if err != nil {
		return engine.Reply{}, err
	}
	r, err := h.e.Registers.Create(in)
	return result(r, err, MsgCreateRegister, RateCreate)
}

func (h *handlers) deleteRegister(_ context.Context, req *engine.Request) (engine.Reply, error) {
	id, err := intID(req, "Register")
	if err != nil {
		return result(nil, err, MsgDeleteRegister, RateDelete)
	}
	r, err := h.e.Registers.Delete(id)
	return result(r, err, MsgDeleteRegister, RateDelete)
}

// Users

func (h *handlers) listUsers(context.Context, *engine.Request) (engine.Reply, error) {
	return success(model.NewList(h.e.Users.List()), MsgListUsers, RateUsers), nil
}

func (h *handlers) getUser(_ context.Context, req *engine.Request) (engine.Reply, error) {
	id, err := intID(req, "User")
	if err != nil {
		return result(nil, err, MsgGetUser, RateUsers)
	}
	u, err := h.e.Users.Get(id)
	return result(u, err, MsgGetUser, RateUsers)
}

func (h *handlers) createUser(_ context.Context, req *engine.Request) (engine.Reply, error) {
	in, err := decode[resource.UserInput](schemas.User, req.Body)
	if err != nil {
		return engine.Reply{}, err
	}
	u, err := h.e.Users.Create(in)
	return result(u, err, MsgCreateUser, RateUsers)
}

func (h *handlers) updateUser(_ context.Context, req *engine.Request) (engine.Reply, error) {
	in, err := decode[resource.UserInput](schemas.User, req.Body)
	if err != nil {
		return engine.Reply{}, err
	}
	id, err := intID(req, "User")
	if err != nil {
		return result(nil, err, MsgUpdateUser, RateUsers)
	}
	u, err := h.e.Users.Update(id, in)
	return result(u, err, MsgUpdateUser, RateUsers)
}

func (h *handlers) deleteUser(_ context.Context, req *engine.Request) (engine.Reply, error) {
	id, err := intID(req, "User")
	if err != nil {
		return result(nil, err, MsgDeleteUser, RateUsers)
	}
	u, err := h.e.Users.Delete(id)
	return result(u, err, MsgDeleteUser, RateUsers)
}
