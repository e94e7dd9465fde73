package resource

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sqlutions-fatec/radarmock/pkg/model"
	"github.com/sqlutions-fatec/radarmock/pkg/seed"
	"github.com/sqlutions-fatec/radarmock/pkg/store"
)

var fixedNow = time.Date(2025, 6, 1, 12, 0, 0, 500_000_000, time.UTC)

func newEngines(t *testing.T, snap *seed.Snapshot) (*Engines, *store.Store) {
	t.Helper()
	s := store.New(snap)
	return New(s, WithClock(func() time.Time { return fixedNow })), s
}

func defaultEngines(t *testing.T) (*Engines, *store.Store) {
	t.Helper()
	snap, err := seed.Default()
	require.NoError(t, err)
	return newEngines(t, snap)
}

func TestStatusOf(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 404, StatusOf(&NotFoundError{Resource: "Radar"}))
	assert.Equal(t, 400, StatusOf(&ConflictError{Resource: "Radar"}))
	assert.Equal(t, 400, StatusOf(&ValidationError{Message: "bad"}))
	assert.Equal(t, 0, StatusOf(errors.New("plain")))

	var nf *NotFoundError
	wrapped := errors.Join(errors.New("ctx"), &NotFoundError{Resource: "User", ID: "9"})
	require.ErrorAs(t, wrapped, &nf)
	assert.Equal(t, "9", nf.ID)
	assert.Equal(t, "User not found", nf.Error())
}

func TestErrorMessages(t *testing.T) {
	t.Parallel()

	assert.Equal(t, `Radar id "X" already exists`, (&ConflictError{Resource: "Radar", Field: "id", Value: "X"}).Error())
	assert.Equal(t, "Email already exists", emailConflict("a@b").Error())
}

func TestIDAssignment(t *testing.T) {
	t.Parallel()

	e, s := defaultEngines(t)

	maxBefore := 0
	for _, u := range s.Users {
		maxBefore = max(maxBefore, u.ID)
	}
	u, err := e.Users.Create(UserInput{Name: "Nova", Email: "nova@radarmock.dev", Password: "pw", Level: model.LevelManager})
	require.NoError(t, err)
	assert.Equal(t, maxBefore+1, u.ID)

	maxBefore = 0
	for _, r := range s.Registers {
		maxBefore = max(maxBefore, r.ID)
	}
	r, err := e.Registers.Create(RegisterInput{RadarID: "CAM002", VehicleType: model.VehicleBus, Speed: 33})
	require.NoError(t, err)
	assert.Equal(t, maxBefore+1, r.ID)
}

func TestDeleteThenGet(t *testing.T) {
	t.Parallel()

	e, s := defaultEngines(t)

	before := len(s.Addresses)
	_, err := e.Addresses.Delete(2)
	require.NoError(t, err)
	assert.Len(t, s.Addresses, before-1)
	_, err = e.Addresses.Get(2)
	assert.IsType(t, &NotFoundError{}, err)

	_, err = e.Radars.Delete("CAM003")
	require.NoError(t, err)
	_, err = e.Radars.Get("CAM003")
	assert.IsType(t, &NotFoundError{}, err)

	_, err = e.Registers.Delete(1)
	require.NoError(t, err)
	_, err = e.Registers.Get(1)
	assert.IsType(t, &NotFoundError{}, err)

	_, err = e.Users.Delete(1)
	require.NoError(t, err)
	_, err = e.Users.Get(1)
	assert.IsType(t, &NotFoundError{}, err)
}

func TestGetIsIdempotent(t *testing.T) {
	t.Parallel()

	e, s := defaultEngines(t)
	before := s.Snapshot()

	q := RegisterQuery{RadarID: "CAM001", Page: 2, Limit: 5}
	first := e.Registers.List(q)
	second := e.Registers.List(q)
	assert.Equal(t, first, second)

	assert.Equal(t, e.Radars.List(), e.Radars.List())
	assert.Equal(t, e.Users.List(), e.Users.List())
	_, _ = e.Addresses.Get(1)
	_, _ = e.Registers.Get(3)

	assert.Equal(t, before, s.Snapshot())
}
