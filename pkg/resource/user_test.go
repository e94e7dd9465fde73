package resource

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sqlutions-fatec/radarmock/pkg/model"
	"github.com/sqlutions-fatec/radarmock/pkg/seed"
)

func userSnapshot() *seed.Snapshot {
	return &seed.Snapshot{Users: []model.User{
		{ID: 1, Name: "Ana", Email: "ana@x.dev", Password: "a-secret", Level: model.LevelAdmin},
		{ID: 2, Name: "Bia", Email: "bia@x.dev", Password: "b-secret", Level: model.LevelManager},
	}}
}

func assertNoPassword(t *testing.T, v any) {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "password")
	assert.NotContains(t, string(raw), "secret")
}

func TestUsers_PasswordNeverReturned(t *testing.T) {
	t.Parallel()

	e, _ := newEngines(t, userSnapshot())

	assertNoPassword(t, e.Users.List())

	u, err := e.Users.Get(1)
	require.NoError(t, err)
	assertNoPassword(t, u)

	u, err = e.Users.Create(UserInput{Name: "Caio", Email: "caio@x.dev", Password: "c-secret", Level: model.LevelManager})
	require.NoError(t, err)
	assertNoPassword(t, u)

	u, err = e.Users.Update(2, UserInput{Password: "new-secret"})
	require.NoError(t, err)
	assertNoPassword(t, u)

	u, err = e.Users.Delete(1)
	require.NoError(t, err)
	assertNoPassword(t, u)
}

func TestUsers_Create(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      UserInput
		wantErr any
	}{
		{name: "valid", in: UserInput{Name: "Caio", Email: "caio@x.dev", Password: "pw", Level: model.LevelManager}},
		{name: "email differs in case only", in: UserInput{Name: "Ana 2", Email: "ANA@x.dev", Password: "pw", Level: model.LevelAdmin}},
		{name: "duplicate email", in: UserInput{Name: "Ana 2", Email: "ana@x.dev", Password: "pw", Level: model.LevelAdmin}, wantErr: &ConflictError{}},
		{name: "partial body", in: UserInput{Email: "caio@x.dev"}},
		{name: "unknown level", in: UserInput{Name: "Caio", Email: "caio@x.dev", Password: "pw", Level: "Root"}, wantErr: &ValidationError{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e, s := newEngines(t, userSnapshot())
			u, err := e.Users.Create(tt.in)
			if tt.wantErr != nil {
				assert.IsType(t, tt.wantErr, err)
				assert.Len(t, s.Users, 2)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 3, u.ID)
			assert.Equal(t, tt.in.Password, s.Users[2].Password, "password is stored")
		})
	}
}

func TestUsers_UniqueEmailWithZeroID(t *testing.T) {
	t.Parallel()

	e, s := newEngines(t, &seed.Snapshot{Users: []model.User{
		{ID: 0, Name: "Ana", Email: "a@x", Level: model.LevelAdmin},
	}})

	_, err := e.Users.Create(UserInput{Name: "Ana 2", Email: "a@x", Password: "pw", Level: model.LevelAdmin})
	assert.IsType(t, &ConflictError{}, err)
	assert.Len(t, s.Users, 1)

	u, err := e.Users.Update(0, UserInput{Email: "a@x", Name: "Ana Maria"})
	require.NoError(t, err, "keeping its own email is not a conflict")
	assert.Equal(t, "Ana Maria", u.Name)
}

func TestUsers_Update(t *testing.T) {
	t.Parallel()

	e, s := newEngines(t, userSnapshot())

	u, err := e.Users.Update(2, UserInput{Name: "Beatriz"})
	require.NoError(t, err)
	assert.Equal(t, model.PublicUser{ID: 2, Name: "Beatriz", Email: "bia@x.dev", Level: model.LevelManager}, u)
	assert.Equal(t, "b-secret", s.Users[1].Password, "password kept when not supplied")

	_, err = e.Users.Update(2, UserInput{Password: "rotated", Level: model.LevelAdmin})
	require.NoError(t, err)
	assert.Equal(t, "rotated", s.Users[1].Password)
	assert.Equal(t, model.LevelAdmin, s.Users[1].Level)

	_, err = e.Users.Update(2, UserInput{Email: "ana@x.dev"})
	assert.IsType(t, &ConflictError{}, err)

	_, err = e.Users.Update(2, UserInput{Email: "bia@x.dev"})
	assert.NoError(t, err, "keeping own email is not a conflict")

	_, err = e.Users.Update(2, UserInput{Level: "Root"})
	assert.IsType(t, &ValidationError{}, err)

	_, err = e.Users.Update(42, UserInput{Name: "x"})
	assert.IsType(t, &NotFoundError{}, err)
}

func TestUsers_GetMissing(t *testing.T) {
	t.Parallel()

	e, _ := newEngines(t, userSnapshot())
	_, err := e.Users.Get(42)
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "User not found", nf.Error())
}
