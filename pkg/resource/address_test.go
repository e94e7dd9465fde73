package resource

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sqlutions-fatec/radarmock/pkg/model"
	"github.com/sqlutions-fatec/radarmock/pkg/seed"
)

func TestAddresses_CreateIntoEmptyStore(t *testing.T) {
	t.Parallel()

	e, s := newEngines(t, &seed.Snapshot{})

	a, err := e.Addresses.Create(AddressInput{Addr: "Rua A"})
	require.NoError(t, err)
	assert.Equal(t, 1, a.ID)

	for _, dup := range []string{"Rua A", "rua a", "RUA A", "  Rua A "} {
		_, err = e.Addresses.Create(AddressInput{Addr: dup})
		var conflict *ConflictError
		require.ErrorAs(t, err, &conflict, dup)
		assert.Equal(t, "Address already exists", conflict.Error())
	}
	assert.Len(t, s.Addresses, 1)
}

func TestAddresses_UnicodeCaseFolding(t *testing.T) {
	t.Parallel()

	e, _ := newEngines(t, &seed.Snapshot{Addresses: []model.Address{{ID: 1, Addr: "Avenida São João"}}})

	_, err := e.Addresses.Create(AddressInput{Addr: "AVENIDA SÃO JOÃO"})
	assert.IsType(t, &ConflictError{}, err)
}

func TestAddresses_UniqueAddrWithZeroID(t *testing.T) {
	t.Parallel()

	e, s := newEngines(t, &seed.Snapshot{Addresses: []model.Address{
		{ID: 0, Addr: "Rua A"},
		{ID: 5, Addr: "Rua B"},
	}})

	_, err := e.Addresses.Create(AddressInput{Addr: "rua a"})
	assert.IsType(t, &ConflictError{}, err)
	_, err = e.Addresses.Update(5, AddressInput{Addr: "RUA A"})
	assert.IsType(t, &ConflictError{}, err)
	assert.Len(t, s.Addresses, 2)

	a, err := e.Addresses.Update(0, AddressInput{Addr: "RUA A", Region: "Sul"})
	require.NoError(t, err, "renaming onto its own addr is not a conflict")
	assert.Equal(t, "RUA A", a.Addr)
}

func TestAddresses_CreateRequiresAddr(t *testing.T) {
	t.Parallel()

	e, s := newEngines(t, &seed.Snapshot{})

	_, err := e.Addresses.Create(AddressInput{Addr: "   ", Region: "Sul"})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "addr", verr.Field)
	assert.Empty(t, s.Addresses)
}

func TestAddresses_Update(t *testing.T) {
	t.Parallel()

	snap := &seed.Snapshot{Addresses: []model.Address{
		{ID: 1, Addr: "Rua A", Neighborhood: "Centro", Region: "Sul"},
		{ID: 2, Addr: "Rua B", Neighborhood: "Vila", Region: "Norte"},
	}}

	tests := []struct {
		name    string
		id      int
		in      AddressInput
		want    model.Address
		wantErr any
	}{
		{
			name: "replace if truthy",
			id:   1,
			in:   AddressInput{Neighborhood: "Jardins"},
			want: model.Address{ID: 1, Addr: "Rua A", Neighborhood: "Jardins", Region: "Sul"},
		},
		{
			name: "rename keeps own addr in other case",
			id:   1,
			in:   AddressInput{Addr: "RUA A"},
			want: model.Address{ID: 1, Addr: "RUA A", Neighborhood: "Centro", Region: "Sul"},
		},
		{
			name:    "rename onto another address",
			id:      1,
			in:      AddressInput{Addr: "rua b"},
			wantErr: &ConflictError{},
		},
		{
			name:    "missing id",
			id:      99,
			in:      AddressInput{Addr: "Rua Z"},
			wantErr: &NotFoundError{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e, _ := newEngines(t, snap)
			got, err := e.Addresses.Update(tt.id, tt.in)
			if tt.wantErr != nil {
				assert.IsType(t, tt.wantErr, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			stored, err := e.Addresses.Get(tt.id)
			require.NoError(t, err)
			assert.Equal(t, tt.want, stored)
		})
	}
}

func TestAddresses_ListAndDelete(t *testing.T) {
	t.Parallel()

	e, s := newEngines(t, &seed.Snapshot{Addresses: []model.Address{{ID: 1, Addr: "A"}, {ID: 2, Addr: "B"}, {ID: 3, Addr: "C"}}})

	list := e.Addresses.List()
	list[0].Addr = "mutated"
	assert.Equal(t, "A", s.Addresses[0].Addr, "list returns a copy")

	removed, err := e.Addresses.Delete(2)
	require.NoError(t, err)
	assert.Equal(t, "B", removed.Addr)
	assert.Equal(t, []model.Address{{ID: 1, Addr: "A"}, {ID: 3, Addr: "C"}}, e.Addresses.List())

	_, err = e.Addresses.Delete(2)
	assert.IsType(t, &NotFoundError{}, err)
	assert.Len(t, s.Addresses, 2)
}
