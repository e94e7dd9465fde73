package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSchemas(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		body  string
		valid bool
	}{
		{"address", `{"addr":"Rua A","extra":true}`, true},
		{"address", `{"addr":42}`, false},
		{"radar", `{"id":"CAM010","addressId":1,"latitude":-23.1,"longitude":-45.9,"speedLimit":60}`, true},
		{"radar", `{"latitude":91}`, false},
		{"radar", `{"speedLimit":60.5}`, false},
		{"register", `{"radarId":"CAM001","vehicleType":"Car","speed":72.4}`, true},
		{"register", `{"speed":"fast"}`, false},
		{"user", `{"name":"Ana","email":"ana@radarmock.dev","password":"x","level":"Admin"}`, true},
		{"user", `[]`, false},
		{"user", ``, true},
	}

	all := All()
	for _, tt := range tests {
		t.Run(tt.name+" "+tt.body, func(t *testing.T) {
			t.Parallel()

			res := all[tt.name].Validate(tt.body)
			assert.Equal(t, tt.valid, res.Valid, res.Error())
		})
	}
}
