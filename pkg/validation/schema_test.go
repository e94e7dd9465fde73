package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var personSchema = []byte(`{
	"type": "object",
	"properties": {
		"name": {"type": "string", "minLength": 1},
		"age": {"type": "integer", "minimum": 0},
		"kind": {"enum": ["a", "b"]}
	},
	"required": ["name"],
	"additionalProperties": false
}`)

type person struct {
	Name string `json:"name"`
	Age  int    `json:"age"`
	Kind string `json:"kind"`
}

func TestCompile(t *testing.T) {
	t.Parallel()

	s, err := Compile("person", personSchema)
	require.NoError(t, err)
	assert.Equal(t, "person", s.Name())

	_, err = Compile("broken", []byte(`{"type": 12}`))
	assert.Error(t, err)

	_, err = Compile("not-json", []byte(`{`))
	assert.Error(t, err)

	assert.Panics(t, func() { MustCompile("broken", []byte(`{"type": 12}`)) })
}

func TestSchema_Validate(t *testing.T) {
	t.Parallel()

	s := MustCompile("person", personSchema)

	tests := []struct {
		name      string
		body      string
		wantValid bool
		wantCode  string
		wantField string
	}{
		{name: "valid", body: `{"name":"Ana","age":30,"kind":"a"}`, wantValid: true},
		{name: "missing required", body: `{"age":30}`, wantCode: ErrCodeSchema},
		{name: "empty body is empty object", body: "  ", wantCode: ErrCodeSchema},
		{name: "wrong type", body: `{"name":"Ana","age":"thirty"}`, wantCode: ErrCodeSchema, wantField: "age"},
		{name: "fractional integer", body: `{"name":"Ana","age":1.5}`, wantCode: ErrCodeSchema, wantField: "age"},
		{name: "enum", body: `{"name":"Ana","kind":"z"}`, wantCode: ErrCodeSchema, wantField: "kind"},
		{name: "unknown field", body: `{"name":"Ana","extra":1}`, wantCode: ErrCodeSchema},
		{name: "malformed", body: `{"name":`, wantCode: ErrCodeInvalidJSON},
		{name: "trailing data", body: `{"name":"Ana"} {}`, wantCode: ErrCodeInvalidJSON},
		{name: "not an object", body: `[1,2]`, wantCode: ErrCodeSchema},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res := s.Validate(tt.body)
			require.NotNil(t, res)
			assert.Equal(t, tt.wantValid, res.Valid, res.Error())
			if tt.wantValid {
				assert.False(t, res.HasErrors())
				return
			}
			require.True(t, res.HasErrors())
			assert.Equal(t, tt.wantCode, res.Errors[0].Code)
			assert.Equal(t, LocationBody, res.Errors[0].Location)
			if tt.wantField != "" {
				assert.Equal(t, tt.wantField, res.Errors[0].Field)
			}
			assert.NotEmpty(t, res.Error())
		})
	}
}

func TestDecode(t *testing.T) {
	t.Parallel()

	s := MustCompile("person", personSchema)

	p, res := Decode[person](s, `{"name":"Ana","age":30}`)
	require.True(t, res.Valid)
	assert.Equal(t, person{Name: "Ana", Age: 30}, p)

	p, res = Decode[person](s, `{"age":30}`)
	assert.False(t, res.Valid)
	assert.Equal(t, person{}, p)
}

func TestResultError(t *testing.T) {
	t.Parallel()

	r := &Result{Valid: true}
	assert.Equal(t, "validation failed", r.Error())

	r.AddError(&FieldError{Field: "addr", Message: "required"})
	r.AddError(&FieldError{Message: "Invalid JSON body"})
	assert.False(t, r.Valid)
	assert.Equal(t, "addr: required; Invalid JSON body", r.Error())
}
