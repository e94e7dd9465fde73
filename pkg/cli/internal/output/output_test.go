package output

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONAndYAML(t *testing.T) {
	t.Parallel()

	v := map[string]any{"id": "CAM001", "speedLimit": 60}

	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, v))
	assert.Equal(t, "{\n  \"id\": \"CAM001\",\n  \"speedLimit\": 60\n}\n", buf.String())

	buf.Reset()
	require.NoError(t, YAML(&buf, v))
	assert.Equal(t, "id: CAM001\nspeedLimit: 60\n", buf.String())
}

func TestTableAndWarn(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	tw := Table(&buf)
	fmt.Fprintln(tw, "METHOD\tPATTERN")
	fmt.Fprintln(tw, "DELETE\t/users/:id")
	require.NoError(t, tw.Flush())
	assert.Equal(t, "METHOD  PATTERN\nDELETE  /users/:id\n", buf.String())

	buf.Reset()
	Warn(&buf, "seed %s ignored", "extra.json")
	assert.Equal(t, "Warning: seed extra.json ignored\n", buf.String())
}
