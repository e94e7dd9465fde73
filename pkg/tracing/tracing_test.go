package tracing

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
)

func TestNewProvider_ExportsSpans(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	tp, err := NewProvider(context.Background(), Config{Enabled: true, ServiceName: "radarmock-test", Writer: &buf})
	require.NoError(t, err)

	_, span := tp.Tracer(InstrumentationName).Start(context.Background(), "radarmock.dispatch")
	span.SetAttributes(attribute.String("radarmock.route", "GET /radars"))
	span.End()

	require.NoError(t, tp.Shutdown(context.Background()))

	out := buf.String()
	assert.Contains(t, out, `"Name":"radarmock.dispatch"`)
	assert.Contains(t, out, "GET /radars")
	assert.Contains(t, out, "radarmock-test")
}

func TestShutdownWithTimeout_Nil(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() {
		ShutdownWithTimeout(context.Background(), nil, nil)
	})
}

func TestServiceName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, DefaultServiceName, serviceName(Config{}))
	assert.Equal(t, "edge", serviceName(Config{ServiceName: "edge"}))
}
