package metrics

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T, m *Metrics) string {
	t.Helper()
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	return string(body)
}

func TestObserveOperations(t *testing.T) {
	m := New()
	m.Observe(context.Background(), "planting", true, time.Millisecond)
	m.Observe(context.Background(), "planting", true, time.Millisecond)
	m.Observe(context.Background(), "diet", false, time.Millisecond)

	body := scrape(t, m)
	assert.Contains(t, body, `verdearido_operations_total{op="planting",outcome="success"} 2`)
	assert.Contains(t, body, `verdearido_operations_total{op="diet",outcome="error"} 1`)
	assert.Contains(t, body, `verdearido_operation_duration_seconds_count{op="planting"} 2`)
}

func TestObserveHTTP(t *testing.T) {
	m := New()
	m.ObserveHTTP(http.MethodGet, "/terrains/{id}", http.StatusNotFound, 5*time.Millisecond)

	body := scrape(t, m)
	assert.Contains(t, body, `verdearido_http_requests_total{code="404",method="GET",route="/terrains/{id}"} 1`)
	assert.Contains(t, body, `verdearido_http_request_duration_seconds_count{method="GET",route="/terrains/{id}"} 1`)
}

func TestInstancesAreIndependent(t *testing.T) {
	a, b := New(), New()
	a.Observe(context.Background(), "grazing", true, 0)

	assert.NotContains(t, scrape(t, b), `op="grazing"`)
}

func TestDiscard(t *testing.T) {
	var r Recorder = Discard{}
	r.Observe(context.Background(), "anything", false, time.Second)
}
