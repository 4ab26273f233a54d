package metrics

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Observe(t *testing.T) {
	m := New()

	m.Observe("GET", "/questions", 200, 15*time.Millisecond)
	m.Observe("GET", "/questions", 200, 5*time.Millisecond)
	m.Observe("GET", "/questions", 404, time.Millisecond)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "/questions", "200")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "/questions", "404")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.RequestDuration))
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.Observe("POST", "/quizzes", 400, time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, 200, rec.Code)
	assert.Contains(t, string(body), `trivia_http_requests_total{method="POST",route="/quizzes",status="400"} 1`)
	assert.Contains(t, string(body), "go_goroutines")
}
