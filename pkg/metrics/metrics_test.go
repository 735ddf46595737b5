package metrics

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	m := New()

	m.ObserveRequest(http.MethodGet, http.StatusOK, 10*time.Millisecond)
	m.ObserveRequest(http.MethodGet, http.StatusOK, 5*time.Millisecond)
	m.RecordAppend("updates")
	m.RecordJobRun("period-rollover", nil)
	m.RecordJobRun("period-rollover", errors.New("falhou"))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requestsTotal.WithLabelValues("GET", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.recordsAppended.WithLabelValues("updates")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.jobRuns.WithLabelValues("period-rollover", "error")))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveRequest(http.MethodPost, http.StatusCreated, time.Millisecond)
		m.RecordAppend("feedback")
		m.RecordJobRun("period-rollover", nil)
	})
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.RecordAppend("files")

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `performance_hub_records_appended_total{resource="files"} 1`)
}
