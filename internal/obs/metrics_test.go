package obs

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_RecorderCounters(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	m.IncSearches()
	m.IncSearches()
	m.AddIntegrityDrops(3)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.SearchesTotal))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.IntegrityDropsTotal))
}

func TestMetrics_UpstreamCounters(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	m.IncUpstreamError("flight-offers")
	m.IncUpstreamError("flight-offers")
	m.IncUpstreamError("locations")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.UpstreamErrors.WithLabelValues("flight-offers")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.UpstreamErrors.WithLabelValues("locations")))
}

func TestMetrics_Handler(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())
	m.IncSearches()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "flight_searches_total 1")
}
