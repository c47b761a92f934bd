package obs

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstrument_CountsRequests(t *testing.T) {
	before := testutil.CollectAndCount(httpRequestsTotal)

	handler := Instrument(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest(http.MethodGet, "/vendor/all-vendors", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusTeapot, rr.Code)

	after := testutil.CollectAndCount(httpRequestsTotal)
	assert.Greater(t, after, before)

	got := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/vendor/all-vendors", "418"))
	assert.Equal(t, float64(1), got)
}

func TestInstrument_DefaultStatusIsOK(t *testing.T) {
	handler := Instrument(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, err := w.Write([]byte("ok"))
		require.NoError(t, err)
	}))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	got := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/health", "200"))
	assert.Equal(t, float64(1), got)
}

func TestHandler_ServesMetrics(t *testing.T) {
	Init()

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rr := httptest.NewRecorder()
	Handler().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "http_requests_total")
}
