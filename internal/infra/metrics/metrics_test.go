//go:build unit

package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"rental-admin/internal/infra/metrics"
	"rental-admin/internal/pkg/config"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_DomainCounters(t *testing.T) {
	m := metrics.New(config.MetricsConfig{Enabled: true, Namespace: "test"})

	m.BookingCreated(true)
	m.BookingCreated(false)
	m.BookingCreated(true)
	m.PaymentRecorded("UPI")
	m.BookingCancelled()

	count, err := testutil.GatherAndCount(m.Registry(), "test_bookings_created_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count, "one series per coupon label")

	expected := `
# HELP test_bookings_cancelled_total Bookings cancelled
# TYPE test_bookings_cancelled_total counter
test_bookings_cancelled_total 1
`
	assert.NoError(t, testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected), "test_bookings_cancelled_total"))
}

func TestMetrics_Handler(t *testing.T) {
	m := metrics.New(config.MetricsConfig{})
	m.RequestStarted()
	m.RequestFinished(http.MethodGet, "/api/properties", http.StatusOK, 20*time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `rental_admin_http_requests_total{method="GET",path="/api/properties",status="200"} 1`)
	assert.Contains(t, body, "rental_admin_http_requests_in_flight 0")
}
