package metrics_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hms/config"
	"hms/infras/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCollector_Counters(t *testing.T) {
	c := metrics.NewCollector("hms-test")

	c.RoomAllocation("Single", metrics.ResultAllocated)
	c.RoomAllocation("Single", metrics.ResultAllocated)
	c.RoomAllocation("Double", metrics.ResultNoneAvailable)
	c.RoomReleased()
	c.Appointment(metrics.EventBooked)
	c.LedgerEntry("Deposit")
	c.Dispensed(3)
	c.Dispensed(0)
	c.EventPublished("hms.billing.ledger", nil)
	c.EventPublished("hms.billing.ledger", errors.New("broker down"))

	assert.InDelta(t, 2, testutil.ToFloat64(c.RoomAllocationsTotal.WithLabelValues("Single", metrics.ResultAllocated)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(c.RoomAllocationsTotal.WithLabelValues("Double", metrics.ResultNoneAvailable)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(c.RoomReleasesTotal), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(c.AppointmentsTotal.WithLabelValues(metrics.EventBooked)), 0)
	assert.InDelta(t, 3, testutil.ToFloat64(c.DispensedUnitsTotal), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(c.EventsPublishedTotal.WithLabelValues("hms.billing.ledger", "failed")), 0)
}

func TestCollector_Nil(t *testing.T) {
	var c *metrics.Collector

	assert.NotPanics(t, func() {
		c.RoomAllocation("Single", metrics.ResultAllocated)
		c.RoomReleased()
		c.ObserveRequest(http.MethodGet, "/v1/rooms", http.StatusOK, time.Millisecond)
	})
}

func TestCollector_Handler(t *testing.T) {
	c := metrics.NewCollector("hms")
	c.ObserveRequest(http.MethodGet, "/v1/rooms", http.StatusOK, 20*time.Millisecond)

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `hms_http_requests_total{method="GET",route="/v1/rooms",status="200"} 1`)
}

func TestNew(t *testing.T) {
	cfg := &config.Config{}

	assert.Nil(t, metrics.New(cfg, nil))

	cfg.Metrics.Enable = true
	cfg.App.Name = "hms-test"

	assert.NotNil(t, metrics.New(cfg, nil))
}
