package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	m := New("scheduling-test")

	m.IncSchedulingDecision("nudge_decision", "denied_cap")
	m.IncSchedulingDecision("nudge_decision", "denied_cap")
	m.IncHoursFallback("fetch_error")
	m.IncCapReadFailure()
	m.ObserveHTTPRequest("GET", "/api/v1/availability", "200", 15*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.SchedulingDecisions.WithLabelValues("nudge_decision", "denied_cap")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HoursFallbacks.WithLabelValues("fetch_error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CapReadFailures))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/api/v1/availability", "200")))
}

func TestMetrics_NilReceiver(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.IncSchedulingDecision("validate_slot", "accepted")
		m.IncHoursFallback("not_configured")
		m.IncCapReadFailure()
		m.IncEventLogAppend("failed")
		m.ObserveDBQuery("select", time.Millisecond, nil)
		m.ObserveHTTPRequest("GET", "/health", "200", time.Millisecond)
	})
}

func TestNew_IndependentRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		New("a")
		New("b")
	})
}
