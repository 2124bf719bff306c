package metrics

import (
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

	m.TicketCreated("rank_purchase")
	m.TicketCreated("rank_purchase")
	m.TicketUpdated("closed")
	m.ChatMessageSent("admin")
	m.StatusRefreshed("fallback")
	m.AdminLogin(true)
	m.AdminLogin(false)
	m.AdminLogin(false)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ticketsCreated.WithLabelValues("rank_purchase")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ticketsUpdated.WithLabelValues("closed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.chatMessages.WithLabelValues("admin")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.statusRefresh.WithLabelValues("fallback")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.adminLogins.WithLabelValues("success")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.adminLogins.WithLabelValues("failure")))
}

func TestMetrics_HandlerExposesHTTPMetrics(t *testing.T) {
	m := New()
	m.ObserveHTTP(http.MethodGet, "/api/ranks", http.StatusOK, 15*time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `leafsmp_http_requests_total{method="GET",route="/api/ranks",status="200"} 1`)
	assert.Contains(t, body, "leafsmp_http_request_duration_seconds_bucket")
}

func TestNew_IndependentRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		New()
		New()
	})
}
