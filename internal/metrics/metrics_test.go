package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ignite/recommendations-email-client/internal/metrics"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordGenerated(t *testing.T) {
	before := testutil.ToFloat64(metrics.URLPairsGeneratedTotal.WithLabelValues("shipment"))
	metrics.RecordGenerated("shipment")
	metrics.RecordGenerated("shipment")
	assert.Equal(t, before+2, testutil.ToFloat64(metrics.URLPairsGeneratedTotal.WithLabelValues("shipment")))
}

func TestRecordValidationFailure(t *testing.T) {
	before := testutil.ToFloat64(metrics.ValidationFailuresTotal.WithLabelValues("kohls_cash"))
	metrics.RecordValidationFailure("kohls_cash")
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.ValidationFailuresTotal.WithLabelValues("kohls_cash")))
}

func TestRecordRateLimited(t *testing.T) {
	before := testutil.ToFloat64(metrics.RateLimitedTotal)
	metrics.RecordRateLimited()
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.RateLimitedTotal))
}

func TestPromhttpExposure(t *testing.T) {
	metrics.ObserveRequest("", http.StatusNotFound, 5*time.Millisecond)
	metrics.RecordGenerated("bopus_post_pickup")

	rec := httptest.NewRecorder()
	promhttp.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body := rec.Body.String()
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(body, `reco_url_pairs_generated_total{scenario="bopus_post_pickup"}`))
	assert.True(t, strings.Contains(body, `reco_http_request_duration_seconds_count{code="404",route="unmatched"}`))
}
