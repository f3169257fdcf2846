package api

import (
	"net/http"

	"github.com/ignite/recommendations-email-client/internal/metrics"
	"github.com/ignite/recommendations-email-client/internal/pkg/httputil"
	"github.com/ignite/recommendations-email-client/internal/pkg/logger"
	"github.com/ignite/recommendations-email-client/internal/recoemail"
)

// respondGenerationError maps a generator error to a response. Invalid
// parameters are client errors and carry their fixed message; anything else
// is logged and answered with a generic 500.
func respondGenerationError(w http.ResponseWriter, scenario recoemail.Scenario, err error) {
	if ipe, ok := recoemail.IsInvalidParameter(err); ok {
		metrics.RecordValidationFailure(string(scenario))
		logger.Info("api: rejected generation request", "scenario", scenario, "reason", ipe.Message)
		httputil.InvalidParameter(w, ipe.Message)
		return
	}
	httputil.InternalError(w, err)
}

func recordGenerated(scenario recoemail.Scenario) {
	metrics.RecordGenerated(string(scenario))
}

func respondRateLimited(w http.ResponseWriter, retryAfterSeconds int) {
	metrics.RecordRateLimited()
	httputil.TooManyRequests(w, retryAfterSeconds)
}
