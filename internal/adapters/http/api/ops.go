package api

import (
	"maps"
	"net/http"
	"time"

	"github.com/okian/tradecalc/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// StatsProvider reports service counters for GET /stats.
type StatsProvider interface {
	GetStats() map[string]any
}

// OpsHandler serves the operational endpoints. /healthz exposes the
// Prometheus registry and a 200 doubles as liveness; /stats adds the
// process uptime to the service counters.
type OpsHandler struct {
	stats   StatsProvider
	started time.Time
}

// NewOpsHandler creates an OpsHandler whose uptime counts from now.
func NewOpsHandler(stats StatsProvider) *OpsHandler {
	return &OpsHandler{stats: stats, started: time.Now()}
}

// HandleHealth handles GET /healthz.
func (h *OpsHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	// The registry is resolved per request because metrics.Init swaps it.
	promhttp.HandlerFor(metrics.GetRegistry(), promhttp.HandlerOpts{
		ErrorHandling: promhttp.ContinueOnError,
	}).ServeHTTP(w, r)
}

// HandleStats handles GET /stats.
func (h *OpsHandler) HandleStats(w http.ResponseWriter, _ *http.Request) {
	out := map[string]any{}
	if h.stats != nil {
		maps.Copy(out, h.stats.GetStats())
	}
	out["uptime"] = time.Since(h.started).Truncate(time.Second).String()
	writeJSON(w, http.StatusOK, out)
}
