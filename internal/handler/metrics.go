package handler

import (
	"fmt"
	"net/http"

	"github.com/applytrack/applytrack/internal/metrics"
)

// MetricsHandler exposes in-memory metrics.
type MetricsHandler struct {
	snapshotter metrics.Snapshotter
}

// NewMetricsHandler creates a new MetricsHandler.
func NewMetricsHandler(snapshotter metrics.Snapshotter) *MetricsHandler {
	return &MetricsHandler{snapshotter: snapshotter}
}

// Metrics returns metrics in Prometheus exposition format.
func (h *MetricsHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	if h.snapshotter == nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	snap := h.snapshotter.Snapshot()

	w.Header().Set("Content-Type", "text/plain; version=0.0.4")

	writeMetric(w, "applytrack_users_registered_total %d\n", snap.UsersRegistered)
	writeMetric(w, "applytrack_user_logins_total %d\n", snap.UserLogins)
	writeMetric(w, "applytrack_auth_rejections_total %d\n", snap.AuthRejections)

	writeMetric(w, "applytrack_jobs_created_total %d\n", snap.JobsCreated)
	writeMetric(w, "applytrack_jobs_updated_total %d\n", snap.JobsUpdated)
	writeMetric(w, "applytrack_jobs_deleted_total %d\n", snap.JobsDeleted)
}

func writeMetric(w http.ResponseWriter, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, args...)
}
