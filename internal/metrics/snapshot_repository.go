package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	snapshotRepositoryRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cardanopulse",
		Subsystem: "snapshot_repository",
		Name:      "operations_total",
		Help:      "Count of snapshot repository operations.",
	}, []string{"operation", "network", "status"})
	snapshotRepositoryRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "cardanopulse",
		Subsystem: "snapshot_repository",
		Name:      "operation_duration_seconds",
		Help:      "Duration of snapshot repository operations.",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 15, 20, 30},
	}, []string{"operation", "network", "status"})
)

// SnapshotRepository tracks metrics for snapshot history storage.
type SnapshotRepository struct {
	network string
}

// NewSnapshotRepository creates a SnapshotRepository metrics collector.
func NewSnapshotRepository(network string) *SnapshotRepository {
	if network == "" {
		network = "unknown"
	}
	return &SnapshotRepository{network: network}
}

// Observe records duration and status of a repository operation.
func (m SnapshotRepository) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	snapshotRepositoryRequestsTotal.WithLabelValues(operation, m.network, status).Inc()
	snapshotRepositoryRequestDuration.WithLabelValues(operation, m.network, status).Observe(time.Since(started).Seconds())
}
