// Package metrics exposes application metrics collectors.
package metrics

import (
	"time"

	"github.com/goodnatureofminers/cardanopulse-backend/internal/activity/chain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	providerRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cardanopulse",
		Subsystem: "provider_client",
		Name:      "operations_total",
		Help:      "Count of upstream data provider operations.",
	}, []string{"operation", "provider", "network", "status"})
	providerRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "cardanopulse",
		Subsystem: "provider_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of upstream data provider operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "provider", "network", "status"})
)

// ProviderClient tracks metrics for HTTP calls to upstream data providers.
type ProviderClient struct {
	provider string
	network  string
}

// NewProviderClient constructs a metrics collector for provider calls.
func NewProviderClient(provider, network string) *ProviderClient {
	if provider == "" {
		provider = "unknown"
	}
	if network == "" {
		network = "unknown"
	}
	return &ProviderClient{provider: provider, network: network}
}

// Observe records a single provider call outcome and duration.
func (m ProviderClient) Observe(operation string, err error, started time.Time) {
	status := "success"
	switch {
	case chain.IsRateLimited(err):
		status = "rate_limited"
	case err != nil:
		status = "error"
	}

	providerRequestsTotal.WithLabelValues(operation, m.provider, m.network, status).Inc()
	providerRequestDuration.WithLabelValues(operation, m.provider, m.network, status).Observe(time.Since(started).Seconds())
}
