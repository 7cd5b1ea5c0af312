package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	dailyPostCollectTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cardanopulse",
		Subsystem: "daily_post",
		Name:      "collect_total",
		Help:      "Count of snapshot collections.",
	}, []string{"network", "status"})

	dailyPostCollectDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "cardanopulse",
		Subsystem: "daily_post",
		Name:      "collect_duration_seconds",
		Help:      "Duration of snapshot collections.",
		Buckets:   []float64{1, 5, 15, 30, 60, 120, 300, 600, 1200, 2400, 3600, 7200},
	}, []string{"network", "status"})

	dailyPostPublishTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cardanopulse",
		Subsystem: "daily_post",
		Name:      "publish_total",
		Help:      "Count of social post attempts.",
	}, []string{"network", "status"})

	dailyPostCacheTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cardanopulse",
		Subsystem: "daily_post",
		Name:      "cache_lookups_total",
		Help:      "Count of snapshot cache lookups by result.",
	}, []string{"network", "result"})
)

// DailyPost tracks metrics for the daily post pipeline.
type DailyPost struct {
	network string
}

// NewDailyPost constructs a DailyPost collector.
func NewDailyPost(network string) *DailyPost {
	if network == "" {
		network = "unknown"
	}
	return &DailyPost{network: network}
}

// ObserveCollect records a snapshot collection outcome and duration.
func (m DailyPost) ObserveCollect(err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	dailyPostCollectTotal.WithLabelValues(m.network, status).Inc()
	dailyPostCollectDuration.WithLabelValues(m.network, status).Observe(time.Since(started).Seconds())
}

// ObservePublish records a social post attempt.
func (m DailyPost) ObservePublish(err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	dailyPostPublishTotal.WithLabelValues(m.network, status).Inc()
}

// ObserveCache records a cache lookup.
func (m DailyPost) ObserveCache(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	dailyPostCacheTotal.WithLabelValues(m.network, result).Inc()
}
