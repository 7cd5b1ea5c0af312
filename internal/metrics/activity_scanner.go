package metrics

import (
	"time"

	"github.com/goodnatureofminers/cardanopulse-backend/internal/activity/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	scanTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cardanopulse",
		Subsystem: "activity_scanner",
		Name:      "scans_total",
		Help:      "Count of activity scans by outcome and stop reason.",
	}, []string{"network", "status", "stop_reason"})

	scanDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "cardanopulse",
		Subsystem: "activity_scanner",
		Name:      "scan_duration_seconds",
		Help:      "Duration of activity scans.",
		Buckets:   []float64{1, 5, 15, 30, 60, 120, 300, 600, 1200, 2400, 3600, 7200},
	}, []string{"network", "status"})

	scanBlocksChecked = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "cardanopulse",
		Subsystem: "activity_scanner",
		Name:      "last_blocks_checked",
		Help:      "Blocks counted by the last completed scan.",
	}, []string{"network"})

	scanTransactions = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "cardanopulse",
		Subsystem: "activity_scanner",
		Name:      "last_transactions",
		Help:      "Transactions counted by the last completed scan.",
	}, []string{"network"})

	scanActiveWallets = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "cardanopulse",
		Subsystem: "activity_scanner",
		Name:      "last_active_wallets",
		Help:      "Distinct addresses found by the last completed scan.",
	}, []string{"network"})

	scanBlocksVisited = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cardanopulse",
		Subsystem: "activity_scanner",
		Name:      "blocks_visited_total",
		Help:      "Count of blocks counted by the walker.",
	}, []string{"network"})

	scanStageFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cardanopulse",
		Subsystem: "activity_scanner",
		Name:      "stage_failures_total",
		Help:      "Count of absorbed per-item failures by stage.",
	}, []string{"network", "stage"})

	scanStageRetries = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cardanopulse",
		Subsystem: "activity_scanner",
		Name:      "stage_retries_total",
		Help:      "Count of rate-limit retries by stage.",
	}, []string{"network", "stage"})
)

// ActivityScanner tracks metrics for the windowed activity scanner.
type ActivityScanner struct {
	network string
}

// NewActivityScanner constructs an ActivityScanner collector.
func NewActivityScanner(network string) *ActivityScanner {
	if network == "" {
		network = "unknown"
	}
	return &ActivityScanner{network: network}
}

// ObserveScan records the outcome of a scan. Gauges only move for scans that produced a result.
func (m ActivityScanner) ObserveScan(err error, result model.ScanResult, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	stopReason := string(result.StopReason)
	if stopReason == "" {
		stopReason = "none"
	}

	scanTotal.WithLabelValues(m.network, status, stopReason).Inc()
	scanDuration.WithLabelValues(m.network, status).Observe(time.Since(started).Seconds())
	if result.StopReason == "" {
		return
	}
	scanBlocksChecked.WithLabelValues(m.network).Set(float64(result.BlocksChecked))
	scanTransactions.WithLabelValues(m.network).Set(float64(result.TransactionCount))
	scanActiveWallets.WithLabelValues(m.network).Set(float64(result.ActiveWalletCount))
}

// ObserveBlock records a counted block.
func (m ActivityScanner) ObserveBlock(_ int64, _ int, _ int) {
	scanBlocksVisited.WithLabelValues(m.network).Inc()
}

// ObserveFailure records an absorbed failure.
func (m ActivityScanner) ObserveFailure(stage string) {
	scanStageFailures.WithLabelValues(m.network, stage).Inc()
}

// ObserveRetry records a rate-limit retry.
func (m ActivityScanner) ObserveRetry(stage string) {
	scanStageRetries.WithLabelValues(m.network, stage).Inc()
}
