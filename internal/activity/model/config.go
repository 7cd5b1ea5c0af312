package model

import "time"

const (
	defaultPerRequestDelay      = 100 * time.Millisecond
	defaultMaxBlocksToCheck     = 5000
	defaultMaxRetriesPerBlock   = 3
	defaultRetryBaseDelay       = time.Second
	defaultWindow               = 24 * time.Hour
	defaultPerBlockTxSampleSize = 5
)

// ScanConfig tunes a single scan.
type ScanConfig struct {
	// PerRequestDelay is waited after every successful upstream call.
	PerRequestDelay time.Duration
	// MaxBlocksToCheck caps walker iterations.
	MaxBlocksToCheck int
	// MaxRetriesPerBlock is the number of retries after a rate-limited call.
	MaxRetriesPerBlock int
	// RetryBaseDelay is multiplied by the retry number to get the backoff.
	RetryBaseDelay time.Duration
	// Window is the trailing interval counted back from now. Ignored when WindowStart is set.
	Window time.Duration
	// WindowStart overrides the computed window cutoff.
	WindowStart time.Time
	// PerBlockTxSampleSize caps transactions aggregated per block, 0 means all.
	PerBlockTxSampleSize int
}

// DefaultScanConfig returns the production defaults.
func DefaultScanConfig() ScanConfig {
	return ScanConfig{
		PerRequestDelay:      defaultPerRequestDelay,
		MaxBlocksToCheck:     defaultMaxBlocksToCheck,
		MaxRetriesPerBlock:   defaultMaxRetriesPerBlock,
		RetryBaseDelay:       defaultRetryBaseDelay,
		Window:               defaultWindow,
		PerBlockTxSampleSize: defaultPerBlockTxSampleSize,
	}
}

// WithDefaults fills unset limits. Delays and sample size keep zero since zero is meaningful for them.
func (c ScanConfig) WithDefaults() ScanConfig {
	if c.MaxBlocksToCheck <= 0 {
		c.MaxBlocksToCheck = defaultMaxBlocksToCheck
	}
	if c.MaxRetriesPerBlock < 0 {
		c.MaxRetriesPerBlock = 0
	}
	if c.Window <= 0 {
		c.Window = defaultWindow
	}
	if c.PerBlockTxSampleSize < 0 {
		c.PerBlockTxSampleSize = 0
	}
	if c.PerRequestDelay < 0 {
		c.PerRequestDelay = 0
	}
	if c.RetryBaseDelay < 0 {
		c.RetryBaseDelay = 0
	}
	return c
}

// WindowStartAt returns the cutoff for a scan started at now.
func (c ScanConfig) WindowStartAt(now time.Time) time.Time {
	if !c.WindowStart.IsZero() {
		return c.WindowStart
	}
	return now.Add(-c.Window)
}
