package dailypost

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/goodnatureofminers/cardanopulse-backend/internal/clock"
	"go.uber.org/zap"
)

// Scheduler publishes the daily update at a fixed wall-clock time.
type Scheduler struct {
	publisher Publisher
	at        clock.DailyTime
	logger    *zap.Logger
	sleep     func(context.Context, time.Duration) error
	now       func() time.Time

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewScheduler builds a Scheduler that fires publisher.PostNow daily at at.
func NewScheduler(publisher Publisher, at clock.DailyTime, logger *zap.Logger) (*Scheduler, error) {
	if publisher == nil {
		return nil, errors.New("publisher is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scheduler{
		publisher: publisher,
		at:        at,
		logger:    logger.Named("scheduler").With(zap.Stringer("at", at)),
		sleep:     clock.SleepWithContext,
		now:       time.Now,
	}, nil
}

// Run waits for each daily trigger and publishes until ctx is canceled.
// A failed publish is logged and the loop waits for the next day.
func (s *Scheduler) Run(ctx context.Context) error {
	for {
		next := s.at.Next(s.now())
		wait := next.Sub(s.now())
		s.logger.Info("next daily post scheduled", zap.Time("next", next), zap.Duration("in", wait))
		if err := s.sleep(ctx, wait); err != nil {
			return err
		}

		started := time.Now()
		published, err := s.publisher.PostNow(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			s.logger.Error("daily post failed", zap.Error(err), zap.Duration("elapsed", time.Since(started)))
			continue
		}
		s.logger.Info("daily post completed", zap.String("post_id", published.PostID), zap.Duration("elapsed", time.Since(started)))
	}
}

// Start runs the loop in the background under ctx. It reports false if already running.
func (s *Scheduler) Start(ctx context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		return false
	}
	runCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	s.cancel = cancel
	s.done = done

	go func() {
		defer close(done)
		if err := s.Run(runCtx); err != nil && !errors.Is(err, context.Canceled) {
			s.logger.Error("scheduler stopped", zap.Error(err))
		}
		s.mu.Lock()
		if s.done == done {
			s.cancel = nil
			s.done = nil
		}
		s.mu.Unlock()
		cancel()
	}()
	s.logger.Info("scheduler started")
	return true
}

// Stop cancels the background loop and waits for it to exit. It reports false if not running.
func (s *Scheduler) Stop() bool {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.cancel = nil
	s.done = nil
	s.mu.Unlock()

	if cancel == nil {
		return false
	}
	cancel()
	<-done
	s.logger.Info("scheduler stopped")
	return true
}

// Running reports whether the background loop is active.
func (s *Scheduler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cancel != nil
}
