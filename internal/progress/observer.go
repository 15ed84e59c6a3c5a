package progress

import (
	"strconv"
	"sync"
	"time"

	"alb-analytics/internal/events"
	"alb-analytics/internal/shared/loggers"
)

//go:generate mockgen -source=observer.go -destination=./mocks/observer_mock.go -package=mocks
type Observer interface {
	Observe(event events.ProgressEvent)
}

type nopObserver struct{}

// Nop discards every event.
func Nop() Observer { return nopObserver{} }

func (nopObserver) Observe(events.ProgressEvent) {}

type logObserver struct {
	logger   loggers.Logger
	interval time.Duration
	now      func() time.Time

	mu       sync.Mutex
	lastSent map[events.Stage]time.Time
}

// NewLogObserver logs progress at info level, at most once per interval for
// each stage. The event that completes a stage is always logged.
func NewLogObserver(logger loggers.Logger, interval time.Duration) Observer {
	return newLogObserver(logger, interval, time.Now)
}

func newLogObserver(logger loggers.Logger, interval time.Duration, now func() time.Time) *logObserver {
	return &logObserver{
		logger:   logger,
		interval: interval,
		now:      now,
		lastSent: make(map[events.Stage]time.Time),
	}
}

func (o *logObserver) Observe(event events.ProgressEvent) {
	if !o.shouldLog(event) {
		return
	}

	entry := o.logger.Info().
		Str(loggers.FieldStage, string(event.Stage)).
		Int64("count", event.Count)
	if event.Total > 0 {
		entry = entry.Int64("total", event.Total).Str("percent", strconv.FormatFloat(event.Percent(), 'f', 2, 64)+"%")
	}
	if event.RunID != "" {
		entry = entry.Str(loggers.FieldRunID, event.RunID)
	}
	entry.Msg("progress")
}

func (o *logObserver) shouldLog(event events.ProgressEvent) bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	now := o.now()
	if !event.Done() {
		if last, ok := o.lastSent[event.Stage]; ok && now.Sub(last) < o.interval {
			return false
		}
	}
	o.lastSent[event.Stage] = now
	return true
}
