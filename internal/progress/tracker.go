package progress

import (
	"sync/atomic"

	"alb-analytics/internal/events"
)

// Tracker counts work done in one stage and forwards every step to an
// Observer. It is safe for concurrent use.
type Tracker struct {
	observer Observer
	runID    string
	stage    events.Stage
	total    int64
	count    atomic.Int64
}

func NewTracker(observer Observer, runID string, stage events.Stage, total int64) *Tracker {
	if observer == nil {
		observer = Nop()
	}
	return &Tracker{observer: observer, runID: runID, stage: stage, total: total}
}

// Add records n more units of work.
func (t *Tracker) Add(n int64) {
	count := t.count.Add(n)
	t.observer.Observe(events.ProgressEvent{RunID: t.runID, Stage: t.stage, Count: count, Total: t.total})
}

func (t *Tracker) Count() int64 { return t.count.Load() }
