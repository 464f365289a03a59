package filter

import (
	"sync"
	"time"
)

// onceTimer is a cancellable fire-once timer. Arming it again before it
// fires drops the pending callback, so only the last call wins.
type onceTimer struct {
	mu sync.Mutex
	t  *time.Timer
}

// Arm schedules fn after d, replacing any pending callback.
func (o *onceTimer) Arm(d time.Duration, fn func()) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.t != nil {
		o.t.Stop()
	}
	o.t = time.AfterFunc(d, fn)
}

// Cancel drops the pending callback, if any.
func (o *onceTimer) Cancel() {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.t != nil {
		o.t.Stop()
		o.t = nil
	}
}
