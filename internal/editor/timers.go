package editor

import (
	"sort"
	"sync"
	"time"
)

// Timer names used by the session.
const (
	timerPreview  = "preview"
	timerAutosave = "autosave"
	timerHistory  = "history"
	timerLint     = "lint"
)

// timerSet schedules named trailing-edge debounce timers. Scheduling a
// name that is already pending cancels and reschedules it, so only the
// last call in a burst runs. The timers are independent: no ordering
// between them is guaranteed. Flush runs all pending callbacks
// synchronously (in name order) for deterministic tests.
type timerSet struct {
	mu      sync.Mutex
	pending map[string]*pendingTimer
	stopped bool
}

type pendingTimer struct {
	timer *time.Timer
	fn    func()
}

func newTimerSet() *timerSet {
	return &timerSet{pending: make(map[string]*pendingTimer)}
}

// schedule arms the named timer to run fn after d, replacing any
// pending run of the same name.
func (t *timerSet) schedule(name string, d time.Duration, fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.stopped {
		return
	}
	if p, ok := t.pending[name]; ok {
		p.timer.Stop()
	}

	p := &pendingTimer{fn: fn}
	p.timer = time.AfterFunc(d, func() { t.fire(name, p) })
	t.pending[name] = p
}

// fire runs a timer callback if it is still the pending one; a
// reschedule between arming and firing wins.
func (t *timerSet) fire(name string, p *pendingTimer) {
	t.mu.Lock()
	if t.pending[name] != p {
		t.mu.Unlock()
		return
	}
	delete(t.pending, name)
	t.mu.Unlock()

	p.fn()
}

// Flush cancels all pending timers and runs their callbacks now.
func (t *timerSet) Flush() {
	t.mu.Lock()
	names := make([]string, 0, len(t.pending))
	for name := range t.pending {
		names = append(names, name)
	}
	sort.Strings(names)

	fns := make([]func(), 0, len(names))
	for _, name := range names {
		p := t.pending[name]
		p.timer.Stop()
		delete(t.pending, name)
		fns = append(fns, p.fn)
	}
	t.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// Stop cancels all pending timers without running them and refuses
// further scheduling.
func (t *timerSet) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.stopped = true
	for name, p := range t.pending {
		p.timer.Stop()
		delete(t.pending, name)
	}
}
