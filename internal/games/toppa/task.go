package toppa

import "time"

// frameTask is a self-rescheduling per-frame check. The scheduler calls run
// once per frame; the task stops itself when step reports false.
// start is a no-op while the task is already active, so a loop can never run
// twice at once.
type frameTask struct {
	active bool
	step   func(now time.Duration) bool
}

func (t *frameTask) start(now time.Duration) {
	if t.active {
		return
	}
	t.active = true
	t.run(now)
}

func (t *frameTask) run(now time.Duration) {
	if !t.active {
		return
	}
	if !t.step(now) {
		t.active = false
	}
}

func (t *frameTask) stop() {
	t.active = false
}
