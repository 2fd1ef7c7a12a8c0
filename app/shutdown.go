package app

import (
	"context"
	"time"

	"github.com/neha01mittal/datadriven-firesafety/domain/reveal"
)

// doneWatcher polls ctx from the UI event loop and calls onDone once it is
// cancelled, so an interrupt can close the window while App.Wait blocks.
type doneWatcher struct {
	ctx     context.Context
	sched   reveal.Scheduler
	every   time.Duration
	onDone  func()
	id      string
	stopped bool
}

func newDoneWatcher(ctx context.Context, sched reveal.Scheduler, every time.Duration, onDone func()) *doneWatcher {
	return &doneWatcher{ctx: ctx, sched: sched, every: every, onDone: onDone}
}

// Start checks ctx now and then every interval.
func (w *doneWatcher) Start() {
	if w == nil {
		return
	}
	w.tick()
}

func (w *doneWatcher) tick() {
	w.id = ""
	if w.stopped {
		return
	}
	if w.ctx.Err() != nil {
		w.stopped = true
		if w.onDone != nil {
			w.onDone()
		}
		return
	}
	w.id = w.sched.After(w.every, w.tick)
}

// Stop cancels the pending check. Safe to call repeatedly.
func (w *doneWatcher) Stop() {
	if w == nil {
		return
	}
	w.stopped = true
	if w.id != "" {
		w.sched.Cancel(w.id)
		w.id = ""
	}
}
