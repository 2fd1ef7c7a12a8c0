// Package reveal schedules the typewriter-style reveal of a text.
package reveal

import (
	"log/slog"
	"time"
)

// Frame is one displayed-substring state and the offset, relative to the
// start of the reveal, at which it is shown.
type Frame struct {
	Offset time.Duration
	Text   string
}

// Frames returns len(runes(text))+1 frames: the empty prefix at offset 0, then
// one more rune per interval, ending with the full text.
func Frames(text string, interval time.Duration) []Frame {
	runes := []rune(text)
	out := make([]Frame, 0, len(runes)+1)
	for i := 0; i <= len(runes); i++ {
		out = append(out, Frame{Offset: time.Duration(i) * interval, Text: string(runes[:i])})
	}
	return out
}

// Scheduler runs callbacks later on the UI event loop. Cancel must be a no-op
// for ids that already fired or were cancelled.
type Scheduler interface {
	After(d time.Duration, fn func()) (id string)
	Cancel(id string)
}

// Animator drives a reveal through a Scheduler. All methods are expected to be
// called from the UI event loop; there is no internal locking.
type Animator struct {
	sched    Scheduler
	interval time.Duration
	logger   *slog.Logger
	pending  map[string]struct{}
	seq      int // bumped on Start/Stop; stale callbacks compare against it
	running  bool
}

// NewAnimator returns an Animator ticking every interval.
func NewAnimator(sched Scheduler, interval time.Duration, logger *slog.Logger) *Animator {
	return &Animator{sched: sched, interval: interval, logger: logger, pending: make(map[string]struct{})}
}

// Start schedules every frame of text up front, like the fixed-delay chain the
// reveal has always used, and calls show for each one in order. A running
// reveal is stopped first. onDone, if non-nil, runs after the last frame.
func (a *Animator) Start(text string, show func(string), onDone func()) {
	if a == nil || a.sched == nil || show == nil {
		return
	}
	a.Stop()
	a.seq++
	seq := a.seq
	a.running = true
	frames := Frames(text, a.interval)
	for i, f := range frames {
		if seq != a.seq {
			break
		}
		last := i == len(frames)-1
		fired := false
		var id string
		id = a.sched.After(f.Offset, func() {
			fired = true
			delete(a.pending, id)
			if seq != a.seq {
				return
			}
			show(f.Text)
			if last {
				a.running = false
				if onDone != nil {
					onDone()
				}
			}
		})
		// a synchronous scheduler may already have run the callback
		if !fired {
			a.pending[id] = struct{}{}
		}
	}
	if a.logger != nil {
		a.logger.Debug("reveal scheduled", "frames", len(frames), "interval", a.interval)
	}
}

// Stop cancels every pending frame. Safe to call repeatedly.
func (a *Animator) Stop() {
	if a == nil {
		return
	}
	a.seq++
	a.running = false
	if len(a.pending) == 0 {
		return
	}
	for id := range a.pending {
		a.sched.Cancel(id)
	}
	if a.logger != nil {
		a.logger.Debug("reveal cancelled", "pending", len(a.pending))
	}
	clear(a.pending)
}

// Running reports whether frames remain to be shown.
func (a *Animator) Running() bool {
	return a != nil && a.running
}

// Pending returns the number of scheduled, not yet fired frames.
func (a *Animator) Pending() int {
	if a == nil {
		return 0
	}
	return len(a.pending)
}
