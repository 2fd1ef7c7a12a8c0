package model

import (
	"time"

	"github.com/neha01mittal/datadriven-firesafety/domain/classify"
)

// Phase enumerates the steps of a single run.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseConfirming
	PhaseSelecting
	PhaseClassifying
	PhasePresenting
	PhaseDone
	PhaseAborted
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseConfirming:
		return "confirming"
	case PhaseSelecting:
		return "selecting"
	case PhaseClassifying:
		return "classifying"
	case PhasePresenting:
		return "presenting"
	case PhaseDone:
		return "done"
	case PhaseAborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further transition is expected.
func (p Phase) Terminal() bool { return p == PhaseDone || p == PhaseAborted }

// PhaseListener is called on each phase change.
type PhaseListener func(prev, next Phase)

// RunModel holds the state of the current run. The zero value is idle and usable.
// No synchronization needed: updates occur on the UI thread.
type RunModel struct {
	phase     Phase
	file      string
	labels    classify.Labels
	strategy  string
	err       error
	started   time.Time
	finished  time.Time
	listeners []PhaseListener
}

// NewRunModel returns a pointer to a ready-to-use RunModel.
func NewRunModel() *RunModel { return &RunModel{} }

// AddListener registers fn for phase changes.
func (m *RunModel) AddListener(fn PhaseListener) {
	if m == nil || fn == nil {
		return
	}
	m.listeners = append(m.listeners, fn)
}

// SetPhase moves to next; terminal phases are sticky.
func (m *RunModel) SetPhase(next Phase, now time.Time) {
	if m == nil || m.phase == next || m.phase.Terminal() {
		return
	}
	prev := m.phase
	if prev == PhaseIdle {
		m.started = now
	}
	m.phase = next
	if next.Terminal() {
		m.finished = now
	}
	for _, l := range m.listeners {
		l(prev, next)
	}
}

// Phase returns the current phase.
func (m *RunModel) Phase() Phase {
	if m == nil {
		return PhaseIdle
	}
	return m.phase
}

// SetFile records the chosen image path.
func (m *RunModel) SetFile(path string) {
	if m != nil {
		m.file = path
	}
}

// File returns the chosen image path, if any.
func (m *RunModel) File() string {
	if m == nil {
		return ""
	}
	return m.file
}

// SetResult stores a copy of labels and the composed strategy.
func (m *RunModel) SetResult(labels classify.Labels, strategy string) {
	if m == nil {
		return
	}
	m.labels = labels.Clone()
	m.strategy = strategy
}

// Labels returns a copy of the stored labels.
func (m *RunModel) Labels() classify.Labels {
	if m == nil {
		return nil
	}
	return m.labels.Clone()
}

// Strategy returns the composed strategy text.
func (m *RunModel) Strategy() string {
	if m == nil {
		return ""
	}
	return m.strategy
}

// Fail records err and aborts the run.
func (m *RunModel) Fail(err error, now time.Time) {
	if m == nil {
		return
	}
	m.err = err
	m.SetPhase(PhaseAborted, now)
}

// Err returns the failure that aborted the run.
func (m *RunModel) Err() error {
	if m == nil {
		return nil
	}
	return m.err
}

// Elapsed returns the run duration so far, or the final one once terminal.
func (m *RunModel) Elapsed(now time.Time) time.Duration {
	if m == nil || m.started.IsZero() {
		return 0
	}
	if !m.finished.IsZero() {
		return m.finished.Sub(m.started)
	}
	return now.Sub(m.started)
}
